package request

import (
	"fmt"
	"regexp"
	"time"

	"github.com/imago-cloud/mediasearch/internal/domain"
	"github.com/imago-cloud/mediasearch/internal/domain/search/alignment"
	"github.com/imago-cloud/mediasearch/internal/domain/search/field"
	"github.com/imago-cloud/mediasearch/internal/domain/search/match"
	"github.com/imago-cloud/mediasearch/internal/domain/search/sort"
)

// Keyword constraints.
const (
	MinKeywordLength = 2
	MaxKeywordLength = 100
	DefaultPage      = 1
	DefaultLimit     = 5
)

// DateFormat is the accepted layout for date range bounds.
const DateFormat = "2006-01-02"

var keywordPattern = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// allowedLimits is the closed set of page sizes.
var allowedLimits = []int{5, 10, 20, 50, 100}

// Params carries the raw, already-typed search parameters into New.
// Zero values mean "not provided" and fall back to defaults where one exists.
type Params struct {
	Keyword   string
	Fields    []field.Field
	MatchType match.Type
	Limit     int
	Page      int
	SortBy    sort.Field
	OrderBy   sort.Order
	DateFrom  string
	DateTo    string
	HeightMin *int
	HeightMax *int
	WidthMin  *int
	WidthMax  *int
	Alignment alignment.Alignment
}

// Request is a validated, immutable media search query.
type Request struct {
	keyword   string
	fields    []field.Field
	matchType match.Type
	limit     int
	page      int
	sortBy    sort.Field
	orderBy   sort.Order
	dateFrom  string
	dateTo    string
	heightMin *int
	heightMax *int
	widthMin  *int
	widthMax  *int
	align     alignment.Alignment
}

// New validates and normalizes search parameters into a Request.
// Validation happens here once; downstream components assume a valid request.
func New(p Params) (Request, error) {
	if p.Keyword == "" {
		return Request{}, fmt.Errorf("%w: keyword is required", domain.ErrValidation)
	}
	if len(p.Keyword) < MinKeywordLength || len(p.Keyword) > MaxKeywordLength {
		return Request{}, fmt.Errorf("%w: keyword must be between %d and %d characters",
			domain.ErrValidation, MinKeywordLength, MaxKeywordLength)
	}
	if !keywordPattern.MatchString(p.Keyword) {
		return Request{}, fmt.Errorf("%w: keyword may only contain letters, digits and spaces",
			domain.ErrValidation)
	}

	if len(p.Fields) == 0 {
		return Request{}, fmt.Errorf("%w: at least one search field is required", domain.ErrValidation)
	}
	seen := make(map[field.Field]bool, len(p.Fields))
	fields := make([]field.Field, 0, len(p.Fields))
	for _, f := range p.Fields {
		if !f.IsValid() {
			return Request{}, fmt.Errorf("%w: invalid field %q", domain.ErrValidation, f)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		fields = append(fields, f)
	}

	m := p.MatchType
	if m == "" {
		m = match.Words
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("%w: invalid match type %q", domain.ErrValidation, m)
	}

	limit := p.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if !limitAllowed(limit) {
		return Request{}, fmt.Errorf("%w: limit must be one of %v", domain.ErrValidation, allowedLimits)
	}

	page := p.Page
	if page == 0 {
		page = DefaultPage
	}
	if page < 1 {
		return Request{}, fmt.Errorf("%w: page must be a positive integer", domain.ErrValidation)
	}

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = sort.Date
	}
	if !sortBy.IsValid() {
		return Request{}, fmt.Errorf("%w: invalid sort field %q", domain.ErrValidation, sortBy)
	}

	orderBy := p.OrderBy
	if orderBy == "" {
		orderBy = sort.Desc
	}
	if !orderBy.IsValid() {
		return Request{}, fmt.Errorf("%w: invalid sort order %q", domain.ErrValidation, orderBy)
	}

	var from, to time.Time
	var err error
	if p.DateFrom != "" {
		if from, err = time.Parse(DateFormat, p.DateFrom); err != nil {
			return Request{}, fmt.Errorf("%w: date_from must be in YYYY-MM-DD format", domain.ErrValidation)
		}
	}
	if p.DateTo != "" {
		if to, err = time.Parse(DateFormat, p.DateTo); err != nil {
			return Request{}, fmt.Errorf("%w: date_to must be in YYYY-MM-DD format", domain.ErrValidation)
		}
	}
	if p.DateFrom != "" && p.DateTo != "" && from.After(to) {
		return Request{}, fmt.Errorf("%w: date_from must not be after date_to", domain.ErrValidation)
	}

	if err := validateRange("height", p.HeightMin, p.HeightMax); err != nil {
		return Request{}, err
	}
	if err := validateRange("width", p.WidthMin, p.WidthMax); err != nil {
		return Request{}, err
	}

	if !p.Alignment.IsValid() {
		return Request{}, fmt.Errorf("%w: invalid alignment %q", domain.ErrValidation, p.Alignment)
	}

	return Request{
		keyword:   p.Keyword,
		fields:    fields,
		matchType: m,
		limit:     limit,
		page:      page,
		sortBy:    sortBy,
		orderBy:   orderBy,
		dateFrom:  p.DateFrom,
		dateTo:    p.DateTo,
		heightMin: copyInt(p.HeightMin),
		heightMax: copyInt(p.HeightMax),
		widthMin:  copyInt(p.WidthMin),
		widthMax:  copyInt(p.WidthMax),
		align:     p.Alignment,
	}, nil
}

func limitAllowed(limit int) bool {
	for _, l := range allowedLimits {
		if limit == l {
			return true
		}
	}
	return false
}

func validateRange(name string, minVal, maxVal *int) error {
	if minVal != nil && *minVal < 0 {
		return fmt.Errorf("%w: %s_min must be non-negative", domain.ErrValidation, name)
	}
	if maxVal != nil && *maxVal < 0 {
		return fmt.Errorf("%w: %s_max must be non-negative", domain.ErrValidation, name)
	}
	if minVal != nil && maxVal != nil && *minVal > *maxVal {
		return fmt.Errorf("%w: %s_min must not exceed %s_max", domain.ErrValidation, name, name)
	}
	return nil
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Keyword returns the search term.
func (r *Request) Keyword() string { return r.keyword }

// Fields returns the searched document attributes, duplicates removed, order preserved.
func (r *Request) Fields() []field.Field {
	out := make([]field.Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// MatchType returns the multi-field match strategy.
func (r *Request) MatchType() match.Type { return r.matchType }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// SortBy returns the sort attribute.
func (r *Request) SortBy() sort.Field { return r.sortBy }

// OrderBy returns the sort direction.
func (r *Request) OrderBy() sort.Order { return r.orderBy }

// DateFrom returns the lower date bound, empty if unset.
func (r *Request) DateFrom() string { return r.dateFrom }

// DateTo returns the upper date bound, empty if unset.
func (r *Request) DateTo() string { return r.dateTo }

// HeightMin returns the lower height bound, nil if unset.
func (r *Request) HeightMin() *int { return copyInt(r.heightMin) }

// HeightMax returns the upper height bound, nil if unset.
func (r *Request) HeightMax() *int { return copyInt(r.heightMax) }

// WidthMin returns the lower width bound, nil if unset.
func (r *Request) WidthMin() *int { return copyInt(r.widthMin) }

// WidthMax returns the upper width bound, nil if unset.
func (r *Request) WidthMax() *int { return copyInt(r.widthMax) }

// Alignment returns the requested orientation filter (None if unset).
func (r *Request) Alignment() alignment.Alignment { return r.align }
