package result

import (
	"fmt"

	"github.com/imago-cloud/mediasearch/internal/domain"
)

// Result is one enriched, client-facing media record. Immutable once built.
type Result struct {
	id           string
	score        float64
	imageNumber  string
	date         string
	photographer string
	title        string
	width        int
	height       int
	database     string
	mediaURL     string
}

// New creates an enriched result.
func New(
	id string, score float64,
	imageNumber, date, photographer, title string,
	width, height int,
	database, mediaURL string,
) Result {
	return Result{
		id:           id,
		score:        score,
		imageNumber:  imageNumber,
		date:         date,
		photographer: photographer,
		title:        title,
		width:        width,
		height:       height,
		database:     database,
		mediaURL:     mediaURL,
	}
}

// ID returns the engine document id.
func (r *Result) ID() string { return r.id }

// Score returns the relevance score.
func (r *Result) Score() float64 { return r.score }

// ImageNumber returns the raw image number.
func (r *Result) ImageNumber() string { return r.imageNumber }

// Date returns the stored capture date.
func (r *Result) Date() string { return r.date }

// Photographer returns the photographer attribution.
func (r *Result) Photographer() string { return r.photographer }

// Title returns the truncated search text used as a display title.
func (r *Result) Title() string { return r.title }

// Width returns the image width in pixels.
func (r *Result) Width() int { return r.width }

// Height returns the image height in pixels.
func (r *Result) Height() int { return r.height }

// Database returns the source database the image came from.
func (r *Result) Database() string { return r.database }

// MediaURL returns the derived thumbnail URL.
func (r *Result) MediaURL() string { return r.mediaURL }

// Response is the assembled, paginated search response.
type Response struct {
	totalResults int64
	results      []Result
	page         int
	limit        int
	hasNext      bool
	hasPrevious  bool
}

// NewResponse assembles a response and computes the pagination flags.
// The total comes from the engine, never from the result slice length.
func NewResponse(totalResults int64, results []Result, page, limit int) (Response, error) {
	if page < 1 || limit < 1 {
		return Response{}, fmt.Errorf("%w: page=%d limit=%d", domain.ErrInvariant, page, limit)
	}
	return Response{
		totalResults: totalResults,
		results:      results,
		page:         page,
		limit:        limit,
		hasNext:      int64(page)*int64(limit) < totalResults,
		hasPrevious:  page > 1,
	}, nil
}

// Reconstruct rebuilds a response from persisted fields without recomputing
// flags. Used when decoding a cached response.
func Reconstruct(totalResults int64, results []Result, page, limit int, hasNext, hasPrevious bool) Response {
	return Response{
		totalResults: totalResults,
		results:      results,
		page:         page,
		limit:        limit,
		hasNext:      hasNext,
		hasPrevious:  hasPrevious,
	}
}

// TotalResults returns the engine-reported total match count.
func (r *Response) TotalResults() int64 { return r.totalResults }

// Results returns the enriched records for this page.
func (r *Response) Results() []Result { return r.results }

// Page returns the 1-based page number.
func (r *Response) Page() int { return r.page }

// Limit returns the page size.
func (r *Response) Limit() int { return r.limit }

// HasNext reports whether another page exists.
func (r *Response) HasNext() bool { return r.hasNext }

// HasPrevious reports whether a previous page exists.
func (r *Response) HasPrevious() bool { return r.hasPrevious }
