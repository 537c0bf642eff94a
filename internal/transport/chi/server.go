package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/imago-cloud/mediasearch/internal/domain"
	"github.com/imago-cloud/mediasearch/internal/domain/search/alignment"
	"github.com/imago-cloud/mediasearch/internal/domain/search/field"
	"github.com/imago-cloud/mediasearch/internal/domain/search/match"
	"github.com/imago-cloud/mediasearch/internal/domain/search/request"
	"github.com/imago-cloud/mediasearch/internal/domain/search/result"
	domsort "github.com/imago-cloud/mediasearch/internal/domain/search/sort"
	healthuc "github.com/imago-cloud/mediasearch/internal/usecase/health"
	searchuc "github.com/imago-cloud/mediasearch/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server exposes the media search API over HTTP.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		search: search,
		health: health,
		logger: logger,
	}
	// Order matters: the first matching sentinel wins.
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, "validation_failed",
			""), // validation messages carry the specific reason
		sentinelHandler(domain.ErrEngineBadRequest, http.StatusBadRequest, "engine_bad_request",
			"The search request was invalid. Please check your parameters and try again."),
		sentinelHandler(domain.ErrMissingResponseField, http.StatusBadRequest, "missing_response_field",
			"A required field was missing in the search response."),
		sentinelHandler(domain.ErrEngineConnection, http.StatusServiceUnavailable, "engine_unavailable",
			"A connection error occurred while processing your request. Please try again later."),
		sentinelHandler(domain.ErrEngineTransport, http.StatusBadGateway, "engine_transport_error",
			"A transport error occurred while processing your request. Please try again later."),
		sentinelHandler(domain.ErrInvariant, http.StatusUnprocessableEntity, "invariant_violation",
			"The search request could not be processed. Please check your parameters and try again."),
	}
	return s
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Get("/api/media/search", s.SearchMedia)
}

// SearchMedia handles GET /api/media/search.
func (s *Server) SearchMedia(w http.ResponseWriter, r *http.Request) {
	req, err := searchRequestFromQuery(r)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.search.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responseToDTO(resp))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// searchRequestFromQuery parses and validates the query parameters into
// a request value object. This is the single authoritative validation
// point; downstream components assume a valid request.
func searchRequestFromQuery(r *http.Request) (*request.Request, error) {
	q := r.URL.Query()

	fields, err := fieldsFromQuery(q["fields"])
	if err != nil {
		return nil, err
	}

	matchType, err := match.Parse(q.Get("match_type"))
	if err != nil {
		return nil, err
	}

	sortBy, err := domsort.ParseField(q.Get("sort_by"))
	if err != nil {
		return nil, err
	}
	orderBy, err := domsort.ParseOrder(q.Get("order_by"))
	if err != nil {
		return nil, err
	}

	align, err := alignment.Parse(q.Get("alignment"))
	if err != nil {
		return nil, err
	}

	limit, err := intParam(q, "limit")
	if err != nil {
		return nil, err
	}
	page, err := intParam(q, "page")
	if err != nil {
		return nil, err
	}

	heightMin, err := optionalIntParam(q, "height_min")
	if err != nil {
		return nil, err
	}
	heightMax, err := optionalIntParam(q, "height_max")
	if err != nil {
		return nil, err
	}
	widthMin, err := optionalIntParam(q, "width_min")
	if err != nil {
		return nil, err
	}
	widthMax, err := optionalIntParam(q, "width_max")
	if err != nil {
		return nil, err
	}

	req, err := request.New(request.Params{
		Keyword:   q.Get("keyword"),
		Fields:    fields,
		MatchType: matchType,
		Limit:     limit,
		Page:      page,
		SortBy:    sortBy,
		OrderBy:   orderBy,
		DateFrom:  q.Get("date_from"),
		DateTo:    q.Get("date_to"),
		HeightMin: heightMin,
		HeightMax: heightMax,
		WidthMin:  widthMin,
		WidthMax:  widthMax,
		Alignment: align,
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// fieldsFromQuery accepts both repeated ?fields= params and
// comma-separated lists. Absent fields default to the keyword field.
func fieldsFromQuery(raw []string) ([]field.Field, error) {
	if len(raw) == 0 {
		return []field.Field{field.Keyword}, nil
	}
	var fields []field.Field
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			f, err := field.Parse(part)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
	}
	return fields, nil
}

func intParam(q map[string][]string, name string) (int, error) {
	vals := q[name]
	if len(vals) == 0 || vals[0] == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(vals[0])
	if err != nil {
		return 0, invalidIntError(name)
	}
	return n, nil
}

func optionalIntParam(q map[string][]string, name string) (*int, error) {
	vals := q[name]
	if len(vals) == 0 || vals[0] == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(vals[0])
	if err != nil {
		return nil, invalidIntError(name)
	}
	return &n, nil
}

func invalidIntError(name string) error {
	return &paramError{name: name}
}

// paramError marks a non-numeric value for an integer parameter.
type paramError struct {
	name string
}

func (e *paramError) Error() string {
	return domain.ErrValidation.Error() + ": " + e.name + " must be an integer"
}

func (e *paramError) Unwrap() error { return domain.ErrValidation }

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("request failed", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error",
		"An unexpected error occurred while processing your request. Please try again later.")
}

// sentinelHandler returns an errorHandler matching a single sentinel.
// An empty message exposes the error text itself (used for validation,
// where the reason describes the caller's own input).
func sentinelHandler(sentinel error, status int, code, message string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		msg := message
		if msg == "" {
			msg = err.Error()
		}
		writeError(w, status, code, msg)
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type searchResponseDTO struct {
	TotalResults int64       `json:"total_results"`
	Results      []resultDTO `json:"results"`
	Page         int         `json:"page"`
	Limit        int         `json:"limit"`
	HasNext      bool        `json:"has_next"`
	HasPrevious  bool        `json:"has_previous"`
}

type resultDTO struct {
	ID           string  `json:"id"`
	Score        float64 `json:"score"`
	ImageNumber  string  `json:"bildnummer"`
	Date         string  `json:"datum,omitempty"`
	Photographer string  `json:"fotografen,omitempty"`
	Title        string  `json:"title,omitempty"`
	Width        int     `json:"breite,omitempty"`
	Height       int     `json:"hoehe,omitempty"`
	Database     string  `json:"db"`
	MediaURL     string  `json:"media_url"`
}

func responseToDTO(resp *result.Response) searchResponseDTO {
	results := resp.Results()
	items := make([]resultDTO, len(results))
	for i := range results {
		r := &results[i]
		items[i] = resultDTO{
			ID:           r.ID(),
			Score:        r.Score(),
			ImageNumber:  r.ImageNumber(),
			Date:         r.Date(),
			Photographer: r.Photographer(),
			Title:        r.Title(),
			Width:        r.Width(),
			Height:       r.Height(),
			Database:     r.Database(),
			MediaURL:     r.MediaURL(),
		}
	}
	return searchResponseDTO{
		TotalResults: resp.TotalResults(),
		Results:      items,
		Page:         resp.Page(),
		Limit:        resp.Limit(),
		HasNext:      resp.HasNext(),
		HasPrevious:  resp.HasPrevious(),
	}
}
