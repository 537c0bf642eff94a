package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/imago-cloud/mediasearch/internal/domain/search/request"
	"github.com/imago-cloud/mediasearch/internal/domain/search/result"
)

// Service orchestrates a media search: cache lookup, query execution,
// hit enrichment, response assembly, cache write-through. Stateless
// across requests; the request itself is validated at construction.
type Service struct {
	repo   Repository
	cache  Cache
	logger *zap.Logger
}

// New creates a search service. cache may be nil when no cache store
// is configured; the pipeline then always goes to the engine.
func New(repo Repository, cache Cache, logger *zap.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// Search runs the full pipeline for one validated request.
// Cache failures never fail the request; engine failures propagate
// with their kind intact so the transport can map a status.
func (s *Service) Search(ctx context.Context, req *request.Request) (*result.Response, error) {
	if s.cache != nil {
		if resp, ok := s.cache.Lookup(ctx, req); ok {
			return resp, nil
		}
	}

	total, hits, err := s.repo.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search media: %w", err)
	}

	results := make([]result.Result, 0, len(hits))
	for i := range hits {
		if res, ok := transformHit(&hits[i], s.logger); ok {
			results = append(results, res)
		}
	}

	resp, err := result.NewResponse(total, results, req.Page(), req.Limit())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Store(ctx, req, &resp)
	}

	return &resp, nil
}
