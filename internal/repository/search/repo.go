package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/imago-cloud/mediasearch/internal/domain/search/hit"
	"github.com/imago-cloud/mediasearch/internal/domain/search/request"
	"github.com/imago-cloud/mediasearch/internal/transport/elastic"
)

// engineClient is the consumer interface for the engine transport (ISP).
type engineClient interface {
	Search(ctx context.Context, index string, body map[string]any) (*elastic.Response, error)
}

// Repo implements usecase/search.Repository: it builds the engine query
// document for a validated request and converts raw hits into domain hits.
type Repo struct {
	client engineClient
	index  string
	logger *zap.Logger
}

// New creates a search repository bound to an index.
func New(client engineClient, index string, logger *zap.Logger) *Repo {
	return &Repo{client: client, index: index, logger: logger}
}

// Search executes a media search and returns the engine-reported total
// plus the raw hits for this page.
func (r *Repo) Search(ctx context.Context, req *request.Request) (int64, []hit.Hit, error) {
	body := buildSearchBody(req, r.logger)

	resp, err := r.client.Search(ctx, r.index, body)
	if err != nil {
		return 0, nil, fmt.Errorf("search %s: %w", r.index, err)
	}

	hits := make([]hit.Hit, 0, len(resp.Hits))
	for _, h := range resp.Hits {
		hits = append(hits, hit.New(h.ID, h.Score, h.Source))
	}

	return resp.Total, hits, nil
}
