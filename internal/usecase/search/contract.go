package search

import (
	"context"

	"github.com/imago-cloud/mediasearch/internal/domain/search/hit"
	"github.com/imago-cloud/mediasearch/internal/domain/search/request"
	"github.com/imago-cloud/mediasearch/internal/domain/search/result"
)

// Repository defines the engine contract for media search operations.
type Repository interface {
	Search(ctx context.Context, req *request.Request) (int64, []hit.Hit, error)
}

// Cache defines the best-effort response cache contract. Lookup misses
// on any failure; Store swallows failures.
type Cache interface {
	Lookup(ctx context.Context, req *request.Request) (*result.Response, bool)
	Store(ctx context.Context, req *request.Request, resp *result.Response)
}
