package health

import "context"

// EnginePinger checks search engine connectivity.
type EnginePinger interface {
	Ping(ctx context.Context) error
}

// CachePinger checks cache store connectivity.
type CachePinger interface {
	Ping(ctx context.Context) error
}
