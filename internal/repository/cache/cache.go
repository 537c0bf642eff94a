package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/imago-cloud/mediasearch/internal/db"
	"github.com/imago-cloud/mediasearch/internal/domain/search/request"
	"github.com/imago-cloud/mediasearch/internal/domain/search/result"
)

// store is the consumer interface for the response cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ResponseCache stores serialized search responses under derived keys.
// Every operation is best-effort: store failures are logged and
// reported as misses, never surfaced to the caller.
type ResponseCache struct {
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a response cache.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *ResponseCache {
	return &ResponseCache{
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Lookup returns the cached response for an identical prior request.
// Any store or decode failure counts as a miss.
func (c *ResponseCache) Lookup(ctx context.Context, req *request.Request) (*result.Response, bool) {
	key := Key(req)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		c.incCache("miss")
		return nil, false
	}

	var dto cachedResponse
	if err := json.Unmarshal(data, &dto); err != nil {
		c.logger.Warn("cached response is not decodable", zap.String("key", key), zap.Error(err))
		c.incCache("miss")
		return nil, false
	}

	c.incCache("hit")
	resp := fromDTO(dto)
	return &resp, true
}

// Store persists a response for future identical requests. Failures
// are swallowed with a warn log.
func (c *ResponseCache) Store(ctx context.Context, req *request.Request, resp *result.Response) {
	key := Key(req)

	data, err := json.Marshal(toDTO(resp))
	if err != nil {
		c.logger.Warn("failed to encode response for cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("cache store failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *ResponseCache) incCache(outcome string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(outcome).Inc()
	}
}
