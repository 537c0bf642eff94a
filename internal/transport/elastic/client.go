package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"

	"github.com/imago-cloud/mediasearch/internal/domain"
	"github.com/imago-cloud/mediasearch/internal/metrics"
)

// compatMimeType pins the request/response media type to the v8 wire
// format so a newer server keeps answering in the shape we parse.
const compatMimeType = "application/vnd.elasticsearch+json; compatible-with=8"

// Config holds connection parameters for the search engine.
type Config struct {
	Addresses []string
	Username  string
	Password  string
}

// Client is the outbound search-engine transport. It executes search
// requests and classifies failures into the domain error taxonomy.
type Client struct {
	es     *elasticsearch.Client
	logger *zap.Logger
}

// Response is a parsed engine search response.
type Response struct {
	Total int64
	Hits  []Hit
}

// Hit is one raw engine hit before domain conversion.
type Hit struct {
	ID     string
	Score  float64
	Source map[string]any
}

// NewClient creates an engine client.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Header:    http.Header{"Accept": []string{compatMimeType}},
	})
	if err != nil {
		return nil, fmt.Errorf("create engine client: %w", err)
	}
	return &Client{es: es, logger: logger}, nil
}

// Ping checks engine connectivity.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEngineConnection, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("%w: ping returned %s", domain.ErrEngineTransport, res.Status())
	}
	return nil
}

// Search executes a query document against the given index and parses
// the response. Failures are typed: a rejected query surfaces as
// ErrEngineBadRequest, network failures as ErrEngineConnection, other
// non-2xx answers as ErrEngineTransport, and a response missing the
// expected hits shape as ErrMissingResponseField.
func (c *Client) Search(ctx context.Context, index string, body map[string]any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: encode query: %w", domain.ErrInvariant, err)
	}

	c.logger.Debug("engine search",
		zap.String("index", index),
		zap.ByteString("body", payload),
	)

	start := time.Now()
	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(payload)),
	)
	metrics.SearchEngineRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SearchEngineRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrEngineConnection, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		metrics.SearchEngineRequestsTotal.WithLabelValues("error").Inc()
		if res.StatusCode == http.StatusBadRequest {
			return nil, fmt.Errorf("%w: %s", domain.ErrEngineBadRequest, res.Status())
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrEngineTransport, res.Status())
	}

	metrics.SearchEngineRequestsTotal.WithLabelValues("ok").Inc()
	return parseResponse(res.Body)
}

type searchEnvelope struct {
	Hits *hitsEnvelope `json:"hits"`
}

type hitsEnvelope struct {
	Total *totalEnvelope `json:"total"`
	Hits  []hitEnvelope  `json:"hits"`
}

type totalEnvelope struct {
	Value int64 `json:"value"`
}

type hitEnvelope struct {
	ID     string         `json:"_id"`
	Score  *float64       `json:"_score"`
	Source map[string]any `json:"_source"`
}

func parseResponse(body io.Reader) (*Response, error) {
	var env searchEnvelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode engine response: %w", domain.ErrEngineTransport, err)
	}
	if env.Hits == nil {
		return nil, fmt.Errorf("%w: hits", domain.ErrMissingResponseField)
	}
	if env.Hits.Total == nil {
		return nil, fmt.Errorf("%w: hits.total", domain.ErrMissingResponseField)
	}

	hits := make([]Hit, 0, len(env.Hits.Hits))
	for _, h := range env.Hits.Hits {
		score := 0.0
		if h.Score != nil {
			score = *h.Score
		}
		hits = append(hits, Hit{ID: h.ID, Score: score, Source: h.Source})
	}

	return &Response{Total: env.Hits.Total.Value, Hits: hits}, nil
}
