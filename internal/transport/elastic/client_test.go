package elastic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/imago-cloud/mediasearch/internal/domain"
)

// newTestServer serves a canned engine response. The product header is
// required or the client rejects the server during its product check.
func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(Config{Addresses: []string{url}}, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

func TestSearch_ParsesResponse(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"hits": {
			"total": {"value": 42, "relation": "eq"},
			"hits": [
				{"_id": "doc1", "_score": 12.5, "_source": {"db": "stock", "bildnummer": "123"}},
				{"_id": "doc2", "_score": null, "_source": {"db": "sp"}}
			]
		}
	}`)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.Search(context.Background(), "imago", map[string]any{"size": 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 42 {
		t.Errorf("expected total 42, got %d", resp.Total)
	}
	if len(resp.Hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(resp.Hits))
	}
	if resp.Hits[0].ID != "doc1" || resp.Hits[0].Score != 12.5 {
		t.Errorf("unexpected first hit: %+v", resp.Hits[0])
	}
	if resp.Hits[1].Score != 0 {
		t.Errorf("expected null score to default to 0, got %v", resp.Hits[1].Score)
	}
	if resp.Hits[0].Source["db"] != "stock" {
		t.Errorf("unexpected source: %v", resp.Hits[0].Source)
	}
}

func TestSearch_BadRequest(t *testing.T) {
	srv := newTestServer(t, http.StatusBadRequest, `{"error": {"type": "parsing_exception"}}`)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Search(context.Background(), "imago", map[string]any{})
	if !errors.Is(err, domain.ErrEngineBadRequest) {
		t.Errorf("expected engine bad request, got %v", err)
	}
}

func TestSearch_TransportError(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `{"error": {"type": "internal"}}`)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Search(context.Background(), "imago", map[string]any{})
	if !errors.Is(err, domain.ErrEngineTransport) {
		t.Errorf("expected engine transport error, got %v", err)
	}
}

func TestSearch_ConnectionError(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{}`)
	srv.Close() // refuse connections

	c := newTestClient(t, srv.URL)
	_, err := c.Search(context.Background(), "imago", map[string]any{})
	if !errors.Is(err, domain.ErrEngineConnection) {
		t.Errorf("expected engine connection error, got %v", err)
	}
}

func TestSearch_MissingResponseFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no hits", `{"took": 3}`, "hits"},
		{"no total", `{"hits": {"hits": []}}`, "hits.total"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, tc.body)
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			_, err := c.Search(context.Background(), "imago", map[string]any{})
			if !errors.Is(err, domain.ErrMissingResponseField) {
				t.Fatalf("expected missing response field error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error to name %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestPing(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, ``)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPing_ConnectionError(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, ``)
	srv.Close()

	c := newTestClient(t, srv.URL)
	if err := c.Ping(context.Background()); !errors.Is(err, domain.ErrEngineConnection) {
		t.Errorf("expected engine connection error, got %v", err)
	}
}
