package result

import (
	"errors"
	"testing"

	"github.com/imago-cloud/mediasearch/internal/domain"
)

func TestNewResponse_PaginationFlags(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		page, limit int
		hasNext     bool
		hasPrevious bool
	}{
		{"empty first page", 0, 1, 10, false, false},
		{"single page exactly full", 10, 1, 10, false, false},
		{"more pages ahead", 11, 1, 10, true, false},
		{"middle page", 100, 5, 10, true, true},
		{"last page", 100, 10, 10, false, true},
		{"page past the end", 10, 3, 10, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := NewResponse(tc.total, nil, tc.page, tc.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.HasNext() != tc.hasNext {
				t.Errorf("HasNext = %v, want %v", resp.HasNext(), tc.hasNext)
			}
			if resp.HasPrevious() != tc.hasPrevious {
				t.Errorf("HasPrevious = %v, want %v", resp.HasPrevious(), tc.hasPrevious)
			}
		})
	}
}

func TestNewResponse_TotalIndependentOfResultCount(t *testing.T) {
	// A page can hold fewer results than the engine-reported total
	// when hits were skipped during transformation.
	results := []Result{New("1", 1.0, "123", "", "", "", 0, 0, "stock", "")}
	resp, err := NewResponse(42, results, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TotalResults() != 42 {
		t.Errorf("expected total 42, got %d", resp.TotalResults())
	}
	if len(resp.Results()) != 1 {
		t.Errorf("expected 1 result, got %d", len(resp.Results()))
	}
	if !resp.HasNext() {
		t.Error("expected HasNext from engine total, not page length")
	}
}

func TestNewResponse_InvalidPagination(t *testing.T) {
	if _, err := NewResponse(0, nil, 0, 10); !errors.Is(err, domain.ErrInvariant) {
		t.Errorf("expected invariant error for page 0, got %v", err)
	}
	if _, err := NewResponse(0, nil, 1, 0); !errors.Is(err, domain.ErrInvariant) {
		t.Errorf("expected invariant error for limit 0, got %v", err)
	}
}

func TestReconstruct_KeepsPersistedFlags(t *testing.T) {
	resp := Reconstruct(100, nil, 5, 10, true, true)
	if !resp.HasNext() || !resp.HasPrevious() {
		t.Error("expected persisted flags to survive reconstruction")
	}
	if resp.Page() != 5 || resp.Limit() != 10 {
		t.Errorf("unexpected pagination: page=%d limit=%d", resp.Page(), resp.Limit())
	}
}
