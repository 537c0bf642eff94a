package sort

import (
	"errors"
	"testing"

	"github.com/imago-cloud/mediasearch/internal/domain"
)

func TestParseField_DefaultsToDate(t *testing.T) {
	f, err := ParseField("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != Date {
		t.Errorf("expected %q, got %q", Date, f)
	}
}

func TestParseField_Invalid(t *testing.T) {
	_, err := ParseField("relevance")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestFieldIndexField(t *testing.T) {
	tests := []struct {
		field    Field
		expected string
	}{
		{Date, "datum"},
		{Width, "breite"},
		{Height, "hoehe"},
	}

	for _, tc := range tests {
		if got := tc.field.IndexField(); got != tc.expected {
			t.Errorf("IndexField(%q) = %q, want %q", tc.field, got, tc.expected)
		}
	}
}

func TestParseOrder_DefaultsToDesc(t *testing.T) {
	o, err := ParseOrder("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o != Desc {
		t.Errorf("expected %q, got %q", Desc, o)
	}
}

func TestParseOrder_Invalid(t *testing.T) {
	_, err := ParseOrder("descending")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
