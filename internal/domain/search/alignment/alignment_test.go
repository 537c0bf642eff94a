package alignment

import (
	"errors"
	"testing"

	"github.com/imago-cloud/mediasearch/internal/domain"
)

func TestParse_EmptyMeansNoFilter(t *testing.T) {
	a, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.IsSet() {
		t.Error("expected empty alignment to be unset")
	}
}

func TestParse_Valid(t *testing.T) {
	for _, input := range []string{"landscape", "portrait", "square"} {
		t.Run(input, func(t *testing.T) {
			a, err := Parse(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !a.IsSet() {
				t.Error("expected alignment to be set")
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("diagonal")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
