package field

import (
	"fmt"

	"github.com/imago-cloud/mediasearch/internal/domain"
)

// Field is a searchable document attribute.
type Field string

// Searchable field constants.
const (
	Keyword      Field = "keyword"
	Photographer Field = "photographer"
)

// IsValid checks if the field is one of the supported values.
func (f Field) IsValid() bool {
	return f == Keyword || f == Photographer
}

// IndexField returns the name of the attribute as stored in the engine index.
func (f Field) IndexField() string {
	switch f {
	case Keyword:
		return "suchtext"
	case Photographer:
		return "fotografen"
	}
	return string(f)
}

// Parse converts a raw string into a Field, rejecting unknown values.
func Parse(s string) (Field, error) {
	f := Field(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: invalid field %q", domain.ErrValidation, s)
	}
	return f, nil
}
