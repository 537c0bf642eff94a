package sort

import (
	"fmt"

	"github.com/imago-cloud/mediasearch/internal/domain"
)

// Field is the attribute results are ordered by.
type Field string

// Sortable field constants.
const (
	Date   Field = "date"
	Width  Field = "width"
	Height Field = "height"
)

// IsValid checks if the sort field is one of the supported values.
func (f Field) IsValid() bool {
	return f == Date || f == Width || f == Height
}

// IndexField returns the name of the attribute as stored in the engine index.
func (f Field) IndexField() string {
	switch f {
	case Date:
		return "datum"
	case Width:
		return "breite"
	case Height:
		return "hoehe"
	}
	return string(f)
}

// ParseField converts a raw string into a Field. Empty input yields the default (Date).
func ParseField(s string) (Field, error) {
	if s == "" {
		return Date, nil
	}
	f := Field(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: invalid sort field %q", domain.ErrValidation, s)
	}
	return f, nil
}

// Order is the sort direction.
type Order string

// Sort order constants.
const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// IsValid checks if the order is one of the supported values.
func (o Order) IsValid() bool {
	return o == Asc || o == Desc
}

// ParseOrder converts a raw string into an Order. Empty input yields the default (Desc).
func ParseOrder(s string) (Order, error) {
	if s == "" {
		return Desc, nil
	}
	o := Order(s)
	if !o.IsValid() {
		return "", fmt.Errorf("%w: invalid sort order %q", domain.ErrValidation, s)
	}
	return o, nil
}
