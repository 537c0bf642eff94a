package alignment

import (
	"fmt"

	"github.com/imago-cloud/mediasearch/internal/domain"
)

// Alignment is the derived image orientation, computed from width/height.
type Alignment string

// Alignment constants. The zero value means "no alignment filter".
const (
	None      Alignment = ""
	Landscape Alignment = "landscape"
	Portrait  Alignment = "portrait"
	Square    Alignment = "square"
)

// IsValid checks if the alignment is one of the supported values.
func (a Alignment) IsValid() bool {
	return a == None || a == Landscape || a == Portrait || a == Square
}

// IsSet reports whether an alignment filter was requested.
func (a Alignment) IsSet() bool { return a != None }

// Parse converts a raw string into an Alignment, rejecting unknown values.
// Empty input means no filter.
func Parse(s string) (Alignment, error) {
	a := Alignment(s)
	if !a.IsValid() {
		return None, fmt.Errorf("%w: invalid alignment %q", domain.ErrValidation, s)
	}
	return a, nil
}
