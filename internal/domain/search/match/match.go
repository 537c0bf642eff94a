package match

import (
	"fmt"

	"github.com/imago-cloud/mediasearch/internal/domain"
)

// Type is the multi-field match strategy.
type Type string

// Match type constants.
const (
	// Words scores each field independently and takes the best one.
	Words Type = "words"
	// Most sums scores across all matching fields.
	Most         Type = "most"
	Cross        Type = "cross"
	Phrase       Type = "phrase"
	PhrasePrefix Type = "phrase_prefix"
)

// IsValid checks if the match type is one of the supported values.
func (t Type) IsValid() bool {
	switch t {
	case Words, Most, Cross, Phrase, PhrasePrefix:
		return true
	}
	return false
}

// EngineType returns the engine's multi_match type for this strategy.
func (t Type) EngineType() string {
	switch t {
	case Words:
		return "best_fields"
	case Most:
		return "most_fields"
	case Cross:
		return "cross_fields"
	case Phrase:
		return "phrase"
	case PhrasePrefix:
		return "phrase_prefix"
	}
	return "best_fields"
}

// Parse converts a raw string into a Type. Empty input yields the default (Words).
func Parse(s string) (Type, error) {
	if s == "" {
		return Words, nil
	}
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: invalid match type %q", domain.ErrValidation, s)
	}
	return t, nil
}
