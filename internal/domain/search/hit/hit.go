package hit

// Hit is one raw document match returned by the engine: its stored
// attributes plus engine metadata. The source map is treated as opaque
// until the result transformer picks the attributes it needs.
type Hit struct {
	id     string
	score  float64
	source map[string]any
}

// New creates a raw hit.
func New(id string, score float64, source map[string]any) Hit {
	return Hit{id: id, score: score, source: source}
}

// ID returns the engine document id.
func (h *Hit) ID() string { return h.id }

// Score returns the relevance score.
func (h *Hit) Score() float64 { return h.score }

// Source returns the stored document attributes.
func (h *Hit) Source() map[string]any { return h.source }

// StringAttr returns a string attribute from the source, with presence flag.
func (h *Hit) StringAttr(key string) (string, bool) {
	v, ok := h.source[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IntAttr returns a numeric attribute as int, with presence flag.
// JSON numbers decode as float64, so both representations are accepted.
func (h *Hit) IntAttr(key string) (int, bool) {
	switch v := h.source[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
