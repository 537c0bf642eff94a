package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/imago-cloud/mediasearch/internal/domain/search/request"
)

// keyPrefix namespaces response cache entries in the shared store.
const keyPrefix = "media_search:"

// Key derives the cache key for a validated request: a canonical
// serialization of every field in fixed order, digested to 128 bits.
// sha256 is stable across processes, unlike the seeded runtime hash,
// which the cache-correctness invariant requires.
func Key(req *request.Request) string {
	var b strings.Builder

	b.WriteString(req.Keyword())
	b.WriteByte('|')
	for i, f := range req.Fields() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(f))
	}
	b.WriteByte('|')
	b.WriteString(string(req.MatchType()))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(req.Limit()))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(req.Page()))
	b.WriteByte('|')
	b.WriteString(string(req.SortBy()))
	b.WriteByte('|')
	b.WriteString(string(req.OrderBy()))
	b.WriteByte('|')
	b.WriteString(req.DateFrom())
	b.WriteByte('|')
	b.WriteString(req.DateTo())
	b.WriteByte('|')
	writeIntBound(&b, req.HeightMin())
	b.WriteByte('|')
	writeIntBound(&b, req.HeightMax())
	b.WriteByte('|')
	writeIntBound(&b, req.WidthMin())
	b.WriteByte('|')
	writeIntBound(&b, req.WidthMax())
	b.WriteByte('|')
	b.WriteString(string(req.Alignment()))

	sum := sha256.Sum256([]byte(b.String()))
	return keyPrefix + hex.EncodeToString(sum[:16])
}

func writeIntBound(b *strings.Builder, p *int) {
	if p == nil {
		return
	}
	b.WriteString(strconv.Itoa(*p))
}
