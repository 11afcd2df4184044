package normalizer

import (
	"github.com/baditaflorin/go_poll_forecast/internal/ports"
	"github.com/valyala/bytebufferpool"
)

// FastNormalizer folds case through a precomputed ASCII table and pooled
// buffers. Input that is already upper case is returned as is.
type FastNormalizer struct {
	// Upper-case form of each ASCII byte
	upper [128]byte
}

// NewFastNormalizer creates a new fast normalizer with a precomputed table
func NewFastNormalizer() ports.Normalizer {
	n := &FastNormalizer{}
	for i := 0; i < 128; i++ {
		b := byte(i)
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		n.upper[i] = b
	}
	return n
}

// Normalize upper-cases ASCII letters. Bytes of multi-byte UTF-8 sequences
// are >= 128 and pass through untouched.
func (n *FastNormalizer) Normalize(text string) string {
	first := -1
	for i := 0; i < len(text); i++ {
		if c := text[i]; c < 128 && n.upper[c] != c {
			first = i
			break
		}
	}
	if first < 0 {
		return text
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = append(buf.B[:0], text[:first]...)
	for i := first; i < len(text); i++ {
		c := text[i]
		if c < 128 {
			c = n.upper[c]
		}
		buf.B = append(buf.B, c)
	}
	return buf.String()
}
