package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_poll_forecast/internal/ports"
)

// DefaultNormalizer upper-cases ASCII letters and leaves everything else alone.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize converts ASCII letters in text to upper case.
func (n *DefaultNormalizer) Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, text)
}
