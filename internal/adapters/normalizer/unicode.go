package normalizer

import (
	"github.com/baditaflorin/go_poll_forecast/internal/ports"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnicodeNormalizer applies full Unicode upper-casing. Letters outside
// ASCII still fail validation afterwards.
type UnicodeNormalizer struct {
	tag language.Tag
}

// NewUnicodeNormalizer creates a language-neutral Unicode normalizer.
func NewUnicodeNormalizer() ports.Normalizer {
	return &UnicodeNormalizer{tag: language.Und}
}

// Normalize upper-cases text. A Caser keeps state, so one is built per call.
func (n *UnicodeNormalizer) Normalize(text string) string {
	return cases.Upper(n.tag).String(text)
}
