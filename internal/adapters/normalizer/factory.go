package normalizer

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_poll_forecast/internal/ports"
)

// NormalizerFactory creates the appropriate normalizer by type
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType selects a normalizer implementation
type NormalizerType int

const (
	// DefaultNormalizerType maps ASCII letters with strings.Map
	DefaultNormalizerType NormalizerType = iota
	// FastNormalizerType uses a lookup table and pooled buffers
	FastNormalizerType
	// UnicodeNormalizerType uses golang.org/x/text/cases
	UnicodeNormalizerType
)

func (t NormalizerType) String() string {
	switch t {
	case FastNormalizerType:
		return "fast"
	case UnicodeNormalizerType:
		return "unicode"
	default:
		return "default"
	}
}

// ParseNormalizerType resolves a normalizer name as used in configuration.
func ParseNormalizerType(name string) (NormalizerType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultNormalizerType, nil
	case "fast":
		return FastNormalizerType, nil
	case "unicode":
		return UnicodeNormalizerType, nil
	default:
		return DefaultNormalizerType, fmt.Errorf("unknown normalizer %q", name)
	}
}

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case FastNormalizerType:
		return NewFastNormalizer()
	case UnicodeNormalizerType:
		return NewUnicodeNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
