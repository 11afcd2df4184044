package normalizer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allNormalizers() map[string]NormalizerType {
	return map[string]NormalizerType{
		"default": DefaultNormalizerType,
		"fast":    FastNormalizerType,
		"unicode": UnicodeNormalizerType,
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"ct", "CT"},
		{"CT", "CT"},
		{"ne3r00D", "NE3R00D"},
		{"CT5D,NY9r17d1I,vt", "CT5D,NY9R17D1I,VT"},
		{"ks4r, nv3d1r", "KS4R, NV3D1R"},
		{"%5$,.", "%5$,."},
	}

	factory := NewNormalizerFactory()
	for name, typ := range allNormalizers() {
		n := factory.CreateNormalizer(typ)
		for _, tc := range tests {
			t.Run(name+"/"+tc.input, func(t *testing.T) {
				assert.Equal(t, tc.expected, n.Normalize(tc.input))
			})
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"ct5d,ny9R17d1i", "NY9R17D1I,VT,NJ3D5R4D", "café 12d", ""}
	factory := NewNormalizerFactory()
	for name, typ := range allNormalizers() {
		n := factory.CreateNormalizer(typ)
		for _, in := range inputs {
			once := n.Normalize(in)
			assert.Equal(t, once, n.Normalize(once), "%s: %q", name, in)
		}
	}
}

func TestASCIINormalizersKeepNonASCII(t *testing.T) {
	for _, n := range []interface{ Normalize(string) string }{NewDefaultNormalizer(), NewFastNormalizer()} {
		assert.Equal(t, "CAFé", n.Normalize("café"))
		assert.Equal(t, "CT1ı", n.Normalize("ct1ı"))
	}
	assert.Equal(t, "CAFÉ", NewUnicodeNormalizer().Normalize("café"))
}

func TestFastNormalizerConcurrent(t *testing.T) {
	n := NewFastNormalizer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.Equal(t, "NY9R17D1I,VT", n.Normalize("ny9r17d1i,vt"))
			}
		}()
	}
	wg.Wait()
}

func TestParseNormalizerType(t *testing.T) {
	for name, typ := range allNormalizers() {
		got, err := ParseNormalizerType(name)
		require.NoError(t, err)
		assert.Equal(t, typ, got)
		assert.Equal(t, name, got.String())
	}

	got, err := ParseNormalizerType(" FAST ")
	require.NoError(t, err)
	assert.Equal(t, FastNormalizerType, got)

	_, err = ParseNormalizerType("turbo")
	assert.Error(t, err)
}
