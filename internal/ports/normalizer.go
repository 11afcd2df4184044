package ports

// Normalizer defines the interface for case folding poll data before parsing.
type Normalizer interface {
	Normalize(text string) string
}
