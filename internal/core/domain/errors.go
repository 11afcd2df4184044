package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports poll data that does not match the grammar.
	ErrMalformedInput = errors.New("malformed poll data")
	// ErrInvalidPartySelector reports a party selector that is not a letter.
	ErrInvalidPartySelector = errors.New("party selector is not a letter")
)

// SyntaxError describes where parsing stopped. It wraps ErrMalformedInput.
type SyntaxError struct {
	Offset   int
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: expected %s, got %s", e.Offset, e.Expected, e.Got)
}

func (e *SyntaxError) Unwrap() error { return ErrMalformedInput }
