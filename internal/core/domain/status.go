package domain

// Status is the outcome of a seat tally.
type Status int

const (
	// StatusOK means the tally was written.
	StatusOK Status = iota
	// StatusMalformedInput means the poll data failed validation.
	StatusMalformedInput
	// StatusInvalidPartySelector means the party argument was not a letter.
	StatusInvalidPartySelector
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMalformedInput:
		return "malformed_input"
	case StatusInvalidPartySelector:
		return "invalid_party_selector"
	default:
		return "unknown"
	}
}

// Err maps the status to its sentinel error, or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusInvalidPartySelector:
		return ErrInvalidPartySelector
	default:
		return ErrMalformedInput
	}
}
