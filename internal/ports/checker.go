package ports

import "github.com/baditaflorin/go_poll_forecast/internal/core/domain"

// SyntaxChecker decides whether poll data is well formed.
type SyntaxChecker interface {
	HasProperSyntax(pollData string) bool
}

// SeatTallier sums the seats projected for a single party.
type SeatTallier interface {
	SyntaxChecker
	TallySeats(pollData string, party rune, seatTally *int) domain.Status
	Totals(pollData string) (map[byte]int, error)
}
