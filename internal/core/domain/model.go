package domain

// PartyResult is a projected seat count for one party within a state.
type PartyResult struct {
	Seats int
	Party byte
}

// StateForecast holds a state code and the party results that follow it.
type StateForecast struct {
	State   string
	Results []PartyResult
}

// Seats returns the seats this forecast projects for party.
func (f StateForecast) Seats(party byte) int {
	total := 0
	for _, r := range f.Results {
		if r.Party == party {
			total += r.Seats
		}
	}
	return total
}

// Totals sums the seats of every party across the given forecasts.
func Totals(forecasts []StateForecast) map[byte]int {
	totals := make(map[byte]int)
	for _, f := range forecasts {
		for _, r := range f.Results {
			totals[r.Party] += r.Seats
		}
	}
	return totals
}
