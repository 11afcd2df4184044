package poll

// IsPartyLetter reports whether r can select a party.
func IsPartyLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// TallySeats sums the seat counts written immediately before each
// occurrence of party in normalized, already validated poll data. State
// code letters never follow a digit, so they are skipped.
func TallySeats(normalized string, party byte) int {
	total := 0
	for i := 1; i < len(normalized); i++ {
		if normalized[i] != party || !isDigit(normalized[i-1]) {
			continue
		}
		start := i - 1
		if i >= 2 && isDigit(normalized[i-2]) {
			start = i - 2
		}
		total += digitValue(normalized[start:i])
	}
	return total
}
