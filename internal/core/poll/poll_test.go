package poll

import (
	"errors"
	"testing"

	"github.com/baditaflorin/go_poll_forecast/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidStateCode(t *testing.T) {
	for code := range stateCodes {
		assert.True(t, IsValidStateCode(code), code)
	}
	assert.Len(t, stateCodes, 50)

	invalid := []string{"", "C", "ZT", "AS", "ct", "CTX", "L.", ".A", "K.", "A.AK", ",C", "  "}
	for _, code := range invalid {
		assert.False(t, IsValidStateCode(code), "code %q", code)
	}
}

func TestHasProperSyntax(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"mixed forecasts", "CT5D,NY9R17D1I,VT,NE3R00D", true},
		{"unknown state", "ZT5D,NY9R17D1I,VT,NE3R00D", false},
		{"empty", "", true},
		{"bare state", "CT", true},
		{"not a state", "AS", false},
		{"one digit", "CT5D", true},
		{"two digits", "CT12D", true},
		{"three digits", "CT123D", false},
		{"multiple results", "NY9R17D1I", true},
		{"no number before party", "NYR12D", false},
		{"no number at all", "NYR", false},
		{"multiple forecasts", "NY9R17D1I,VT,NJ3D5R4D", true},
		{"missing comma", "NY9R17D1IVTNJ3D5R4D", false},
		{"space", "KS4R, NV3D1R", false},
		{"minor party", "KS4R,NV3D1G", true},
		{"dangling comma", "CT,", true},
		{"dangling comma after results", "CT5D,", true},
		{"bare state after comma", "CT5D,VT", true},
		{"double comma", "CT,,", false},
		{"results without state", "CT5D,5R", false},
		{"leading comma", ",CT", false},
		{"single letter", "C", false},
		{"digits without letter", "CT5", false},
		{"lowercase party", "CT5d", false},
		{"trailing space", "CT ", false},
		{"punctuation", "CT5D;NY", false},
		{"non ascii", "CT5É", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, HasProperSyntax(tc.input))
		})
	}
}

func TestParse(t *testing.T) {
	forecasts, err := Parse("NY9R17D1I,VT,NJ3D5R4D")
	require.NoError(t, err)
	require.Len(t, forecasts, 3)

	assert.Equal(t, "NY", forecasts[0].State)
	assert.Equal(t, []domain.PartyResult{{Seats: 9, Party: 'R'}, {Seats: 17, Party: 'D'}, {Seats: 1, Party: 'I'}}, forecasts[0].Results)
	assert.Equal(t, "VT", forecasts[1].State)
	assert.Empty(t, forecasts[1].Results)
	assert.Equal(t, 7, forecasts[2].Seats('D'))

	forecasts, err = Parse("")
	require.NoError(t, err)
	assert.Empty(t, forecasts)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		offset   int
		expected string
		got      string
	}{
		{"NYR12D", 2, "seat count", "'R'"},
		{"CT123D", 4, "party letter", "'3'"},
		{"CT5", 3, "party letter", "end of input"},
		{"ZT5D", 0, "state code", "\"ZT\""},
		{"CT,,", 3, "state code", "\",\""},
		{"KS4R, NV", 5, "state code", "\" N\""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedInput))

			var syntaxErr *domain.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tc.offset, syntaxErr.Offset)
			assert.Equal(t, tc.expected, syntaxErr.Expected)
			assert.Equal(t, tc.got, syntaxErr.Got)
		})
	}
}

func TestTallySeats(t *testing.T) {
	tests := []struct {
		input string
		party byte
		seats int
	}{
		{"CT5D,NY9R17D1I,VT,NE3R00D", 'D', 22},
		{"CT7D,NY4D9R17D1I,VT,NE3R00D", 'R', 12},
		{"CT7D,NY4D9R17D1I,VT,NE3R0D9M", 'D', 28},
		{"", 'D', 0},
		{"CT", 'D', 0},
		{"CT5D", 'D', 5},
		{"CT53D", 'D', 53},
		{"NY9R17D1I", 'D', 17},
		{"NY9R17D1I,VT,NJ3D5R4D", 'D', 24},
		{"NY9G8D", 'G', 9},
		{"NY9R17D", 'I', 0},
		{"NY9R", 'N', 0},
		{"NJ3D", 'J', 0},
	}

	for _, tc := range tests {
		t.Run(tc.input+"/"+string(tc.party), func(t *testing.T) {
			assert.Equal(t, tc.seats, TallySeats(tc.input, tc.party))
		})
	}
}

func TestTallyMatchesParsedTotals(t *testing.T) {
	input := "CT7D,NY4D9R17D1I,VT,NE3R0D9M,KS4R,NV3D1G"
	forecasts, err := Parse(input)
	require.NoError(t, err)

	for party, seats := range domain.Totals(forecasts) {
		assert.Equal(t, seats, TallySeats(input, party), "party %c", party)
	}
}

func TestIsPartyLetter(t *testing.T) {
	for _, r := range "dDrRiIgGzZaA" {
		assert.True(t, IsPartyLetter(r), string(r))
	}
	for _, r := range "%5 ,.éı" {
		assert.False(t, IsPartyLetter(r), string(r))
	}
}
