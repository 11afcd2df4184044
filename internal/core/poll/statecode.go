package poll

// stateCodes is the fixed set of U.S. postal codes accepted as state codes.
var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
}

// stateCodeLen is the length of every state code.
const stateCodeLen = 2

// IsValidStateCode reports whether code is exactly one of the 50 uppercase
// state codes. Callers normalize case first.
func IsValidStateCode(code string) bool {
	if len(code) != stateCodeLen {
		return false
	}
	_, ok := stateCodes[code]
	return ok
}
