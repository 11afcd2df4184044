package poll

import "fmt"

// MaxSeatDigits caps the length of a seat count.
const MaxSeatDigits = 2

// cursor is a read position over normalized poll data.
type cursor struct {
	text string
	pos  int
}

func (c cursor) remaining() int {
	return len(c.text) - c.pos
}

func (c cursor) done() bool {
	return c.pos >= len(c.text)
}

func (c cursor) peek() byte {
	return c.text[c.pos]
}

// describe renders the byte at offset for error messages.
func (c cursor) describe(offset int) string {
	if offset >= len(c.text) {
		return "end of input"
	}
	return fmt.Sprintf("%q", c.text[offset])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// digitRun returns how many consecutive digits start at pos.
func digitRun(text string, pos int) int {
	n := 0
	for pos+n < len(text) && isDigit(text[pos+n]) {
		n++
	}
	return n
}

// digitValue converts a run of at most two ASCII digits.
func digitValue(run string) int {
	v := 0
	for i := 0; i < len(run); i++ {
		v = v*10 + int(run[i]-'0')
	}
	return v
}
