// Package poll implements the poll-data grammar over text that has already
// been case-folded to uppercase.
//
//	pollData      := "" | stateForecast ("," stateForecast)* [","]
//	stateForecast := stateCode partyResult*
//	partyResult   := digit{1,2} letter
package poll

import "github.com/baditaflorin/go_poll_forecast/internal/core/domain"

type parser struct {
	cur       cursor
	collect   bool
	forecasts []domain.StateForecast
}

// Parse walks normalized poll data and returns its state forecasts. On
// failure the error is a *domain.SyntaxError.
func Parse(normalized string) ([]domain.StateForecast, error) {
	p := &parser{cur: cursor{text: normalized}, collect: true}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.forecasts, nil
}

// HasProperSyntax reports whether normalized poll data matches the grammar.
func HasProperSyntax(normalized string) bool {
	p := &parser{cur: cursor{text: normalized}}
	return p.parse() == nil
}

func (p *parser) parse() error {
	if p.cur.done() {
		return nil
	}
	for {
		if err := p.stateForecast(); err != nil {
			return err
		}
		if p.cur.done() {
			return nil
		}
		// stateForecast only stops early on a comma.
		p.cur.pos++
		if p.cur.done() {
			return nil
		}
	}
}

func (p *parser) stateForecast() error {
	code, err := p.stateCode()
	if err != nil {
		return err
	}
	forecast := domain.StateForecast{State: code}
	for !p.cur.done() && p.cur.peek() != ',' {
		result, err := p.partyResult()
		if err != nil {
			return err
		}
		if p.collect {
			forecast.Results = append(forecast.Results, result)
		}
	}
	if p.collect {
		p.forecasts = append(p.forecasts, forecast)
	}
	return nil
}

func (p *parser) stateCode() (string, error) {
	if p.cur.remaining() < stateCodeLen {
		return "", p.errorAt(p.cur.pos, "state code", "\""+p.cur.text[p.cur.pos:]+"\"")
	}
	code := p.cur.text[p.cur.pos : p.cur.pos+stateCodeLen]
	if !IsValidStateCode(code) {
		return "", p.errorAt(p.cur.pos, "state code", "\""+code+"\"")
	}
	p.cur.pos += stateCodeLen
	return code, nil
}

func (p *parser) partyResult() (domain.PartyResult, error) {
	start := p.cur.pos
	n := digitRun(p.cur.text, start)
	switch {
	case n == 0:
		return domain.PartyResult{}, p.errorAt(start, "seat count", p.cur.describe(start))
	case n > MaxSeatDigits:
		return domain.PartyResult{}, p.errorAt(start+MaxSeatDigits, "party letter", p.cur.describe(start+MaxSeatDigits))
	}
	letter := start + n
	if letter >= len(p.cur.text) || !isUpper(p.cur.text[letter]) {
		return domain.PartyResult{}, p.errorAt(letter, "party letter", p.cur.describe(letter))
	}
	p.cur.pos = letter + 1
	return domain.PartyResult{
		Seats: digitValue(p.cur.text[start:letter]),
		Party: p.cur.text[letter],
	}, nil
}

func (p *parser) errorAt(offset int, expected, got string) error {
	return &domain.SyntaxError{Offset: offset, Expected: expected, Got: got}
}
