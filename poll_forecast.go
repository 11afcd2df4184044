// poll_forecast.go
// Package pollforecast validates compact poll-data strings and tallies the
// seats they project per party. A poll-data string is a comma separated
// list of state forecasts:
//
//	CT5D,NY9R17D1I,VT,ne3r00D
//
// Each forecast is a two-letter state code followed by zero or more party
// results, where a party result is a one or two digit seat count followed by
// a party letter. Matching is case-insensitive.
package pollforecast

import (
	"unicode/utf8"

	"github.com/baditaflorin/go_poll_forecast/internal/adapters/logger"
	"github.com/baditaflorin/go_poll_forecast/internal/adapters/normalizer"
	"github.com/baditaflorin/go_poll_forecast/internal/core/domain"
	"github.com/baditaflorin/go_poll_forecast/internal/core/poll"
	"github.com/baditaflorin/go_poll_forecast/internal/ports"
	"github.com/baditaflorin/l"
)

// Re-exported domain types.
type (
	Status        = domain.Status
	StateForecast = domain.StateForecast
	PartyResult   = domain.PartyResult
	SyntaxError   = domain.SyntaxError
)

// Tally outcomes.
const (
	StatusOK                   = domain.StatusOK
	StatusMalformedInput       = domain.StatusMalformedInput
	StatusInvalidPartySelector = domain.StatusInvalidPartySelector
)

var (
	// ErrMalformedInput is returned for poll data that fails validation.
	ErrMalformedInput = domain.ErrMalformedInput
	// ErrInvalidPartySelector is returned for a party that is not a letter.
	ErrInvalidPartySelector = domain.ErrInvalidPartySelector
)

// Checker validates and tallies poll data. It is safe for concurrent use.
type Checker struct {
	logger     ports.Logger
	normalizer ports.Normalizer
}

// Option defines a functional option for configuring a Checker.
type Option func(*checkerConfig)

type checkerConfig struct {
	Logger     ports.Logger
	Normalizer ports.Normalizer
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *checkerConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithPortsLogger sets a logger that already satisfies ports.Logger.
func WithPortsLogger(log ports.Logger) Option {
	return func(cfg *checkerConfig) {
		cfg.Logger = log
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *checkerConfig) {
		cfg.Normalizer = n
	}
}

// WithFastNormalizer selects the table driven, pooled normalizer.
func WithFastNormalizer() Option {
	return WithNormalizerType(normalizer.FastNormalizerType)
}

// WithUnicodeNormalizer selects full Unicode upper-casing.
func WithUnicodeNormalizer() Option {
	return WithNormalizerType(normalizer.UnicodeNormalizerType)
}

// WithNormalizerType selects a normalizer by type.
func WithNormalizerType(t normalizer.NormalizerType) Option {
	return func(cfg *checkerConfig) {
		cfg.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(t)
	}
}

// New creates a Checker. If no logger is provided, a default logger is created.
func New(opts ...Option) (*Checker, error) {
	cfg := &checkerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = createDefaultLogger()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}

	return &Checker{
		logger:     cfg.Logger,
		normalizer: cfg.Normalizer,
	}, nil
}

// Close releases the checker's logger.
func (c *Checker) Close() error {
	return c.logger.Close()
}

// IsValidStateCode reports whether code, in any case, is one of the 50
// state codes.
func (c *Checker) IsValidStateCode(code string) bool {
	return poll.IsValidStateCode(c.normalizer.Normalize(code))
}

// HasProperSyntax reports whether pollData is well formed. It never fails.
func (c *Checker) HasProperSyntax(pollData string) bool {
	valid := poll.HasProperSyntax(c.normalizer.Normalize(pollData))
	c.logger.Debug("Checked poll data syntax", "poll_data", pollData, "valid", valid)
	return valid
}

// Parse returns the state forecasts in pollData or a *SyntaxError.
func (c *Checker) Parse(pollData string) ([]StateForecast, error) {
	forecasts, err := poll.Parse(c.normalizer.Normalize(pollData))
	if err != nil {
		c.logger.Warn("Rejected poll data", "poll_data", pollData, "error", err)
		return nil, err
	}
	return forecasts, nil
}

// TallySeats writes the seats projected for party into seatTally. On any
// status other than StatusOK seatTally is left untouched.
func (c *Checker) TallySeats(pollData string, party rune, seatTally *int) Status {
	seats, status := c.tally(pollData, party)
	if status == StatusOK && seatTally != nil {
		*seatTally = seats
	}
	return status
}

// Tally returns the seats projected for party, or ErrMalformedInput /
// ErrInvalidPartySelector.
func (c *Checker) Tally(pollData string, party rune) (int, error) {
	seats, status := c.tally(pollData, party)
	return seats, status.Err()
}

func (c *Checker) tally(pollData string, party rune) (int, Status) {
	normalized := c.normalizer.Normalize(pollData)
	if !poll.HasProperSyntax(normalized) {
		c.logger.Warn("Tally rejected malformed poll data", "poll_data", pollData)
		return 0, StatusMalformedInput
	}
	if !poll.IsPartyLetter(party) {
		c.logger.Warn("Tally rejected party selector", "party", string(party))
		return 0, StatusInvalidPartySelector
	}

	selector := c.normalizer.Normalize(string(party))
	if r, _ := utf8.DecodeRuneInString(selector); !poll.IsPartyLetter(r) {
		return 0, StatusInvalidPartySelector
	}
	seats := poll.TallySeats(normalized, selector[0])
	c.logger.Debug("Tallied seats", "party", selector, "seats", seats)
	return seats, StatusOK
}

// Totals sums the seats of every party in pollData.
func (c *Checker) Totals(pollData string) (map[byte]int, error) {
	forecasts, err := c.Parse(pollData)
	if err != nil {
		return nil, err
	}
	return domain.Totals(forecasts), nil
}

// defaultChecker backs the package-level helpers and logs nothing.
var defaultChecker = &Checker{
	logger:     logger.NewNopLogger(),
	normalizer: normalizer.NewFastNormalizer(),
}

// IsValidStateCode reports whether code, in any case, is a state code.
func IsValidStateCode(code string) bool {
	return defaultChecker.IsValidStateCode(code)
}

// HasProperSyntax reports whether pollData is well formed.
func HasProperSyntax(pollData string) bool {
	return defaultChecker.HasProperSyntax(pollData)
}

// TallySeats tallies the seats for party into seatTally.
func TallySeats(pollData string, party rune, seatTally *int) Status {
	return defaultChecker.TallySeats(pollData, party, seatTally)
}

// Parse returns the state forecasts in pollData.
func Parse(pollData string) ([]StateForecast, error) {
	return defaultChecker.Parse(pollData)
}

// Totals sums the seats of every party in pollData.
func Totals(pollData string) (map[byte]int, error) {
	return defaultChecker.Totals(pollData)
}
