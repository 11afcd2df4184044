// Package stream validates newline separated poll data read from an
// io.Reader, one poll-data string per line.
package stream

import (
	"bufio"
	"context"
	"errors"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_poll_forecast/internal/core/domain"
	"github.com/baditaflorin/go_poll_forecast/internal/core/poll"
	"github.com/baditaflorin/go_poll_forecast/internal/ports"
)

// Constants for line processing
const (
	// DefaultBatchSize defines how many lines a worker checks per job
	DefaultBatchSize = 100

	// ContextCheckFrequency defines how often to check for context cancellation
	ContextCheckFrequency = 500 // lines

	// MaxJobQueueSize limits the number of pending jobs
	MaxJobQueueSize = 32

	// MaxLineSize caps a single poll-data line
	MaxLineSize = 1024 * 1024
)

// ErrInvalidParty is returned by NewLineValidator for a non-letter party.
var ErrInvalidParty = errors.New("tally party must be a letter")

// Config controls how lines are checked.
type Config struct {
	// Party, when non-zero, is tallied on every valid line.
	Party rune
	// Workers > 1 checks batches concurrently; results keep input order.
	Workers int
	// BatchSize is the number of lines per worker job.
	BatchSize int
	// SkipBlank ignores empty lines instead of reporting them as valid.
	SkipBlank bool
}

// LineResult is the outcome for one input line.
type LineResult struct {
	Line     int
	PollData string
	Valid    bool
	Status   domain.Status
	Seats    int
}

// Summary aggregates a whole run.
type Summary struct {
	Lines          int
	Valid          int
	Invalid        int
	Seats          int
	BytesProcessed int64
	ProcessingTime time.Duration
}

func (s *Summary) add(r LineResult) {
	s.Lines++
	if r.Valid {
		s.Valid++
		s.Seats += r.Seats
	} else {
		s.Invalid++
	}
}

// LineValidator checks poll data line by line.
type LineValidator struct {
	logger  ports.Logger
	checker ports.SeatTallier
	config  Config
}

// NewLineValidator creates a line validator backed by checker.
func NewLineValidator(logger ports.Logger, checker ports.SeatTallier, config Config) (*LineValidator, error) {
	if config.Party != 0 && !poll.IsPartyLetter(config.Party) {
		return nil, ErrInvalidParty
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.Workers < 0 {
		config.Workers = runtime.NumCPU()
	}
	return &LineValidator{
		logger:  logger,
		checker: checker,
		config:  config,
	}, nil
}

// Process reads reader to the end and calls emit for each line in order.
func (v *LineValidator) Process(ctx context.Context, reader io.Reader, emit func(LineResult)) (Summary, error) {
	startTime := time.Now()
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var (
		summary Summary
		err     error
	)
	if v.config.Workers > 1 {
		summary, err = v.processParallel(ctx, scanner, emit)
	} else {
		summary, err = v.processSequential(ctx, scanner, emit)
	}
	summary.ProcessingTime = time.Since(startTime)

	v.logger.Info("Poll data lines processed",
		"lines", summary.Lines,
		"valid", summary.Valid,
		"invalid", summary.Invalid,
		"bytes", summary.BytesProcessed,
		"duration", summary.ProcessingTime,
	)
	return summary, err
}

func (v *LineValidator) processSequential(ctx context.Context, scanner *bufio.Scanner, emit func(LineResult)) (Summary, error) {
	var summary Summary
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%ContextCheckFrequency == 0 {
			select {
			case <-ctx.Done():
				v.logger.Warn("Processing cancelled by context", "error", ctx.Err())
				return summary, ctx.Err()
			default:
			}
		}

		// ScanLines strips "\r\n" as well as "\n".
		text := scanner.Text()
		summary.BytesProcessed += int64(len(text)) + 1
		if v.config.SkipBlank && text == "" {
			continue
		}
		result := v.check(lineNo, text)
		summary.add(result)
		emit(result)
	}
	return summary, scanner.Err()
}

type lineJob struct {
	id    int
	first int
	lines []string
}

type jobResult struct {
	id      int
	results []LineResult
}

type readOutcome struct {
	bytes int64
	err   error
}

func (v *LineValidator) processParallel(ctx context.Context, scanner *bufio.Scanner, emit func(LineResult)) (Summary, error) {
	jobs := make(chan lineJob, MaxJobQueueSize)
	results := make(chan jobResult, v.config.Workers)

	var wg sync.WaitGroup
	for i := 0; i < v.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- jobResult{id: job.id, results: v.checkBatch(job)}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	readDone := make(chan readOutcome, 1)
	go func() {
		defer close(jobs)
		bytes, err := v.readBatches(ctx, scanner, jobs)
		readDone <- readOutcome{bytes: bytes, err: err}
	}()

	// Workers finish out of order; hold batches until their turn.
	var summary Summary
	pending := make(map[int][]LineResult)
	next := 0
	for r := range results {
		pending[r.id] = r.results
		for {
			batch, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			for _, lr := range batch {
				summary.add(lr)
				emit(lr)
			}
			next++
		}
	}

	outcome := <-readDone
	summary.BytesProcessed = outcome.bytes
	return summary, outcome.err
}

func (v *LineValidator) readBatches(ctx context.Context, scanner *bufio.Scanner, jobs chan<- lineJob) (int64, error) {
	var bytes int64
	lineNo := 0
	job := lineJob{first: 1}

	send := func() error {
		select {
		case jobs <- job:
		case <-ctx.Done():
			v.logger.Warn("Processing cancelled by context", "error", ctx.Err())
			return ctx.Err()
		}
		job = lineJob{id: job.id + 1, first: lineNo + 1}
		return nil
	}

	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		bytes += int64(len(text)) + 1
		job.lines = append(job.lines, text)
		if len(job.lines) >= v.config.BatchSize {
			if err := send(); err != nil {
				return bytes, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return bytes, err
	}
	if len(job.lines) > 0 {
		if err := send(); err != nil {
			return bytes, err
		}
	}
	return bytes, nil
}

func (v *LineValidator) checkBatch(job lineJob) []LineResult {
	out := make([]LineResult, 0, len(job.lines))
	for i, text := range job.lines {
		if v.config.SkipBlank && text == "" {
			continue
		}
		out = append(out, v.check(job.first+i, text))
	}
	return out
}

func (v *LineValidator) check(lineNo int, text string) LineResult {
	result := LineResult{Line: lineNo, PollData: text}
	if v.config.Party == 0 {
		result.Valid = v.checker.HasProperSyntax(text)
		if !result.Valid {
			result.Status = domain.StatusMalformedInput
		}
		return result
	}

	result.Status = v.checker.TallySeats(text, v.config.Party, &result.Seats)
	result.Valid = result.Status == domain.StatusOK
	return result
}
