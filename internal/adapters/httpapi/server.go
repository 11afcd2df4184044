// Package httpapi exposes poll-data validation and tallying over HTTP using
// fasthttp.
package httpapi

import (
	"encoding/json"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/baditaflorin/go_poll_forecast/internal/core/domain"
	"github.com/baditaflorin/go_poll_forecast/internal/ports"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 1024 * 1024 // 1MB
	DefaultConcurrency    = 0           // 0 means fasthttp's default
)

// Config holds server settings.
type Config struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int
	Concurrency    int
	// Compress enables brotli/gzip/deflate responses when the client accepts them.
	Compress bool
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
		MaxRequestSize: DefaultMaxRequestSize,
		Concurrency:    DefaultConcurrency,
	}
}

// Request is the body accepted by every POST route.
type Request struct {
	PollData string `json:"poll_data"`
	Party    string `json:"party,omitempty"`
}

// ValidateResponse reports the syntax check.
type ValidateResponse struct {
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
	Offset   *int   `json:"offset,omitempty"`
	Expected string `json:"expected,omitempty"`
}

// TallyResponse reports a seat tally.
type TallyResponse struct {
	Party  string `json:"party"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
}

// TotalsResponse reports seats per party.
type TotalsResponse struct {
	Totals map[string]int `json:"totals"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status,omitempty"`
}

// Parser is what the API needs from the poll-data checker.
type Parser interface {
	ports.SeatTallier
	Parse(pollData string) ([]domain.StateForecast, error)
}

// Handler routes poll-data requests.
type Handler struct {
	logger  ports.Logger
	checker Parser
}

// NewHandler creates a request handler.
func NewHandler(logger ports.Logger, checker Parser) *Handler {
	return &Handler{logger: logger, checker: checker}
}

// NewServer wraps the handler in a configured fasthttp.Server.
func NewServer(h *Handler, cfg Config) *fasthttp.Server {
	handler := h.HandleRequest
	if cfg.Compress {
		handler = fasthttp.CompressHandlerBrotliLevel(handler, fasthttp.CompressBrotliDefaultCompression, fasthttp.CompressDefaultCompression)
	}
	return &fasthttp.Server{
		Handler:               handler,
		Name:                  "PollForecastServer",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		Concurrency:           cfg.Concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}
}

// HandleRequest is the main fasthttp request handler
func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	ctx.Response.Header.Set("Content-Type", "application/json")

	switch string(ctx.Path()) {
	case "/health":
		h.handleHealth(ctx)
	case "/validate":
		h.handleValidate(ctx)
	case "/tally":
		h.handleTally(ctx)
	case "/totals":
		h.handleTotals(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		h.writeJSONError(ctx, "Not found", "")
	}

	h.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(startTime),
	)
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSON(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) handleValidate(ctx *fasthttp.RequestCtx) {
	req, ok := h.readRequest(ctx)
	if !ok {
		return
	}

	resp := ValidateResponse{Valid: true}
	if _, err := h.checker.Parse(req.PollData); err != nil {
		resp.Valid = false
		resp.Error = err.Error()
		var syntaxErr *domain.SyntaxError
		if errors.As(err, &syntaxErr) {
			offset := syntaxErr.Offset
			resp.Offset = &offset
			resp.Expected = syntaxErr.Expected
		}
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSON(ctx, resp)
}

func (h *Handler) handleTally(ctx *fasthttp.RequestCtx) {
	req, ok := h.readRequest(ctx)
	if !ok {
		return
	}

	if utf8.RuneCountInString(req.Party) != 1 {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "party must be a single character", domain.StatusInvalidPartySelector.String())
		return
	}
	party, _ := utf8.DecodeRuneInString(req.Party)

	var seats int
	status := h.checker.TallySeats(req.PollData, party, &seats)
	if status != domain.StatusOK {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, status.Err().Error(), status.String())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSON(ctx, TallyResponse{Party: req.Party, Seats: seats, Status: status.String()})
}

func (h *Handler) handleTotals(ctx *fasthttp.RequestCtx) {
	req, ok := h.readRequest(ctx)
	if !ok {
		return
	}

	totals, err := h.checker.Totals(req.PollData)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, err.Error(), domain.StatusMalformedInput.String())
		return
	}

	resp := TotalsResponse{Totals: make(map[string]int, len(totals))}
	for party, seats := range totals {
		resp.Totals[string(rune(party))] = seats
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSON(ctx, resp)
}

// readRequest enforces POST and decodes the JSON body.
func (h *Handler) readRequest(ctx *fasthttp.RequestCtx) (Request, bool) {
	var req Request
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		h.writeJSONError(ctx, "Method not allowed", "")
		return req, false
	}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "Invalid request: "+err.Error(), "")
		return req, false
	}
	return req, true
}

// writeJSON writes a JSON response to the context
func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(body)
}

// writeJSONError writes a JSON error response to the context
func (h *Handler) writeJSONError(ctx *fasthttp.RequestCtx, message, status string) {
	h.writeJSON(ctx, ErrorResponse{Error: message, Status: status})
}
