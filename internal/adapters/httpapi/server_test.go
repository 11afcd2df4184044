package httpapi

import (
	"encoding/json"
	"testing"

	pollforecast "github.com/baditaflorin/go_poll_forecast"
	"github.com/baditaflorin/go_poll_forecast/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	checker, err := pollforecast.New(pollforecast.WithPortsLogger(logger.NewNopLogger()))
	require.NoError(t, err)
	return NewHandler(logger.NewNopLogger(), checker)
}

func do(t *testing.T, h *Handler, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	h.HandleRequest(&ctx)
	return &ctx
}

func decode(t *testing.T, ctx *fasthttp.RequestCtx, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), v))
}

func TestHealth(t *testing.T) {
	ctx := do(t, newHandler(t), fasthttp.MethodGet, "/health", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var body map[string]interface{}
	decode(t, ctx, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestValidate(t *testing.T) {
	h := newHandler(t)

	ctx := do(t, h, fasthttp.MethodPost, "/validate", `{"poll_data":"CT5D,NY9R17D1I,VT,ne3r00D"}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var ok ValidateResponse
	decode(t, ctx, &ok)
	assert.True(t, ok.Valid)
	assert.Nil(t, ok.Offset)

	ctx = do(t, h, fasthttp.MethodPost, "/validate", `{"poll_data":"NYR12D"}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var bad ValidateResponse
	decode(t, ctx, &bad)
	assert.False(t, bad.Valid)
	require.NotNil(t, bad.Offset)
	assert.Equal(t, 2, *bad.Offset)
	assert.Equal(t, "seat count", bad.Expected)
}

func TestTally(t *testing.T) {
	h := newHandler(t)

	ctx := do(t, h, fasthttp.MethodPost, "/tally", `{"poll_data":"NY9R17D1I,VT,NJ3D5R4D","party":"d"}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var resp TallyResponse
	decode(t, ctx, &resp)
	assert.Equal(t, 24, resp.Seats)
	assert.Equal(t, "ok", resp.Status)

	tests := []struct {
		name   string
		body   string
		status string
	}{
		{"malformed", `{"poll_data":"hello","party":"d"}`, "malformed_input"},
		{"selector", `{"poll_data":"CT5D","party":"%"}`, "invalid_party_selector"},
		{"missing party", `{"poll_data":"CT5D"}`, "invalid_party_selector"},
		{"long party", `{"poll_data":"CT5D","party":"DR"}`, "invalid_party_selector"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := do(t, h, fasthttp.MethodPost, "/tally", tc.body)
			assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
			var errResp ErrorResponse
			decode(t, ctx, &errResp)
			assert.Equal(t, tc.status, errResp.Status)
		})
	}
}

func TestTotals(t *testing.T) {
	h := newHandler(t)

	ctx := do(t, h, fasthttp.MethodPost, "/totals", `{"poll_data":"NY9R17D1I,VT,NJ3D5R4D"}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var resp TotalsResponse
	decode(t, ctx, &resp)
	assert.Equal(t, map[string]int{"D": 24, "R": 14, "I": 1}, resp.Totals)

	ctx = do(t, h, fasthttp.MethodPost, "/totals", `{"poll_data":"NY9R17D1IVT"}`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestRequestErrors(t *testing.T) {
	h := newHandler(t)

	ctx := do(t, h, fasthttp.MethodGet, "/tally", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())

	ctx = do(t, h, fasthttp.MethodPost, "/validate", `{not json`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	ctx = do(t, h, fasthttp.MethodGet, "/missing", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestNewServer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Compress = true
	srv := NewServer(newHandler(t), cfg)
	assert.Equal(t, DefaultMaxRequestSize, srv.MaxRequestBodySize)
	assert.NotNil(t, srv.Handler)
}
