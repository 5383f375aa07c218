package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"risk-engine/internal/engine"
	"risk-engine/internal/model"
	"risk-engine/internal/riskprofile"
)

const tiersPath = "/api/risk/tiers"

// Handler serves the risk engine over HTTP.
type Handler struct {
	engine        *engine.Engine
	log           zerolog.Logger
	allowedOrigin string
}

func New(eng *engine.Engine, log zerolog.Logger, allowedOrigin string) *Handler {
	return &Handler{
		engine:        eng,
		log:           log.With().Str("component", "handler").Logger(),
		allowedOrigin: allowedOrigin,
	}
}

// Handle is the fasthttp.RequestHandler for every route.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	if h.allowedOrigin != "" {
		ctx.Response.Header.Set("Access-Control-Allow-Origin", h.allowedOrigin)
		ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type")
		ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	}

	h.route(ctx)

	status := ctx.Response.StatusCode()
	evt := h.log.Debug()
	if status >= fasthttp.StatusBadRequest {
		evt = h.log.Warn()
	}
	evt.Str("method", string(ctx.Method())).
		Str("path", string(ctx.Path())).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("request")
}

func (h *Handler) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	if method == fasthttp.MethodOptions {
		ctx.SetStatusCode(fasthttp.StatusNoContent)
		return
	}

	switch {
	case path == "/healthz":
		if !requireMethod(ctx, fasthttp.MethodGet) {
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case path == tiersPath:
		if !requireMethod(ctx, fasthttp.MethodGet) {
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, riskprofile.Tiers())
	case strings.HasPrefix(path, tiersPath+"/"):
		if !requireMethod(ctx, fasthttp.MethodGet) {
			return
		}
		h.describeTier(ctx, strings.TrimPrefix(path, tiersPath+"/"))
	case path == "/api/risk/evaluate":
		if !requireMethod(ctx, fasthttp.MethodPost) {
			return
		}
		h.evaluate(ctx)
	case path == "/api/risk/assessments":
		if !requireMethod(ctx, fasthttp.MethodPost) {
			return
		}
		h.assess(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) describeTier(ctx *fasthttp.RequestCtx, raw string) {
	idx, err := strconv.Atoi(raw)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Tier index must be an integer")
		return
	}
	profile, err := riskprofile.DescribeTier(idx)
	if errors.Is(err, riskprofile.ErrOutOfRange) {
		writeError(ctx, fasthttp.StatusNotFound, "OUT_OF_RANGE: "+err.Error())
		return
	}
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, profile)
}

func (h *Handler) evaluate(ctx *fasthttp.RequestCtx) {
	var req model.EvaluateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, h.engine.Evaluate(req))
}

func (h *Handler) assess(ctx *fasthttp.RequestCtx) {
	var req model.AssessmentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.AssessmentInstructions.Events) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one event is required")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, h.engine.Process(&req))
}

func requireMethod(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
