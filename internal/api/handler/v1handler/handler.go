package v1handler

import (
	"context"
	"errors"
	"net/http"
	"secondchance/internal/linkcheck"
	"secondchance/pkg/logger"
	"secondchance/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps are the services the v1 handlers delegate to.
type Deps struct {
	Checker linkcheck.Checker
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers the v1 endpoints on r. Paths are relative to the /v1 prefix.
func (h Handler) Routes(r chi.Router) {
	r.Get("/links/check", h.CheckLink)
	r.Post("/links/update", h.UpdateLink)
}

// ErrorResponse is the status code and body sent for a failed request.
type ErrorResponse struct {
	StatusCode int
	Response   struct {
		Code    string
		Message string
	}
}

// NewError maps err to a response. Errors without a semantic kind, and
// internal errors, are logged and hidden behind a generic message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	res := &ErrorResponse{}

	kind := serrors.KindOf(err)
	msg := ""
	var sErr *serrors.Error
	if errors.As(err, &sErr) {
		msg = sErr.Message()
	}

	switch kind {
	case serrors.ErrBadRequest:
		res.StatusCode = http.StatusBadRequest
	case serrors.ErrNotFound:
		res.StatusCode = http.StatusNotFound
		if msg == "" {
			msg = "resource not found"
		}
	case serrors.ErrRateLimited:
		res.StatusCode = http.StatusTooManyRequests
	case serrors.ErrTimeout:
		res.StatusCode = http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		res.StatusCode = http.StatusServiceUnavailable
	default:
		logger.Error(ctx, "could not handle request", zap.Error(err))
		kind = serrors.ErrInternal
		res.StatusCode = http.StatusInternalServerError
		msg = "internal error"
	}
	if msg == "" {
		msg = http.StatusText(res.StatusCode)
	}

	res.Response.Code = kind.Error()
	res.Response.Message = msg

	return res
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, EncodeError(res.Response.Code, res.Response.Message))
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
