package v1handler

import (
	"context"
	"net/http"
	"passportmrz/pkg/logger"
	"passportmrz/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Error is the body of every error response.
type Error struct {
	Code    string
	Message string
}

// Encode encodes Error as {"code": ..., "message": ...}.
func (e Error) Encode(enc *jx.Encoder) {
	enc.ObjStart()
	enc.FieldStart("code")
	enc.Str(e.Code)
	enc.FieldStart("message")
	enc.Str(e.Message)
	enc.ObjEnd()
}

// ErrorStatusCode pairs an error body with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

type errorClass struct {
	kind    serrors.Kind
	status  int
	message string
}

var errorClasses = []errorClass{ //nolint: gochecknoglobals
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
}

// NewError maps err to an error response. Errors without a known kind become
// internal errors and their details are only logged.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	for _, class := range errorClasses {
		if kind == class.kind {
			logger.Debug(ctx, "request failed", zap.Error(err))

			return &ErrorStatusCode{
				StatusCode: class.status,
				Response: Error{
					Code:    class.kind.Error(),
					Message: serrors.MessageOf(err, class.message),
				},
			}
		}
	}

	logger.Error(ctx, err.Error())

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response: Error{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		},
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := h.NewError(ctx, err)
	writeJSON(w, res.StatusCode, res.Response.Encode)
}

func writeJSON(w http.ResponseWriter, status int, encode func(*jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
