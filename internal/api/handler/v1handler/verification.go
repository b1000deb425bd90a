package v1handler

import (
	"net/http"
	"passportmrz/pkg/domain"
	"passportmrz/pkg/logger"
	"passportmrz/pkg/mrz"
	"passportmrz/pkg/serrors"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// VerificationRequest is the body of the validate and submit endpoints.
// Fields and Checker are derived from the MRZ when omitted.
type VerificationRequest struct {
	MRZ     string             `json:"mrz"               validate:"required,max=256"`
	Fields  *mrz.Fields        `json:"fields,omitempty"`
	Checker *mrz.CheckerReport `json:"checker,omitempty"`
}

func (req VerificationRequest) input() domain.VerificationInput {
	return domain.VerificationInput{
		MRZ:     req.MRZ,
		Fields:  req.Fields,
		Checker: req.Checker,
	}
}

// ListParams are the query parameters of the verification listing.
type ListParams struct {
	Status string `query:"status" validate:"omitempty,oneof=PENDING COMPLETED FAILED"`
	Cursor string `query:"cursor"`
	Limit  uint   `query:"limit"  validate:"omitempty,min=1,max=100"`
}

// EncodeVerification encodes a verification as returned by the API. The
// report is only present once the verification completed and the error only
// once it failed.
func EncodeVerification(e *jx.Encoder, v *domain.Verification) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(v.ID.String())
	e.FieldStart("status")
	e.Str(string(v.Status))
	e.FieldStart("mrz")
	e.Str(v.Input.MRZ)
	if v.Report != nil {
		e.FieldStart("report")
		v.Report.Encode(e)
		e.FieldStart("valid")
		e.Bool(v.Report.Valid())
	}
	if v.Status == domain.VerificationStatusFailed && v.LastError != "" {
		e.FieldStart("error")
		e.Str(v.LastError)
	}
	e.FieldStart("attempts")
	e.UInt(v.Attempts)
	e.FieldStart("createdAt")
	e.Str(v.CreatedAt.UTC().Format(time.RFC3339Nano))
	if !v.UpdatedAt.IsZero() {
		e.FieldStart("updatedAt")
		e.Str(v.UpdatedAt.UTC().Format(time.RFC3339Nano))
	}
	e.ObjEnd()
}

// ValidateMRZ returns the report for the posted MRZ without storing it.
func (h *Handler) ValidateMRZ(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerificationRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	report, err := h.deps.Verifier.Verify(ctx, req.input())
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, report.Encode)
}

// CreateVerification stores the posted MRZ for background verification.
func (h *Handler) CreateVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VerificationRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	v, err := h.deps.Verifier.Submit(ctx, GetUserIDFromContext(ctx), req.input())
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}
	logger.Debug(ctx, "verification submitted", zap.Stringer("verificationID", v.ID))

	w.Header().Set("Location", "/v1/verifications/"+v.ID.String())
	writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) { EncodeVerification(e, v) })
}

// ListVerifications returns a page of the caller's verifications, newest first.
func (h *Handler) ListVerifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	params := ListParams{
		Status: query.Get("status"),
		Cursor: query.Get("cursor"),
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "limit must be a positive number"))

			return
		}
		params.Limit = uint(limit)
	}
	if err := h.validate(params); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	verifications, next, err := h.deps.Verifier.UserVerifications(ctx,
		GetUserIDFromContext(ctx),
		domain.VerificationStatus(params.Status),
		params.Cursor,
		params.Limit)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("items")
		e.ArrStart()
		for i := range verifications {
			EncodeVerification(e, &verifications[i])
		}
		e.ArrEnd()
		e.FieldStart("nextCursor")
		if next == "" {
			e.Null()
		} else {
			e.Str(next)
		}
		e.ObjEnd()
	})
}

// GetVerification returns one of the caller's verifications.
func (h *Handler) GetVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := verificationID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	v, err := h.deps.Verifier.Result(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeVerification(e, v) })
}

// DeleteVerification removes one of the caller's verifications.
func (h *Handler) DeleteVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := verificationID(r)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	if err := h.deps.Verifier.Delete(ctx, GetUserIDFromContext(ctx), id); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func verificationID(r *http.Request) (domain.VerificationID, error) {
	id, err := domain.ParseVerificationID(chi.URLParam(r, "id"))
	if err != nil {
		return domain.VerificationID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid verification id")
	}

	return id, nil
}
