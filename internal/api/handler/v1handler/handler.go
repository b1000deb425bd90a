// Package v1handler implements the v1 HTTP API: synchronous MRZ validation
// and the authenticated verification history.
package v1handler

import (
	"net/http"
	"passportmrz/internal/verifier"
	"passportmrz/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Deps holds the services the v1 handlers call.
type Deps struct {
	Verifier verifier.Verifier
}

// Handler serves the v1 API.
type Handler struct {
	deps      Deps
	validator *validator.Validate
}

// New creates a Handler.
func New(deps Deps) *Handler {
	return &Handler{
		deps:      deps,
		validator: newValidator(),
	}
}

// Routes returns the v1 router. Verification history routes require a
// bearer token accepted by sec.
func (h *Handler) Routes(sec *SecHandler) chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(r.Context(), w, serrors.With(serrors.ErrNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "method %s is not allowed", r.Method))
	})

	r.Post("/mrz/validate", h.ValidateMRZ)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth(sec))

		r.Post("/verifications", h.CreateVerification)
		r.Get("/verifications", h.ListVerifications)
		r.Get("/verifications/{id}", h.GetVerification)
		r.Delete("/verifications/{id}", h.DeleteVerification)
	})

	return r
}

func (h *Handler) requireAuth(sec *SecHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := sec.HandleBearerAuth(r.Context(), r.Method+" "+r.URL.Path, BearerAuth{Token: bearerToken(r)})
			if err != nil {
				h.writeError(r.Context(), w, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
