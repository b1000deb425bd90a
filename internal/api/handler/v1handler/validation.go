package v1handler

import (
	"encoding/json"
	"net/http"
	"passportmrz/pkg/serrors"
	"reflect"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return f.Name
	})

	return v
}

// validate checks req against its validate tags and reports the first
// violation as a bad request.
func (h *Handler) validate(req any) error {
	if err := h.validator.Struct(req); err != nil {
		return serrors.With(serrors.ErrBadRequest, "%s", validationMessage(err))
	}

	return nil
}

func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid request"
	}

	fe := validationErrs[0]
	field := fe.Field()
	switch fe.ActualTag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param()
	case "min":
		return field + " must be at least " + fe.Param()
	case "oneof":
		return field + " must be one of [" + fe.Param() + "]"
	default:
		return field + " is invalid"
	}
}

// decodeJSON decodes the request body into dst and validates it.
func (h *Handler) decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "request body is too large")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return h.validate(dst)
}
