package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"passportmrz/internal/config"
	"passportmrz/pkg/domain"
	"passportmrz/pkg/serrors"
	"strings"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey string

// UserIDKey is the context key under which the authenticated domain.UserID is stored.
const UserIDKey ctxKey = "UserID"

// BearerAuth carries the token of an Authorization: Bearer header.
type BearerAuth struct {
	Token string
}

// SecHandlerOptions configures SecHandler.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key that verifies RS256 tokens. When
	// empty every token is rejected.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates bearer tokens. The token subject must be the
// user's uuid.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse jwt public key")
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies t and returns ctx carrying the authenticated user ID.
func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName string,
	t BearerAuth) (context.Context, error) {
	if s.publicKey == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "authentication is not configured")
	}
	if t.Token == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired()); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// GetUserIDFromContext returns the user ID stored by HandleBearerAuth, or the
// zero ID.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
