package main

import (
	"fmt"
	"passportmrz/internal/config"
	"passportmrz/pkg/domain"
	"time"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// JWTCommand constructs the 'jwt' subcommand that issues an RS256 token
// authenticating a user against the verification API.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issues an API token for a user ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, _ := cmd.Flags().GetString("user")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			userID, err := tokenUser(user)
			if err != nil {
				return err
			}

			signed, err := signUserToken(cfg.JWT.PrivateKey, userID, ttl, time.Now())
			if err != nil {
				return err
			}

			if user == "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "issued token for new user %s\n", uuid.UUID(userID)) //nolint: errcheck
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed) //nolint: errcheck

			return nil
		},
	}

	cmd.Flags().String("user", "", "User ID (uuid) the token authenticates; a new one is generated when empty")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")

	return cmd
}

// tokenUser parses user as the token subject, or generates a new user ID when
// user is empty.
func tokenUser(user string) (domain.UserID, error) {
	if user == "" {
		return domain.UserID(uuid.New()), nil
	}

	id, err := uuid.Parse(user)
	if err != nil {
		return domain.UserID{}, errors.Wrapf(err, "user %q is not a uuid", user)
	}

	return domain.UserID(id), nil
}

func signUserToken(privateKeyPEM string, userID domain.UserID, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		return "", errors.Errorf("ttl must be positive, got %s", ttl)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", errors.Wrap(err, "could not parse RSA private key")
	}

	claims := jwt.RegisteredClaims{
		Subject:   uuid.UUID(userID).String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "could not sign JWT")
	}

	return signed, nil
}
