package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"passportmrz/internal/api/handler/v1handler"
	"passportmrz/internal/config"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func rsaKeyPair(t *testing.T) (string, string) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return string(privPEM), string(pubPEM)
}

func runJWT(t *testing.T, privateKey string, args ...string) (string, error) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.PrivateKey = privateKey

	cmd := JWTCommand(cfg)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return strings.TrimSpace(out.String()), err
}

func authenticate(t *testing.T, publicKey, token string) (uuid.UUID, error) {
	t.Helper()
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: publicKey})
	require.NoError(t, err)

	ctx, err := sec.HandleBearerAuth(context.Background(), "", v1handler.BearerAuth{Token: token})

	return uuid.UUID(v1handler.GetUserIDFromContext(ctx)), err
}

func TestJWTCommand_UserToken(t *testing.T) {
	privPEM, pubPEM := rsaKeyPair(t)
	userID := uuid.New()

	token, err := runJWT(t, privPEM, "--user", userID.String())
	require.NoError(t, err)

	authenticated, err := authenticate(t, pubPEM, token)
	require.NoError(t, err)
	require.Equal(t, userID, authenticated)
}

func TestJWTCommand_GeneratesUser(t *testing.T) {
	privPEM, pubPEM := rsaKeyPair(t)

	token, err := runJWT(t, privPEM)
	require.NoError(t, err)

	authenticated, err := authenticate(t, pubPEM, token)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, authenticated)
}

func TestJWTCommand_RejectsNonUUIDUser(t *testing.T) {
	privPEM, _ := rsaKeyPair(t)

	token, err := runJWT(t, privPEM, "--user", "alice")
	require.ErrorContains(t, err, `user "alice" is not a uuid`)
	require.Empty(t, token)
}

func TestJWTCommand_Errors(t *testing.T) {
	privPEM, _ := rsaKeyPair(t)

	_, err := runJWT(t, "", "--user", uuid.NewString())
	require.ErrorContains(t, err, "could not parse RSA private key")

	_, err = runJWT(t, privPEM, "--ttl", "0s")
	require.ErrorContains(t, err, "ttl must be positive")
}
