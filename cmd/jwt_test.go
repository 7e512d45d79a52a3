package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"portal/internal/api/handler/v1handler"
	"portal/pkg/domain"
	"portal/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func rsaKeyPair(t *testing.T) (string, string) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})),
		string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub}))
}

func TestSignToken_acceptedByAPI(t *testing.T) {
	privPEM, pubPEM := rsaKeyPair(t)
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err)

	subject := domain.UserID(uuid.New())
	token, err := signToken(privPEM, subject, time.Hour, time.Now())
	require.NoError(t, err)

	ctx, err := sec.HandleBearerAuth(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, subject, v1handler.GetUserIDFromContext(ctx))
}

func TestSignToken_expired(t *testing.T) {
	privPEM, pubPEM := rsaKeyPair(t)
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err)

	token, err := signToken(privPEM, domain.UserID(uuid.New()), time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = sec.HandleBearerAuth(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestSignToken_invalidKey(t *testing.T) {
	_, err := signToken("not a key", domain.UserID(uuid.New()), time.Hour, time.Now())
	require.Error(t, err)
}
