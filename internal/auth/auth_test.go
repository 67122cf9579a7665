package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustlink/pkg/domain"
	derrors "trustlink/pkg/domain-errors"
	"trustlink/pkg/requestcontext"
)

func TestContextAuthenticator(t *testing.T) {
	authn := NewContextAuthenticator()

	t.Run("unauthenticated context is rejected", func(t *testing.T) {
		err := authn.Authorize(context.Background(), "issuer-1")
		require.Error(t, err)
		assert.True(t, derrors.HasCode(err, derrors.CodeUnauthorized))
	})

	t.Run("caller mismatch is rejected", func(t *testing.T) {
		ctx := requestcontext.WithCaller(context.Background(), "someone-else")
		err := authn.Authorize(ctx, "issuer-1")
		require.Error(t, err)
		assert.True(t, derrors.HasCode(err, derrors.CodeUnauthorized))
	})

	t.Run("matching caller is authorized", func(t *testing.T) {
		ctx := requestcontext.WithCaller(context.Background(), "issuer-1")
		require.NoError(t, authn.Authorize(ctx, "issuer-1"))
	})
}

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test-signing-key", "trustlink")

	t.Run("round-trips the principal address", func(t *testing.T) {
		token, err := svc.GenerateToken("issuer-1", time.Hour)
		require.NoError(t, err)

		address, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, domain.Address("issuer-1"), address)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := svc.GenerateToken("issuer-1", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, derrors.HasCode(err, derrors.CodeUnauthorized))
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := NewTokenService("other-key", "trustlink")
		token, err := other.GenerateToken("issuer-1", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, derrors.HasCode(err, derrors.CodeUnauthorized))
	})
}
