package secrets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "trustlink/pkg/domain-errors"
	"trustlink/pkg/platform/secrets"
)

func TestGenerateProducesDistinctSecrets(t *testing.T) {
	first, err := secrets.Generate()
	require.NoError(t, err)
	second, err := secrets.Generate()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestHashAndVerifyRoundTrip(t *testing.T) {
	hash, err := secrets.Hash("enrollment-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "enrollment-secret", hash)

	require.NoError(t, secrets.Verify("enrollment-secret", hash))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	hash, err := secrets.Hash("enrollment-secret")
	require.NoError(t, err)

	err = secrets.Verify("not-the-secret", hash)
	require.Error(t, err)
	assert.True(t, derrors.HasCode(err, derrors.CodeUnauthorized))
}

func TestHashRejectsEmptySecret(t *testing.T) {
	_, err := secrets.Hash("")
	require.Error(t, err)
	assert.True(t, derrors.HasCode(err, derrors.CodeBadRequest))
}
