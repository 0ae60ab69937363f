package utils

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caminohealth/camino-backend/internal/pkg/constants"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	signed, err := GenerateAuthToken(&AuthTokenWrapper{UserID: 7, Secret: "test-secret"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := ParseAuthToken(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, "test-secret", parsed.Secret)
	assert.NotZero(t, parsed.ExpiresAt)
}

func TestParseAuthTokenRejectsWrongKey(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "key-one")
	signed, err := GenerateAuthToken(&AuthTokenWrapper{UserID: 7})
	require.NoError(t, err)

	viper.Set(constants.ViperSecretKey, "key-two")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	_, err = ParseAuthToken(signed)
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestGenerateRefreshToken(t *testing.T) {
	token := GenerateRefreshToken()
	assert.Len(t, token, 64)
	assert.NotEqual(t, token, GenerateRefreshToken())
}
