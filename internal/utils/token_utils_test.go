package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripflow/tripflow_backend/internal/utils"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT(42, "test-secret", time.Hour, "tripflow-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "tripflow-test", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(42, "test-secret", time.Hour, "tripflow-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT(42, "test-secret", -time.Minute, "tripflow-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "test-secret")
	assert.Error(t, err)
}
