package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/pkg/utils"
)

func TestTokenMaker_RoundTrip(t *testing.T) {
	maker := utils.NewTokenMaker("test-secret", 30)

	token, err := maker.CreateToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestTokenMaker_Expired(t *testing.T) {
	maker := utils.NewTokenMaker("test-secret", -1)

	token, err := maker.CreateToken("alice@example.com")
	require.NoError(t, err)

	_, err = maker.ValidateToken(token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestTokenMaker_WrongSecret(t *testing.T) {
	maker := utils.NewTokenMaker("test-secret", 30)
	other := utils.NewTokenMaker("other-secret", 30)

	token, err := maker.CreateToken("alice@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestTokenMaker_Malformed(t *testing.T) {
	maker := utils.NewTokenMaker("test-secret", 30)

	_, err := maker.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}
