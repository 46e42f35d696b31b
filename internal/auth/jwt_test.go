package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("ana@udalba.cl", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := GetEmailFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "ana@udalba.cl", email)
}

func TestGetEmailFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("ana@udalba.cl", []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = GetEmailFromToken(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestGetEmailFromToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("ana@udalba.cl", secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetEmailFromToken(token, secret)
	assert.Error(t, err)
}

func TestGetEmailFromToken_Garbage(t *testing.T) {
	_, err := GetEmailFromToken("not-a-token", []byte("secret"))
	assert.Error(t, err)
}
