package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("secret")
	token, err := GenerateToken("user-1", TokenTypeAccess, secret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, TokenTypeAccess, claims.TokenType)
	require.NotEmpty(t, claims.ID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", TokenTypeAccess, []byte("secret"), time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(token, []byte("other"))
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := GenerateToken("user-1", TokenTypeAccess, []byte("secret"), -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(token, []byte("secret"))
	require.Error(t, err)
}

func TestParseTokenOfTypePinsType(t *testing.T) {
	secret := []byte("secret")
	refresh, err := GenerateToken("user-1", TokenTypeRefresh, secret, time.Hour)
	require.NoError(t, err)

	_, err = ParseTokenOfType(refresh, TokenTypeAccess, secret)
	require.Error(t, err)

	claims, err := ParseTokenOfType(refresh, TokenTypeRefresh, secret)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
}

func TestJTIUniquePerToken(t *testing.T) {
	secret := []byte("secret")
	first, err := GenerateToken("user-1", TokenTypeAccess, secret, time.Hour)
	require.NoError(t, err)
	second, err := GenerateToken("user-1", TokenTypeAccess, secret, time.Hour)
	require.NoError(t, err)

	c1, err := ParseToken(first, secret)
	require.NoError(t, err)
	c2, err := ParseToken(second, secret)
	require.NoError(t, err)
	require.NotEqual(t, c1.ID, c2.ID)
}
