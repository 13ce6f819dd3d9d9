package security

import (
	"testing"

	"codecade/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.Load()
	InitJWT()

	tokenString, err := GenerateToken("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(t.Context())
	require.NoError(t, err)
	userID, err := GetUserIDFromClaims(jwt.MapClaims(claims))
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestGetUserIDFromClaimsMissing(t *testing.T) {
	_, err := GetUserIDFromClaims(jwt.MapClaims{})
	assert.Error(t, err)

	_, err = GetUserIDFromClaims(jwt.MapClaims{"user_id": 7})
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
	assert.False(t, CheckPasswordHash("correct horse battery", "not-a-hash"))
}
