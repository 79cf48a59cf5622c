package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueAccessToken(t *testing.T) {
	userID := uuid.New()

	tokenString, err := IssueAccessToken(testSecret, userID, "staff1", "staff", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "staff1", claims["sub"])
	assert.Equal(t, "staff", claims["role"])
	assert.Equal(t, userID.String(), claims["user_id"])
}

func TestIssueAccessToken_EmptySecret(t *testing.T) {
	_, err := IssueAccessToken("", uuid.New(), "staff1", "staff", time.Hour)
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	tokenString, err := IssueAccessToken(testSecret, uuid.New(), "staff1", "staff", time.Hour)
	require.NoError(t, err)

	expiry, err := TokenExpiry(testSecret, tokenString)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)
}

func TestTokenExpiry_ExpiredTokenStillReadable(t *testing.T) {
	// token kadaluarsa tetap harus bisa dibaca exp-nya (untuk TTL blacklist)
	tokenString, err := IssueAccessToken(testSecret, uuid.New(), "staff1", "staff", -time.Hour)
	require.NoError(t, err)

	expiry, err := TokenExpiry(testSecret, tokenString)
	require.NoError(t, err)
	assert.True(t, expiry.Before(time.Now()))
}

func TestTokenExpiry_Garbage(t *testing.T) {
	_, err := TokenExpiry(testSecret, "bukan.token.jwt")
	assert.Error(t, err)
}
