// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// IssueAccessToken membuat JWT access token dengan klaim standar aplikasi:
// sub = username, role, user_id, exp.
func IssueAccessToken(secret string, userID uuid.UUID, username, role string, expiry time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     username,
		"role":    role,
		"user_id": userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// TokenExpiry membaca klaim exp dari token tanpa validasi penuh,
// dipakai untuk menentukan TTL entri blacklist saat logout.
func TokenExpiry(secret, tokenString string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return time.Time{}, err
	}
	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errors.New("exp claim missing")
	}
	return time.Unix(int64(expFloat), 0), nil
}
