package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the stateless bearer tokens that stand
// in for server-side sessions. Rotating the secret invalidates every
// outstanding token.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

type tokenClaims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying the user id, valid for the configured TTL.
func (t *TokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.Secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the embedded user id.
func (t *TokenService) Parse(tokenString string) (uint, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.Secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
