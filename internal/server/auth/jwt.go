// Package auth parses the identity tokens issued by the external identity
// provider. Tokens are HS256 JWTs carrying the caller's principal.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/recmarket/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the standard registered claims plus the caller principal.
type Claims struct {
	jwt.RegisteredClaims
	Principal string `json:"principal"`
}

// GenerateToken signs an identity token for principal. The server only ever
// verifies tokens; this is used by development tooling and tests.
func GenerateToken(principal string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Principal: principal,
	})

	return token.SignedString(secretKey)
}

// PrincipalFromToken validates tokenString and returns its principal.
// Tokens with an empty principal are rejected.
func PrincipalFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || strings.TrimSpace(claims.Principal) == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Principal, nil
}
