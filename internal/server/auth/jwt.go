// Package auth mints and verifies the HS256 bearer tokens that guard the
// RPC surface. Token issuance to end users is not this service's job; the
// functions here exist for the transport guard and for bootstrap tooling
// that has to satisfy it.
package auth

import (
	"errors"
	"time"

	"github.com/avoronov/usersvc/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the caller identity and roles.
type Claims struct {
	jwt.RegisteredClaims
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles,omitempty"`
}

// GenerateToken signs a token for the given subject, valid for
// validityDuration from now.
func GenerateToken(userID string, roles []string, secretKey []byte, validityDuration time.Duration) (string, error) {
	jti, err := common.MakeRandHexString(16)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Roles:  roles,
	})

	return token.SignedString(secretKey)
}

// VerifyToken parses and validates a token string and returns its claims.
// Expired, malformed and badly signed tokens all yield ErrInvalidToken.
func VerifyToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
