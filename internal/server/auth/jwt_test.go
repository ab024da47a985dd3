package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/avoronov/usersvc/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken("user-123", []string{"USER"}, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if claims.UserID != "user-123" || claims.Subject != "user-123" {
		t.Fatalf("subject mismatch: %+v", claims)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "USER" {
		t.Fatalf("roles mismatch: %+v", claims.Roles)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken("u1", nil, secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = VerifyToken(tok, secret)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", nil, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = VerifyToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken("not-a-jwt", []byte("secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_RejectsWrongAlg(t *testing.T) {
	t.Parallel()

	// A token signed with "none" must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u3"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = VerifyToken(signed, []byte("secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
