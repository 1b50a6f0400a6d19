package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
	if claims.Issuer != "langmatch-server" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}

	lifetime := time.Until(claims.ExpiresAt.Time)
	if lifetime < 6*24*time.Hour || lifetime > 8*24*time.Hour {
		t.Errorf("token lifetime %v, want about 7 days", lifetime)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ValidateToken(tok); err == nil {
			t.Errorf("ValidateToken(%q) accepted", tok)
		}
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	claims := &JWTClaims{
		UserID: uuid.NewString(),
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateToken(signed); err == nil {
		t.Error("token signed with a different key accepted")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := &JWTClaims{
		UserID: uuid.NewString(),
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateToken(signed); err == nil {
		t.Error("expired token accepted")
	}
}
