package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"leasingcrm/internal/config"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc := NewAuthService(config.AuthConfig{
		Enabled:           true,
		JWTSecret:         "test-secret",
		TokenTTLMinutes:   60,
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: string(hash),
	})
	svc.Now = fixedNow
	return svc
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login("Admin@Example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.ExpiresIn != 3600 {
		t.Fatalf("ExpiresIn = %d, want 3600", resp.ExpiresIn)
	}

	parsed, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(fixedNow))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	if claims.Subject != "admin@example.com" {
		t.Fatalf("subject = %s", claims.Subject)
	}
}

func TestAuthServiceLoginRejections(t *testing.T) {
	svc := newTestAuthService(t)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@example.com", "nope"},
		{"wrong email", "other@example.com", "s3cret"},
		{"empty email", "", "s3cret"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(tc.email, tc.password); err != ErrInvalidCredentials {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
