package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"leasingcrm/internal/config"
	"leasingcrm/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService checks the single operator account from the config file
// and mints bearer tokens for it.
type AuthService struct {
	cfg config.AuthConfig
	Now func() time.Time
}

func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{cfg: cfg, Now: time.Now}
}

func (s *AuthService) Login(email, password string) (*models.LoginResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || email != strings.ToLower(s.cfg.AdminEmail) {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.TokenTTLMinutes) * time.Minute
	now := s.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, ExpiresIn: int(ttl.Seconds())}, nil
}
