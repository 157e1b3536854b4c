package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bld/internal/models"
)

// ErrInvalidSession covers every way a session token can fail verification.
var ErrInvalidSession = errors.New("invalid session")

// Claims is the payload carried by a session token. The subject is the user id.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Sessions issues and verifies HS256 session tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessions builds a session manager. An empty secret is rejected.
func NewSessions(secret []byte, ttl time.Duration) (*Sessions, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret must not be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Sessions{secret: secret, ttl: ttl, now: time.Now}, nil
}

// RandomSecret returns a URL-safe random secret for processes started without one.
func RandomSecret() ([]byte, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	return []byte(base64.RawURLEncoding.EncodeToString(raw)), nil
}

// TTL reports how long issued tokens stay valid.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the user and returns it with its expiry.
func (s *Sessions) Issue(u models.User) (string, time.Time, error) {
	issued := s.now()
	expires := issued.Add(s.ttl)
	claims := Claims{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return token, expires, nil
}

// Verify parses a token and returns its claims when the signature and expiry hold.
func (s *Sessions) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidSession
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.Subject == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
