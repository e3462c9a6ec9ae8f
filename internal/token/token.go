// Package token signs and verifies session tokens.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"leadvault/internal/models"
	"leadvault/internal/shared"
)

const issuer = "leadvault"

// HS256 issues and parses HMAC-SHA256 signed session tokens carrying the
// public account projection.
type HS256 struct {
	secret []byte
	ttl    time.Duration
}

// NewHS256 returns a signer using the given secret and token lifetime.
func NewHS256(secret []byte, ttl time.Duration) *HS256 {
	return &HS256{secret: secret, ttl: ttl}
}

// Sign produces a signed token for the given session user.
func (h *HS256) Sign(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(h.ttl).Unix(),
		"iss":   issuer,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Parse verifies the token signature and expiry and returns the embedded
// session user. Any defect in the token yields shared.ErrInvalidToken.
func (h *HS256) Parse(raw string) (models.User, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !t.Valid {
		return models.User{}, shared.ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, shared.ErrInvalidToken
	}

	user := models.User{}
	if sub, ok := claims["sub"].(string); ok {
		user.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = models.Role(role)
	}
	if user.ID == "" || !user.Role.Valid() {
		return models.User{}, shared.ErrInvalidToken
	}
	return user, nil
}
