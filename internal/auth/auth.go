package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is a claim resolved from the identity provider's token. The single
// operator today holds RoleAdmin; everything else signs in as RoleCustomer.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

var ErrInvalidToken = errors.New("invalid token")

// User is the authenticated identity attached to a request.
type User struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

type claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// ParseToken validates an HS256 bearer token and extracts the user.
func ParseToken(tokenStr, secret string) (*User, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	role := Role(c.Role)
	if role != RoleAdmin {
		role = RoleCustomer
	}

	return &User{
		ID:    c.Subject,
		Email: c.Email,
		Name:  c.Name,
		Role:  role,
	}, nil
}

// NewToken issues a token for a user. Used by tests and local tooling; in
// production tokens come from the identity provider.
func NewToken(user User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}
