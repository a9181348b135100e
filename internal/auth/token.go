package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// UserTokenTTL is how long a user session token stays valid.
const UserTokenTTL = 30 * 24 * time.Hour

// Claims is the identity payload embedded in a session token
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies session tokens with a process-wide secret.
// Rotating the secret invalidates every outstanding token.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens creates a token service with the default user TTL
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: UserTokenTTL}
}

// Create issues a signed token carrying the user's identity claims
func (t *Tokens) Create(userID int64, email, name string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks a token's signature and expiry and returns its claims.
// Any failure, structural, signature or expiry, returns nil; callers
// must treat nil uniformly as "not authenticated" and never surface
// which check failed.
func (t *Tokens) Verify(tokenString string) *Claims {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return t.secret, nil
		},
	)
	if err != nil {
		return nil
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil
	}

	return claims
}
