package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, expiry, or a missing required claim. Callers map
// it to 401 without distinguishing the cause.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity bundle embedded in every access token. All four
// fields are mandatory; a structurally valid token that omits any one of
// them is rejected.
type Claims struct {
	UserID   int64
	Username string
	Email    string
	Role     string
}

// Issue signs a token carrying the claims plus an expiry of now+ttl.
func Issue(claims Claims, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{
		"id":       claims.UserID,
		"username": claims.Username,
		"email":    claims.Email,
		"role":     claims.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry, then extracts the identity claims.
func Verify(tokenStr, secret string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// Every identity claim must be present even when the signature checks out
	id, ok := mapClaims["id"].(float64)
	if !ok || id <= 0 {
		return nil, ErrInvalidToken
	}

	username, ok := mapClaims["username"].(string)
	if !ok || username == "" {
		return nil, ErrInvalidToken
	}

	email, ok := mapClaims["email"].(string)
	if !ok || email == "" {
		return nil, ErrInvalidToken
	}

	role, ok := mapClaims["role"].(string)
	if !ok || role == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:   int64(id),
		Username: username,
		Email:    email,
		Role:     role,
	}, nil
}
