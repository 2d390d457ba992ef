package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what the client reads from its own access token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// InspectJWTToken reads the subject and expiry of tokenString without
// verifying its signature. The client never holds the signing key; the
// backend rejects forged tokens anyway.
//
// ExpiresAt is the zero time when the token carries no exp claim.
func InspectJWTToken(tokenString string) (TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("error occurred parsing token: %w", err)
	}

	var result TokenClaims
	result.Subject = claims.Subject
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}
