// Package auth resolves the optional viewer identity from an inbound
// bearer credential.
package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plateful/recipe-search/internal/domain"
	"github.com/plateful/recipe-search/internal/domain/viewer"
)

const bearerPrefix = "Bearer "

// Resolver verifies HS256 bearer tokens and extracts the viewer identity.
type Resolver struct {
	secret []byte
	parser *jwt.Parser
}

// NewResolver creates a resolver with the shared signing secret.
func NewResolver(secret string) *Resolver {
	return &Resolver{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"HS256"})),
	}
}

// Resolve extracts the viewer identity from an Authorization header.
// An absent header yields an anonymous context and no error: many views
// permit anonymous access. A presented but unverifiable credential fails
// with ErrInvalidCredential. On success the raw token is kept on the
// context for verbatim forwarding to relationship calls.
func (r *Resolver) Resolve(authorizationHeader string) (viewer.Context, error) {
	if authorizationHeader == "" {
		return viewer.Anonymous(), nil
	}

	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return viewer.Context{}, fmt.Errorf("%w: authorization header must use Bearer scheme",
			domain.ErrInvalidCredential)
	}
	token := strings.TrimSpace(authorizationHeader[len(bearerPrefix):])
	if token == "" {
		return viewer.Context{}, fmt.Errorf("%w: empty bearer token", domain.ErrInvalidCredential)
	}

	claims := jwt.MapClaims{}
	if _, err := r.parser.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return r.secret, nil
	}); err != nil {
		return viewer.Context{}, fmt.Errorf("%w: %w", domain.ErrInvalidCredential, err)
	}

	id, err := viewerIDFromClaims(claims)
	if err != nil {
		return viewer.Context{}, fmt.Errorf("%w: %w", domain.ErrInvalidCredential, err)
	}

	return viewer.New(id, token), nil
}

func viewerIDFromClaims(claims jwt.MapClaims) (int64, error) {
	raw, ok := claims["user_id"]
	if !ok {
		return 0, fmt.Errorf("missing user_id claim")
	}
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("user_id claim is not numeric")
	}
}
