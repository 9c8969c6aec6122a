// Package middleware provides HTTP middleware for service-to-service authentication.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// serviceKey is the context key for the authenticated calling service.
const serviceKey ContextKey = "service"

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (ServiceGetter, error)
}

// ServiceGetter exposes the calling service named in validated claims.
type ServiceGetter interface {
	GetService() string
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// calling service in the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), serviceKey, claims.GetService())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken parses "Bearer <token>", accepting any casing of the scheme.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// GetService returns the authenticated calling service from the request context.
func GetService(r *http.Request) (string, error) {
	service, ok := r.Context().Value(serviceKey).(string)
	if !ok {
		return "", errors.New("service not found in request context")
	}
	return service, nil
}
