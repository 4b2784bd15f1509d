package httputil

import (
	"context"
	"net/http"

	"pitchforge/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	userIDKey contextKey = "userID"
	claimsKey contextKey = "claims"
)

// WithUserID adds userID to the request context
func WithUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}

// GetUserID retrieves userID from context, returns empty string if not found
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}

// WithClaims adds the verified token claims to the request context
func WithClaims(r *http.Request, claims *models.AuthClaims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsKey, claims)
	return r.WithContext(ctx)
}

// GetClaims retrieves the verified claims from context, nil if unauthenticated
func GetClaims(r *http.Request) *models.AuthClaims {
	claims, _ := r.Context().Value(claimsKey).(*models.AuthClaims)
	return claims
}
