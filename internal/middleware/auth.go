package middleware

import (
	"net/http"
	"strings"

	"pitchforge/internal/auth"
	"pitchforge/internal/httputil"
)

// AuthMiddleware verifies the Bearer token and attaches the caller's
// identity to the request context.
//
// Requests without a valid token continue unauthenticated: read endpoints
// answer them with empty collections and write endpoints reject them in
// the service layer. This mirrors the optional-auth model the frontend
// expects during its sign-in transitions.
func AuthMiddleware(verifier auth.JWTVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				// A presented-but-invalid token is rejected outright so
				// callers never silently lose their identity mid-session
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			r = httputil.WithUserID(r, claims.GetUserID())
			r = httputil.WithClaims(r, claims)
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from the Authorization header, empty
// string if absent or malformed.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
