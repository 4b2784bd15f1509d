package models

import "github.com/golang-jwt/jwt/v5"

// AuthClaims represents the JWT claims issued by the managed auth provider.
// Only the claims the backend actually inspects are declared; everything
// else rides along in the registered claims.
type AuthClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email"`
	Name                 string `json:"name"`
	Role                 string `json:"role"` // "authenticated" or "anon"
	SessionID            string `json:"session_id"`
	IsAnonymous          bool   `json:"is_anonymous"`
}

// GetUserID returns the user ID from the JWT subject claim.
// This is the primary identifier for the authenticated user.
func (c *AuthClaims) GetUserID() string {
	return c.Subject
}

// DisplayName returns the best available human-readable name for the user,
// falling back to the email and finally a generic label.
func (c *AuthClaims) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Email != "" {
		return c.Email
	}
	return "Founder"
}

// User is the identity echo returned by GET /api/users/me.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
