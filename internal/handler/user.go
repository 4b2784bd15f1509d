package handler

import (
	"log/slog"
	"net/http"

	"pitchforge/internal/domain/models"
	"pitchforge/internal/httputil"
)

// UserHandler handles identity HTTP requests
type UserHandler struct {
	logger *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(logger *slog.Logger) *UserHandler {
	return &UserHandler{logger: logger}
}

// Me echoes the caller's verified identity. Unauthenticated requests get
// a null body, matching the lookup-style endpoints.
// GET /api/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)
	if claims == nil {
		httputil.RespondJSON(w, http.StatusOK, nil)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, &models.User{
		ID:    claims.GetUserID(),
		Email: claims.Email,
		Name:  claims.DisplayName(),
	})
}
