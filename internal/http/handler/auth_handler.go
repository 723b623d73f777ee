package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/auth"
)

type AuthHandler struct {
	logger *zap.Logger
}

func NewAuthHandler(logger *zap.Logger) *AuthHandler {
	return &AuthHandler{logger: logger}
}

// Me godoc
// @Summary Get the authenticated user
// @Description Get the caller's identity and console roles
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.MustFromContext(r.Context())

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"userId":      userCtx.UserID,
		"displayName": userCtx.DisplayName,
		"email":       userCtx.Email,
		"initials":    userCtx.GetDisplayNameInitials(),
		"roles":       userCtx.RolesAsStrings(),
		"canManage":   userCtx.CanManageDocuments(),
	})
}
