package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/auth"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

type SessionHandler struct {
	sessionService *service.SessionService
	logger         *zap.Logger
}

func NewSessionHandler(sessionService *service.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Get godoc
// @Summary Get the current session
// @Description Get the user's session state: selected project and stored filters
// @Tags Session
// @Produce json
// @Success 200 {object} domain.Session
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /session [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.MustFromContext(r.Context())

	session, err := h.sessionService.Get(r.Context(), userCtx.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	session.UserID = userCtx.UserID
	respondJSON(w, http.StatusOK, session)
}

// SelectProject godoc
// @Summary Select the project scope
// @Description Set the session's selected project. In-flight inventory requests scoped to the previous project are discarded.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body domain.SelectProjectRequest true "Project ID, empty to clear"
// @Success 200 {object} domain.Session
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /session/project [put]
func (h *SessionHandler) SelectProject(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.MustFromContext(r.Context())

	var req domain.SelectProjectRequest
	if err := decodeBody(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.SelectProject(r.Context(), userCtx.UserID, req.ProjectID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

// Clear godoc
// @Summary Clear the session
// @Description Remove the session state on logout
// @Tags Session
// @Produce json
// @Success 200 {object} domain.MessageResponse
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /session [delete]
func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.MustFromContext(r.Context())

	if err := h.sessionService.Clear(r.Context(), userCtx.UserID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "session cleared"})
}
