package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/svaraj/bizdesk/internal/utils"
	"github.com/svaraj/bizdesk/services/auth"
)

// SessionHandler handles HTTP requests for device session management
type SessionHandler struct {
	authUC auth.AuthUC
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(authUC auth.AuthUC) *SessionHandler {
	return &SessionHandler{
		authUC: authUC,
	}
}

// callerID extracts the authenticated user id set by the JWT middleware
func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

// ListSessions returns the caller's active device sessions
func (h *SessionHandler) ListSessions(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	sessions, err := h.authUC.GetUserSessions(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list sessions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sessions retrieved successfully", sessions)
}

// LogoutSession deactivates one of the caller's device sessions
func (h *SessionHandler) LogoutSession(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	if err := h.authUC.LogoutSession(c.Request().Context(), sessionID, userID); err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "Session not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to logout session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session logged out successfully", nil)
}

// LogoutAllSessions deactivates every session and revokes every refresh
// token for the caller
func (h *SessionHandler) LogoutAllSessions(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	if err := h.authUC.LogoutAllSessions(c.Request().Context(), userID); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to logout sessions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "All sessions logged out successfully", nil)
}
