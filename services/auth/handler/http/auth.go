package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/svaraj/bizdesk/internal/pkg/models"
	"github.com/svaraj/bizdesk/internal/utils"
	"github.com/svaraj/bizdesk/services/auth"
)

// AuthHandler handles HTTP requests for OTP and token operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SendOTP handles OTP issuance requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	resp, err := h.authUC.SendOTP(c.Request().Context(), req.Phone, req.Purpose)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrRateLimited):
			return utils.TooManyRequestsResponse(c, "Too many OTP requests, try again later")
		case errors.Is(err, auth.ErrInvalidPhone), errors.Is(err, auth.ErrInvalidPurpose):
			return utils.BadRequestResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to send OTP")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", resp)
}

// VerifyOTP handles OTP verification and token issuance
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Phone number and OTP are required")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), &req, c.RealIP())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrOTPExpired):
			return utils.UnauthorizedResponse(c, "OTP has expired")
		case errors.Is(err, auth.ErrOTPAttemptsExhausted):
			return utils.UnauthorizedResponse(c, "Too many incorrect attempts")
		case errors.Is(err, auth.ErrInvalidOTP):
			return utils.UnauthorizedResponse(c, "Invalid OTP")
		case errors.Is(err, auth.ErrInvalidPhone):
			return utils.BadRequestResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", resp)
}

// RefreshToken handles refresh token rotation
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req models.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RefreshToken == "" {
		return utils.BadRequestResponse(c, "Refresh token is required")
	}

	pair, err := h.authUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) {
			return utils.UnauthorizedResponse(c, "Invalid refresh token")
		}
		return utils.InternalServerErrorResponse(c, "Failed to refresh token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", pair)
}
