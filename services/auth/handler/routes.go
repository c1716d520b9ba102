package handler

import (
	"time"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/svaraj/bizdesk/internal/pkg/constants"
	"github.com/svaraj/bizdesk/internal/pkg/database"
	jwtpkg "github.com/svaraj/bizdesk/internal/pkg/jwt"
	"github.com/svaraj/bizdesk/internal/pkg/middleware"
	"github.com/svaraj/bizdesk/internal/pkg/models"
	"github.com/svaraj/bizdesk/services/auth/handler/http"
)

// Handler wires the HTTP handlers and their middleware onto the router
type Handler struct {
	authHandler    *http.AuthHandler
	sessionHandler *http.SessionHandler
	redisClient    *database.RedisClient
	cfg            *models.Config
}

// NewHandler creates and initializes the route handler
func NewHandler(
	authHandler *http.AuthHandler,
	sessionHandler *http.SessionHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		sessionHandler: sessionHandler,
		redisClient:    redisClient,
		cfg:            cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests.
// Only access tokens pass: a refresh token presented as a bearer credential
// is rejected even though it is signed by the same service.
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.AccessSecret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from the Authorization header to avoid
			// type conflicts with the middleware's internal claim types
			authHeader := c.Request().Header.Get("Authorization")
			if len(authHeader) <= 7 || authHeader[:7] != "Bearer " {
				return
			}

			claims, err := jwtpkg.Validate(authHeader[7:], h.cfg.JWT.AccessSecret)
			if err != nil || claims.TokenType != jwtpkg.TokenTypeAccess {
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil || userID == uuid.Nil {
				return
			}

			c.Set("user_id", userID)
			c.Set("phone", claims.Phone)
			c.Set("is_superadmin", claims.IsSuperadmin)
		},
	})
}

// requireAccessToken rejects requests whose bearer credential did not resolve
// to a user identity, which covers refresh tokens presented as bearer tokens
func requireAccessToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get("user_id").(uuid.UUID)
		if !ok || userID == uuid.Nil {
			return echo.NewHTTPError(401, "Invalid token type")
		}
		return next(c)
	}
}

// RegisterRoutes registers the auth API routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes; OTP issuance additionally carries a per-IP limiter
	// in front of the per-phone issuance cap inside the usecase
	authGroup := e.Group("/auth")
	authGroup.POST("/otp/send", h.authHandler.SendOTP,
		middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redisClient.GetClient(),
			Key:         constants.KeyRateLimitPrefix,
			Limit:       h.cfg.OTP.MaxPerWindow * 2,
			Period:      time.Duration(h.cfg.OTP.RateWindowMinutes) * time.Minute,
		}))
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
	authGroup.POST("/token/refresh", h.authHandler.RefreshToken)

	// Protected routes (JWT authentication, access tokens only)
	protected := authGroup.Group("/sessions", h.GetJWTMiddleware(), requireAccessToken)
	protected.GET("", h.sessionHandler.ListSessions)
	protected.DELETE("/:id", h.sessionHandler.LogoutSession)
	protected.DELETE("", h.sessionHandler.LogoutAllSessions)
}
