package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
	"github.com/tripflow/tripflow_backend/internal/middleware"
	"github.com/tripflow/tripflow_backend/internal/platform/config"
	"github.com/tripflow/tripflow_backend/internal/utils"
)

// authHandler handles registration and login.
type authHandler struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

func newAuthHandler(cfg *config.Config, us portssvc.UserSvcFacade) *authHandler {
	return &authHandler{cfg: cfg, userService: us}
}

// registerAuthRoutes registers the public authentication routes. Both are
// rate limited per client IP; everything else sits behind the JWT middleware.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(cfg, userService)

	auth := r.Group("/auth", middleware.RateLimit(newAuthRateLimiter(cfg)))
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Registration rejected, email already in use")
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		} else {
			logger.Error("Failed to register user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	h.respondWithToken(c, http.StatusCreated, user.ID, dto.ToUserResponse(user))
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Login rejected", slog.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		} else {
			logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		}
		return
	}

	h.respondWithToken(c, http.StatusOK, user.ID, dto.ToUserResponse(user))
}

// respondWithToken issues the session token and returns it alongside the user.
// The token is the client's stored credential; presenting it later restores
// the session without re-entering the password.
func (h *authHandler) respondWithToken(c *gin.Context, status int, userID int64, user dto.UserResponse) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token, err := utils.GenerateJWT(userID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(status, dto.AuthResponse{Token: token, User: user})
}
