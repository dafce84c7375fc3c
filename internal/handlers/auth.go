package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stafflow/employee-management-api/internal/constants"
	"github.com/stafflow/employee-management-api/internal/dto"
	apierrors "github.com/stafflow/employee-management-api/internal/errors"
	"github.com/stafflow/employee-management-api/internal/middleware"
	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	presence    *services.PresenceService
	logger      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, presence *services.PresenceService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		presence:    presence,
		logger:      logger,
	}
}

// Register creates a new account. The public client may only create
// employee accounts; the role field is accepted but forced to employee.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     models.RoleEmployee,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    dto.ToUserDTO(*user),
		"token":   token,
	})
}

// Login verifies credentials and returns a session token with the
// sanitized user projection.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.InvalidCredentials(c)
			return
		}
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    dto.ToUserDTO(*user),
	})
}

// UpdateOnlineStatus applies a client-driven presence update. Login sends
// true, logout sends false, and the heartbeat repeats true while a
// session is active.
func (h *AuthHandler) UpdateOnlineStatus(c *gin.Context) {
	type StatusRequest struct {
		IsOnline *bool `json:"isOnline" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.presence.Update(userID, *req.IsOnline); err != nil {
		h.logger.Error().Err(err).Uint64("user_id", userID).Msg("online status update failed")
		apierrors.InternalError(c, "Error updating online status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidName):
		apierrors.BadRequest(c, "Name is required")
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrInvalidEmail):
		apierrors.BadRequest(c, "Please fill a valid email address")
	case errors.Is(err, services.ErrInvalidPhone):
		apierrors.BadRequest(c, "Please fill a valid phone number")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
