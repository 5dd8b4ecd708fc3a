package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/infrastructure/auth"
	"github.com/ims/backend/internal/infrastructure/persistence/models"
	"github.com/ims/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// UserStore is the credential lookup used at login
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler authenticates users and issues access tokens
type LoginHandler struct {
	BaseHandler
	users      UserStore
	jwtService *auth.JWTService
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(users UserStore, jwtService *auth.JWTService, logger *zap.Logger) *LoginHandler {
	return &LoginHandler{
		BaseHandler: NewBaseHandler(logger),
		users:       users,
		jwtService:  jwtService,
	}
}

// RegisterRoutes registers the login route
func (h *LoginHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/login", h.Login)
}

// Login verifies the submitted credentials and returns a signed token.
// Unknown user and wrong password produce the same 401 so the response
// does not reveal which part failed.
func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Username and password are required")
		return
	}

	user, err := h.users.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.Unauthorized(c, "Invalid username or password")
			return
		}
		h.InternalError(c, "An error occurred while logging in", err)
		return
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		h.Unauthorized(c, "Invalid username or password")
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		h.InternalError(c, "An error occurred while logging in", err)
		return
	}

	h.OK(c, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.LoginUser{Username: user.Username},
	})
}
