package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/interfaces/http/middleware"
	"e-commerce.backend/internal/interfaces/http/response"
)

type authService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.Session, error)
	Logout(ctx context.Context, principal *entities.Principal) error
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	RequestVerify(ctx context.Context, user *entities.User) (string, error)
	Verify(ctx context.Context, token string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password string) (string, error)
}

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge int
}

// AuthHandler handles account and session endpoints
type AuthHandler struct {
	service authService
	cookie  CookieConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service authService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: service, cookie: cookie}
}

// MsgRegistered is the body of a successful registration
const MsgRegistered = "Registration was successfull"

// Register handles user registration
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	if _, err := h.service.Register(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, MsgRegistered)
}

// Login checks the form credentials and sets the session cookie
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		response.ValidationError(c, err)
		return
	}
	if input.Identifier() == "" {
		response.InvalidField(c, "email", msgRequired)
		return
	}

	session, err := h.service.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, session.Token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	c.Status(http.StatusNoContent)
}

// Logout revokes the current session and clears the cookie
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	if err := h.service.Logout(c.Request.Context(), principal); err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.Status(http.StatusNoContent)
}

// GetUser returns the public projection of a user
// GET /users/:id
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user.Public())
}

// AboutMe returns the current user
// GET /about_me
func (h *AuthHandler) AboutMe(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, user)
}

// RequestVerify mails a verification link to the current user
// POST /options/verified
func (h *AuthHandler) RequestVerify(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	msg, err := h.service.RequestVerify(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusAccepted, msg)
}

// Verify consumes a verification token
// POST /options/verify/:token
func (h *AuthHandler) Verify(c *gin.Context) {
	msg, err := h.service.Verify(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, msg)
}

// ForgotPassword mails a reset link when the email is registered
// POST /options/forgot
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input entities.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	msg, err := h.service.ForgotPassword(c.Request.Context(), input.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusAccepted, msg)
}

// ResetPassword sets a new password with a reset token
// POST /options/reset/:token
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input entities.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	msg, err := h.service.ResetPassword(c.Request.Context(), c.Param("token"), input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, msg)
}
