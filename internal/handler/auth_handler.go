package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gatepass/internal/auth"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/middleware"
	"gatepass/internal/model"
	"gatepass/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	credentials  service.CredentialService
	identity     service.IdentityService
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(credentials service.CredentialService, identity service.IdentityService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		credentials:  credentials,
		identity:     identity,
		cookieSecure: cookieSecure,
	}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
	Role     string `json:"role" form:"role" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterResponse represents a registration response.
type RegisterResponse struct {
	Notice   string      `json:"notice"`
	Redirect string      `json:"redirect"`
	User     *model.User `json:"user"`
}

// LoginResponse represents a login response.
type LoginResponse struct {
	Notice   string        `json:"notice"`
	Redirect string        `json:"redirect"`
	Token    string        `json:"token"`
	Session  *auth.Session `json:"session"`
}

// Home godoc
// @Summary Landing page
// @Tags auth
// @Produce json
// @Success 200 {object} NoticeResponse
// @Router / [get]
func (h *AuthHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, NoticeResponse{
		Notice:   "Welcome to the gate pass service. Please login.",
		Redirect: "/login",
	})
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		return apperrors.ToEchoError(fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}

	user, err := h.credentials.Register(c.Request().Context(), req.Username, req.Password, role)
	if err != nil {
		return apperrors.ToEchoError(err)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		Notice:   "Successfully Registered! Please Login.",
		Redirect: "/login",
		User:     user,
	})
}

// Login godoc
// @Summary Login and start a session
// @Description Sets the session cookie and returns the same token for bearer use.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, token, err := h.identity.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return apperrors.ToEchoError(err)
	}

	c.SetCookie(h.sessionCookie(token, session.ExpiresAt))
	return c.JSON(http.StatusOK, LoginResponse{
		Notice:   "Login successful!",
		Redirect: auth.DashboardPath(session.Role),
		Token:    token,
		Session:  session,
	})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the presented session. Calling it without a session, or twice, also succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} NoticeResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.identity.Logout(c.Request().Context(), middleware.TokenFrom(c)); err != nil {
		return apperrors.ToEchoError(err)
	}

	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)
	return c.JSON(http.StatusOK, NoticeResponse{
		Notice:   "Logged out successfully!",
		Redirect: "/login",
	})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
