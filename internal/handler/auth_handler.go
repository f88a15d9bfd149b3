package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/PietroSRobusti/sus-para-todos/internal/auth"
	apperrors "github.com/PietroSRobusti/sus-para-todos/internal/errors"
	"github.com/PietroSRobusti/sus-para-todos/internal/middleware"
	"github.com/PietroSRobusti/sus-para-todos/internal/service"
	"github.com/PietroSRobusti/sus-para-todos/internal/session"
	"github.com/PietroSRobusti/sus-para-todos/internal/validation"
)

// AuthHandler handles registration, login and profile endpoints.
type AuthHandler struct {
	authService   service.AuthService
	sessions      session.Store
	sessionSecret string
	sessionTTL    time.Duration
	log           *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions session.Store, sessionSecret string, sessionTTL time.Duration, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessions:      sessions,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
		log:           log,
	}
}

// RegisterRequest represents a registration request. Role is not part of it.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword"`
	ConfirmPassword *string `json:"confirmPassword"`
}

// VerifyEmailRequest represents the forgot-password email check.
type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents the forgot-password reset step.
type ResetPasswordRequest struct {
	UserID          string `json:"userId" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// Register godoc
// @Summary Register a new citizen account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}

	if strength := auth.ValidatePasswordStrength(req.Password); !strength.Valid {
		return badRequest(c, strings.Join(strength.Errors, ", "))
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}

	token, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	session.WriteCookie(c, token, h.sessionSecret, h.sessionTTL)

	return c.JSON(http.StatusCreated, user.ToProfile())
}

// Login godoc
// @Summary Authenticate and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: err.Error()})
		}
		return respondError(c, h.log, err)
	}

	token, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	session.WriteCookie(c, token, h.sessionSecret, h.sessionTTL)

	return c.JSON(http.StatusOK, user.ToProfile())
}

// Logout godoc
// @Summary Destroy the current session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if token, ok := session.ParseSignedToken(cookie.Value, h.sessionSecret); ok {
			if err := h.sessions.Destroy(c.Request().Context(), token); err != nil {
				h.log.Error("destroy session", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Erro ao fazer logout"})
			}
		}
	}
	session.ClearCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Logout realizado com sucesso"})
}

// Me godoc
// @Summary Current authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Não autenticado"})
	}

	user, err := h.authService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, user.ToProfile())
}

// UpdateProfile godoc
// @Summary Update email, phone or password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile changes"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}

	update := service.ProfileUpdate{Email: req.Email, Phone: req.Phone}
	if req.NewPassword != nil && *req.NewPassword != "" {
		if req.CurrentPassword == nil || *req.CurrentPassword == "" {
			return badRequest(c, "Senha atual é necessária para alterar a senha")
		}
		if req.ConfirmPassword == nil || *req.NewPassword != *req.ConfirmPassword {
			return badRequest(c, "As senhas não coincidem")
		}
		if strength := auth.ValidatePasswordStrength(*req.NewPassword); !strength.Valid {
			return badRequest(c, strings.Join(strength.Errors, ", "))
		}
		update.CurrentPassword = *req.CurrentPassword
		update.NewPassword = *req.NewPassword
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), middleware.UserID(c), update)
	if err != nil {
		if err == service.ErrWrongPassword {
			return badRequest(c, err.Error())
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, user.ToProfile())
}

// VerifyEmail godoc
// @Summary Check whether an email is registered (forgot-password step 1)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyEmailRequest true "Email"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}

	user, err := h.authService.GetUserByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Email verificado com sucesso",
		"userId":  user.ID,
	})
}

// ResetPassword godoc
// @Summary Set a new password (forgot-password step 2)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validation.First(err))
	}

	if strength := auth.ValidatePasswordStrength(req.NewPassword); !strength.Valid {
		return badRequest(c, strings.Join(strength.Errors, ", "))
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.UserID, req.NewPassword); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Senha redefinida com sucesso"})
}
