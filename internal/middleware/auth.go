package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "github.com/PietroSRobusti/sus-para-todos/internal/errors"
	"github.com/PietroSRobusti/sus-para-todos/internal/model"
	"github.com/PietroSRobusti/sus-para-todos/internal/repository"
	"github.com/PietroSRobusti/sus-para-todos/internal/session"
)

const userIDKey = "userID"

// UserID returns the authenticated user id set by Session, or "" when the
// request is anonymous.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

// SetUserID stores the authenticated user id on the request context. Exposed
// so handler tests can simulate an authenticated request.
func SetUserID(c echo.Context, id string) {
	c.Set(userIDKey, id)
}

// Session resolves the signed session cookie into a user id on the request
// context. It never fails a request by itself: routes decide via RequireAuth
// or RequireAdmin whether anonymity is acceptable.
func Session(store session.Store, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			token, ok := session.ParseSignedToken(cookie.Value, secret)
			if !ok {
				return next(c)
			}
			userID, err := store.Get(c.Request().Context(), token)
			if err != nil {
				// unknown or expired token behaves like no session at all,
				// but a store outage must not demote the request to anonymous
				if errors.Is(err, session.ErrNotFound) {
					return next(c)
				}
				return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
					Error: "Erro interno do servidor",
				})
			}
			SetUserID(c, userID)
			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests with 401. It does not load the user.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if UserID(c) == "" {
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "Não autenticado. Faça login para continuar.",
			})
		}
		return next(c)
	}
}

// RequireAdmin re-reads the user's current role on every request, so role
// revocation takes effect immediately. A session whose user row no longer
// exists is treated as unauthenticated.
func RequireAdmin(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := UserID(c)
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "Não autenticado",
				})
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
						Error: "Não autenticado",
					})
				}
				return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
					Error: "Erro interno de autorização",
				})
			}

			if user.Role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "Acesso negado. Permissão de administrador necessária.",
				})
			}

			return next(c)
		}
	}
}
