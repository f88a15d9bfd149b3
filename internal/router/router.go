package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/PietroSRobusti/sus-para-todos/internal/config"
	"github.com/PietroSRobusti/sus-para-todos/internal/handler"
	"github.com/PietroSRobusti/sus-para-todos/internal/middleware"
	"github.com/PietroSRobusti/sus-para-todos/internal/repository"
	"github.com/PietroSRobusti/sus-para-todos/internal/session"
	"github.com/PietroSRobusti/sus-para-todos/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions session.Store,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	hospitalHandler *handler.HospitalHandler,
	specialtyHandler *handler.SpecialtyHandler,
	newsHandler *handler.NewsHandler,
	appointmentHandler *handler.AppointmentHandler,
	healthRecordHandler *handler.HealthRecordHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validation.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", middleware.Session(sessions, cfg.SessionSecret))

	// Public directory reads
	api.GET("/hospitals", hospitalHandler.List)
	api.GET("/hospitals/:id", hospitalHandler.Get)
	api.GET("/specialties", specialtyHandler.List)
	api.GET("/specialties/:id", specialtyHandler.Get)
	api.GET("/news", newsHandler.List)
	api.GET("/news/:id", newsHandler.Get)

	// Authentication
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.Me)
	api.PUT("/auth/profile", authHandler.UpdateProfile, middleware.RequireAuth)
	api.POST("/auth/verify-email", authHandler.VerifyEmail)
	api.POST("/auth/reset-password", authHandler.ResetPassword)

	// Owner-scoped resources (require a session)
	secured := api.Group("", middleware.RequireAuth)
	secured.GET("/appointments", appointmentHandler.List)
	secured.GET("/appointments/:id", appointmentHandler.Get)
	secured.POST("/appointments", appointmentHandler.Create)
	secured.PUT("/appointments/:id", appointmentHandler.Update)
	secured.DELETE("/appointments/:id", appointmentHandler.Delete)

	secured.GET("/health-records", healthRecordHandler.List)
	secured.GET("/health-records/:id", healthRecordHandler.Get)
	secured.POST("/health-records", healthRecordHandler.Create)
	secured.PUT("/health-records/:id", healthRecordHandler.Update)
	secured.DELETE("/health-records/:id", healthRecordHandler.Delete)

	// Directory management (admin role re-checked on every request)
	admin := api.Group("", middleware.RequireAdmin(users))
	admin.POST("/hospitals", hospitalHandler.Create)
	admin.PUT("/hospitals/:id", hospitalHandler.Update)
	admin.DELETE("/hospitals/:id", hospitalHandler.Delete)
	admin.POST("/specialties", specialtyHandler.Create)
	admin.POST("/specialties/:id/generate-image", specialtyHandler.GenerateImage)
	admin.POST("/news", newsHandler.Create)
	admin.POST("/news/:id/generate-image", newsHandler.GenerateImage)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
