package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/PietroSRobusti/sus-para-todos/docs" // swagger docs

	"github.com/PietroSRobusti/sus-para-todos/internal/cache"
	"github.com/PietroSRobusti/sus-para-todos/internal/config"
	"github.com/PietroSRobusti/sus-para-todos/internal/db"
	"github.com/PietroSRobusti/sus-para-todos/internal/handler"
	"github.com/PietroSRobusti/sus-para-todos/internal/imagegen"
	"github.com/PietroSRobusti/sus-para-todos/internal/model"
	"github.com/PietroSRobusti/sus-para-todos/internal/repository"
	"github.com/PietroSRobusti/sus-para-todos/internal/router"
	"github.com/PietroSRobusti/sus-para-todos/internal/service"
	"github.com/PietroSRobusti/sus-para-todos/internal/session"
)

// @title SUS Para Todos API
// @version 1.0
// @description API de agendamento de consultas e exames da rede municipal de saúde.
// @BasePath /api
// @schemes http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Hospital{},
		&model.Specialty{},
		&model.Appointment{},
		&model.News{},
		&model.HealthRecord{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	sessions := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SessionTTL)
	if err := sessions.Ping(context.Background()); err != nil {
		log.Fatalf("session store: %v", err)
	}
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	imageClient := imagegen.New(cfg.ImageAPIURL, cfg.ImageAPIKey)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	hospitalRepo := repository.NewHospitalRepository(gormDB)
	specialtyRepo := repository.NewSpecialtyRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)
	newsRepo := repository.NewNewsRepository(gormDB)
	healthRecordRepo := repository.NewHealthRecordRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	hospitalService := service.NewHospitalService(hospitalRepo, cacheClient)
	specialtyService := service.NewSpecialtyService(specialtyRepo, imageClient, cacheClient)
	newsService := service.NewNewsService(newsRepo, imageClient, cacheClient)
	appointmentService := service.NewAppointmentService(appointmentRepo)
	healthRecordService := service.NewHealthRecordService(healthRecordRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions, cfg.SessionSecret, cfg.SessionTTL, logger)
	hospitalHandler := handler.NewHospitalHandler(hospitalService, logger)
	specialtyHandler := handler.NewSpecialtyHandler(specialtyService, logger)
	newsHandler := handler.NewNewsHandler(newsService, logger)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService, logger)
	healthRecordHandler := handler.NewHealthRecordHandler(healthRecordService, logger)

	e := echo.New()
	e.Use(echomw.RequestID())

	// Register routes
	router.Register(
		e,
		cfg,
		sessions,
		userRepo,
		authHandler,
		hospitalHandler,
		specialtyHandler,
		newsHandler,
		appointmentHandler,
		healthRecordHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
