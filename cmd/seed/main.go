package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/PietroSRobusti/sus-para-todos/internal/auth"
	"github.com/PietroSRobusti/sus-para-todos/internal/config"
	"github.com/PietroSRobusti/sus-para-todos/internal/db"
	"github.com/PietroSRobusti/sus-para-todos/internal/model"
	"github.com/PietroSRobusti/sus-para-todos/internal/repository"
)

func strPtr(s string) *string { return &s }

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Hospital{},
		&model.Specialty{},
		&model.Appointment{},
		&model.News{},
		&model.HealthRecord{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	seedAdmin(ctx, gormDB)
	seedHospitals(ctx, gormDB)
	seedSpecialties(ctx, gormDB)
	seedNews(ctx, gormDB)

	log.Println("Seed completed")
}

// seedAdmin creates the administrator account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Registration via the API always yields a regular user;
// this is the out-of-band promotion path.
func seedAdmin(ctx context.Context, gormDB *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	users := repository.NewUserRepository(gormDB)
	if existing, err := users.FindByEmail(ctx, email); err == nil && existing != nil {
		log.Printf("Admin %s already exists, skipping", email)
		return
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin: %v", err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	admin := &model.User{
		Name:         "Administrador",
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Created admin user %s", email)
}

func seedHospitals(ctx context.Context, gormDB *gorm.DB) {
	hospitals := []model.Hospital{
		{Name: "Hospital Municipal Central", Address: "Av. Principal, 1000 - Centro", Phone: strPtr("(11) 3333-1000")},
		{Name: "UPA Zona Norte", Address: "Rua das Flores, 250 - Jardim Norte", Phone: strPtr("(11) 3333-2000")},
		{Name: "Policlínica Leste", Address: "Av. dos Trabalhadores, 580 - Vila Leste", Phone: nil},
	}

	repo := repository.NewHospitalRepository(gormDB)
	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list hospitals: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Hospitals already seeded (%d rows), skipping", len(existing))
		return
	}
	for i := range hospitals {
		if err := repo.Create(ctx, &hospitals[i]); err != nil {
			log.Fatalf("Failed to create hospital %q: %v", hospitals[i].Name, err)
		}
	}
	log.Printf("Created %d hospitals", len(hospitals))
}

func seedSpecialties(ctx context.Context, gormDB *gorm.DB) {
	names := []string{
		"Clínica Geral",
		"Cardiologia",
		"Pediatria",
		"Ginecologia",
		"Ortopedia",
		"Dermatologia",
	}

	repo := repository.NewSpecialtyRepository(gormDB)
	created := 0
	for _, name := range names {
		if _, err := repo.FindByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check specialty %q: %v", name, err)
		}
		if err := repo.Create(ctx, &model.Specialty{Name: name}); err != nil {
			log.Fatalf("Failed to create specialty %q: %v", name, err)
		}
		created++
	}
	log.Printf("Created %d specialties", created)
}

func seedNews(ctx context.Context, gormDB *gorm.DB) {
	items := []model.News{
		{
			Title:    "Campanha de vacinação contra a gripe começa na segunda",
			Summary:  "Postos da rede municipal aplicam a vacina a partir das 8h.",
			Content:  "A Secretaria Municipal de Saúde inicia na próxima segunda-feira a campanha anual de vacinação contra a gripe. Todos os postos da rede estarão aplicando a vacina das 8h às 17h.",
			Category: "Vacinação",
		},
		{
			Title:    "Mutirão de exames oftalmológicos no Hospital Central",
			Summary:  "Agendamento aberto para consultas de vista gratuitas.",
			Content:  "O Hospital Municipal Central realiza neste mês um mutirão de exames oftalmológicos. As vagas podem ser agendadas pelo aplicativo ou presencialmente.",
			Category: "Mutirão",
		},
	}

	repo := repository.NewNewsRepository(gormDB)
	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list news: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("News already seeded (%d rows), skipping", len(existing))
		return
	}
	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			log.Fatalf("Failed to create news %q: %v", items[i].Title, err)
		}
	}
	log.Printf("Created %d news items", len(items))
}
