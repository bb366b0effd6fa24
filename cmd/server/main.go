package main

import (
	"log"
	"net/http"
	"os"

	_ "campuslink/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"campuslink/internal/auth"
	"campuslink/internal/cache"
	"campuslink/internal/config"
	"campuslink/internal/db"
	"campuslink/internal/handler"
	"campuslink/internal/model"
	"campuslink/internal/repository"
	"campuslink/internal/router"
	"campuslink/internal/service"
)

// @title CampusLink API
// @version 1.0
// @description Community backend with bio profiles, study groups, hobbies, a freelancer marketplace and credential-based authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Service{},
			&model.FreelancerProfile{},
			&model.Hobby{},
			&model.StudyGroup{},
			&model.Profile{},
			&model.Account{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.Profile{},
		&model.StudyGroup{},
		&model.Hobby{},
		&model.FreelancerProfile{},
		&model.Service{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	studyGroupRepo := repository.NewStudyGroupRepository(gormDB)
	hobbyRepo := repository.NewHobbyRepository(gormDB)
	freelancerRepo := repository.NewFreelancerRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(accountRepo, jwtService, tokenStore)
	profileService := service.NewProfileService(profileRepo)
	studyGroupService := service.NewStudyGroupService(studyGroupRepo)
	hobbyService := service.NewHobbyService(hobbyRepo)
	freelancerService := service.NewFreelancerService(freelancerRepo, serviceRepo, accountRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	studyGroupHandler := handler.NewStudyGroupHandler(studyGroupService)
	hobbyHandler := handler.NewHobbyHandler(hobbyService)
	freelancerHandler := handler.NewFreelancerHandler(freelancerService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		profileHandler,
		studyGroupHandler,
		hobbyHandler,
		freelancerHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
