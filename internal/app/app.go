package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/healthplate/healthplate/internal/config"
	"github.com/healthplate/healthplate/internal/db"
	"github.com/healthplate/healthplate/internal/repository"
	"github.com/healthplate/healthplate/internal/service"
	"github.com/healthplate/healthplate/internal/storage"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	AuthService      *service.AuthService
	ProfileService   *service.ProfileService
	FavouriteService *service.FavouriteService
	ContentService   *service.ContentService
	MenuService      *service.MenuService
	ContactService   *service.ContactService
	EmailService     *service.EmailService
	ImporterService  *service.ImporterService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	favouriteRepository := repository.NewFavouriteRepository(database)
	storyRepository := repository.NewStoryRepository(database)
	recipeRepository := repository.NewRecipeRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		emailService,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.VerificationCodeTTL,
		cfg.IsProduction(),
	)
	profileService := service.NewProfileService(userRepository, fileStorage)
	favouriteService := service.NewFavouriteService(favouriteRepository)
	contentService := service.NewContentService(storyRepository, recipeRepository)
	menuService := service.NewMenuService(recipeRepository)
	contactService := service.NewContactService(cfg.FeedbackPath)
	importerService := service.NewImporterService(storyRepository, recipeRepository)

	return &App{
		Cfg:              cfg,
		DB:               database,
		AuthService:      authService,
		ProfileService:   profileService,
		FavouriteService: favouriteService,
		ContentService:   contentService,
		MenuService:      menuService,
		ContactService:   contactService,
		EmailService:     emailService,
		ImporterService:  importerService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
