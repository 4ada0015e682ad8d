// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/household-expenses/backend/config"
	"github.com/household-expenses/backend/internal/application/usecase/auth"
	"github.com/household-expenses/backend/internal/application/usecase/category"
	"github.com/household-expenses/backend/internal/application/usecase/person"
	"github.com/household-expenses/backend/internal/application/usecase/transaction"
	"github.com/household-expenses/backend/internal/domain/service"
	"github.com/household-expenses/backend/internal/infra/cache"
	"github.com/household-expenses/backend/internal/infra/server/router"
	"github.com/household-expenses/backend/internal/integration/adapters"
	"github.com/household-expenses/backend/internal/integration/entrypoint/controller"
	"github.com/household-expenses/backend/internal/integration/entrypoint/middleware"
	"github.com/household-expenses/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config           *config.Config
	DB               *gorm.DB
	Redis            *redis.Client
	Router           *router.Router
	LoginRateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limiting counters stay in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	personRepo := persistence.NewPersonRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(adapters.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		Expiry:   cfg.JWT.Expiry,
	})
	credentials, err := adapters.NewCredentialDirectory(cfg.Auth.Users, passwordService)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	publisher := adapters.NewLogEventPublisher(slog.Default())

	// Create domain services
	categoryValidation := service.NewCategoryValidationService()
	transactionValidation := service.NewTransactionValidationService()

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(credentials, passwordService, tokenService)
	validateTokenUseCase := auth.NewValidateTokenUseCase(tokenService)

	// Create person use cases
	createPersonUseCase := person.NewCreatePersonUseCase(personRepo)
	getPersonUseCase := person.NewGetPersonUseCase(personRepo, transactionRepo)
	listPeopleUseCase := person.NewListPeopleUseCase(personRepo, transactionRepo)
	updatePersonUseCase := person.NewUpdatePersonUseCase(personRepo, transactionRepo)
	deletePersonUseCase := person.NewDeletePersonUseCase(personRepo)
	getSummaryUseCase := person.NewGetSummaryUseCase(personRepo, transactionRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	listCategoriesWithTotalsUseCase := category.NewListCategoriesWithTotalsUseCase(categoryRepo, transactionRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, categoryValidation, publisher)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deactivateCategoryUseCase := category.NewDeactivateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(
		transactionRepo,
		personRepo,
		categoryRepo,
		categoryValidation,
		transactionValidation,
		publisher,
		cfg.Currency.Default,
	)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, personRepo, categoryRepo)
	cancelTransactionUseCase := transaction.NewCancelTransactionUseCase(transactionRepo)

	// Create controllers
	var cacheHealthChecker controller.HealthChecker
	if redisClient != nil {
		cacheHealthChecker = cache.HealthChecker(redisClient)
	}
	healthController := controller.NewHealthController(func(ctx context.Context) bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.PingContext(ctx) == nil
	}, cacheHealthChecker)

	authController := controller.NewAuthController(loginUseCase, validateTokenUseCase)

	personController := controller.NewPersonController(
		createPersonUseCase,
		getPersonUseCase,
		listPeopleUseCase,
		updatePersonUseCase,
		deletePersonUseCase,
		getSummaryUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		listCategoriesWithTotalsUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deactivateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		cancelTransactionUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRedisRateLimiter(redisClient, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		personController,
		categoryController,
		transactionController,
		loginRateLimiter,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
	)

	return &Injector{
		Config:           cfg,
		DB:               db,
		Redis:            redisClient,
		Router:           r,
		LoginRateLimiter: loginRateLimiter,
	}, nil
}
