package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/commercekit/customer-system/docs"
	"github.com/commercekit/customer-system/internal/api/handler"
	"github.com/commercekit/customer-system/internal/api/middleware"
	"github.com/commercekit/customer-system/internal/core/service"
	mongostore "github.com/commercekit/customer-system/internal/infrastructure/db/mongo"
	redisstore "github.com/commercekit/customer-system/internal/infrastructure/db/redis"
	"github.com/commercekit/customer-system/internal/infrastructure/http/handlers"
	"github.com/commercekit/customer-system/internal/infrastructure/queue"
	"github.com/commercekit/customer-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The supplied ctx bounds the lifetime of the background notification workers.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	customerRepo := mongostore.NewCustomerRepository(db)
	customerReader := mongostore.NewCustomerReader(db)
	subscriberRepo := mongostore.NewSubscriberRepository(db)
	storeRepo := mongostore.NewStoreRepository(db)
	notificationRepo := mongostore.NewNotificationRepository(db)
	storeCache := redisstore.NewStoreCache(rdb)

	notificationService := service.NewNotificationService(notificationRepo, log)
	dispatcher := queue.NewDispatcher(cfg.WelcomeWorkers, notificationService, log)
	dispatcher.Start(ctx)

	storeService := service.NewStoreService(storeRepo, storeCache, cfg.DefaultStoreCode, log)
	accountService := service.NewAccountService(customerRepo, log)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	registrationService := service.NewRegistrationService(
		storeService,
		accountService,
		subscriberRepo,
		customerReader,
		dispatcher,
		log,
	)

	customerHandler := handler.NewCustomerHandler(registrationService, accountService, tokenService, customerReader)
	authMiddleware := middleware.Auth(cfg.JWTSecret)
	storeScope := middleware.StoreScope(cfg.DefaultStoreCode)

	// --- Customer routes ---
	e.POST("/v1/customers", customerHandler.Create, storeScope)
	e.POST("/v1/customers/token", customerHandler.Token)
	e.GET("/v1/customers/me", customerHandler.Me, authMiddleware)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
