package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/autofuellanka/portal-service/internal/api/http"
	"github.com/autofuellanka/portal-service/internal/api/http/handlers"
	"github.com/autofuellanka/portal-service/internal/auth"
	"github.com/autofuellanka/portal-service/internal/config"
	"github.com/autofuellanka/portal-service/internal/events"
	"github.com/autofuellanka/portal-service/internal/observability"
	"github.com/autofuellanka/portal-service/internal/persistence"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/internal/service"
	"github.com/autofuellanka/portal-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	vehicleRepo := repository.NewVehicleRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	serviceTypeRepo := repository.NewServiceTypeRepository(pool)
	inventoryRepo := repository.NewInventoryRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	ledgerRepo := repository.NewLedgerRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notificationService.RegisterHandlers()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{UserRepo: userRepo})
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	vehicleService := service.NewVehicleService(vehicleRepo)
	catalogService := service.NewCatalogService(serviceTypeRepo)
	bookingService := service.NewBookingService(service.BookingDependencies{
		BookingRepo:     bookingRepo,
		VehicleRepo:     vehicleRepo,
		ServiceTypeRepo: serviceTypeRepo,
		Dispatcher:      dispatcher,
	})
	jobService := service.NewJobService(service.JobDependencies{
		JobRepo:     jobRepo,
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
	})
	inventoryService := service.NewInventoryService(service.InventoryDependencies{
		InventoryRepo: inventoryRepo,
		Dispatcher:    dispatcher,
	})
	feedbackService := service.NewFeedbackService(service.FeedbackDependencies{
		FeedbackRepo: feedbackRepo,
		BookingRepo:  bookingRepo,
		Dispatcher:   dispatcher,
	})
	reportsService := service.NewReportsService(service.ReportsDependencies{
		InventoryRepo: inventoryRepo,
		UserRepo:      userRepo,
		BookingRepo:   bookingRepo,
		VehicleRepo:   vehicleRepo,
	})
	billingService := service.NewBillingService(service.BillingDependencies{
		InvoiceRepo:     invoiceRepo,
		BookingRepo:     bookingRepo,
		ServiceTypeRepo: serviceTypeRepo,
		LedgerRepo:      ledgerRepo,
		Dispatcher:      dispatcher,
	})

	pollInterval := cfg.Navigation.BadgePollInterval()
	badgeCache := worker.NewRedisBadgeCache(redis.Client, pollInterval)
	badgePoller := worker.NewBadgePoller(jobService, badgeCache, pollInterval, logger)
	go badgePoller.Run(ctx)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewMiddleware(tokenManager, userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Navigation:     handlers.NewNavigationHandler(badgePoller),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Vehicles:       handlers.NewVehiclesHandler(vehicleService),
		Jobs:           handlers.NewJobsHandler(jobService),
		Users:          handlers.NewUsersHandler(userService),
		Inventory:      handlers.NewInventoryHandler(inventoryService),
		Billing:        handlers.NewBillingHandler(billingService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Feedback:       handlers.NewFeedbackHandler(feedbackService),
		Reports:        handlers.NewReportsHandler(reportsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
