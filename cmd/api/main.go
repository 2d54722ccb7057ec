package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/jontropati/storefront/internal/api/http"
	"github.com/jontropati/storefront/internal/api/http/handlers"
	"github.com/jontropati/storefront/internal/auth"
	"github.com/jontropati/storefront/internal/config"
	"github.com/jontropati/storefront/internal/events"
	"github.com/jontropati/storefront/internal/observability"
	"github.com/jontropati/storefront/internal/payment"
	"github.com/jontropati/storefront/internal/persistence"
	"github.com/jontropati/storefront/internal/repository"
	"github.com/jontropati/storefront/internal/service"
	"github.com/jontropati/storefront/internal/worker"
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

	store, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer store.Close(context.Background())

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	userRepo := repository.NewUserRepository(store)
	productRepo := repository.NewProductRepository(store)
	orderRepo := repository.NewOrderRepository(store)

	dispatcher := events.NewInMemoryDispatcher()
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret)
	provider := payment.NewHTTPProvider(cfg.Payment)

	catalogService := service.NewCatalogService(productRepo, redis, dispatcher, logger, cfg.Redis.CacheTTL())
	orderService := service.NewOrderService(orderRepo, dispatcher)
	userService := service.NewUserService(userRepo, tokenManager, dispatcher, cfg.Auth.AccessTokenTTL())
	paymentService := service.NewPaymentService(provider, cfg.Payment.Currency)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	gate := auth.NewMiddleware(tokenManager, userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store, redis, metrics),
		Products: handlers.NewProductsHandler(catalogService),
		Orders:   handlers.NewOrdersHandler(orderService),
		Users:    handlers.NewUsersHandler(userService),
		Payments: handlers.NewPaymentsHandler(paymentService),
		Gate:     gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
