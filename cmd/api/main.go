package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Japacho1/tasky/internal/adapters/cache"
	"github.com/Japacho1/tasky/internal/adapters/database"
	"github.com/Japacho1/tasky/internal/api/handlers"
	"github.com/Japacho1/tasky/internal/api/routes"
	"github.com/Japacho1/tasky/internal/application/services"
	"github.com/Japacho1/tasky/internal/domain/providers"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	"github.com/Japacho1/tasky/internal/infrastructure/clients/postgres"
	"github.com/Japacho1/tasky/internal/infrastructure/clients/redis"
	"github.com/Japacho1/tasky/internal/infrastructure/observability"
	"github.com/Japacho1/tasky/pkg/config"
)

func main() {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	// Initialize Redis client; the API degrades to uncached reads without it
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, running without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		logger.Info().Msg("Redis client initialized")
	}

	// Initialize adapters
	userAdapter := database.NewUserAdapter(pgClient)
	providerAdapter := database.NewProviderAdapter(pgClient)
	requestAdapter := database.NewRequestAdapter(pgClient)
	ratingAdapter := database.NewRatingAdapter(pgClient)

	var catalogRepo repositories.ServiceRepository = database.NewServiceAdapter(pgClient)
	if cacheProvider != nil {
		catalogRepo = database.NewCachedCatalogAdapter(catalogRepo, cacheProvider)
		logger.Info().Msg("catalog adapter wrapped with caching layer")
	}

	// Initialize services
	authService := services.NewAuthService(userAdapter, cfg.Auth)
	locationService := services.NewLocationService(userAdapter)
	catalogService := services.NewCatalogService(catalogRepo)
	matchingService := services.NewMatchingService(providerAdapter)
	requestService := services.NewRequestService(requestAdapter, catalogRepo, userAdapter)
	ratingService := services.NewRatingService(ratingAdapter, userAdapter)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	locationHandler := handlers.NewLocationHandler(locationService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	providerHandler := handlers.NewProviderHandler(matchingService)
	requestHandler := handlers.NewRequestHandler(requestService)
	ratingHandler := handlers.NewRatingHandler(ratingService)

	// Set up router
	router := routes.NewRouter(
		authHandler,
		locationHandler,
		catalogHandler,
		providerHandler,
		requestHandler,
		ratingHandler,
		authService,
		metrics,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
