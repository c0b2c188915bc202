package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tair/storefront/internal/cart"
	"github.com/tair/storefront/internal/catalog"
	httpDelivery "github.com/tair/storefront/internal/detail/delivery/http"
	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/internal/detail/repository"
	"github.com/tair/storefront/internal/detail/usecase/command"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-detail")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting storefront detail service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Redis backs sessions and pending selections; without it the
	// service falls back to process-local storage.
	var (
		sessions domain.SessionRepository
		pending  domain.PendingStore
	)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Msg("Failed to connect to Redis - using in-memory session store")
		memory := repository.NewMemorySessionRepository()
		sessions = repository.NewTracedSessionRepository(memory)
		pending = memory
	} else {
		redisRepo := repository.NewRedisSessionRepository(redisClient)
		sessions = repository.NewTracedSessionRepository(redisRepo)
		pending = redisRepo
		logger.Logger.Info().Msg("Connected to Redis for session storage")
	}

	// Kafka publisher for purchase-intent events, optional
	var events command.EventPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().
				Err(err).
				Msg("Failed to connect to Kafka - purchase events disabled")
		} else {
			defer publisher.Close()
			events = publisher
		}
	}

	catalogClient := catalog.NewClient(getEnv("CATALOG_URL", "http://localhost:9999"))
	cartClient := cart.NewClient(getEnv("CART_URL", "http://localhost:9999"))

	handler := httpDelivery.NewDetailHandler(
		sessions,
		pending,
		catalogClient,
		cartClient,
		httpDelivery.ContextAuthProvider{},
		events,
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	port := getEnv("HTTP_PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", port).
			Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
