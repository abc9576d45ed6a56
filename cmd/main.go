package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cacheRedis "github.com/artdevata/content-service/internal/adapter/cache/redis"
	"github.com/artdevata/content-service/internal/adapter/contentapi"
	"github.com/artdevata/content-service/internal/adapter/email"
	relayAdapter "github.com/artdevata/content-service/internal/adapter/formrelay"
	likesMongo "github.com/artdevata/content-service/internal/adapter/likestore/mongo"
	likesRedis "github.com/artdevata/content-service/internal/adapter/likestore/redis"
	natsAdapter "github.com/artdevata/content-service/internal/adapter/nats"
	"github.com/artdevata/content-service/internal/config"
	"github.com/artdevata/content-service/internal/handler"
	"github.com/artdevata/content-service/internal/middleware"
	"github.com/artdevata/content-service/internal/port/likestore"
	"github.com/artdevata/content-service/internal/router"
	"github.com/artdevata/content-service/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	configPath := "config.yaml"
	if cp := os.Getenv("CONFIG_PATH"); cp != "" {
		configPath = cp
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapConfig := zap.NewProductionConfig()
	logger, err := zapConfig.Build()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully!",
		zap.String("http_port", cfg.HTTP.Port),
		zap.String("content_api", cfg.Content.APIBaseURL),
		zap.String("likes_backend", cfg.Likes.Backend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := cacheRedis.NewRedisClient(&cfg.Redis, logger)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	cacheRepo := cacheRedis.NewRedisCache(redisClient, logger)

	var likeStore likestore.Store
	switch cfg.Likes.Backend {
	case "mongo":
		mongoClient, err := likesMongo.NewMongoDBConnection(&cfg.Mongo)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		defer func() {
			if err := mongoClient.Disconnect(context.TODO()); err != nil {
				logger.Error("Failed to disconnect MongoDB", zap.Error(err))
			}
		}()
		logger.Info("Successfully connected to MongoDB!")
		likeStore = likesMongo.NewMongoStore(mongoClient, cfg.Mongo.Database)
	default:
		likeStore = likesRedis.NewRedisStore(redisClient, logger)
	}

	var likePublisher usecase.LikeEventPublisher
	natsPublisher, err := natsAdapter.NewNATSPublisher(&cfg.NATS, logger)
	if err != nil {
		logger.Error("NATS unavailable, like events will not be published", zap.Error(err))
	} else {
		defer natsPublisher.Close()
		likePublisher = natsPublisher
	}

	source := contentapi.NewClient(&cfg.Content, logger)

	contentUC := usecase.NewContentUseCase(source, cacheRepo, logger, cfg.Content.PageSize, cfg.Content.CacheTTL)
	detailUC := usecase.NewDetailUseCase(source, logger, cfg.Content.ReadingWPM, cfg.Content.RelatedCount)
	likeUC := usecase.NewLikeUseCase(likeStore, likePublisher, logger)

	emailSender := email.NewSMTPSender(&cfg.SMTP, logger)
	relaySender := relayAdapter.NewHTTPSender(&cfg.Relay, logger)
	contactUC := usecase.NewContactUseCase(relaySender, emailSender, logger, cfg.Content.SiteName, cfg.SMTP.OwnerEmail)

	refresher := usecase.NewRefresher(source, cacheRepo, logger, cfg.Content.RefreshInterval, cfg.Content.CacheTTL)
	go refresher.Run(ctx)

	mux := chi.NewRouter()
	mux.Use(middleware.Logger(logger))
	router.SetupHealthRoute(mux)
	router.SetupContentRoutes(mux, handler.NewContentHandler(contentUC, detailUC, logger))
	router.SetupLikeRoutes(mux, handler.NewLikeHandler(likeUC, logger))
	router.SetupContactRoutes(mux, handler.NewContactHandler(contactUC, logger))

	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      mux,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	} else {
		logger.Info("HTTP server stopped.")
	}
}
