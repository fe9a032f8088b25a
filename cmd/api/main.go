// Command api runs the Gamer Once, Gamer Always commerce HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gameronce/commerce-api/internal/api"
	"github.com/gameronce/commerce-api/internal/core/ports"
	"github.com/gameronce/commerce-api/internal/core/service"
	"github.com/gameronce/commerce-api/internal/infrastructure/chat"
	"github.com/gameronce/commerce-api/internal/infrastructure/config"
	"github.com/gameronce/commerce-api/internal/infrastructure/db/mongodb"
	"github.com/gameronce/commerce-api/internal/infrastructure/db/postgres"
	"github.com/gameronce/commerce-api/internal/infrastructure/db/redis"
	"github.com/gameronce/commerce-api/internal/infrastructure/email"
	"github.com/gameronce/commerce-api/internal/infrastructure/media"
	"github.com/gameronce/commerce-api/internal/infrastructure/queue"
	"github.com/gameronce/commerce-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Gamer Once, Gamer Always - Commerce API
// @version 1.0
// @description Backend de la tienda online Gamer Once, Gamer Always.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Level: "info"})
		bootLog.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Postgres (required) ---
	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN()})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	// --- Redis (optional: catalog listing falls back to the database) ---
	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
		redisClient = nil
	}

	// --- Mongo (optional: chat transcripts are best effort) ---
	mongoClient, mongoDB, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Warn().Err(err).Msg("mongo unavailable, chat transcripts disabled")
		mongoDB = nil
	} else {
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(disconnectCtx)
		}()
	}

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	adminRepo := postgres.NewAdminRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	brandRepo := postgres.NewBrandRepository(db)
	productRepo := postgres.NewProductRepository(db)
	cartRepo := postgres.NewCartRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	addressRepo := postgres.NewAddressRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	var productCache ports.ProductCache
	if redisClient != nil {
		productCache = redis.NewCatalogCache(redisClient, log)
	}

	var conversationRepo ports.ConversationRepository
	if mongoDB != nil {
		chatRepo := mongodb.NewChatRepository(mongoDB)
		if err := chatRepo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("mongo index creation failed")
		}
		conversationRepo = chatRepo
	}

	// --- Providers ---
	var mediaStore ports.MediaStore
	s3Store, err := media.NewS3Store(ctx, media.Config{
		Region:    cfg.S3.Region,
		Bucket:    cfg.S3.Bucket,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		Endpoint:  cfg.S3.Endpoint,
	})
	if err != nil {
		log.Warn().Err(err).Msg("s3 unavailable, image upload disabled")
	} else {
		mediaStore = s3Store
	}

	mailer := email.NewSMTPMailer(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	groq := chat.NewGroqProvider(chat.Config{
		APIKey:  cfg.Groq.APIKey,
		Model:   cfg.Groq.Model,
		BaseURL: cfg.Groq.BaseURL,
	})

	// --- Services ---
	tokenService := service.NewTokenService(service.TokenConfig{
		AccessSecret:  cfg.Auth.AccessSecret,
		RefreshSecret: cfg.Auth.RefreshSecret,
		AccessTTL:     cfg.Auth.AccessTTL,
		RefreshTTL:    cfg.Auth.RefreshTTL,
		Issuer:        cfg.Auth.Issuer,
	})

	notificationService := service.NewNotificationService(mailer, log)
	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, notificationService, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(userRepo, adminRepo, tokenService, log)
	userService := service.NewUserService(userRepo)
	adminService := service.NewAdminService(adminRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	brandService := service.NewBrandService(brandRepo)
	productService := service.NewProductService(productRepo, categoryRepo, brandRepo, mediaStore, productCache, log)
	cartService := service.NewCartService(cartRepo, userRepo, productRepo, log)
	orderService := service.NewOrderService(orderRepo, userRepo, addressRepo, productRepo, dispatcher.Enqueue, log)
	addressService := service.NewAddressService(addressRepo, userRepo)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, log)
	reviewService := service.NewReviewService(reviewRepo, userRepo, productRepo)
	chatService := service.NewChatService(groq, conversationRepo, log)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Auth:       authService,
		Tokens:     tokenService,
		Users:      userService,
		Admins:     adminService,
		Categories: categoryService,
		Brands:     brandService,
		Products:   productService,
		Cart:       cartService,
		Orders:     orderService,
		Addresses:  addressService,
		Payments:   paymentService,
		Reviews:    reviewService,
		Chat:       chatService,
		DB:         db,
		Redis:      redisClient,
		Mongo:      mongoDB,
		Logger:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("commerce api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
