package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/app/background"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/config"
	httpdelivery "github.com/ClaudioLoreto/stappa-loyalty-service/internal/delivery/http"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/delivery/http/handlers"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	publisher "github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/kafka"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/memory"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/metrics"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/migrate"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/repository"
	rediscache "github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/redis"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	setupLogger(cfg)

	// Init storage
	var (
		tokenRepo      domain.TokenRepository
		promoRepo      domain.PromoRepository
		progressRepo   domain.ProgressRepository
		validationRepo domain.ValidationRepository
		processor      domain.RedemptionProcessor
	)

	switch cfg.LoyaltyDB.Driver {
	case "memory":
		tokenStore := memory.NewTokenStore()
		progressStore := memory.NewProgressStore()
		validationStore := memory.NewValidationStore()
		tokenRepo = tokenStore
		promoRepo = memory.NewPromoStore()
		progressRepo = progressStore
		validationRepo = validationStore
		processor = memory.NewRedemptionProcessor(tokenStore, progressStore, validationStore)
	default:
		db := postgres.MustInitDB(cfg)
		if cfg.LoyaltyDB.MigrationsPath != "" {
			if err := migrate.RunMigrations(db, cfg.LoyaltyDB.MigrationsPath); err != nil {
				log.Fatalf("failed to run migrations: %v", err)
			}
		}
		tokenRepo = repository.NewDefaultTokenRepository(db)
		promoRepo = repository.NewDefaultPromoRepository(db)
		progressRepo = repository.NewDefaultProgressRepository(db)
		validationRepo = repository.NewDefaultValidationRepository(db)
		processor = repository.NewRedemptionTxRepository(db)
	}

	// Init metrics
	loyaltyMetrics := metrics.NewLoyaltyMetrics()

	// Init redis progress cache (optional)
	var cache *rediscache.ProgressCache
	if cfg.RedisCache.Addr != "" {
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisCache.Addr,
			Password: cfg.RedisCache.Password,
			DB:       cfg.RedisCache.DB,
		})
		cache = rediscache.NewProgressCache(redisClient, cfg.RedisCache.TTL)
	}

	// Init kafka validation publisher (optional)
	var validationPublisher *publisher.ValidationPublisher
	if cfg.KafkaService.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		validationPublisher = publisher.NewValidationPublisher(brokers, cfg.KafkaService.Topic)
	}

	// Init audit trail
	audit := usecase.NewAuditTrail(validationRepo, loyaltyMetrics, 1024)

	// Init usecases
	tokenUsecase := usecase.NewDefaultTokenUsecase(tokenRepo, promoRepo, progressRepo, loyaltyMetrics, cfg.Loyalty.TokenTTL)
	validationUsecase := usecase.NewDefaultValidationUsecase(tokenRepo, promoRepo, processor, validationRepo, audit, validationPublisher, cache, loyaltyMetrics)
	progressUsecase := usecase.NewDefaultProgressUsecase(progressRepo, promoRepo, cache)
	promoUsecase := usecase.NewDefaultPromoUsecase(promoRepo)

	// Background tasks: expired-token sweep, audit retry flush
	tasks := background.NewBackgroundTasks(tokenRepo, audit, loyaltyMetrics, cfg.Loyalty.SweepInterval)
	tasks.StartAll(context.Background())

	// HTTP delivery
	tokenHandler := handlers.NewTokenHandler(tokenUsecase)
	validationHandler := handlers.NewValidationHandler(validationUsecase, progressUsecase, cache)
	promoHandler := handlers.NewPromoHandler(promoUsecase)
	router := httpdelivery.NewRouter(tokenHandler, validationHandler, promoHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("loyalty service started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.LoyaltyConfig) {
	var level slog.Level
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
