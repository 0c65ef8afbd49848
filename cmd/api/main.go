package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"attrition-risk/internal/config"
	"attrition-risk/internal/db"
	apihttp "attrition-risk/internal/http"
	"attrition-risk/internal/repository"
	"attrition-risk/internal/service"
	"attrition-risk/internal/telemetry"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	shutdownMetrics, metrics := telemetry.InitMetrics(ctx, "attrition-risk", cfg.MetricsEndpoint, logger)
	defer func() {
		if err := shutdownMetrics(context.Background()); err != nil {
			logger.Warn("metrics shutdown", zap.Error(err))
		}
	}()

	var (
		populationRepo repository.PopulationRepository = repository.NewMemoryPopulationRepository()
		assessmentRepo repository.AssessmentRepository = repository.NewMemoryAssessmentRepository()
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		populationRepo = repository.NewPgPopulationRepository(pool)
		assessmentRepo = repository.NewPgAssessmentRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not configured, using in-memory storage")
	}

	statsCache := service.NewMemoryStatsCache(cfg.PopulationCacheTTL)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			statsCache = service.NewRedisStatsCache(redisClient, cfg.PopulationCacheTTL)
		}
		cancel()
	}

	var jwtSvc *service.JWTService
	if cfg.JWTSecret != "" {
		jwtSvc = service.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAccessTTL)
	} else {
		logger.Warn("jwt secret not configured, API is unauthenticated")
	}

	populationSvc := service.NewPopulationService(logger, populationRepo, statsCache, metrics)
	assessmentSvc := service.NewAssessmentService(logger, populationSvc, assessmentRepo, metrics, cfg.BatchConcurrency)
	datasetSvc := service.NewDatasetService(logger, metrics, cfg.GeneratorSeed, cfg.GeneratorSize, cfg.GeneratorMaxSize)

	router := apihttp.NewRouter(
		logger,
		jwtSvc,
		apihttp.NewAssessmentHandler(logger, assessmentSvc),
		apihttp.NewPopulationHandler(logger, populationSvc),
		apihttp.NewDatasetHandler(logger, datasetSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
