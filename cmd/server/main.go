package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aijobradar/internal/cache"
	"aijobradar/internal/config"
	"aijobradar/internal/email"
	"aijobradar/internal/logger"
	"aijobradar/internal/repository"
	"aijobradar/internal/risk"
	"aijobradar/internal/service"
	"aijobradar/internal/transport/rest"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	ctx := context.Background()

	aiConfig := config.DefaultAIConfig()
	if aiConfig.IsEnabled() {
		log.Info("career coach model configured", zap.String("model", aiConfig.Model))
	} else {
		log.Info("GEMINI_API_KEY not set, career coach uses canned replies")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	log.Info("connected to MongoDB", zap.String("db", cfg.MongoDB))

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("failed to ping Redis", zap.Error(err))
	}
	log.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	riskRepo := repository.NewRiskScoreRepo(db)
	courseRepo := repository.NewCourseRepo(db)

	// Initialize caches
	riskCache := cache.NewRiskCache(rdb)
	statsCache := cache.NewIndustryStatsCache(rdb)

	// Initialize services
	scorer := risk.NewScorer()
	simulator := risk.NewSimulator(risk.DashboardSimulatorConfig())

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	profileSvc := service.NewProfileService(userRepo)
	riskSvc := service.NewRiskService(profileSvc, riskRepo, scorer, riskCache, statsCache, log)
	whatifSvc := service.NewWhatIfService(riskSvc, simulator)
	courseSvc := service.NewCourseService(courseRepo)
	coachSvc := service.NewCoachService()

	// Email sender is optional: weekly alerts are skipped when AWS
	// credentials are not available.
	var sender service.EmailSender
	if sesSender, err := email.NewSESSender(ctx, cfg.AWSRegion, cfg.AlertSender); err != nil {
		log.Warn("SES unavailable, weekly alert emails disabled", zap.Error(err))
	} else {
		sender = sesSender
	}
	alertSvc := service.NewAlertService(userRepo, scorer, courseSvc, sender, log)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		ProfileService: profileSvc,
		RiskService:    riskSvc,
		WhatIfService:  whatifSvc,
		CourseService:  courseSvc,
		CoachService:   coachSvc,
		AlertService:   alertSvc,
		CronSecret:     cfg.CronSecret,
		Logger:         log,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
