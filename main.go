// File: nurturebloom/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"nurturebloom/config"
	"nurturebloom/cron"
	"nurturebloom/database"
	consultationRepo "nurturebloom/database/repository/consultation"
	symptomRepo "nurturebloom/database/repository/symptom"
	userRepoPkg "nurturebloom/database/repository/user"
	webinarRepo "nurturebloom/database/repository/webinar"
	"nurturebloom/handlers"
	"nurturebloom/middleware"
	"nurturebloom/routes"
	"nurturebloom/services/booking"
	"nurturebloom/services/tasks"
	"nurturebloom/services/triage"
	"nurturebloom/services/user"
	"nurturebloom/services/webinar"
	"nurturebloom/utils"
)

// indexer is implemented by every Mongo repository.
type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitRedis()

	// repositories.
	db := database.Database()
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	consultations := consultationRepo.NewMongoConsultationRepo(db)
	webinars := webinarRepo.NewMongoWebinarRepo(db)
	symptoms := symptomRepo.NewMongoSymptomRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	for _, repo := range []indexer{userRepo, consultations, webinars, symptoms} {
		if err := repo.EnsureIndexes(indexCtx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}
	cancelIndexes()

	// background reminders.
	reminders := tasks.NewAsynqReminderScheduler(cron.RedisOpt(), config.AppConfig.ReminderLeadTime)
	worker := cron.InitReminderWorker()

	// services.
	tokens := utils.NewTokenService(config.AppConfig.JWTSecret, config.AppConfig.TokenTTL)
	userService := user.NewUserService(userRepo, tokens, utils.NewRedisRevocationStore(utils.GetAuthCacheClient()))
	consultationService := booking.NewConsultationService(
		consultations,
		userRepo,
		utils.NewRedisLocker(utils.GetCacheClient(), config.AppConfig.BookingLockTTL),
		config.AppConfig.MeetingBaseURL,
	)
	webinarService := webinar.NewWebinarService(webinars, userRepo, reminders)
	triageService := triage.NewTriageService(symptoms)

	handlerBundle := handlers.NewHandlerBundle(userService, consultationService, webinarService, triageService)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx, []*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stopMonitor()
	worker.Shutdown()
	if err := reminders.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder queue: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}
	_ = logger.Sync()

	logger.Sugar().Info("main: server stopped gracefully")
}
