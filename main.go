package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trustmate/config"
	"trustmate/cron"
	"trustmate/database"
	"trustmate/database/repository"
	"trustmate/handlers"
	"trustmate/middleware"
	"trustmate/routes"
	"trustmate/services/identity"
	"trustmate/services/notification"
	"trustmate/services/session"
	"trustmate/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	var sessionCache *redis.Client
	if utils.RedisConfigured() {
		utils.InitSessionCache()
		utils.InitOTPCache()
		sessionCache = utils.GetSessionCacheClient()
	}

	// Repositories. The in-memory pair ships with the demo seed data; Mongo
	// takes over when USE_MONGO is set.
	var bookingRepo repository.BookingRepository
	var technicianRepo repository.TechnicianRepository
	var identitySvc identity.IdentityService
	if config.AppConfig.UseMongo {
		database.InitDB()
		bookingRepo = repository.NewMongoBookingRepo()
		technicianRepo = repository.NewMongoTechnicianRepo()
		identitySvc = identity.NewDefaultIdentityService(utils.GetOTPCacheClient())
	} else {
		bookingRepo = repository.NewMemoryBookingRepo(database.SeedBookings()...)
		technicianRepo = repository.NewMemoryTechnicianRepo(database.SeedTechnician())
		identitySvc = identity.NewMockIdentityService()
	}

	deliverySvc := notification.NewMockDeliveryService()

	var reminders session.ReminderScheduler
	if utils.RedisConfigured() {
		queue := cron.NewReminderQueue()
		defer queue.Close()
		reminders = queue
		cron.InitReminderWorker(deliverySvc)
	}

	manager := session.NewManager(session.Deps{
		Identity:    identitySvc,
		Bookings:    bookingRepo,
		Technicians: technicianRepo,
		Delivery:    deliverySvc,
		Reminders:   reminders,
		Logger:      logger,
	}, sessionCache)

	sessionHandler := handlers.NewSessionHandler(manager)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, sessionHandler, manager)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	manager.Shutdown()
	logger.Sugar().Info("main: server stopped gracefully")
}
