package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookflow/audit"
	"bookflow/clients"
	"bookflow/config"
	"bookflow/cron"
	"bookflow/database"
	"bookflow/handlers"
	"bookflow/middleware"
	"bookflow/routes"
	"bookflow/services/appointment"
	"bookflow/services/notification"
	"bookflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())

	// Upstream clients.
	bookingClient := clients.NewBookingClient(config.AppConfig.BookingAPIURL)
	identityClient := clients.NewIdentityClient(config.AppConfig.IdentityAPIURL)

	// Audit trail.
	auditDispatcher := audit.NewDispatcher(audit.NewLogger(database.GetDatabase()))

	// Notifications.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	notifyService, err := notification.NewDefaultService(asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	flowService := &appointment.DefaultFlowService{
		Booking:  bookingClient,
		Identity: identityClient,
		Audit:    auditDispatcher,
		Notify:   notifyService,
	}

	refresher := utils.NewRefresher(utils.GetAuthCacheClient(), identityClient.Refresh)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Appointment: handlers.NewAppointmentHandler(flowService),
		Auth:        handlers.NewAuthHandler(identityClient),
		Admin:       handlers.NewAdminHandler(identityClient, bookingClient),
		Refresher:   refresher,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitNotificationWorker(&notification.Mailer{})
	utils.StartHealthMonitor(utils.Dependencies{
		Upstreams: map[string]utils.Pinger{
			"booking":  bookingClient,
			"identity": identityClient,
		},
		Redis: map[string]*redis.Client{
			"cache": utils.GetCacheClient(),
			"auth":  utils.GetAuthCacheClient(),
		},
		Mongo: database.MongoClient,
	})

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

	logger.Sugar().Info("main: server stopped gracefully")
}
