// File: cleanhaven/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleanhaven/config"
	"cleanhaven/database"
	bookingRepo "cleanhaven/database/repository/booking"
	customerRepo "cleanhaven/database/repository/customer"
	notificationRepo "cleanhaven/database/repository/notification"
	servicedetailRepo "cleanhaven/database/repository/servicedetail"
	"cleanhaven/handlers"
	"cleanhaven/middleware"
	"cleanhaven/routes"
	"cleanhaven/services/booking"
	"cleanhaven/services/mailer"
	"cleanhaven/services/notification"
	"cleanhaven/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitCache()
	cacheClient := utils.GetCacheClient()
	utils.StartHealthMonitor(cacheClient, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo(db)
	custRepo := customerRepo.NewMongoCustomerRepo(db)
	detailRepo := servicedetailRepo.NewMongoServiceDetailRepo(db)
	notifRepo := notificationRepo.NewMongoNotificationRepo(db)

	// services.
	bookingService := &booking.DefaultBookingService{
		BookingRepo:  bkRepo,
		CustomerRepo: custRepo,
		DetailRepo:   detailRepo,
		Logger:       logger,
	}

	sendgridMailer := mailer.NewSendGridMailer(
		config.AppConfig.SendGridAPIKey,
		config.AppConfig.SendGridFromEmail,
		config.AppConfig.CompanyName,
	)

	notificationService := &notification.DefaultNotificationService{
		Repo:               notifRepo,
		Mailer:             sendgridMailer,
		Workforce:          notification.NewWorkforceClient(config.AppConfig.WorkforceWebhookURL),
		AdminEmail:         config.AppConfig.SendGridBusinessEmail,
		AdminTemplateID:    config.AppConfig.AdminBookingTemplateID,
		CustomerTemplateID: config.AppConfig.CustomerBookingTemplate,
		CompanyName:        config.AppConfig.CompanyName,
		Logger:             logger,
	}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, notificationService, cacheClient, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, logger)
	adminHandler := handlers.NewAdminHandler(bookingService, logger)

	handlerBundle := &handlers.HandlerBundle{
		Booking:      bookingHandler,
		Notification: notificationHandler,
		Admin:        adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	if err := mongoClient.Disconnect(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
