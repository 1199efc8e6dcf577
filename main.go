package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventra/config"
	"eventra/cron"
	"eventra/database"
	bookingRepoPkg "eventra/database/repository/booking"
	messageRepoPkg "eventra/database/repository/message"
	reviewRepoPkg "eventra/database/repository/review"
	serviceRepoPkg "eventra/database/repository/service"
	userRepoPkg "eventra/database/repository/user"
	vendorRepoPkg "eventra/database/repository/vendor"
	"eventra/handlers"
	"eventra/middleware"
	"eventra/realtime"
	"eventra/routes"
	"eventra/services/assistant"
	"eventra/services/booking"
	"eventra/services/catalog"
	"eventra/services/chat"
	"eventra/services/review"
	"eventra/services/tasks"
	"eventra/services/user"
	"eventra/services/vendor"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	vendorRepo := vendorRepoPkg.NewMongoVendorRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()

	// realtime relay.
	hub := realtime.NewHub(logger)

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	vendorService := &vendor.DefaultVendorService{
		Repo:     vendorRepo,
		UserRepo: userRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:       serviceRepo,
		VendorRepo: vendorRepo,
	}
	reminderScheduler := tasks.NewAsynqScheduler()
	defer reminderScheduler.Close()
	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		VendorRepo: vendorRepo,
		UserRepo:   userRepo,
		Reminders:  reminderScheduler,
	}
	reviewService := &review.DefaultReviewService{
		Repo:       reviewRepo,
		VendorRepo: vendorRepo,
		UserRepo:   userRepo,
	}
	chatService := &chat.DefaultChatService{
		Repo:     messageRepo,
		UserRepo: userRepo,
		Emitter:  hub,
	}
	assistantService := assistant.NewAssistantService(config.AppConfig.GeminiAPIKey)

	// Background reminder worker delivering through the relay.
	cron.InitReminderWorker(hub)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Auth:      &handlers.AuthHandler{Users: userService, Chat: chatService},
		Vendor:    &handlers.VendorHandler{Vendors: vendorService},
		Service:   &handlers.ServiceHandler{Catalog: catalogService},
		Booking:   &handlers.BookingHandler{Bookings: bookingService},
		Review:    &handlers.ReviewHandler{Reviews: reviewService},
		Chat:      &handlers.ChatHandler{Chat: chatService},
		Admin:     &handlers.AdminHandler{Users: userService, Vendors: vendorService, Bookings: bookingService},
		Storage:   &handlers.StorageHandler{Storage: cloudinaryStorageService},
		Assistant: &handlers.AssistantHandler{Assistant: assistantService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Websocket endpoint for the messaging relay.
	router.GET("/ws", realtime.ServeWS(hub, chatService, logger))

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
