package routes

import (
	"context"
	"net/http"
	"time"

	"eventra/database"
	"eventra/handlers"
	"eventra/middleware"
	"eventra/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.Me)
		api.PUT("/profile-picture", hb.Auth.UpdateProfilePicture)
	}
}

// RegisterVendorRoutes registers the public directory and vendor profile
// management.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendors")
	{
		api.GET("", hb.Vendor.List)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.GET("/me", middleware.RequireRole(models.RoleVendor), hb.Vendor.GetOwn)
		protected.POST("", middleware.RequireRole(models.RoleVendor), hb.Vendor.Upsert)

		api.GET("/:id", hb.Vendor.GetByID)
	}
}

// RegisterServiceRoutes registers catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("/vendor/:vendorId", hb.Service.ListByVendor)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleVendor))
		protected.POST("", hb.Service.Add)
		protected.DELETE("/:id", hb.Service.Delete)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRole(models.RoleCustomer), hb.Booking.Create)
		api.GET("", hb.Booking.List)
		api.PUT("/:id/status", middleware.RequireRole(models.RoleVendor), hb.Booking.UpdateStatus)
	}
}

// RegisterReviewRoutes registers review submission and listing.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/vendor/:vendorId", hb.Review.ListByVendor)
		api.POST("", middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleCustomer), hb.Review.Create)
	}
}

// RegisterChatRoutes registers the REST side of the messaging relay.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/send", hb.Chat.Send)
		api.GET("/history/:userId", hb.Chat.History)
		api.GET("/conversations", hb.Chat.Conversations)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/users", hb.Admin.ListUsers)
		adminGroup.DELETE("/users/:id", hb.Admin.DeleteUser)
		adminGroup.GET("/vendors", hb.Admin.ListVendors)
		adminGroup.PUT("/vendors/:id/verify", hb.Admin.ToggleVerified)
		adminGroup.GET("/bookings", hb.Admin.ListBookings)
		adminGroup.DELETE("/bookings/:id", hb.Admin.DeleteBooking)
	}
}

// RegisterUploadRoutes registers the image upload proxy.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/upload", middleware.JWTAuthMiddleware(hb.UserRepo), hb.Storage.Upload)
}

// RegisterAssistantRoutes registers the planning assistant.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/assistant", hb.Assistant.Ask)
}

// RegisterHealthRoute registers a health-check endpoint backed by a database
// ping.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Eventra"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterVendorRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterHealthRoute(r)
}
