package routes

import (
	"net/http"
	"time"

	"cleanhaven/handlers"
	"cleanhaven/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

// RegisterBookingRoutes registers the public booking intake endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.Info)
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/:bookingNumber", hb.Booking.GetBooking)
		api.PATCH("/:bookingNumber/status", hb.Booking.UpdateStatus)
		api.GET("/:bookingNumber/notifications", hb.Notification.GetBookingNotifications)
	}
}

// RegisterAdminRoutes registers the staff-facing monitoring endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.GET("/bookings", hb.Admin.ListBookings)
		api.GET("/bookings/pending", hb.Admin.ListPendingBookings)
		api.GET("/bookings/today", hb.Admin.ListTodaysBookings)
		api.GET("/notifications", hb.Notification.ListNotificationsByStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm CleanHaven",
			"services": utils.GetHealthStatus(),
		})
	})
}
