package handlers

import (
	"net/http"
	"strconv"

	"cleanhaven/models"
	"cleanhaven/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the notification log for staff review.
type NotificationHandler struct {
	Service notification.NotificationService
	Logger  *zap.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Service: svc, Logger: logger}
}

// GetBookingNotifications returns the notification trail for one booking.
func (h *NotificationHandler) GetBookingNotifications(c *gin.Context) {
	number := c.Param("bookingNumber")

	notifications, err := h.Service.GetBookingNotifications(number)
	if err != nil {
		h.Logger.Error("list booking notifications failed",
			zap.String("bookingNumber", number), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}

// ListNotificationsByStatus returns notifications in a given delivery state,
// for monitoring failed or stuck deliveries.
func (h *NotificationHandler) ListNotificationsByStatus(c *gin.Context) {
	status := models.NotificationStatus(c.DefaultQuery("status", string(models.NotificationStatusFailed)))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	notifications, err := h.Service.GetNotificationsByStatus(status, limit)
	if err != nil {
		h.Logger.Error("list notifications by status failed",
			zap.String("status", string(status)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}
