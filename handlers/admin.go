package handlers

import (
	"net/http"
	"strconv"

	"cleanhaven/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the staff-facing booking views.
type AdminHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc booking.BookingService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, Logger: logger}
}

// ListBookings returns recent bookings, paginated with limit/offset.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	bookings, err := h.Service.ListRecentBookings(limit, offset)
	if err != nil {
		h.Logger.Error("list bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// ListPendingBookings returns bookings awaiting confirmation.
func (h *AdminHandler) ListPendingBookings(c *gin.Context) {
	bookings, err := h.Service.ListPendingBookings()
	if err != nil {
		h.Logger.Error("list pending bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// ListTodaysBookings returns bookings scheduled for today.
func (h *AdminHandler) ListTodaysBookings(c *gin.Context) {
	bookings, err := h.Service.ListTodaysBookings()
	if err != nil {
		h.Logger.Error("list today's bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}
