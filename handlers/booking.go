package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cleanhaven/models"
	"cleanhaven/services/booking"
	"cleanhaven/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// bookingCacheTTL bounds how long a cached booking view may be served.
const bookingCacheTTL = 5 * time.Minute

// BookingHandler exposes the booking intake endpoints.
type BookingHandler struct {
	Service  booking.BookingService
	Notifier notification.NotificationService
	Cache    *redis.Client
	Logger   *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, notifier notification.NotificationService, cache *redis.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Service:  svc,
		Notifier: notifier,
		Cache:    cache,
		Logger:   logger,
	}
}

// Info reports reachability of the bookings API.
func (h *BookingHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Bookings API is reachable",
		"method":    c.Request.Method,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// CreateBooking validates the submission, persists the aggregate, answers the
// caller, and only then fans out the post-booking notifications. The
// notifications never delay or fail the booking response.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var sub models.BookingSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"bookingNumber": "",
			"status":        models.BookingStatusError,
			"message":       "Invalid booking payload",
		})
		return
	}

	aggregate, err := h.Service.CreateBooking(sub)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"bookingNumber": aggregate.Booking.BookingNumber,
		"status":        models.BookingStatusPending,
		"message":       "Booking submitted successfully! You will receive a confirmation email shortly.",
		"data":          aggregate.View(),
	})

	// Response is written; everything from here is fire-and-forget.
	go h.Notifier.NotifyBookingCreated(aggregate)
}

func (h *BookingHandler) respondCreateError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"bookingNumber": "",
			"status":        models.BookingStatusError,
			"message":       validationErr.Message,
		})
		return
	}

	var unknownErr *booking.UnknownServiceTypeError
	if errors.As(err, &unknownErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"bookingNumber": "",
			"status":        models.BookingStatusError,
			"message":       unknownErr.Error(),
		})
		return
	}

	var detailErr *booking.DetailValidationError
	if errors.As(err, &detailErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"bookingNumber": "",
			"status":        models.BookingStatusError,
			"message":       "Service details are required",
		})
		return
	}

	// Store failures are logged in full but never leaked to the client.
	h.Logger.Error("booking creation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"success":       false,
		"bookingNumber": "",
		"status":        models.BookingStatusError,
		"message":       "An unexpected error occurred. Please try again later.",
	})
}

// GetBooking returns the reshaped aggregate for a booking number. Reads are
// idempotent, so the assembled view is served from cache when present.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	number := c.Param("bookingNumber")
	ctx := context.Background()
	cacheKey := bookingCacheKey(number)

	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	aggregate, err := h.Service.GetBookingByNumber(number)
	if errors.Is(err, booking.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Booking not found",
		})
		return
	}
	if err != nil {
		h.Logger.Error("get booking failed", zap.String("bookingNumber", number), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve booking",
		})
		return
	}

	payload, err := json.Marshal(aggregate.View())
	if err != nil {
		h.Logger.Error("failed to encode booking view", zap.String("bookingNumber", number), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve booking",
		})
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Set(ctx, cacheKey, payload, bookingCacheTTL).Err(); err != nil {
			h.Logger.Warn("failed to cache booking view", zap.String("bookingNumber", number), zap.Error(err))
		}
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// UpdateStatus transitions a booking's lifecycle status and drops the cached
// view so the next read reflects it.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	number := c.Param("bookingNumber")

	var input struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status payload"})
		return
	}

	record, err := h.Service.UpdateBookingStatus(number, input.Status)
	if err != nil {
		var validationErr *booking.ValidationError
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Message})
		default:
			h.Logger.Error("status update failed", zap.String("bookingNumber", number), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update booking"})
		}
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Del(context.Background(), bookingCacheKey(number)).Err(); err != nil {
			h.Logger.Warn("failed to invalidate booking cache", zap.String("bookingNumber", number), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"bookingNumber": record.BookingNumber,
		"status":        record.Status,
	})
}

func bookingCacheKey(number string) string {
	return "booking:" + number
}
