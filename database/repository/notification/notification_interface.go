package notificationRepo

import (
	"cleanhaven/models"
)

// NotificationRepository defines methods for the unified notifications
// collection. Audit rows are append-only; delivery rows are updated in place
// exactly once as their delivery attempt resolves.
type NotificationRepository interface {
	// Create inserts a new notification record and fills in its id.
	Create(notification *models.Notification) error
	// UpdateStatus applies the delivery resolution to a notification.
	UpdateStatus(id string, update models.NotificationStatusUpdate) error
	// ListByBookingNumber retrieves the notification trail for a booking,
	// newest first.
	ListByBookingNumber(bookingNumber string) ([]models.Notification, error)
	// ListByStatus retrieves notifications with the given status, newest first.
	ListByStatus(status models.NotificationStatus, limit int64) ([]models.Notification, error)
}
