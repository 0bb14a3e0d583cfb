package notification

import (
	notificationRepo "cleanhaven/database/repository/notification"
	"cleanhaven/models"
	"cleanhaven/services/mailer"
	"cleanhaven/utils"

	"go.uber.org/zap"
)

// NotificationService runs the post-booking side effects and exposes the
// notification log for staff review. NotifyBookingCreated is fire-and-forget
// from the caller's perspective: its outcome is recorded in the log, never
// surfaced to the booking response.
type NotificationService interface {
	NotifyBookingCreated(aggregate *models.BookingAggregate)
	GetBookingNotifications(bookingNumber string) ([]models.Notification, error)
	GetNotificationsByStatus(status models.NotificationStatus, limit int64) ([]models.Notification, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo      notificationRepo.NotificationRepository
	Mailer    mailer.Mailer
	Workforce *WorkforceClient

	AdminEmail         string
	AdminTemplateID    string
	CustomerTemplateID string
	CompanyName        string

	Logger *zap.Logger
}

func (s *DefaultNotificationService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// GetBookingNotifications returns the notification trail for a booking.
func (s *DefaultNotificationService) GetBookingNotifications(bookingNumber string) ([]models.Notification, error) {
	return s.Repo.ListByBookingNumber(bookingNumber)
}

// GetNotificationsByStatus returns notifications in the given delivery state,
// for admin monitoring of failed or stuck deliveries.
func (s *DefaultNotificationService) GetNotificationsByStatus(status models.NotificationStatus, limit int64) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.Repo.ListByStatus(status, limit)
}
