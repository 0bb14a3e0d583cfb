package bookingRepo

import (
	"cleanhaven/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// NextSequence atomically increments and returns the booking counter.
	NextSequence() (int64, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByNumber retrieves a booking by its booking number. Returns
	// (nil, nil) when no booking exists with that number.
	GetByNumber(number string) (*models.Booking, error)
	// UpdateStatus sets the status of the booking with the given number and
	// returns the updated record.
	UpdateStatus(number string, status models.BookingStatus) (*models.Booking, error)
	// ListRecent retrieves bookings ordered newest first.
	ListRecent(limit, offset int64) ([]models.Booking, error)
	// ListByStatus retrieves bookings with the given status, newest first.
	ListByStatus(status models.BookingStatus) ([]models.Booking, error)
	// ListByCustomerIDs retrieves bookings belonging to any of the given customers.
	ListByCustomerIDs(customerIDs []string) ([]models.Booking, error)
}
