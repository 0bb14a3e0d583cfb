package booking

import (
	"time"

	"cleanhaven/models"
)

// UpdateBookingStatus transitions a booking to a new lifecycle status.
// Only persistable statuses are accepted; the error sentinel never reaches
// the store.
func (s *DefaultBookingService) UpdateBookingStatus(number string, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Message: "Invalid booking status"}
	}

	record, err := s.BookingRepo.UpdateStatus(number, status)
	if err != nil {
		return nil, &PersistenceError{Op: "update booking status", Err: err}
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

// ListRecentBookings returns bookings for the admin portal, newest first.
func (s *DefaultBookingService) ListRecentBookings(limit, offset int64) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 50
	}
	bookings, err := s.BookingRepo.ListRecent(limit, offset)
	if err != nil {
		return nil, &PersistenceError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}

// ListPendingBookings returns bookings awaiting confirmation.
func (s *DefaultBookingService) ListPendingBookings() ([]models.Booking, error) {
	bookings, err := s.BookingRepo.ListByStatus(models.BookingStatusPending)
	if err != nil {
		return nil, &PersistenceError{Op: "list pending bookings", Err: err}
	}
	return bookings, nil
}

// ListTodaysBookings returns bookings whose customers are scheduled today.
func (s *DefaultBookingService) ListTodaysBookings() ([]models.Booking, error) {
	today := time.Now().Format("2006-01-02")
	customerIDs, err := s.CustomerRepo.ListIDsByScheduleDate(today)
	if err != nil {
		return nil, &PersistenceError{Op: "list today's customers", Err: err}
	}
	bookings, err := s.BookingRepo.ListByCustomerIDs(customerIDs)
	if err != nil {
		return nil, &PersistenceError{Op: "list today's bookings", Err: err}
	}
	return bookings, nil
}
