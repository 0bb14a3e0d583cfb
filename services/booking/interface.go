package booking

import (
	bookingRepo "cleanhaven/database/repository/booking"
	customerRepo "cleanhaven/database/repository/customer"
	servicedetailRepo "cleanhaven/database/repository/servicedetail"
	"cleanhaven/models"
	"cleanhaven/utils"

	"go.uber.org/zap"
)

// BookingService defines the booking intake workflow: the multi-record
// aggregate write, the joined read, and the admin views over bookings.
type BookingService interface {
	CreateBooking(sub models.BookingSubmission) (*models.BookingAggregate, error)
	GetBookingByNumber(number string) (*models.BookingAggregate, error)
	UpdateBookingStatus(number string, status models.BookingStatus) (*models.Booking, error)
	ListRecentBookings(limit, offset int64) ([]models.Booking, error)
	ListPendingBookings() ([]models.Booking, error)
	ListTodaysBookings() ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	BookingRepo  bookingRepo.BookingRepository
	CustomerRepo customerRepo.CustomerRepository
	DetailRepo   servicedetailRepo.ServiceDetailRepository
	Logger       *zap.Logger
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}
