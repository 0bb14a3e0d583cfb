package booking

import (
	"cleanhaven/models"
)

// GetBookingByNumber retrieves the booking with its joined customer,
// sub-records and service-type detail record. Absence is reported with
// ErrNotFound rather than a store error.
func (s *DefaultBookingService) GetBookingByNumber(number string) (*models.BookingAggregate, error) {
	record, err := s.BookingRepo.GetByNumber(number)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch booking", Err: err}
	}
	if record == nil {
		return nil, ErrNotFound
	}

	customer, err := s.CustomerRepo.GetByID(record.CustomerID)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch customer", Err: err}
	}

	detail, err := s.DetailRepo.GetByID(record.SelectedService, record.ServiceDetailsID)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch service details", Err: err}
	}

	ndis, err := s.CustomerRepo.GetNDISDetails(record.CustomerID)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch NDIS details", Err: err}
	}
	commercial, err := s.CustomerRepo.GetCommercialDetails(record.CustomerID)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch commercial details", Err: err}
	}
	endOfLease, err := s.CustomerRepo.GetEndOfLeaseDetails(record.CustomerID)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch end of lease details", Err: err}
	}

	return &models.BookingAggregate{
		Booking:           *record,
		Customer:          *customer,
		NDISDetails:       ndis,
		CommercialDetails: commercial,
		EndOfLeaseDetails: endOfLease,
		ServiceDetail:     detail,
	}, nil
}
