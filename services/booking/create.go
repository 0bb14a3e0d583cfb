package booking

import (
	"cleanhaven/models"

	"go.uber.org/zap"
)

// defaultCurrentStep is the workflow step recorded when the submission does
// not carry one.
const defaultCurrentStep = 4

// CreateBooking runs the multi-record aggregate write:
//
//	validate -> number -> customer -> service details -> sub-records -> booking
//
// The booking row is written last, after its dependents are confirmed to
// exist, so a persisted booking never references missing rows. If any step
// after the customer insert fails, the rows written so far are removed
// best-effort; the cleanup never masks the original error and the guarantee
// is non-atomic by design of the store.
func (s *DefaultBookingService) CreateBooking(sub models.BookingSubmission) (*models.BookingAggregate, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	st := models.ServiceType(sub.SelectedService)
	detail, err := mapServiceDetails(st, sub.ServiceDetails)
	if err != nil {
		return nil, err
	}

	number := s.NextBookingNumber()
	log := s.logger().With(zap.String("bookingNumber", number))
	log.Info("creating booking", zap.String("service", string(st)))

	customer := &models.Customer{
		FirstName:    sub.CustomerDetails.FirstName,
		LastName:     sub.CustomerDetails.LastName,
		Email:        sub.CustomerDetails.Email,
		Phone:        sub.CustomerDetails.Phone,
		Address:      sub.CustomerDetails.Address,
		Postcode:     sub.CustomerDetails.Postcode,
		Suburb:       sub.CustomerDetails.Suburb,
		ScheduleDate: sub.CustomerDetails.ScheduleDate,
		Notes:        sub.CustomerDetails.Notes,
	}
	if err := s.CustomerRepo.Create(customer); err != nil {
		return nil, &PersistenceError{Op: "create customer", Err: err}
	}

	detailID, err := s.DetailRepo.Create(detail)
	if err != nil {
		s.compensate(log, customer.ID, st, "")
		return nil, &PersistenceError{Op: "create service details", Err: err}
	}

	if err := s.createCustomerSubRecords(customer.ID, sub.CustomerDetails); err != nil {
		s.compensate(log, customer.ID, st, detailID)
		return nil, &PersistenceError{Op: "create customer sub-records", Err: err}
	}

	step := sub.CurrentStep
	if step == 0 {
		step = defaultCurrentStep
	}
	record := &models.Booking{
		BookingNumber:    number,
		Status:           models.BookingStatusPending,
		CurrentStep:      step,
		SelectedService:  st,
		Pricing:          sub.Pricing,
		CustomerID:       customer.ID,
		ServiceDetailsID: detailID,
	}
	if err := s.BookingRepo.Create(record); err != nil {
		s.compensate(log, customer.ID, st, detailID)
		return nil, &PersistenceError{Op: "create booking", Err: err}
	}

	aggregate, err := s.GetBookingByNumber(number)
	if err != nil {
		return nil, err
	}
	log.Info("booking created")
	return aggregate, nil
}

// validateSubmission checks the required fields before any write happens.
// The first missing field wins, in the order the intake form presents them.
func validateSubmission(sub models.BookingSubmission) error {
	if sub.SelectedService == "" {
		return &ValidationError{Field: "selectedService", Message: "Service selection is required"}
	}
	cd := sub.CustomerDetails
	if cd.FirstName == "" || cd.LastName == "" {
		return &ValidationError{Field: "name", Message: "Customer name is required"}
	}
	if cd.Email == "" {
		return &ValidationError{Field: "email", Message: "Customer email is required"}
	}
	if cd.Phone == "" {
		return &ValidationError{Field: "phone", Message: "Customer phone number is required"}
	}
	if cd.Address == "" {
		return &ValidationError{Field: "address", Message: "Service address is required"}
	}
	if cd.ScheduleDate == "" {
		return &ValidationError{Field: "scheduleDate", Message: "Schedule date is required"}
	}
	return nil
}

// createCustomerSubRecords writes the structured sub-details that came with
// the submission. A sub-record failure is fatal to the whole aggregate,
// unlike the post-booking notification path.
func (s *DefaultBookingService) createCustomerSubRecords(customerID string, cd models.CustomerDetailsInput) error {
	if cd.NDISDetails != nil {
		record := &models.CustomerNDISDetails{
			CustomerID:  customerID,
			NDISNumber:  cd.NDISDetails.NDISNumber,
			PlanManager: cd.NDISDetails.PlanManager,
		}
		if err := s.CustomerRepo.CreateNDISDetails(record); err != nil {
			return err
		}
	}
	if cd.CommercialDetails != nil {
		record := &models.CustomerCommercialDetails{
			CustomerID:    customerID,
			BusinessName:  cd.CommercialDetails.BusinessName,
			BusinessType:  cd.CommercialDetails.BusinessType,
			ABN:           cd.CommercialDetails.ABN,
			ContactPerson: cd.CommercialDetails.ContactPerson,
		}
		if err := s.CustomerRepo.CreateCommercialDetails(record); err != nil {
			return err
		}
	}
	if cd.EndOfLeaseDetails != nil {
		record := &models.CustomerEndOfLeaseDetails{
			CustomerID: customerID,
			Role:       cd.EndOfLeaseDetails.Role,
		}
		if err := s.CustomerRepo.CreateEndOfLeaseDetails(record); err != nil {
			return err
		}
	}
	return nil
}

// compensate removes rows written before a failed step. Deletes are
// best-effort: a failed delete is logged and the orphan row accepted.
func (s *DefaultBookingService) compensate(log *zap.Logger, customerID string, st models.ServiceType, detailID string) {
	if detailID != "" {
		if err := s.DetailRepo.Delete(st, detailID); err != nil {
			log.Warn("compensation delete of service details failed",
				zap.String("detailId", detailID), zap.Error(err))
		}
	}
	if customerID != "" {
		if err := s.CustomerRepo.Delete(customerID); err != nil {
			log.Warn("compensation delete of customer failed",
				zap.String("customerId", customerID), zap.Error(err))
		}
	}
}
