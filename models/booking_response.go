package models

import "time"

// BookingAggregate is the full logical booking assembled for read and write:
// the booking row plus its customer, optional customer sub-records, and the
// service-type-specific detail record.
type BookingAggregate struct {
	Booking           Booking                    `json:"booking"`
	Customer          Customer                   `json:"customer"`
	NDISDetails       *CustomerNDISDetails       `json:"ndisDetails,omitempty"`
	CommercialDetails *CustomerCommercialDetails `json:"commercialDetails,omitempty"`
	EndOfLeaseDetails *CustomerEndOfLeaseDetails `json:"endOfLeaseDetails,omitempty"`
	ServiceDetail     ServiceDetail              `json:"serviceDetails"`
}

// CustomerDetailsView flattens the customer and sub-records into the external
// response contract.
type CustomerDetailsView struct {
	FirstName         string                  `json:"firstName"`
	LastName          string                  `json:"lastName"`
	Email             string                  `json:"email"`
	Phone             string                  `json:"phone"`
	Address           string                  `json:"address"`
	Postcode          string                  `json:"postcode,omitempty"`
	Suburb            string                  `json:"suburb,omitempty"`
	ScheduleDate      string                  `json:"scheduleDate"`
	Notes             string                  `json:"notes,omitempty"`
	NDISDetails       *NDISDetailsInput       `json:"ndisDetails,omitempty"`
	CommercialDetails *CommercialDetailsInput `json:"commercialDetails,omitempty"`
	EndOfLeaseDetails *EndOfLeaseDetailsInput `json:"endOfLeaseDetails,omitempty"`
}

// BookingView is the reshaped aggregate returned by the read endpoint.
type BookingView struct {
	Success         bool                `json:"success"`
	BookingNumber   string              `json:"bookingNumber"`
	Status          BookingStatus       `json:"status"`
	SelectedService ServiceType         `json:"selectedService"`
	CustomerDetails CustomerDetailsView `json:"customerDetails"`
	ServiceDetails  ServiceDetail       `json:"serviceDetails"`
	Pricing         Pricing             `json:"pricing"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// View reshapes the aggregate into the external response contract.
func (a *BookingAggregate) View() BookingView {
	cd := CustomerDetailsView{
		FirstName:    a.Customer.FirstName,
		LastName:     a.Customer.LastName,
		Email:        a.Customer.Email,
		Phone:        a.Customer.Phone,
		Address:      a.Customer.Address,
		Postcode:     a.Customer.Postcode,
		Suburb:       a.Customer.Suburb,
		ScheduleDate: a.Customer.ScheduleDate,
		Notes:        a.Customer.Notes,
	}
	if a.NDISDetails != nil {
		cd.NDISDetails = &NDISDetailsInput{
			NDISNumber:  a.NDISDetails.NDISNumber,
			PlanManager: a.NDISDetails.PlanManager,
		}
	}
	if a.CommercialDetails != nil {
		cd.CommercialDetails = &CommercialDetailsInput{
			BusinessName:  a.CommercialDetails.BusinessName,
			BusinessType:  a.CommercialDetails.BusinessType,
			ABN:           a.CommercialDetails.ABN,
			ContactPerson: a.CommercialDetails.ContactPerson,
		}
	}
	if a.EndOfLeaseDetails != nil {
		cd.EndOfLeaseDetails = &EndOfLeaseDetailsInput{Role: a.EndOfLeaseDetails.Role}
	}
	return BookingView{
		Success:         true,
		BookingNumber:   a.Booking.BookingNumber,
		Status:          a.Booking.Status,
		SelectedService: a.Booking.SelectedService,
		CustomerDetails: cd,
		ServiceDetails:  a.ServiceDetail,
		Pricing:         a.Booking.Pricing,
		CreatedAt:       a.Booking.CreatedAt,
		UpdatedAt:       a.Booking.UpdatedAt,
	}
}
