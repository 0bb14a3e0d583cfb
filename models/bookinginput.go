package models

// NDISDetailsInput is the optional NDIS block of a submission.
type NDISDetailsInput struct {
	NDISNumber  string `json:"ndisNumber"`
	PlanManager string `json:"planManager"`
}

// CommercialDetailsInput is the optional business block of a submission.
type CommercialDetailsInput struct {
	BusinessName  string `json:"businessName"`
	BusinessType  string `json:"businessType"`
	ABN           string `json:"abn"`
	ContactPerson string `json:"contactPerson"`
}

// EndOfLeaseDetailsInput is the optional end-of-lease block of a submission.
type EndOfLeaseDetailsInput struct {
	Role string `json:"role"`
}

// CustomerDetailsInput is the customer section of a booking submission.
type CustomerDetailsInput struct {
	FirstName         string                  `json:"firstName"`
	LastName          string                  `json:"lastName"`
	Email             string                  `json:"email"`
	Phone             string                  `json:"phone"`
	Address           string                  `json:"address"`
	Postcode          string                  `json:"postcode"`
	Suburb            string                  `json:"suburb"`
	ScheduleDate      string                  `json:"scheduleDate"`
	Notes             string                  `json:"notes"`
	NDISDetails       *NDISDetailsInput       `json:"ndisDetails,omitempty"`
	CommercialDetails *CommercialDetailsInput `json:"commercialDetails,omitempty"`
	EndOfLeaseDetails *EndOfLeaseDetailsInput `json:"endOfLeaseDetails,omitempty"`
}

// BookingSubmission is the inbound payload for creating a booking. The
// serviceDetails section stays loosely typed until the detail mapper shapes it
// for the selected service type.
type BookingSubmission struct {
	SelectedService string               `json:"selectedService"`
	CustomerDetails CustomerDetailsInput `json:"customerDetails"`
	ServiceDetails  map[string]any       `json:"serviceDetails"`
	Pricing         Pricing              `json:"pricing"`
	CurrentStep     int                  `json:"currentStep"`
}
