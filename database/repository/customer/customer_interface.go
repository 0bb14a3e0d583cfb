package customerRepo

import (
	"cleanhaven/models"
)

// CustomerRepository defines methods for customer data access, including the
// optional per-service sub-records attached to a customer.
type CustomerRepository interface {
	// Create inserts a new customer record and fills in its id.
	Create(customer *models.Customer) error
	// GetByID retrieves a customer by its unique ID.
	GetByID(id string) (*models.Customer, error)
	// Delete removes a customer record. Used as best-effort compensation when
	// a later step of the aggregate write fails.
	Delete(id string) error
	// ListIDsByScheduleDate returns the ids of customers scheduled on the
	// given date ("YYYY-MM-DD").
	ListIDsByScheduleDate(date string) ([]string, error)

	// CreateNDISDetails inserts an NDIS sub-record for a customer.
	CreateNDISDetails(details *models.CustomerNDISDetails) error
	// CreateCommercialDetails inserts a business sub-record for a customer.
	CreateCommercialDetails(details *models.CustomerCommercialDetails) error
	// CreateEndOfLeaseDetails inserts an end-of-lease sub-record for a customer.
	CreateEndOfLeaseDetails(details *models.CustomerEndOfLeaseDetails) error

	// GetNDISDetails retrieves a customer's NDIS sub-record, (nil, nil) if absent.
	GetNDISDetails(customerID string) (*models.CustomerNDISDetails, error)
	// GetCommercialDetails retrieves a customer's business sub-record, (nil, nil) if absent.
	GetCommercialDetails(customerID string) (*models.CustomerCommercialDetails, error)
	// GetEndOfLeaseDetails retrieves a customer's end-of-lease sub-record, (nil, nil) if absent.
	GetEndOfLeaseDetails(customerID string) (*models.CustomerEndOfLeaseDetails, error)
}
