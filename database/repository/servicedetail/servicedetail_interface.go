package servicedetailRepo

import (
	"cleanhaven/models"
)

// ServiceDetailRepository defines methods for the per-service-type detail
// partitions. Every booking owns exactly one detail record, stored in the
// partition matching its service type.
type ServiceDetailRepository interface {
	// Create inserts the detail record into its service type's collection and
	// returns the assigned record id.
	Create(detail models.ServiceDetail) (string, error)
	// GetByID retrieves a detail record from the partition for the given
	// service type.
	GetByID(serviceType models.ServiceType, id string) (models.ServiceDetail, error)
	// Delete removes a detail record. Used as best-effort compensation when a
	// later step of the aggregate write fails.
	Delete(serviceType models.ServiceType, id string) error
}
