package models

import "fmt"

// ServiceType identifies one of the fixed cleaning service offerings.
// The set is closed: every booking carries exactly one of these tags and
// the tag decides which detail collection holds its service details.
type ServiceType string

const (
	ServiceRegular    ServiceType = "Regular Cleaning"
	ServiceOnceOff    ServiceType = "Once-Off Cleaning"
	ServiceNDIS       ServiceType = "NDIS Cleaning"
	ServiceEndOfLease ServiceType = "End of Lease Cleaning"
	ServiceAirbnb     ServiceType = "Airbnb Cleaning"
	ServiceCommercial ServiceType = "Commercial Cleaning"
)

// AllServiceTypes lists every supported service type.
var AllServiceTypes = []ServiceType{
	ServiceRegular,
	ServiceOnceOff,
	ServiceNDIS,
	ServiceEndOfLease,
	ServiceAirbnb,
	ServiceCommercial,
}

// Valid reports whether the tag is a member of the closed enumeration.
func (st ServiceType) Valid() bool {
	switch st {
	case ServiceRegular, ServiceOnceOff, ServiceNDIS, ServiceEndOfLease, ServiceAirbnb, ServiceCommercial:
		return true
	}
	return false
}

// DetailCollection returns the Mongo collection holding detail records for
// this service type.
func (st ServiceType) DetailCollection() (string, error) {
	switch st {
	case ServiceRegular:
		return "regular_cleaning_details", nil
	case ServiceOnceOff:
		return "once_off_cleaning_details", nil
	case ServiceNDIS:
		return "ndis_cleaning_details", nil
	case ServiceEndOfLease:
		return "end_of_lease_cleaning_details", nil
	case ServiceAirbnb:
		return "airbnb_cleaning_details", nil
	case ServiceCommercial:
		return "commercial_cleaning_details", nil
	}
	return "", fmt.Errorf("unknown service type: %s", st)
}
