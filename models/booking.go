package models

import "time"

// BookingStatus tracks the lifecycle of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	// BookingStatusError marks an interrupted submission. It is returned to
	// callers on failure but never persisted.
	BookingStatusError BookingStatus = "error"
)

// Valid reports whether the status is one that may be persisted.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// PricingItem is a single fee or discount line in the pricing breakdown.
type PricingItem struct {
	Label  string  `bson:"label" json:"label"`
	Amount float64 `bson:"amount" json:"amount"`
}

// Pricing is the nested price breakdown captured with the booking.
type Pricing struct {
	BasePrice  float64       `bson:"base_price,omitempty" json:"basePrice,omitempty"`
	Items      []PricingItem `bson:"items,omitempty" json:"items,omitempty"`
	TotalPrice float64       `bson:"total_price" json:"totalPrice"`
}

// Booking is the aggregate root. Its customer and service-detail references
// are written before the booking row itself, so a persisted booking never
// points at rows that do not exist.
type Booking struct {
	ID               string        `bson:"id" json:"id"`
	BookingNumber    string        `bson:"booking_number" json:"bookingNumber"`
	Status           BookingStatus `bson:"status" json:"status"`
	CurrentStep      int           `bson:"current_step" json:"currentStep"`
	SelectedService  ServiceType   `bson:"selected_service" json:"selectedService"`
	Pricing          Pricing       `bson:"pricing" json:"pricing"`
	CustomerID       string        `bson:"customer_id" json:"customerId"`
	ServiceDetailsID string        `bson:"service_details_id" json:"serviceDetailsId"`
	CreatedAt        time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updatedAt"`
}
