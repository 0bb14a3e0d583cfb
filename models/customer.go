package models

import "time"

// Customer is the person (or business contact) a booking is performed for.
// One customer row is written per submission; bookings reference it by id.
type Customer struct {
	ID           string    `bson:"id" json:"id"`
	FirstName    string    `bson:"first_name" json:"firstName"`
	LastName     string    `bson:"last_name" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	Address      string    `bson:"address" json:"address"`
	Postcode     string    `bson:"postcode,omitempty" json:"postcode,omitempty"`
	Suburb       string    `bson:"suburb,omitempty" json:"suburb,omitempty"`
	ScheduleDate string    `bson:"schedule_date" json:"scheduleDate"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// CustomerNDISDetails is the NDIS funding sub-record attached to a customer
// when the submission carries an ndisDetails block.
type CustomerNDISDetails struct {
	ID          string `bson:"id" json:"id"`
	CustomerID  string `bson:"customer_id" json:"customerId"`
	NDISNumber  string `bson:"ndis_number" json:"ndisNumber"`
	PlanManager string `bson:"plan_manager,omitempty" json:"planManager,omitempty"`
}

// CustomerCommercialDetails is the business sub-record attached to a customer
// when the submission carries a commercialDetails block.
type CustomerCommercialDetails struct {
	ID            string `bson:"id" json:"id"`
	CustomerID    string `bson:"customer_id" json:"customerId"`
	BusinessName  string `bson:"business_name" json:"businessName"`
	BusinessType  string `bson:"business_type,omitempty" json:"businessType,omitempty"`
	ABN           string `bson:"abn,omitempty" json:"abn,omitempty"`
	ContactPerson string `bson:"contact_person,omitempty" json:"contactPerson,omitempty"`
}

// CustomerEndOfLeaseDetails is the end-of-lease sub-record attached to a
// customer when the submission carries an endOfLeaseDetails block.
type CustomerEndOfLeaseDetails struct {
	ID         string `bson:"id" json:"id"`
	CustomerID string `bson:"customer_id" json:"customerId"`
	Role       string `bson:"role" json:"role"`
}
