// File: database/repository/customer/customerMongoCrud.go
package customerRepo

import (
	"errors"
	"fmt"
	"time"

	"cleanhaven/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new customer document and fills in its id.
func (r *MongoCustomerRepo) Create(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	customer.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, customer)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by its unique ID.
func (r *MongoCustomerRepo) GetByID(id string) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	return &customer, nil
}

// Delete removes a customer document and its sub-records by customer ID.
func (r *MongoCustomerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete customer with id %s: %w", id, err)
	}
	for _, coll := range []*mongo.Collection{r.ndisColl, r.commercialColl, r.endOfLeaseColl} {
		if _, err := coll.DeleteMany(ctx, bson.M{"customer_id": id}); err != nil {
			return fmt.Errorf("failed to delete sub-records for customer %s: %w", id, err)
		}
	}
	return nil
}

// ListIDsByScheduleDate returns the ids of customers scheduled on the given date.
func (r *MongoCustomerRepo) ListIDsByScheduleDate(date string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"schedule_date": date}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers for date %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode customer ids: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// CreateNDISDetails inserts an NDIS sub-record for a customer.
func (r *MongoCustomerRepo) CreateNDISDetails(details *models.CustomerNDISDetails) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if details.ID == "" {
		details.ID = uuid.NewString()
	}
	if _, err := r.ndisColl.InsertOne(ctx, details); err != nil {
		return fmt.Errorf("failed to create NDIS details: %w", err)
	}
	return nil
}

// CreateCommercialDetails inserts a business sub-record for a customer.
func (r *MongoCustomerRepo) CreateCommercialDetails(details *models.CustomerCommercialDetails) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if details.ID == "" {
		details.ID = uuid.NewString()
	}
	if _, err := r.commercialColl.InsertOne(ctx, details); err != nil {
		return fmt.Errorf("failed to create commercial details: %w", err)
	}
	return nil
}

// CreateEndOfLeaseDetails inserts an end-of-lease sub-record for a customer.
func (r *MongoCustomerRepo) CreateEndOfLeaseDetails(details *models.CustomerEndOfLeaseDetails) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if details.ID == "" {
		details.ID = uuid.NewString()
	}
	if _, err := r.endOfLeaseColl.InsertOne(ctx, details); err != nil {
		return fmt.Errorf("failed to create end of lease details: %w", err)
	}
	return nil
}

// GetNDISDetails retrieves a customer's NDIS sub-record, (nil, nil) if absent.
func (r *MongoCustomerRepo) GetNDISDetails(customerID string) (*models.CustomerNDISDetails, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var details models.CustomerNDISDetails
	err := r.ndisColl.FindOne(ctx, bson.M{"customer_id": customerID}).Decode(&details)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch NDIS details for customer %s: %w", customerID, err)
	}
	return &details, nil
}

// GetCommercialDetails retrieves a customer's business sub-record, (nil, nil) if absent.
func (r *MongoCustomerRepo) GetCommercialDetails(customerID string) (*models.CustomerCommercialDetails, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var details models.CustomerCommercialDetails
	err := r.commercialColl.FindOne(ctx, bson.M{"customer_id": customerID}).Decode(&details)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commercial details for customer %s: %w", customerID, err)
	}
	return &details, nil
}

// GetEndOfLeaseDetails retrieves a customer's end-of-lease sub-record, (nil, nil) if absent.
func (r *MongoCustomerRepo) GetEndOfLeaseDetails(customerID string) (*models.CustomerEndOfLeaseDetails, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var details models.CustomerEndOfLeaseDetails
	err := r.endOfLeaseColl.FindOne(ctx, bson.M{"customer_id": customerID}).Decode(&details)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch end of lease details for customer %s: %w", customerID, err)
	}
	return &details, nil
}
