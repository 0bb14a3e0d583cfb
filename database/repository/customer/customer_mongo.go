package customerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll           *mongo.Collection
	ndisColl       *mongo.Collection
	commercialColl *mongo.Collection
	endOfLeaseColl *mongo.Collection
}

// NewMongoCustomerRepo creates a new instance of CustomerRepository using MongoDB.
func NewMongoCustomerRepo(db *mongo.Database) CustomerRepository {
	repo := &MongoCustomerRepo{
		coll:           db.Collection("customers"),
		ndisColl:       db.Collection("customer_ndis_details"),
		commercialColl: db.Collection("customer_commercial_details"),
		endOfLeaseColl: db.Collection("customer_end_of_lease_details"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create customer indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "schedule_date", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	for _, coll := range []*mongo.Collection{r.ndisColl, r.commercialColl, r.endOfLeaseColl} {
		if _, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		}); err != nil {
			return fmt.Errorf("failed to create sub-record indexes: %w", err)
		}
	}
	return nil
}
