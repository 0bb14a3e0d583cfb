package servicedetailRepo

import (
	"context"
	"fmt"
	"time"

	"cleanhaven/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoServiceDetailRepo implements ServiceDetailRepository using MongoDB.
type MongoServiceDetailRepo struct {
	db *mongo.Database
}

// NewMongoServiceDetailRepo creates a new instance of ServiceDetailRepository using MongoDB.
func NewMongoServiceDetailRepo(db *mongo.Database) ServiceDetailRepository {
	return &MongoServiceDetailRepo{db: db}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceDetailRepo) collectionFor(st models.ServiceType) (*mongo.Collection, error) {
	name, err := st.DetailCollection()
	if err != nil {
		return nil, err
	}
	return r.db.Collection(name), nil
}

// Create inserts the detail record into its service type's collection and
// returns the assigned record id.
func (r *MongoServiceDetailRepo) Create(detail models.ServiceDetail) (string, error) {
	coll, err := r.collectionFor(detail.ServiceType())
	if err != nil {
		return "", err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	raw, err := bson.Marshal(detail)
	if err != nil {
		return "", fmt.Errorf("failed to encode service details: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("failed to encode service details: %w", err)
	}

	id := uuid.NewString()
	doc["id"] = id
	doc["created_at"] = time.Now()

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to create %s details: %w", detail.ServiceType(), err)
	}
	return id, nil
}

// GetByID retrieves a detail record from the partition for the given service
// type, decoded into the variant matching that type.
func (r *MongoServiceDetailRepo) GetByID(st models.ServiceType, id string) (models.ServiceDetail, error) {
	coll, err := r.collectionFor(st)
	if err != nil {
		return nil, err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result := coll.FindOne(ctx, bson.M{"id": id})

	decode := func(out models.ServiceDetail) (models.ServiceDetail, error) {
		if err := result.Decode(out); err != nil {
			return nil, fmt.Errorf("failed to fetch %s details with id %s: %w", st, id, err)
		}
		return out, nil
	}

	switch st {
	case models.ServiceRegular:
		return decode(&models.RegularCleaningDetails{})
	case models.ServiceOnceOff:
		return decode(&models.OnceOffCleaningDetails{})
	case models.ServiceNDIS:
		return decode(&models.NDISCleaningDetails{})
	case models.ServiceEndOfLease:
		return decode(&models.EndOfLeaseCleaningDetails{})
	case models.ServiceAirbnb:
		return decode(&models.AirbnbCleaningDetails{})
	case models.ServiceCommercial:
		return decode(&models.CommercialCleaningDetails{})
	}
	return nil, fmt.Errorf("unknown service type: %s", st)
}

// Delete removes a detail record from the partition for the given service type.
func (r *MongoServiceDetailRepo) Delete(st models.ServiceType, id string) error {
	coll, err := r.collectionFor(st)
	if err != nil {
		return err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete %s details with id %s: %w", st, id, err)
	}
	return nil
}
