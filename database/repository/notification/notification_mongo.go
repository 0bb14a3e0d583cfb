package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"cleanhaven/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance of NotificationRepository using MongoDB.
func NewMongoNotificationRepo(db *mongo.Database) NotificationRepository {
	repo := &MongoNotificationRepo{coll: db.Collection("notifications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create notification indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_number", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new notification document.
func (r *MongoNotificationRepo) Create(notification *models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	now := time.Now()
	notification.CreatedAt = now
	notification.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// UpdateStatus applies the delivery resolution to a notification document.
// Only the fields present in the update are touched.
func (r *MongoNotificationRepo) UpdateStatus(id string, update models.NotificationStatusUpdate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields := bson.M{"updated_at": time.Now()}
	if update.Status != "" {
		fields["status"] = update.Status
	}
	if update.ExternalID != "" {
		fields["external_id"] = update.ExternalID
	}
	if update.ExternalStatus != "" {
		fields["external_status"] = update.ExternalStatus
	}
	if update.ErrorMessage != "" {
		fields["error_message"] = update.ErrorMessage
	}
	if update.SentAt != nil {
		fields["sent_at"] = *update.SentAt
	}
	if update.RetryCount != nil {
		fields["retry_count"] = *update.RetryCount
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update notification %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification with id %s not found", id)
	}
	return nil
}

// ListByBookingNumber retrieves the notification trail for a booking, newest first.
func (r *MongoNotificationRepo) ListByBookingNumber(bookingNumber string) ([]models.Notification, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"booking_number": bookingNumber}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for booking %s: %w", bookingNumber, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// ListByStatus retrieves notifications with the given status, newest first.
func (r *MongoNotificationRepo) ListByStatus(status models.NotificationStatus, limit int64) ([]models.Notification, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications with status %s: %w", status, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}
