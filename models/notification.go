package models

import "time"

// NotificationKind separates delivery-tracked rows from pure audit rows in
// the unified notifications collection.
type NotificationKind string

const (
	NotificationKindDelivery NotificationKind = "delivery"
	NotificationKindAudit    NotificationKind = "audit"
)

// NotificationStatus is the delivery state of a tracked notification.
// Transitions are pending -> sent or pending -> failed; failed is terminal.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification is one outbound communication attempt or internal audit event
// tied to a booking.
type Notification struct {
	ID             string             `bson:"id" json:"id"`
	Kind           NotificationKind   `bson:"kind" json:"kind"`
	BookingID      string             `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	BookingNumber  string             `bson:"booking_number" json:"bookingNumber"`
	Type           string             `bson:"notification_type" json:"notificationType"`
	Title          string             `bson:"title" json:"title"`
	Message        string             `bson:"message" json:"message"`
	DeliveryMethod string             `bson:"delivery_method,omitempty" json:"deliveryMethod,omitempty"`
	RecipientEmail string             `bson:"recipient_email,omitempty" json:"recipientEmail,omitempty"`
	Status         NotificationStatus `bson:"status" json:"status"`
	ExternalID     string             `bson:"external_id,omitempty" json:"externalId,omitempty"`
	ExternalStatus string             `bson:"external_status,omitempty" json:"externalStatus,omitempty"`
	ErrorMessage   string             `bson:"error_message,omitempty" json:"errorMessage,omitempty"`
	RetryCount     int                `bson:"retry_count" json:"retryCount"`
	MaxRetries     int                `bson:"max_retries" json:"maxRetries"`
	Metadata       map[string]any     `bson:"metadata,omitempty" json:"metadata,omitempty"`
	SentAt         *time.Time         `bson:"sent_at,omitempty" json:"sentAt,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

// NotificationStatusUpdate carries the fields applied when a delivery attempt
// resolves.
type NotificationStatusUpdate struct {
	Status         NotificationStatus
	ExternalID     string
	ExternalStatus string
	ErrorMessage   string
	SentAt         *time.Time
	RetryCount     *int
}
