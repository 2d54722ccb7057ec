package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProductCreated  EventType = "product_created"
	EventProductDeleted  EventType = "product_deleted"
	EventOrderPaid       EventType = "order_paid"
	EventUserRoleChanged EventType = "user_role_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent builds an event with a fresh identifier.
func NewEvent(eventType EventType, subject string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// ProductCreatedPayload payload.
type ProductCreatedPayload struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// ProductDeletedPayload payload.
type ProductDeletedPayload struct {
	ProductID string `json:"product_id"`
}

// OrderPaidPayload payload.
type OrderPaidPayload struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
}

// UserRoleChangedPayload payload.
type UserRoleChangedPayload struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
