package shared

import (
	"time"

	"cellar-shop/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller, if any. Guests have a nil UserID.
type Actor struct {
	UserID *uuid.UUID
	Role   user.Role
}

func Guest() Actor {
	return Actor{}
}

func (a Actor) IsAdmin() bool {
	return a.UserID != nil && a.Role.IsAdmin()
}

// SessionSnapshot is the shopping session as seen by cart commands
type SessionSnapshot struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TotalCents int64
}

// CartItemSnapshot carries the owning user so ownership can be checked
// before any mutation.
type CartItemSnapshot struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	ProductID uuid.UUID
	Size      string
	Quantity  int
	OwnerID   uuid.UUID
}

// Notification job kinds and topics
const (
	JobKindEmail = "email"
	JobKindEvent = "event"

	TopicOwnerAlert           = "order.owner_alert"
	TopicCustomerConfirmation = "order.customer_confirmation"
	TopicOrderPlaced          = "order.placed"
	TopicOrderStatusChanged   = "order.status_changed"
)

// EmailPayload is the body of an email notification job.
type EmailPayload struct {
	OrderID uuid.UUID `json:"order_id"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
}

// OrderEvent is published to the order topic through the outbox.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      uuid.UUID `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	OccurredAt   time.Time `json:"occurred_at"`
	TransitionBy string    `json:"transition_by,omitempty"`
}
