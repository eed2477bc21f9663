package order

import "strings"

type Status string

const (
	StatusPlaced         Status = "PLACED"
	StatusConfirmed      Status = "CONFIRMED"
	StatusProcessing     Status = "PROCESSING"
	StatusPicked         Status = "PICKED"
	StatusShipped        Status = "SHIPPED"
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	StatusDelivered      Status = "DELIVERED"
	StatusCancelled      Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := progressRank[s]
	return ok || s == StatusCancelled
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) IsCancellable() bool {
	switch s {
	case StatusPlaced, StatusConfirmed, StatusPicked, StatusProcessing:
		return true
	default:
		return false
	}
}

// ParseStatus accepts any casing and space or hyphen separators.
func ParseStatus(raw string) (Status, error) {
	s := Status(canonicalCode(raw))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// progressRank orders statuses along fulfilment. CONFIRMED and PROCESSING
// share a rank; CANCELLED has none.
var progressRank = map[Status]int{
	StatusPlaced:         0,
	StatusConfirmed:      1,
	StatusProcessing:     1,
	StatusPicked:         2,
	StatusShipped:        3,
	StatusOutForDelivery: 4,
	StatusDelivered:      5,
}

type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorAdmin    Actor = "admin"
	ActorSystem   Actor = "system"
	ActorCarrier  Actor = "carrier"
)

// TransitionKind is recorded with every history entry.
type TransitionKind string

const (
	KindCreated    TransitionKind = "created"
	KindTransition TransitionKind = "transition"
	KindCancel     TransitionKind = "cancel"
	KindOverride   TransitionKind = "override"
	KindCarrier    TransitionKind = "carrier"
)

type ConfirmationStatus string

const (
	ConfirmationPending ConfirmationStatus = "pending"
	ConfirmationSent    ConfirmationStatus = "sent"
	ConfirmationFailed  ConfirmationStatus = "failed"
)

func canonicalCode(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	return strings.Join(strings.FieldsFunc(upper, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	}), "_")
}
