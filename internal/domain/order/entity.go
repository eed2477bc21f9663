package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotShippable      = errors.New("order cannot be shipped in its current status")
	ErrNoShippingAddress = errors.New("order has no shipping address")
	ErrShipmentExists    = errors.New("order already has a shipment")
)

type Order struct {
	id                uuid.UUID
	number            string
	trackingCode      string
	userID            *uuid.UUID
	customer          Customer
	shippingAddress   *Address
	paymentMethod     PaymentMethod
	paymentReference  *string
	isTrade           bool
	items             []Item
	amounts           Amounts
	status            Status
	history           []HistoryEntry
	pending           []HistoryEntry
	shipment          *Shipment
	confirmation      ConfirmationStatus
	confirmationError string
	createdAt         time.Time
	updatedAt         time.Time
}

type Snapshot struct {
	ID                uuid.UUID
	Number            string
	TrackingCode      string
	UserID            *uuid.UUID
	Customer          Customer
	ShippingAddress   *Address
	PaymentMethod     PaymentMethod
	PaymentReference  *string
	IsTrade           bool
	Items             []Item
	Amounts           Amounts
	Status            Status
	History           []HistoryEntry
	Shipment          *Shipment
	Confirmation      ConfirmationStatus
	ConfirmationError string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func Reconstruct(s Snapshot) *Order {
	return &Order{
		id:                s.ID,
		number:            s.Number,
		trackingCode:      s.TrackingCode,
		userID:            s.UserID,
		customer:          s.Customer,
		shippingAddress:   s.ShippingAddress,
		paymentMethod:     s.PaymentMethod,
		paymentReference:  s.PaymentReference,
		isTrade:           s.IsTrade,
		items:             s.Items,
		amounts:           s.Amounts,
		status:            s.Status,
		history:           s.History,
		shipment:          s.Shipment,
		confirmation:      s.Confirmation,
		confirmationError: s.ConfirmationError,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
	}
}

// Transition moves the order to status and queues one history entry.
func (o *Order) Transition(to Status, actor Actor, note string, at time.Time) (TransitionKind, error) {
	kind, err := ResolveTransition(o.status, to, actor)
	if err != nil {
		return "", err
	}
	o.record(to, kind, note, at)
	return kind, nil
}

func (o *Order) record(status Status, kind TransitionKind, note string, at time.Time) {
	o.status = status
	o.updatedAt = at
	o.pending = append(o.pending, HistoryEntry{Status: status, Kind: kind, Note: note, At: at})
}

func (o *Order) EnsureShippable() error {
	switch o.status {
	case StatusPlaced, StatusConfirmed, StatusProcessing:
	default:
		return ErrNotShippable
	}
	if o.shipment != nil {
		return ErrShipmentExists
	}
	if o.shippingAddress == nil {
		return ErrNoShippingAddress
	}
	return nil
}

// AttachShipment stores the carrier result and confirms the order. An order
// already CONFIRMED gains no history entry.
func (o *Order) AttachShipment(s Shipment, at time.Time) error {
	if err := o.EnsureShippable(); err != nil {
		return err
	}
	o.shipment = &s
	o.updatedAt = at
	if o.status == StatusConfirmed {
		return nil
	}
	_, err := o.Transition(StatusConfirmed, ActorSystem, "shipment created with "+s.Carrier, at)
	return err
}

// ApplyCarrierStatus maps a carrier code and applies it when it moves the
// order forward. Duplicate and stale updates report false without error.
func (o *Order) ApplyCarrierStatus(code, description string, at time.Time) (bool, error) {
	target := MapCarrierStatus(code)
	if o.status == target || o.status.IsTerminal() {
		return false, nil
	}
	note := description
	if note == "" {
		note = "carrier status " + code
	}
	if _, err := o.Transition(target, ActorCarrier, note, at); err != nil {
		if errors.Is(err, ErrStaleStatus) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsOwnedBy is false for guest orders.
func (o *Order) IsOwnedBy(userID *uuid.UUID) bool {
	return userID != nil && o.userID != nil && *o.userID == *userID
}

func (o *Order) TrackedItems() []Item {
	var out []Item
	for _, it := range o.items {
		if it.Tracked() {
			out = append(out, it)
		}
	}
	return out
}

// UnsavedHistory returns entries appended since the order was loaded.
func (o *Order) UnsavedHistory() []HistoryEntry {
	return o.pending
}

func (o *Order) MarkHistoryPersisted() {
	o.history = append(o.history, o.pending...)
	o.pending = nil
}

func (o *Order) SetConfirmation(status ConfirmationStatus, errMsg string) {
	o.confirmation = status
	o.confirmationError = errMsg
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) Number() string                   { return o.number }
func (o *Order) TrackingCode() string             { return o.trackingCode }
func (o *Order) UserID() *uuid.UUID               { return o.userID }
func (o *Order) Customer() Customer               { return o.customer }
func (o *Order) ShippingAddress() *Address        { return o.shippingAddress }
func (o *Order) PaymentMethod() PaymentMethod     { return o.paymentMethod }
func (o *Order) PaymentReference() *string        { return o.paymentReference }
func (o *Order) IsTrade() bool                    { return o.isTrade }
func (o *Order) Items() []Item                    { return o.items }
func (o *Order) Amounts() Amounts                 { return o.amounts }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) Shipment() *Shipment              { return o.shipment }
func (o *Order) Confirmation() ConfirmationStatus { return o.confirmation }
func (o *Order) ConfirmationError() string        { return o.confirmationError }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }

// History includes unsaved entries.
func (o *Order) History() []HistoryEntry {
	out := make([]HistoryEntry, 0, len(o.history)+len(o.pending))
	out = append(out, o.history...)
	return append(out, o.pending...)
}
