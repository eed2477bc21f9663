package commands

import (
	"context"
	"time"

	"cellar-shop/internal/domain/order"

	"github.com/shopspring/decimal"
)

// DefaultBottleWeightKg is declared per bottle when building a shipment.
var DefaultBottleWeightKg = decimal.RequireFromString("1.5")

type ShipmentRecipient struct {
	Name    string
	Email   string
	Phone   string
	Address order.Address
}

type ShipmentItem struct {
	Name     string
	Quantity int
}

// ShipmentRequest is built from the order snapshot.
type ShipmentRequest struct {
	OrderNumber   string
	Recipient     ShipmentRecipient
	Items         []ShipmentItem
	WeightKg      decimal.Decimal
	DeclaredValue decimal.Decimal
}

type ShipmentResult struct {
	TrackingNumber string
	ShipmentID     string
	LabelFormat    string
	LabelData      string
}

type TrackingStatus struct {
	Code        string
	Description string
	OccurredAt  time.Time
}

// Carrier creates and tracks shipments. Failures are *errs.CollaboratorError.
type Carrier interface {
	Name() string
	CreateShipment(ctx context.Context, req ShipmentRequest) (*ShipmentResult, error)
	TrackShipment(ctx context.Context, trackingNumber string) (*TrackingStatus, error)
}
