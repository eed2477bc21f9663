package queries

import (
	"time"

	"cellar-shop/internal/domain/order"

	"github.com/google/uuid"
)

// ProductView represents read-optimized product data. Sizes is nil for
// sizeless products.
type ProductView struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	PriceCents int64          `json:"price_cents"`
	HasSizes   bool           `json:"has_sizes"`
	Sizes      map[string]int `json:"sizes,omitempty"`
	TotalStock int            `json:"total_stock"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type ProductPage struct {
	Items  []*ProductView
	Total  int64
	Limit  int
	Offset int
}

type OrderItemView struct {
	ProductID      *uuid.UUID
	Size           string
	Name           string
	Quantity       int
	UnitPriceCents int64
	LineTotalCents int64
}

type HistoryView struct {
	Status order.Status
	Kind   order.TransitionKind
	Note   string
	At     time.Time
}

type ShipmentView struct {
	Carrier        string
	TrackingNumber string
	LabelFormat    string
}

// OrderView is the full order as shown to its owner or an admin.
type OrderView struct {
	ID                      uuid.UUID
	OrderNumber             string
	TrackingCode            string
	UserID                  *uuid.UUID
	Customer                order.Customer
	ShippingAddress         *order.Address
	PaymentMethod           string
	PaymentReference        *string
	IsTrade                 bool
	Status                  order.Status
	Items                   []OrderItemView
	Amounts                 order.Amounts
	History                 []HistoryView
	Shipment                *ShipmentView
	ConfirmationEmailStatus string
	ConfirmationEmailError  string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TrackingSummary is what a non-owner sees for a tracking code.
type TrackingSummary struct {
	OrderNumber string
	Status      order.Status
	UpdatedAt   time.Time
}

// TrackingResult holds exactly one of Full or Summary.
type TrackingResult struct {
	Full    *OrderView
	Summary *TrackingSummary
}

type OrderSummaryView struct {
	OrderNumber  string
	TrackingCode string
	CustomerName string
	Status       order.Status
	TotalCents   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderFilter struct {
	Status *order.Status
	Limit  int
	Offset int
}

type OrderPage struct {
	Items  []*OrderSummaryView
	Total  int64
	Limit  int
	Offset int
}

// CarrierTrackedOrder is an open order with a carrier tracking number.
type CarrierTrackedOrder struct {
	OrderID        uuid.UUID
	OrderNumber    string
	TrackingNumber string
}
