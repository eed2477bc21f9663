package order

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"cellar-shop/internal/domain/stock"

	"github.com/google/uuid"
)

var ErrInvalidPaymentMethod = errors.New("unsupported payment method")

type PaymentMethod string

const (
	PaymentDebitCard   PaymentMethod = "DEBIT_CARD"
	PaymentCreditCard  PaymentMethod = "CREDIT_CARD"
	PaymentPayPal      PaymentMethod = "PAYPAL"
	PaymentPayAtPickup PaymentMethod = "PAY_AT_PICKUP"
)

var paymentMethods = map[string]PaymentMethod{
	"debit card":        PaymentDebitCard,
	"debit":             PaymentDebitCard,
	"debitcard":         PaymentDebitCard,
	"visa debit":        PaymentDebitCard,
	"credit card":       PaymentCreditCard,
	"credit":            PaymentCreditCard,
	"creditcard":        PaymentCreditCard,
	"card":              PaymentCreditCard,
	"visa":              PaymentCreditCard,
	"mastercard":        PaymentCreditCard,
	"amex":              PaymentCreditCard,
	"american express":  PaymentCreditCard,
	"paypal":            PaymentPayPal,
	"pay pal":           PaymentPayPal,
	"pay at pickup":     PaymentPayAtPickup,
	"pay on pickup":     PaymentPayAtPickup,
	"pay at collection": PaymentPayAtPickup,
	"pay on collection": PaymentPayAtPickup,
	"pickup":            PaymentPayAtPickup,
	"cash on pickup":    PaymentPayAtPickup,
	"click and collect": PaymentPayAtPickup,
	"pay in store":      PaymentPayAtPickup,
}

func (m PaymentMethod) String() string {
	return string(m)
}

// NormalizePaymentMethod resolves free-text variants case-insensitively.
func NormalizePaymentMethod(raw string) (PaymentMethod, error) {
	key := strings.ToLower(raw)
	key = strings.NewReplacer("-", " ", "_", " ").Replace(key)
	key = strings.Join(strings.Fields(key), " ")
	if m, ok := paymentMethods[key]; ok {
		return m, nil
	}
	return "", ErrInvalidPaymentMethod
}

// MapCarrierStatus translates a carrier status code. Unknown codes map to SHIPPED.
func MapCarrierStatus(code string) Status {
	switch canonicalCode(code) {
	case "I", "IN_TRANSIT":
		return StatusConfirmed
	case "P", "PICKUP", "PICKED_UP":
		return StatusPicked
	case "M", "MANIFEST":
		return StatusShipped
	case "O", "OT", "OUT_FOR_DELIVERY":
		return StatusOutForDelivery
	case "D", "DELIVERED":
		return StatusDelivered
	case "RS", "RETURN_TO_SENDER", "RETURNED":
		return StatusCancelled
	default:
		return StatusShipped
	}
}

// IdentifierSource produces the caller-visible order identifiers.
type IdentifierSource interface {
	OrderNumber(now time.Time) string
	TrackingCode() string
}

// no I, O, 0 or 1
const trackingAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const TrackingCodeLength = 10

type RandomIdentifiers struct{}

func (RandomIdentifiers) OrderNumber(now time.Time) string {
	suffix := make([]byte, 3)
	_, _ = rand.Read(suffix)
	return "ORD-" + now.UTC().Format("20060102150405") + "-" + strings.ToUpper(hex.EncodeToString(suffix))
}

func (RandomIdentifiers) TrackingCode() string {
	buf := make([]byte, TrackingCodeLength)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return string(buf)
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type Address struct {
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
}

// Amounts is the money breakdown in cents, fixed at creation.
type Amounts struct {
	SubtotalCents    int64
	DiscountCents    int64
	TaxCents         int64
	ShippingFeeCents int64
	TotalCents       int64
}

type Item struct {
	Position       int
	ProductID      *uuid.UUID
	Size           stock.SizeKey
	Name           string
	Quantity       int
	UnitPriceCents int64
}

func (i Item) LineTotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

// Tracked reports whether the line decrements a product ledger.
func (i Item) Tracked() bool {
	return i.ProductID != nil
}

type HistoryEntry struct {
	Status Status
	Kind   TransitionKind
	Note   string
	At     time.Time
}

type Shipment struct {
	Carrier        string
	TrackingNumber string
	ShipmentID     string
	LabelFormat    string
	LabelData      string
}
