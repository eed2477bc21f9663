//go:build unit || e2e

package builder

import (
	"time"

	domorder "cellar-shop/internal/domain/order"
	reqdto "cellar-shop/internal/handler/dto/request"
	"cellar-shop/internal/pkg/clock"

	"github.com/google/uuid"
)

type OrderLine struct {
	ProductID *uuid.UUID
	Size      *string
	Name      string
	Quantity  int
	UnitPrice float64
}

type OrderBuilder struct {
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	Address          *domorder.Address
	PaymentMethod    string
	PaymentReference *string
	IsTrade          bool
	ShippingOverride *float64
	Lines            []OrderLine
	Money            domorder.MoneyInput
	UserID           *uuid.UUID
	Now              time.Time
	Number           string
	TrackingCode     string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "+44 20 7946 0000",
		Address: &domorder.Address{
			Line1:       "10 Downing Street",
			City:        "London",
			PostalCode:  "SW1A 2AA",
			CountryCode: "GB",
		},
		PaymentMethod: "credit card",
		Lines: []OrderLine{
			{Name: "Rioja Reserva 75cl", Quantity: 2, UnitPrice: 25},
		},
		Now:          time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Number:       "ORD-20260314092653-A1B2C3",
		TrackingCode: "K7P2M9QX4T",
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithPaymentReference(ref string) *OrderBuilder {
	b.PaymentReference = &ref
	return b
}

func (b *OrderBuilder) WithLines(lines ...OrderLine) *OrderBuilder {
	b.Lines = lines
	return b
}

func (b *OrderBuilder) WithOwner(id uuid.UUID) *OrderBuilder {
	b.UserID = &id
	return b
}

func (b *OrderBuilder) BuildInput() domorder.PlacementInput {
	items := make([]domorder.LineInput, len(b.Lines))
	for i, l := range b.Lines {
		items[i] = domorder.LineInput{
			ProductID: l.ProductID,
			Size:      l.Size,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}
	return domorder.PlacementInput{
		Customer: domorder.Customer{
			Name:  b.CustomerName,
			Email: b.CustomerEmail,
			Phone: b.CustomerPhone,
		},
		ShippingAddress:  b.Address,
		PaymentMethod:    b.PaymentMethod,
		PaymentReference: b.PaymentReference,
		IsTradeCustomer:  b.IsTrade,
		ShippingOverride: b.ShippingOverride,
		Items:            items,
		Money:            b.Money,
	}
}

func (b *OrderBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	items := make([]reqdto.CheckoutItemRequest, len(b.Lines))
	for i, l := range b.Lines {
		items[i] = reqdto.CheckoutItemRequest{
			ProductID: l.ProductID,
			Size:      l.Size,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}
	return reqdto.CheckoutRequest{
		Customer: reqdto.CustomerRequest{
			Name:  b.CustomerName,
			Email: b.CustomerEmail,
			Phone: b.CustomerPhone,
		},
		ShippingAddress:  b.Address,
		PaymentMethod:    b.PaymentMethod,
		PaymentReference: b.PaymentReference,
		IsTradeCustomer:  b.IsTrade,
		ShippingOverride: b.ShippingOverride,
		Items:            items,
		Money: reqdto.MoneyRequest{
			Subtotal:    b.Money.Subtotal,
			Discount:    b.Money.Discount,
			Tax:         b.Money.Tax,
			ShippingFee: b.Money.ShippingFee,
			Total:       b.Money.Total,
		},
	}
}

// Identifiers returns a deterministic identifier source.
func (b *OrderBuilder) Identifiers() domorder.IdentifierSource {
	return fixedIdentifiers{number: b.Number, code: b.TrackingCode}
}

func (b *OrderBuilder) Factory() *domorder.Factory {
	return domorder.NewFactory(clock.NewFixedClock(b.Now), b.Identifiers())
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	draft, err := domorder.Validate(b.BuildInput())
	if err != nil {
		return nil, err
	}
	return b.Factory().New(draft, b.UserID), nil
}

// BuildInStatus returns a persisted order already moved to status by an admin.
func (b *OrderBuilder) BuildInStatus(status domorder.Status) (*domorder.Order, error) {
	o, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if status != domorder.StatusPlaced {
		if _, err := o.Transition(status, domorder.ActorAdmin, "", b.Now); err != nil {
			return nil, err
		}
	}
	o.MarkHistoryPersisted()
	return o, nil
}

type fixedIdentifiers struct {
	number string
	code   string
}

func (f fixedIdentifiers) OrderNumber(time.Time) string { return f.number }
func (f fixedIdentifiers) TrackingCode() string         { return f.code }
