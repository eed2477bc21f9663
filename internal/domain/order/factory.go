package order

import (
	"fmt"
	"math"
	"strings"

	"cellar-shop/internal/domain/pricing"
	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/domain/user"
	"cellar-shop/internal/pkg/clock"
	"cellar-shop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineInput struct {
	ProductID *uuid.UUID
	Size      *string
	Name      string
	Quantity  int
	UnitPrice float64
}

// MoneyInput holds caller-supplied totals. They are only trusted when every
// field is present and agrees with the computed subtotal.
type MoneyInput struct {
	Subtotal    *float64
	Discount    *float64
	Tax         *float64
	ShippingFee *float64
	Total       *float64
}

type PlacementInput struct {
	Customer         Customer
	ShippingAddress  *Address
	PaymentMethod    string
	PaymentReference *string
	IsTradeCustomer  bool
	ShippingOverride *float64
	Items            []LineInput
	Money            MoneyInput
}

// Draft is a validated placement. Tracked items with an empty name are
// filled from the catalogue before the order is built.
type Draft struct {
	Customer         Customer
	ShippingAddress  *Address
	PaymentMethod    PaymentMethod
	PaymentReference *string
	IsTrade          bool
	Items            []Item
	Amounts          Amounts
}

type Factory struct {
	Clock       clock.Clock
	Identifiers IdentifierSource
}

func NewFactory(clock clock.Clock, ids IdentifierSource) *Factory {
	return &Factory{
		Clock:       clock,
		Identifiers: ids,
	}
}

// Validate checks a placement and returns the first offending field as an
// *errs.ValidationError.
func Validate(in PlacementInput) (*Draft, error) {
	name := strings.TrimSpace(in.Customer.Name)
	if name == "" {
		return nil, errs.NewValidationError("customer.name", "is required")
	}
	if strings.TrimSpace(in.Customer.Email) == "" {
		return nil, errs.NewValidationError("customer.email", "is required")
	}
	email, err := user.NewEmail(in.Customer.Email)
	if err != nil {
		return nil, errs.NewValidationError("customer.email", "is not a valid email address")
	}

	method, err := NormalizePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, errs.NewValidationError("paymentMethod", fmt.Sprintf("unsupported value %q", in.PaymentMethod))
	}

	var address *Address
	if in.ShippingAddress != nil {
		a, err := validateAddress(*in.ShippingAddress)
		if err != nil {
			return nil, err
		}
		address = &a
	}

	if len(in.Items) == 0 {
		return nil, errs.NewValidationError("items", "at least one item is required")
	}
	items := make([]Item, 0, len(in.Items))
	lines := make([]pricing.Line, 0, len(in.Items))
	for i, li := range in.Items {
		field := fmt.Sprintf("items[%d]", i)
		itemName := strings.TrimSpace(li.Name)
		if itemName == "" && li.ProductID == nil {
			return nil, errs.NewValidationError(field+".name", "is required")
		}
		if li.Quantity <= 0 {
			return nil, errs.NewValidationError(field+".quantity", "must be positive")
		}
		if li.Quantity > stock.MaxLineQuantity {
			return nil, errs.NewValidationError(field+".quantity", fmt.Sprintf("cannot exceed %d", stock.MaxLineQuantity))
		}
		unit, err := amount(field+".unitPrice", &li.UnitPrice)
		if err != nil {
			return nil, err
		}
		if !unit.Equal(pricing.Round2(unit)) {
			return nil, errs.NewValidationError(field+".unitPrice", "cannot have more than two decimal places")
		}
		size, err := stock.ParseSizeLabel(li.Size)
		if err != nil {
			return nil, errs.NewValidationError(field+".size", err.Error())
		}
		if li.ProductID == nil {
			size = stock.SizeNone
		}
		items = append(items, Item{
			Position:       i,
			ProductID:      li.ProductID,
			Size:           size,
			Name:           itemName,
			Quantity:       li.Quantity,
			UnitPriceCents: pricing.ToCents(unit),
		})
		lines = append(lines, pricing.Line{UnitPrice: unit, Quantity: li.Quantity})
	}

	opts := pricing.Options{IsTradeCustomer: in.IsTradeCustomer}
	if in.ShippingOverride != nil {
		fee, err := amount("shippingOverride", in.ShippingOverride)
		if err != nil {
			return nil, err
		}
		opts.ShippingOverride = &fee
	}
	computed := pricing.ComputeTotals(lines, opts)

	supplied, err := suppliedTotals(in.Money)
	if err != nil {
		return nil, err
	}
	totals := computed
	if supplied != nil && consistent(*supplied, computed) {
		totals = *supplied
	}

	return &Draft{
		Customer: Customer{
			Name:  name,
			Email: email.Value(),
			Phone: strings.TrimSpace(in.Customer.Phone),
		},
		ShippingAddress:  address,
		PaymentMethod:    method,
		PaymentReference: normalizeReference(in.PaymentReference),
		IsTrade:          in.IsTradeCustomer,
		Items:            items,
		Amounts: Amounts{
			SubtotalCents:    pricing.ToCents(totals.Subtotal),
			DiscountCents:    pricing.ToCents(totals.Discount),
			TaxCents:         pricing.ToCents(totals.Tax),
			ShippingFeeCents: pricing.ToCents(totals.ShippingFee),
			TotalCents:       pricing.ToCents(totals.Total),
		},
	}, nil
}

// New builds a PLACED order with its creation history entry.
func (f *Factory) New(d *Draft, userID *uuid.UUID) *Order {
	now := f.Clock.Now()
	o := &Order{
		id:               uuid.New(),
		number:           f.Identifiers.OrderNumber(now),
		trackingCode:     f.Identifiers.TrackingCode(),
		userID:           userID,
		customer:         d.Customer,
		shippingAddress:  d.ShippingAddress,
		paymentMethod:    d.PaymentMethod,
		paymentReference: d.PaymentReference,
		isTrade:          d.IsTrade,
		items:            d.Items,
		amounts:          d.Amounts,
		confirmation:     ConfirmationPending,
		createdAt:        now,
	}
	o.record(StatusPlaced, KindCreated, "order placed", now)
	return o
}

func validateAddress(a Address) (Address, error) {
	a = Address{
		Line1:       strings.TrimSpace(a.Line1),
		Line2:       strings.TrimSpace(a.Line2),
		City:        strings.TrimSpace(a.City),
		State:       strings.TrimSpace(a.State),
		PostalCode:  strings.TrimSpace(a.PostalCode),
		CountryCode: strings.ToUpper(strings.TrimSpace(a.CountryCode)),
	}
	switch {
	case a.Line1 == "":
		return Address{}, errs.NewValidationError("shippingAddress.line1", "is required")
	case a.City == "":
		return Address{}, errs.NewValidationError("shippingAddress.city", "is required")
	case a.PostalCode == "":
		return Address{}, errs.NewValidationError("shippingAddress.postalCode", "is required")
	case len(a.CountryCode) != 2:
		return Address{}, errs.NewValidationError("shippingAddress.countryCode", "must be a two-letter code")
	}
	return a, nil
}

func amount(field string, v *float64) (decimal.Decimal, error) {
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return decimal.Zero, errs.NewValidationError(field, "must be a finite number")
	}
	if *v < 0 {
		return decimal.Zero, errs.NewValidationError(field, "cannot be negative")
	}
	return decimal.NewFromFloat(*v), nil
}

func suppliedTotals(m MoneyInput) (*pricing.Totals, error) {
	fields := []struct {
		name string
		v    *float64
	}{
		{"subtotal", m.Subtotal},
		{"discount", m.Discount},
		{"tax", m.Tax},
		{"shippingFee", m.ShippingFee},
		{"total", m.Total},
	}
	values := make([]decimal.Decimal, len(fields))
	complete := true
	for i, f := range fields {
		if f.v == nil {
			complete = false
			continue
		}
		d, err := amount(f.name, f.v)
		if err != nil {
			return nil, err
		}
		values[i] = pricing.Round2(d)
	}
	if !complete {
		return nil, nil
	}
	return &pricing.Totals{
		Subtotal:    values[0],
		Discount:    values[1],
		Tax:         values[2],
		ShippingFee: values[3],
		Total:       values[4],
	}, nil
}

func consistent(supplied, computed pricing.Totals) bool {
	if !supplied.Subtotal.Equal(computed.Subtotal) {
		return false
	}
	sum := pricing.Round2(supplied.Subtotal.Sub(supplied.Discount).Add(supplied.Tax).Add(supplied.ShippingFee))
	return sum.Equal(supplied.Total)
}

func normalizeReference(ref *string) *string {
	if ref == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*ref)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
