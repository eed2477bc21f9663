package pricing

import (
	"github.com/shopspring/decimal"
)

var (
	FreeShippingThreshold = decimal.NewFromInt(100)
	StandardShippingFee   = decimal.RequireFromString("4.99")
	TradeDiscountRate     = decimal.RequireFromString("0.20")
	TradeTaxRate          = decimal.RequireFromString("0.20")
)

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Options struct {
	IsTradeCustomer  bool
	ShippingOverride *decimal.Decimal
}

type Totals struct {
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	Tax         decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}

// Round2 rounds half away from zero to two places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeTotals rounds every intermediate value, so the result differs from
// rounding the final total alone.
func ComputeTotals(lines []Line, opts Options) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = Round2(subtotal)

	var shipping decimal.Decimal
	switch {
	case opts.ShippingOverride != nil:
		shipping = *opts.ShippingOverride
	case subtotal.GreaterThanOrEqual(FreeShippingThreshold):
		shipping = decimal.Zero
	default:
		shipping = StandardShippingFee
	}
	shipping = Round2(shipping)

	discount, tax := decimal.Zero, decimal.Zero
	if opts.IsTradeCustomer {
		discount = Round2(subtotal.Mul(TradeDiscountRate))
		tax = Round2(subtotal.Mul(TradeTaxRate))
	}

	return Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		Tax:         tax,
		ShippingFee: shipping,
		Total:       Round2(subtotal.Sub(discount).Add(tax).Add(shipping)),
	}
}

// ToCents converts a two-place amount to integer cents.
func ToCents(d decimal.Decimal) int64 {
	return Round2(d).Shift(2).IntPart()
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
