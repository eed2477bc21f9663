package response

import (
	"cellar-shop/internal/domain/pricing"
	"cellar-shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money renders integer cents as a fixed two-decimal JSON number.
type Money int64

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(pricing.FromCents(int64(m)).StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errs.Wrap(err, "invalid money amount")
	}
	*m = Money(pricing.ToCents(d))
	return nil
}

func (m Money) String() string {
	return pricing.FromCents(int64(m)).StringFixed(2)
}
