package cart

import (
	"cellar-shop/internal/domain/stock"

	"github.com/google/uuid"
)

// Line is a cart item joined with its product for display.
type Line struct {
	ItemID         uuid.UUID
	ProductID      uuid.UUID
	ProductName    string
	Size           stock.SizeKey
	Quantity       int
	UnitPriceCents int64
	Available      int
}

func (l Line) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

type Cart struct {
	SessionID  *uuid.UUID
	Lines      []Line
	TotalCents int64
}

// Empty is returned for callers that never mutated a cart.
func Empty() Cart {
	return Cart{Lines: []Line{}}
}

// SumCents is the session total rule: price times quantity over every line.
func SumCents(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.TotalCents()
	}
	return total
}
