package response

import (
	"cellar-shop/internal/domain/cart"

	"github.com/google/uuid"
)

type CartLineResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Size        *string   `json:"size"`
	Quantity    int       `json:"quantity"`
	UnitPrice   Money     `json:"unitPrice"`
	LineTotal   Money     `json:"lineTotal"`
	Available   int       `json:"available"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total Money              `json:"total"`
}

type CartMutationResponse struct {
	ItemID uuid.UUID `json:"itemId"`
	Total  Money     `json:"total"`
}

func FromCart(c cart.Cart) CartResponse {
	res := CartResponse{
		Items: make([]CartLineResponse, 0, len(c.Lines)),
		Total: Money(c.TotalCents),
	}
	for _, l := range c.Lines {
		var size *string
		if l.Size != "" {
			s := string(l.Size)
			size = &s
		}
		res.Items = append(res.Items, CartLineResponse{
			ID:          l.ItemID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Size:        size,
			Quantity:    l.Quantity,
			UnitPrice:   Money(l.UnitPriceCents),
			LineTotal:   Money(l.TotalCents()),
			Available:   l.Available,
		})
	}
	return res
}
