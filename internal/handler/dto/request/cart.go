package request

import (
	"cellar-shop/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Size      *string   `json:"size,omitempty"`
	Quantity  int       `json:"quantity"`
}

func (r AddCartItemRequest) ToCommand() commands.AddItemRequest {
	return commands.AddItemRequest{
		ProductID: r.ProductID,
		Size:      r.Size,
		Quantity:  r.Quantity,
	}
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
