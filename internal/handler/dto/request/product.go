package request

import (
	"encoding/json"

	"cellar-shop/internal/usecase/commands"
)

type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price float64         `json:"price"`
	Sizes json.RawMessage `json:"sizes,omitempty"`
	Stock *int            `json:"stock,omitempty"`
}

func (r CreateProductRequest) ToCommand(priceCents int64) commands.CreateProductRequest {
	return commands.CreateProductRequest{
		Name:       r.Name,
		PriceCents: priceCents,
		Sizes:      rawOrNil(r.Sizes),
		Stock:      r.Stock,
	}
}

type ReplaceStockRequest struct {
	Sizes json.RawMessage `json:"sizes,omitempty"`
	Stock *int            `json:"stock,omitempty"`
}

func (r ReplaceStockRequest) ToCommand() commands.ReplaceStockRequest {
	return commands.ReplaceStockRequest{
		Sizes: rawOrNil(r.Sizes),
		Stock: r.Stock,
	}
}

type AdjustSizesRequest struct {
	Sizes json.RawMessage `json:"sizes"`
}

// rawOrNil treats an explicit JSON null like an absent field.
func rawOrNil(raw json.RawMessage) []byte {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}
