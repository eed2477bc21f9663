//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"cellar-shop/internal/domain/product"
	"cellar-shop/internal/domain/stock"
	reqdto "cellar-shop/internal/handler/dto/request"
	"cellar-shop/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID           uuid.UUID
	Name         string
	PriceCents   int64
	Sizes        map[string]int
	UnsizedStock int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProductBuilder defaults to a sized port with two stocked sizes.
func NewProductBuilder() *ProductBuilder {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &ProductBuilder{
		ID:         uuid.MustParse("6f1c2a8e-4d3b-4c7a-9e51-2b8d0f3a7c11"),
		Name:       "Tawny Port 10 Year",
		PriceCents: 2450,
		Sizes:      map[string]int{"75CL": 5, "1_5L": 1},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithSizes(sizes map[string]int) *ProductBuilder {
	b.Sizes = sizes
	return b
}

// Sizeless switches the product to scalar stock.
func (b *ProductBuilder) Sizeless(stockQty int) *ProductBuilder {
	b.Sizes = nil
	b.UnsizedStock = stockQty
	return b
}

func (b *ProductBuilder) ledger() stock.Ledger {
	partial := stock.Ledger{}
	for k, v := range b.Sizes {
		partial[stock.SizeKey(k)] = v
	}
	return stock.NewLedger().Merge(partial)
}

func (b *ProductBuilder) BuildDomain() *product.Product {
	if b.Sizes == nil {
		return product.Reconstruct(b.ID, b.Name, b.PriceCents, false, nil, b.UnsizedStock, b.CreatedAt, b.UpdatedAt)
	}
	return product.Reconstruct(b.ID, b.Name, b.PriceCents, true, b.ledger(), 0, b.CreatedAt, b.UpdatedAt)
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	view := &queries.ProductView{
		ID:         b.ID,
		Name:       b.Name,
		PriceCents: b.PriceCents,
		HasSizes:   b.Sizes != nil,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if b.Sizes == nil {
		view.TotalStock = b.UnsizedStock
		return view
	}
	l := b.ledger()
	view.Sizes = make(map[string]int, len(l))
	for k, v := range l {
		view.Sizes[k.String()] = v
	}
	view.TotalStock = l.Total()
	return view
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	req := reqdto.CreateProductRequest{
		Name:  b.Name,
		Price: float64(b.PriceCents) / 100,
	}
	if b.Sizes == nil {
		qty := b.UnsizedStock
		req.Stock = &qty
		return req
	}
	raw, _ := json.Marshal(b.Sizes)
	req.Sizes = raw
	return req
}
