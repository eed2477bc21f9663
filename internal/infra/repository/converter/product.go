package converter

import (
	"cellar-shop/internal/domain/product"
	"cellar-shop/internal/domain/stock"
	sqlc "cellar-shop/internal/infra/sqlc/generated"
	"cellar-shop/internal/pkg/pgconv"
)

func ProductToCreateParams(p *product.Product) sqlc.CreateProductParams {
	return sqlc.CreateProductParams{
		ID:         p.ID(),
		Name:       p.Name(),
		PriceCents: p.PriceCents(),
		HasSizes:   p.HasSizes(),
	}
}

// ProductStockRows lists the ledger rows backing p. Sizeless products use a
// single row keyed by the empty size.
func ProductStockRows(p *product.Product) []sqlc.UpsertProductStockParams {
	if !p.HasSizes() {
		return []sqlc.UpsertProductStockParams{{
			ProductID: p.ID(),
			SizeKey:   stock.SizeNone.String(),
			Quantity:  pgconv.IntToInt32(p.UnsizedStock()),
		}}
	}
	ledger := p.Ledger()
	rows := make([]sqlc.UpsertProductStockParams, 0, len(ledger))
	for _, key := range stock.Vocabulary() {
		rows = append(rows, sqlc.UpsertProductStockParams{
			ProductID: p.ID(),
			SizeKey:   key.String(),
			Quantity:  pgconv.IntToInt32(ledger.Quantity(key)),
		})
	}
	return rows
}

// ProductFromRows rebuilds the aggregate from its product row and stock rows.
// The size rows go through the tolerant ledger parser, so unknown keys are
// dropped and bad quantities read as zero.
func ProductFromRows(row sqlc.Products, stockRows []sqlc.ProductStock) *product.Product {
	sized := make(map[string]int, len(stockRows))
	unsized := 0
	for _, s := range stockRows {
		if s.ProductID != row.ID {
			continue
		}
		if s.SizeKey == stock.SizeNone.String() {
			unsized = max(int(s.Quantity), 0)
			continue
		}
		sized[s.SizeKey] = int(s.Quantity)
	}
	ledger, err := stock.ParseStockMap(sized, stock.Tolerant)
	if err != nil {
		ledger = stock.NewLedger()
	}
	return product.Reconstruct(
		row.ID,
		row.Name,
		row.PriceCents,
		row.HasSizes,
		ledger,
		unsized,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
