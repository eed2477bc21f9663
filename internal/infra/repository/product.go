package repository

import (
	"context"

	"cellar-shop/internal/domain/product"
	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/infra/repository/converter"
	sqlc "cellar-shop/internal/infra/sqlc/generated"
	"cellar-shop/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductWriteQueries interface {
	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) (sqlc.Products, error)
	GetProductForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	ListProductStock(ctx context.Context, db sqlc.DBTX, productIds []uuid.UUID) ([]sqlc.ProductStock, error)
	UpsertProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertProductStockParams) error
	TouchProduct(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	DecrementProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementProductStockParams) (int64, error)
	IncrementProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementProductStockParams) (int64, error)
	GetProductStockQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.GetProductStockQuantityParams) (int32, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, tx sqlc.DBTX, p *product.Product) error {
	if _, err := r.queries.CreateProduct(ctx, tx, converter.ProductToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return r.writeStock(ctx, tx, p)
}

func (r *ProductRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*product.Product, error) {
	row, err := r.queries.GetProductForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock product", err)
	}
	stockRows, err := r.queries.ListProductStock(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product stock", err)
	}
	return converter.ProductFromRows(row, stockRows), nil
}

// SaveStock writes every ledger row of p.
func (r *ProductRepository) SaveStock(ctx context.Context, tx sqlc.DBTX, p *product.Product) error {
	if err := r.writeStock(ctx, tx, p); err != nil {
		return err
	}
	if err := r.queries.TouchProduct(ctx, tx, p.ID()); err != nil {
		return infra.WrapRepoErr("failed to touch product", err)
	}
	return nil
}

func (r *ProductRepository) writeStock(ctx context.Context, tx sqlc.DBTX, p *product.Product) error {
	for _, row := range converter.ProductStockRows(p) {
		if err := r.queries.UpsertProductStock(ctx, tx, row); err != nil {
			return infra.WrapRepoErr("failed to write product stock", err)
		}
	}
	return nil
}

func (r *ProductRepository) Decrement(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, size stock.SizeKey, quantity int) error {
	affected, err := r.queries.DecrementProductStock(ctx, tx, sqlc.DecrementProductStockParams{
		Quantity:  pgconv.IntToInt32(quantity),
		ProductID: productID,
		SizeKey:   size.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to decrement product stock", err)
	}
	if affected > 0 {
		return nil
	}

	available, err := r.queries.GetProductStockQuantity(ctx, tx, sqlc.GetProductStockQuantityParams{
		ProductID: productID,
		SizeKey:   size.String(),
	})
	if err != nil && !pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("failed to read product stock", err)
	}
	return &stock.InsufficientStockError{Size: size, Available: int(available), Requested: quantity}
}

// Increment restocks a row, creating it when the ledger never held the size.
func (r *ProductRepository) Increment(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, size stock.SizeKey, quantity int) error {
	affected, err := r.queries.IncrementProductStock(ctx, tx, sqlc.IncrementProductStockParams{
		Quantity:  pgconv.IntToInt32(quantity),
		ProductID: productID,
		SizeKey:   size.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to increment product stock", err)
	}
	if affected > 0 {
		return nil
	}
	err = r.queries.UpsertProductStock(ctx, tx, sqlc.UpsertProductStockParams{
		ProductID: productID,
		SizeKey:   size.String(),
		Quantity:  pgconv.IntToInt32(quantity),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to restock product", err)
	}
	return nil
}
