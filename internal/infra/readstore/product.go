package readstore

import (
	"context"

	"cellar-shop/internal/domain/product"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/infra/repository/converter"
	sqlc "cellar-shop/internal/infra/sqlc/generated"
	"cellar-shop/internal/pkg/pgconv"
	"cellar-shop/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductReadQueries interface {
	GetProduct(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	ListProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListProductsParams) ([]sqlc.Products, error)
	ListProductStock(ctx context.Context, db sqlc.DBTX, productIds []uuid.UUID) ([]sqlc.ProductStock, error)
	CountProducts(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

// FindDomainByID loads the aggregate without locking.
func (r *ProductReadStore) FindDomainByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row, err := r.queries.GetProduct(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	stockRows, err := r.queries.ListProductStock(ctx, r.db, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product stock", err)
	}
	return converter.ProductFromRows(row, stockRows), nil
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	p, err := r.FindDomainByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductView(p), nil
}

func (r *ProductReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.ProductView, error) {
	rows, err := r.queries.ListProducts(ctx, r.db, sqlc.ListProductsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	if len(rows) == 0 {
		return []*queries.ProductView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	stockRows, err := r.queries.ListProductStock(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product stock", err)
	}
	byProduct := make(map[uuid.UUID][]sqlc.ProductStock, len(rows))
	for _, s := range stockRows {
		byProduct[s.ProductID] = append(byProduct[s.ProductID], s)
	}

	views := make([]*queries.ProductView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toProductView(converter.ProductFromRows(row, byProduct[row.ID])))
	}
	return views, nil
}

func (r *ProductReadStore) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountProducts(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count products", err)
	}
	return n, nil
}

func toProductView(p *product.Product) *queries.ProductView {
	view := &queries.ProductView{
		ID:         p.ID(),
		Name:       p.Name(),
		PriceCents: p.PriceCents(),
		HasSizes:   p.HasSizes(),
		TotalStock: p.TotalStock(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
	}
	if ledger := p.Ledger(); ledger != nil {
		view.Sizes = make(map[string]int, len(ledger))
		for _, key := range ledger.Keys() {
			view.Sizes[key.String()] = ledger.Quantity(key)
		}
	}
	return view
}
