package queries

import (
	"context"

	"cellar-shop/internal/infra"
	"cellar-shop/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.Mark(errs.New("product not found"), errs.ErrNotFound)

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, limit, offset int32) ([]*ProductView, error)
	Count(ctx context.Context) (int64, error)
}

type ProductQueries interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListProducts(ctx context.Context, limit, offset int) (*ProductPage, error)
}

type productQueriesImpl struct {
	repo ProductReadStore
}

func NewProductQueries(repo ProductReadStore) ProductQueries {
	return &productQueriesImpl{repo: repo}
}

func (q *productQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	p, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (q *productQueriesImpl) ListProducts(ctx context.Context, limit, offset int) (*ProductPage, error) {
	limit = ValidateLimit(limit)
	offset = ValidateOffset(offset)

	items, err := q.repo.List(ctx, int32(limit), int32(offset)) // #nosec G115 -- clamped above
	if err != nil {
		return nil, err
	}
	total, err := q.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductPage{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}
