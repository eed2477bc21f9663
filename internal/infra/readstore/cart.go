package readstore

import (
	"context"

	"cellar-shop/internal/domain/cart"
	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/infra"
	sqlc "cellar-shop/internal/infra/sqlc/generated"
	"cellar-shop/internal/pkg/pgconv"
	"cellar-shop/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartReadQueries interface {
	GetShoppingSessionByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.ShoppingSessions, error)
	ListCartLines(ctx context.Context, db sqlc.DBTX, sessionID uuid.UUID) ([]sqlc.ListCartLinesRow, error)
	GetCartItemWithOwner(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCartItemWithOwnerRow, error)
	GetCartItemByKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartItemByKeyParams) (sqlc.CartItems, error)
}

type CartReadStore struct {
	queries CartReadQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartReadQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) FindSessionByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	s, err := r.Session(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	return s.ID, nil
}

func (r *CartReadStore) Session(ctx context.Context, userID uuid.UUID) (*shared.SessionSnapshot, error) {
	row, err := r.queries.GetShoppingSessionByUser(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shopping session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get shopping session", err)
	}
	return &shared.SessionSnapshot{ID: row.ID, UserID: row.UserID, TotalCents: row.TotalCents}, nil
}

func (r *CartReadStore) ListLines(ctx context.Context, sessionID uuid.UUID) ([]cart.Line, error) {
	rows, err := r.queries.ListCartLines(ctx, r.db, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}
	lines := make([]cart.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, cart.Line{
			ItemID:         row.ID,
			ProductID:      row.ProductID,
			ProductName:    row.ProductName,
			Size:           stock.SizeKey(row.SizeKey),
			Quantity:       int(row.Quantity),
			UnitPriceCents: row.PriceCents,
			Available:      int(row.Available),
		})
	}
	return lines, nil
}

func (r *CartReadStore) ItemByID(ctx context.Context, id uuid.UUID) (*shared.CartItemSnapshot, error) {
	row, err := r.queries.GetCartItemWithOwner(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart item", err)
	}
	return &shared.CartItemSnapshot{
		ID:        row.ID,
		SessionID: row.SessionID,
		ProductID: row.ProductID,
		Size:      row.SizeKey,
		Quantity:  int(row.Quantity),
		OwnerID:   row.UserID,
	}, nil
}

func (r *CartReadStore) ItemByKey(ctx context.Context, sessionID, productID uuid.UUID, size stock.SizeKey) (*cart.Item, error) {
	row, err := r.queries.GetCartItemByKey(ctx, r.db, sqlc.GetCartItemByKeyParams{
		SessionID: sessionID,
		ProductID: productID,
		SizeKey:   size.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart item by key", err)
	}
	return cart.ReconstructItem(row.ID, row.SessionID, row.ProductID, stock.SizeKey(row.SizeKey), int(row.Quantity)), nil
}
