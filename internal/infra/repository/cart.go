package repository

import (
	"context"

	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/infra"
	sqlc "cellar-shop/internal/infra/sqlc/generated"
	"cellar-shop/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	UpsertShoppingSession(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.ShoppingSessions, error)
	UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) (sqlc.CartItems, error)
	UpdateCartItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCartItemQuantityParams) (sqlc.CartItems, error)
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	DeleteCartItemsBySession(ctx context.Context, db sqlc.DBTX, sessionID uuid.UUID) error
	RecalcSessionTotal(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

// EnsureSession returns the user's session, creating it on first use.
func (r *CartRepository) EnsureSession(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (uuid.UUID, error) {
	row, err := r.queries.UpsertShoppingSession(ctx, tx, userID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert shopping session", err)
	}
	return row.ID, nil
}

func (r *CartRepository) UpsertItem(ctx context.Context, tx sqlc.DBTX, sessionID, productID uuid.UUID, size stock.SizeKey, quantity int) (uuid.UUID, error) {
	row, err := r.queries.UpsertCartItem(ctx, tx, sqlc.UpsertCartItemParams{
		SessionID: sessionID,
		ProductID: productID,
		SizeKey:   size.String(),
		Quantity:  pgconv.IntToInt32(quantity),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert cart item", err)
	}
	return row.ID, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID, quantity int) error {
	_, err := r.queries.UpdateCartItemQuantity(ctx, tx, sqlc.UpdateCartItemQuantityParams{
		ID:       itemID,
		Quantity: pgconv.IntToInt32(quantity),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("cart item not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update cart item", err)
	}
	return nil
}

func (r *CartRepository) DeleteItem(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID) error {
	if err := r.queries.DeleteCartItem(ctx, tx, itemID); err != nil {
		return infra.WrapRepoErr("failed to delete cart item", err)
	}
	return nil
}

func (r *CartRepository) ClearSession(ctx context.Context, tx sqlc.DBTX, sessionID uuid.UUID) error {
	if err := r.queries.DeleteCartItemsBySession(ctx, tx, sessionID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}

// RecalcTotal recomputes the session total from the remaining items.
func (r *CartRepository) RecalcTotal(ctx context.Context, tx sqlc.DBTX, sessionID uuid.UUID) (int64, error) {
	total, err := r.queries.RecalcSessionTotal(ctx, tx, sessionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to recalculate cart total", err)
	}
	return total, nil
}
