package queries

import (
	"context"

	"cellar-shop/internal/domain/cart"
	"cellar-shop/internal/infra"

	"github.com/google/uuid"
)

type CartReadStore interface {
	FindSessionByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	ListLines(ctx context.Context, sessionID uuid.UUID) ([]cart.Line, error)
}

type CartQueries interface {
	GetCart(ctx context.Context, userID uuid.UUID) (cart.Cart, error)
}

type cartQueriesImpl struct {
	repo CartReadStore
}

func NewCartQueries(repo CartReadStore) CartQueries {
	return &cartQueriesImpl{repo: repo}
}

// GetCart returns an empty cart for users that never added an item.
func (q *cartQueriesImpl) GetCart(ctx context.Context, userID uuid.UUID) (cart.Cart, error) {
	sessionID, err := q.repo.FindSessionByUser(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return cart.Empty(), nil
		}
		return cart.Cart{}, err
	}

	lines, err := q.repo.ListLines(ctx, sessionID)
	if err != nil {
		return cart.Cart{}, err
	}
	return cart.Cart{
		SessionID:  &sessionID,
		Lines:      lines,
		TotalCents: cart.SumCents(lines),
	}, nil
}
