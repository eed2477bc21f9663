//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/domain/user"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/usecase/queries"
	"cellar-shop/internal/usecase/shared"
	"cellar-shop/tests/common/builder"
	queriesmock "cellar-shop/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errNotFound = infra.RepositoryError{Kind: infra.KindNotFound}

func actorFor(id uuid.UUID, role user.Role) shared.Actor {
	return shared.Actor{UserID: &id, Role: role}
}

func TestOrderQueries_GetOrder(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	o, err := builder.NewOrderBuilder().WithOwner(owner).BuildDomain()
	require.NoError(t, err)
	view := queries.NewOrderView(o)

	testCases := []struct {
		name    string
		actor   shared.Actor
		findErr error
		wantErr error
	}{
		{name: "owner", actor: actorFor(owner, user.RoleCustomer)},
		{name: "admin", actor: actorFor(uuid.New(), user.RoleAdmin)},
		{name: "another customer", actor: actorFor(uuid.New(), user.RoleCustomer), wantErr: queries.ErrOrderAccess},
		{name: "guest", actor: shared.Guest(), wantErr: queries.ErrOrderAccess},
		{name: "unknown number", actor: actorFor(owner, user.RoleCustomer), findErr: errNotFound, wantErr: queries.ErrOrderNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockOrderReadStore(ctrl)
			if tc.findErr != nil {
				store.EXPECT().FindByNumber(ctx, view.OrderNumber).Return(nil, tc.findErr)
			} else {
				store.EXPECT().FindByNumber(ctx, view.OrderNumber).Return(view, nil)
			}

			got, err := queries.NewOrderQueries(store).GetOrder(ctx, view.OrderNumber, tc.actor)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view.OrderNumber, got.OrderNumber)
		})
	}
}

func TestOrderQueries_TrackByCode(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	o, err := builder.NewOrderBuilder().WithOwner(owner).BuildDomain()
	require.NoError(t, err)
	view := queries.NewOrderView(o)

	t.Run("owner sees the full order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().FindByTrackingCode(ctx, view.TrackingCode).Return(view, nil)

		res, err := queries.NewOrderQueries(store).TrackByCode(ctx, view.TrackingCode, actorFor(owner, user.RoleCustomer))

		require.NoError(t, err)
		require.NotNil(t, res.Full)
		assert.Nil(t, res.Summary)
		assert.Len(t, res.Full.Items, len(view.Items))
	})

	t.Run("anyone else sees the status only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().FindByTrackingCode(ctx, view.TrackingCode).Return(view, nil)

		res, err := queries.NewOrderQueries(store).TrackByCode(ctx, view.TrackingCode, shared.Guest())

		require.NoError(t, err)
		assert.Nil(t, res.Full)
		assert.Equal(t, &queries.TrackingSummary{
			OrderNumber: view.OrderNumber,
			Status:      order.StatusPlaced,
			UpdatedAt:   view.UpdatedAt,
		}, res.Summary)
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().FindByTrackingCode(ctx, "ZZZZZZZZZZ").Return(nil, errNotFound)

		_, err := queries.NewOrderQueries(store).TrackByCode(ctx, "ZZZZZZZZZZ", shared.Guest())

		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	})
}

func TestOrderQueries_ListOrders(t *testing.T) {
	ctx := context.Background()
	shipped := order.StatusShipped
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("clamps the page and filters by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		items := []*queries.OrderSummaryView{{OrderNumber: "ORD-1", Status: shipped, CreatedAt: now, UpdatedAt: now}}
		store.EXPECT().List(ctx, &shipped, int32(queries.MaxListLimit), int32(0)).Return(items, nil)
		store.EXPECT().Count(ctx, &shipped).Return(int64(1), nil)

		page, err := queries.NewOrderQueries(store).ListOrders(ctx, queries.OrderFilter{Status: &shipped, Limit: 10_000, Offset: -5})

		require.NoError(t, err)
		assert.Equal(t, &queries.OrderPage{Items: items, Total: 1, Limit: queries.MaxListLimit, Offset: 0}, page)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().List(ctx, nil, int32(queries.DefaultListLimit), int32(0)).Return(nil, errors.New("connection reset"))

		_, err := queries.NewOrderQueries(store).ListOrders(ctx, queries.OrderFilter{})

		assert.Error(t, err)
	})
}

func TestNewOrderView(t *testing.T) {
	o, err := builder.NewOrderBuilder().
		WithLines(builder.OrderLine{Name: "Gift Box", Quantity: 2, UnitPrice: 12.5}).
		BuildInStatus(order.StatusConfirmed)
	require.NoError(t, err)

	view := queries.NewOrderView(o)

	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(2500), view.Items[0].LineTotalCents)
	assert.Equal(t, order.StatusConfirmed, view.Status)
	require.Len(t, view.History, 2)
	assert.Equal(t, order.KindCreated, view.History[0].Kind)
	assert.Nil(t, view.Shipment)
}
