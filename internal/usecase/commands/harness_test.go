//go:build unit

package commands_test

import (
	"context"

	"cellar-shop/internal/infra"
	"cellar-shop/internal/usecase/shared"
	sharedmock "cellar-shop/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txMocks wires a UnitOfWork mock whose Within runs fn against one Tx mock.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	products      *sharedmock.MockProductRepository
	carts         *sharedmock.MockCartRepository
	orders        *sharedmock.MockOrderRepository
	notifications *sharedmock.MockNotificationRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		products:      sharedmock.NewMockProductRepository(ctrl),
		carts:         sharedmock.NewMockCartRepository(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Products().Return(m.products).AnyTimes()
	m.tx.EXPECT().Carts().Return(m.carts).AnyTimes()
	m.tx.EXPECT().Orders().Return(m.orders).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

var errNotFound = infra.RepositoryError{Kind: infra.KindNotFound}
