package shared

import (
	"context"
	"time"

	"cellar-shop/internal/domain/cart"
	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/domain/product"
	"cellar-shop/internal/domain/stock"
	sqlc "cellar-shop/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// UnitOfWork runs fn in one read-committed transaction. fn may be invoked
// again when Postgres aborts the attempt with a serialization failure or
// deadlock, so it must not have effects outside tx.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups a command makes inside its transaction
// before deciding what to write.
type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	SessionByUser(ctx context.Context, userID uuid.UUID) (*SessionSnapshot, error)
	CartItemByID(ctx context.Context, id uuid.UUID) (*CartItemSnapshot, error)
	CartItemByKey(ctx context.Context, sessionID, productID uuid.UUID, size stock.SizeKey) (*cart.Item, error)
}

type ProductRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *product.Product) error
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*product.Product, error)
	SaveStock(ctx context.Context, tx sqlc.DBTX, p *product.Product) error
	// Decrement fails with *stock.InsufficientStockError when the row holds less than quantity.
	Decrement(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, size stock.SizeKey, quantity int) error
	Increment(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, size stock.SizeKey, quantity int) error
}

type CartRepository interface {
	EnsureSession(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (uuid.UUID, error)
	UpsertItem(ctx context.Context, tx sqlc.DBTX, sessionID, productID uuid.UUID, size stock.SizeKey, quantity int) (uuid.UUID, error)
	UpdateQuantity(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID) error
	ClearSession(ctx context.Context, tx sqlc.DBTX, sessionID uuid.UUID) error
	RecalcTotal(ctx context.Context, tx sqlc.DBTX, sessionID uuid.UUID) (int64, error)
}

type OrderRepository interface {
	// Create reports false when another order already holds the payment reference.
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (bool, error)
	GetByNumber(ctx context.Context, tx sqlc.DBTX, number string, lock bool) (*order.Order, error)
	GetByTrackingCode(ctx context.Context, tx sqlc.DBTX, code string, lock bool) (*order.Order, error)
	GetByCarrierTracking(ctx context.Context, tx sqlc.DBTX, trackingNumber string) (*order.Order, error)
	GetByPaymentReference(ctx context.Context, tx sqlc.DBTX, reference string) (*order.Order, error)
	SaveStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	SaveShipment(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	UpdateConfirmation(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, status order.ConfirmationStatus, lastError *string) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
