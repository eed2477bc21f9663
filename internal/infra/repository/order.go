package repository

import (
	"context"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/infra/repository/converter"
	sqlc "cellar-shop/internal/infra/sqlc/generated"
	"cellar-shop/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderWriteQueries interface {
	InsertOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderParams) (uuid.UUID, error)
	InsertOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderItemParams) error
	InsertOrderStatusHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderStatusHistoryParams) error
	GetOrderByNumber(ctx context.Context, db sqlc.DBTX, orderNumber string) (sqlc.Orders, error)
	GetOrderByNumberForUpdate(ctx context.Context, db sqlc.DBTX, orderNumber string) (sqlc.Orders, error)
	GetOrderByTrackingCode(ctx context.Context, db sqlc.DBTX, trackingCode string) (sqlc.Orders, error)
	GetOrderByTrackingCodeForUpdate(ctx context.Context, db sqlc.DBTX, trackingCode string) (sqlc.Orders, error)
	GetOrderByCarrierTrackingForUpdate(ctx context.Context, db sqlc.DBTX, carrierTrackingNumber pgtype.Text) (sqlc.Orders, error)
	GetOrderByPaymentReference(ctx context.Context, db sqlc.DBTX, paymentReference pgtype.Text) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	ListOrderStatusHistory(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderStatusHistory, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) error
	UpdateOrderShipment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderShipmentParams) error
	UpdateOrderConfirmationEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderConfirmationEmailParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the order with its items and initial history. It returns
// false without writing anything when the payment reference is already taken.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (bool, error) {
	params, err := converter.OrderToInsertParams(o)
	if err != nil {
		return false, infra.WrapRepoErr("failed to build order row", err)
	}
	if _, err := r.queries.InsertOrder(ctx, tx, params); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert order", err)
	}

	for _, it := range o.Items() {
		if err := r.queries.InsertOrderItem(ctx, tx, converter.OrderItemToInsertParams(o, it)); err != nil {
			return false, infra.WrapRepoErr("failed to insert order item", err)
		}
	}
	if err := r.appendHistory(ctx, tx, o); err != nil {
		return false, err
	}
	return true, nil
}

func (r *OrderRepository) GetByNumber(ctx context.Context, tx sqlc.DBTX, number string, lock bool) (*order.Order, error) {
	var (
		row sqlc.Orders
		err error
	)
	if lock {
		row, err = r.queries.GetOrderByNumberForUpdate(ctx, tx, number)
	} else {
		row, err = r.queries.GetOrderByNumber(ctx, tx, number)
	}
	return r.load(ctx, tx, row, err)
}

func (r *OrderRepository) GetByTrackingCode(ctx context.Context, tx sqlc.DBTX, code string, lock bool) (*order.Order, error) {
	var (
		row sqlc.Orders
		err error
	)
	if lock {
		row, err = r.queries.GetOrderByTrackingCodeForUpdate(ctx, tx, code)
	} else {
		row, err = r.queries.GetOrderByTrackingCode(ctx, tx, code)
	}
	return r.load(ctx, tx, row, err)
}

// GetByCarrierTracking always takes the row lock; carrier updates race.
func (r *OrderRepository) GetByCarrierTracking(ctx context.Context, tx sqlc.DBTX, trackingNumber string) (*order.Order, error) {
	row, err := r.queries.GetOrderByCarrierTrackingForUpdate(ctx, tx, pgconv.StringToPgtype(trackingNumber))
	return r.load(ctx, tx, row, err)
}

func (r *OrderRepository) GetByPaymentReference(ctx context.Context, tx sqlc.DBTX, reference string) (*order.Order, error) {
	row, err := r.queries.GetOrderByPaymentReference(ctx, tx, pgconv.StringToPgtype(reference))
	return r.load(ctx, tx, row, err)
}

func (r *OrderRepository) load(ctx context.Context, tx sqlc.DBTX, row sqlc.Orders, err error) (*order.Order, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	items, err := r.queries.ListOrderItems(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	history, err := r.queries.ListOrderStatusHistory(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order history", err)
	}
	o, err := converter.OrderFromRows(row, items, history)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order", err)
	}
	return o, nil
}

// SaveStatus writes the current status and appends unsaved history entries.
func (r *OrderRepository) SaveStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	err := r.queries.UpdateOrderStatus(ctx, tx, sqlc.UpdateOrderStatusParams{
		ID:        o.ID(),
		Status:    string(o.Status()),
		UpdatedAt: pgconv.TimeToPgtype(o.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	return r.appendHistory(ctx, tx, o)
}

func (r *OrderRepository) SaveShipment(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.UpdateOrderShipment(ctx, tx, converter.OrderToShipmentParams(o)); err != nil {
		return infra.WrapRepoErr("failed to store shipment", err)
	}
	return r.SaveStatus(ctx, tx, o)
}

func (r *OrderRepository) UpdateConfirmation(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, status order.ConfirmationStatus, lastError *string) error {
	err := r.queries.UpdateOrderConfirmationEmail(ctx, tx, sqlc.UpdateOrderConfirmationEmailParams{
		ID:                      orderID,
		ConfirmationEmailStatus: string(status),
		ConfirmationEmailError:  pgconv.StringPtrToPgtype(lastError),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update confirmation email status", err)
	}
	return nil
}

func (r *OrderRepository) appendHistory(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	for _, h := range o.UnsavedHistory() {
		if err := r.queries.InsertOrderStatusHistory(ctx, tx, converter.HistoryToInsertParams(o, h)); err != nil {
			return infra.WrapRepoErr("failed to append order history", err)
		}
	}
	o.MarkHistoryPersisted()
	return nil
}
