package readstore

import (
	"context"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/infra/repository/converter"
	sqlc "cellar-shop/internal/infra/sqlc/generated"
	"cellar-shop/internal/pkg/pgconv"
	"cellar-shop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadQueries interface {
	GetOrderByNumber(ctx context.Context, db sqlc.DBTX, orderNumber string) (sqlc.Orders, error)
	GetOrderByTrackingCode(ctx context.Context, db sqlc.DBTX, trackingCode string) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	ListOrderStatusHistory(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderStatusHistory, error)
	ListOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersParams) ([]sqlc.Orders, error)
	CountOrders(ctx context.Context, db sqlc.DBTX, status pgtype.Text) (int64, error)
	ClaimCarrierTrackedOpenOrders(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ClaimCarrierTrackedOpenOrdersRow, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByNumber(ctx context.Context, number string) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByNumber(ctx, r.db, number)
	return r.view(ctx, row, err)
}

func (r *OrderReadStore) FindByTrackingCode(ctx context.Context, code string) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByTrackingCode(ctx, r.db, code)
	return r.view(ctx, row, err)
}

func (r *OrderReadStore) view(ctx context.Context, row sqlc.Orders, err error) (*queries.OrderView, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view", err)
	}
	items, err := r.queries.ListOrderItems(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	history, err := r.queries.ListOrderStatusHistory(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order history", err)
	}
	o, err := converter.OrderFromRows(row, items, history)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order", err)
	}
	return queries.NewOrderView(o), nil
}

func (r *OrderReadStore) List(ctx context.Context, status *order.Status, limit, offset int32) ([]*queries.OrderSummaryView, error) {
	rows, err := r.queries.ListOrders(ctx, r.db, sqlc.ListOrdersParams{
		Status:    statusFilter(status),
		RowLimit:  limit,
		RowOffset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	views := make([]*queries.OrderSummaryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.OrderSummaryView{
			OrderNumber:  row.OrderNumber,
			TrackingCode: row.TrackingCode,
			CustomerName: row.CustomerName,
			Status:       order.Status(row.Status),
			TotalCents:   row.TotalCents,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}

func (r *OrderReadStore) Count(ctx context.Context, status *order.Status) (int64, error) {
	n, err := r.queries.CountOrders(ctx, r.db, statusFilter(status))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count orders", err)
	}
	return n, nil
}

// ListCarrierTracked returns the open tracked orders polled longest ago and
// stamps them as polled, so repeated calls walk the whole set.
func (r *OrderReadStore) ListCarrierTracked(ctx context.Context, limit int32) ([]queries.CarrierTrackedOrder, error) {
	rows, err := r.queries.ClaimCarrierTrackedOpenOrders(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list carrier tracked orders", err)
	}
	out := make([]queries.CarrierTrackedOrder, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.CarrierTrackedOrder{
			OrderID:        row.ID,
			OrderNumber:    row.OrderNumber,
			TrackingNumber: pgconv.StringFromPgtype(row.CarrierTrackingNumber),
		})
	}
	return out, nil
}

func statusFilter(status *order.Status) pgtype.Text {
	if status == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(string(*status))
}
