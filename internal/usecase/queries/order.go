package queries

import (
	"context"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/shared"
)

var (
	ErrOrderNotFound = errs.Mark(errs.New("order not found"), errs.ErrNotFound)
	ErrOrderAccess   = errs.Mark(errs.New("order belongs to another customer"), errs.ErrNotFound)
)

type OrderReadStore interface {
	FindByNumber(ctx context.Context, number string) (*OrderView, error)
	FindByTrackingCode(ctx context.Context, code string) (*OrderView, error)
	List(ctx context.Context, status *order.Status, limit, offset int32) ([]*OrderSummaryView, error)
	Count(ctx context.Context, status *order.Status) (int64, error)
	ListCarrierTracked(ctx context.Context, limit int32) ([]CarrierTrackedOrder, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, number string, actor shared.Actor) (*OrderView, error)
	TrackByCode(ctx context.Context, code string, actor shared.Actor) (*TrackingResult, error)
	ListOrders(ctx context.Context, filter OrderFilter) (*OrderPage, error)
	ListCarrierTracked(ctx context.Context, limit int) ([]CarrierTrackedOrder, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

// GetOrder is restricted to the owner and admins. Anyone else gets NotFound.
func (q *orderQueriesImpl) GetOrder(ctx context.Context, number string, actor shared.Actor) (*OrderView, error) {
	view, err := q.repo.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() && !ownedBy(view, actor) {
		return nil, ErrOrderAccess
	}
	return view, nil
}

// TrackByCode shows the owner everything and anyone else the status only.
func (q *orderQueriesImpl) TrackByCode(ctx context.Context, code string, actor shared.Actor) (*TrackingResult, error) {
	view, err := q.repo.FindByTrackingCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if actor.IsAdmin() || ownedBy(view, actor) {
		return &TrackingResult{Full: view}, nil
	}
	return &TrackingResult{Summary: &TrackingSummary{
		OrderNumber: view.OrderNumber,
		Status:      view.Status,
		UpdatedAt:   view.UpdatedAt,
	}}, nil
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context, filter OrderFilter) (*OrderPage, error) {
	limit := ValidateLimit(filter.Limit)
	offset := ValidateOffset(filter.Offset)

	items, err := q.repo.List(ctx, filter.Status, int32(limit), int32(offset)) // #nosec G115 -- clamped above
	if err != nil {
		return nil, err
	}
	total, err := q.repo.Count(ctx, filter.Status)
	if err != nil {
		return nil, err
	}
	return &OrderPage{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (q *orderQueriesImpl) ListCarrierTracked(ctx context.Context, limit int) ([]CarrierTrackedOrder, error) {
	return q.repo.ListCarrierTracked(ctx, int32(ValidateLimit(limit))) // #nosec G115 -- clamped
}

func ownedBy(view *OrderView, actor shared.Actor) bool {
	return actor.UserID != nil && view.UserID != nil && *view.UserID == *actor.UserID
}

// NewOrderView projects an order aggregate for display.
func NewOrderView(o *order.Order) *OrderView {
	view := &OrderView{
		ID:                      o.ID(),
		OrderNumber:             o.Number(),
		TrackingCode:            o.TrackingCode(),
		UserID:                  o.UserID(),
		Customer:                o.Customer(),
		ShippingAddress:         o.ShippingAddress(),
		PaymentMethod:           string(o.PaymentMethod()),
		PaymentReference:        o.PaymentReference(),
		IsTrade:                 o.IsTrade(),
		Status:                  o.Status(),
		Amounts:                 o.Amounts(),
		ConfirmationEmailStatus: string(o.Confirmation()),
		ConfirmationEmailError:  o.ConfirmationError(),
		CreatedAt:               o.CreatedAt(),
		UpdatedAt:               o.UpdatedAt(),
	}
	for _, it := range o.Items() {
		view.Items = append(view.Items, OrderItemView{
			ProductID:      it.ProductID,
			Size:           it.Size.String(),
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: it.LineTotalCents(),
		})
	}
	for _, h := range o.History() {
		view.History = append(view.History, HistoryView{Status: h.Status, Kind: h.Kind, Note: h.Note, At: h.At})
	}
	if s := o.Shipment(); s != nil {
		view.Shipment = &ShipmentView{
			Carrier:        s.Carrier,
			TrackingNumber: s.TrackingNumber,
			LabelFormat:    s.LabelFormat,
		}
	}
	return view
}
