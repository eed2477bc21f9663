package commands

import (
	"context"
	"errors"
	"log/slog"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/domain/pricing"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/pkg/clock"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CreateShipmentResult struct {
	OrderNumber    string
	Carrier        string
	TrackingNumber string
	ShipmentID     string
	LabelFormat    string
	LabelData      string
	Status         order.Status
}

type ShipmentCommands interface {
	CreateShipment(ctx context.Context, orderNumber string) (*CreateShipmentResult, error)
}

type shipmentCommandsImpl struct {
	uow     shared.UnitOfWork
	carrier Carrier
	clock   clock.Clock
}

func NewShipmentCommands(uow shared.UnitOfWork, carrier Carrier, clk clock.Clock) ShipmentCommands {
	return &shipmentCommandsImpl{
		uow:     uow,
		carrier: carrier,
		clock:   clk,
	}
}

// CreateShipment books a label with the carrier and confirms the order.
// The carrier call runs outside any transaction.
func (uc *shipmentCommandsImpl) CreateShipment(ctx context.Context, orderNumber string) (*CreateShipmentResult, error) {
	var req ShipmentRequest
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := uc.load(ctx, tx, orderNumber, false)
		if err != nil {
			return err
		}
		if err := shippable(o); err != nil {
			return err
		}
		req = buildShipmentRequest(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	shipped, err := uc.carrier.CreateShipment(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "carrier shipment failed",
			slog.String("order_id", orderNumber),
			slog.String("carrier", uc.carrier.Name()),
			slog.String("error", err.Error()))
		return nil, err
	}

	var result *CreateShipmentResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := uc.load(ctx, tx, orderNumber, true)
		if err != nil {
			return err
		}
		s := order.Shipment{
			Carrier:        uc.carrier.Name(),
			TrackingNumber: shipped.TrackingNumber,
			ShipmentID:     shipped.ShipmentID,
			LabelFormat:    shipped.LabelFormat,
			LabelData:      shipped.LabelData,
		}
		if err := o.AttachShipment(s, uc.clock.Now()); err != nil {
			return shipmentError(err)
		}
		if err := tx.Orders().SaveShipment(ctx, tx.DB(), o); err != nil {
			return err
		}
		if err := enqueueEvent(ctx, tx, shared.TopicOrderStatusChanged, o, order.ActorSystem, o.UpdatedAt()); err != nil {
			return err
		}
		result = &CreateShipmentResult{
			OrderNumber:    o.Number(),
			Carrier:        s.Carrier,
			TrackingNumber: s.TrackingNumber,
			ShipmentID:     s.ShipmentID,
			LabelFormat:    s.LabelFormat,
			LabelData:      s.LabelData,
			Status:         o.Status(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "shipment created",
		slog.String("order_id", result.OrderNumber),
		slog.String("tracking_number", result.TrackingNumber))
	return result, nil
}

func (uc *shipmentCommandsImpl) load(ctx context.Context, tx shared.Tx, number string, lock bool) (*order.Order, error) {
	o, err := tx.Orders().GetByNumber(ctx, tx.DB(), number, lock)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func shippable(o *order.Order) error {
	if err := o.EnsureShippable(); err != nil {
		return shipmentError(err)
	}
	return nil
}

func shipmentError(err error) error {
	if errors.Is(err, order.ErrNoShippingAddress) {
		return errs.NewValidationError("shippingAddress", err.Error())
	}
	return errs.Mark(err, errs.ErrConflict)
}

func buildShipmentRequest(o *order.Order) ShipmentRequest {
	c := o.Customer()
	items := make([]ShipmentItem, 0, len(o.Items()))
	qty := 0
	for _, it := range o.Items() {
		items = append(items, ShipmentItem{Name: it.Name, Quantity: it.Quantity})
		qty += it.Quantity
	}
	return ShipmentRequest{
		OrderNumber: o.Number(),
		Recipient: ShipmentRecipient{
			Name:    c.Name,
			Email:   c.Email,
			Phone:   c.Phone,
			Address: *o.ShippingAddress(),
		},
		Items:         items,
		WeightKg:      DefaultBottleWeightKg.Mul(decimal.NewFromInt(int64(qty))),
		DeclaredValue: pricing.FromCents(o.Amounts().TotalCents),
	}
}
