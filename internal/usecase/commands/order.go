package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/pkg/clock"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/shared"
)

var (
	ErrOrderNotFound = errs.Mark(errs.New("order not found"), errs.ErrNotFound)
	ErrOrderConflict = errs.Mark(errs.New("order status conflict"), errs.ErrConflict)
)

type PlaceOrderResult struct {
	OrderNumber  string
	TrackingCode string
	EmailSent    bool
	Replayed     bool
}

type StatusChangeResult struct {
	OrderNumber string
	Status      order.Status
	Kind        order.TransitionKind
	UpdatedAt   time.Time
}

type CarrierStatusUpdate struct {
	TrackingNumber string
	Code           string
	Description    string
	OccurredAt     time.Time
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, in order.PlacementInput, actor shared.Actor) (*PlaceOrderResult, error)
	CancelByTrackingCode(ctx context.Context, code string, actor shared.Actor) (*StatusChangeResult, error)
	UpdateStatus(ctx context.Context, orderNumber, status, note string) (*StatusChangeResult, error)
	IngestCarrierStatus(ctx context.Context, update CarrierStatusUpdate) (bool, error)
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	factory  *order.Factory
	clock    clock.Clock
	settings NotificationSettings
}

func NewOrderCommands(uow shared.UnitOfWork, factory *order.Factory, clk clock.Clock, settings NotificationSettings) OrderCommands {
	return &orderCommandsImpl{
		uow:      uow,
		factory:  factory,
		clock:    clk,
		settings: settings,
	}
}

// PlaceOrder creates an order once per payment reference. A repeated
// reference returns the stored order with Replayed set and touches nothing.
func (uc *orderCommandsImpl) PlaceOrder(ctx context.Context, in order.PlacementInput, actor shared.Actor) (*PlaceOrderResult, error) {
	draft, err := order.Validate(in)
	if err != nil {
		return nil, err
	}

	var result *PlaceOrderResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if ref := draft.PaymentReference; ref != nil {
			existing, err := tx.Orders().GetByPaymentReference(ctx, tx.DB(), *ref)
			if err == nil {
				result = replayResult(existing)
				return nil
			}
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
		}

		if err := uc.resolveTrackedLines(ctx, tx, draft); err != nil {
			return err
		}

		o := uc.factory.New(draft, actor.UserID)
		created, err := tx.Orders().Create(ctx, tx.DB(), o)
		if err != nil {
			return err
		}
		if !created {
			if draft.PaymentReference == nil {
				return errs.New("order insert skipped without payment reference")
			}
			// lost the race on the payment reference
			winner, err := tx.Orders().GetByPaymentReference(ctx, tx.DB(), *draft.PaymentReference)
			if err != nil {
				return err
			}
			result = replayResult(winner)
			return nil
		}

		for _, it := range o.TrackedItems() {
			if err := tx.Products().Decrement(ctx, tx.DB(), *it.ProductID, it.Size, it.Quantity); err != nil {
				return err
			}
		}

		if err := enqueuePlacement(ctx, tx, uc.settings, o, o.CreatedAt()); err != nil {
			return err
		}

		result = &PlaceOrderResult{
			OrderNumber:  o.Number(),
			TrackingCode: o.TrackingCode(),
			EmailSent:    o.Confirmation() == order.ConfirmationSent,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Replayed {
		slog.InfoContext(ctx, "order placement replayed",
			slog.String("order_id", result.OrderNumber))
	} else {
		slog.InfoContext(ctx, "order placed",
			slog.String("order_id", result.OrderNumber),
			slog.Int("items", len(draft.Items)))
	}
	return result, nil
}

// resolveTrackedLines applies catalogue size rules and fills missing names.
func (uc *orderCommandsImpl) resolveTrackedLines(ctx context.Context, tx shared.Tx, draft *order.Draft) error {
	for i := range draft.Items {
		it := &draft.Items[i]
		if !it.Tracked() {
			continue
		}
		p, err := tx.Reads().ProductByID(ctx, *it.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.NewValidationError(fmt.Sprintf("items[%d].productId", i), "unknown product")
			}
			return err
		}
		size, err := stock.ResolveSize(p, it.Size)
		if err != nil {
			return errs.NewValidationError(fmt.Sprintf("items[%d].size", i), err.Error())
		}
		it.Size = size
		if it.Name == "" {
			it.Name = p.Name()
		}
	}
	return nil
}

func replayResult(o *order.Order) *PlaceOrderResult {
	return &PlaceOrderResult{
		OrderNumber:  o.Number(),
		TrackingCode: o.TrackingCode(),
		EmailSent:    o.Confirmation() == order.ConfirmationSent,
		Replayed:     true,
	}
}

// CancelByTrackingCode lets the owner cancel. Anyone else sees NotFound.
func (uc *orderCommandsImpl) CancelByTrackingCode(ctx context.Context, code string, actor shared.Actor) (*StatusChangeResult, error) {
	var result *StatusChangeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := uc.lockByTrackingCode(ctx, tx, code)
		if err != nil {
			return err
		}
		if !o.IsOwnedBy(actor.UserID) {
			return ErrOrderNotFound
		}
		result, err = uc.transition(ctx, tx, o, order.StatusCancelled, order.ActorCustomer, "cancelled by customer")
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus is the admin path. Moves outside the forward table are
// recorded as overrides.
func (uc *orderCommandsImpl) UpdateStatus(ctx context.Context, orderNumber, status, note string) (*StatusChangeResult, error) {
	target, err := order.ParseStatus(status)
	if err != nil {
		return nil, errs.NewValidationError("status", err.Error())
	}

	var result *StatusChangeResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().GetByNumber(ctx, tx.DB(), orderNumber, true)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if note == "" {
			note = "status set to " + string(target)
		}
		result, err = uc.transition(ctx, tx, o, target, order.ActorAdmin, note)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// IngestCarrierStatus applies a carrier update. It reports false for
// duplicates, stale updates and orders already closed.
func (uc *orderCommandsImpl) IngestCarrierStatus(ctx context.Context, update CarrierStatusUpdate) (bool, error) {
	if update.TrackingNumber == "" {
		return false, errs.NewValidationError("trackingNumber", "is required")
	}
	at := update.OccurredAt
	if at.IsZero() {
		at = uc.clock.Now()
	}

	applied := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().GetByCarrierTracking(ctx, tx.DB(), update.TrackingNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		changed, err := o.ApplyCarrierStatus(update.Code, update.Description, at)
		if err != nil {
			return errs.Mark(err, errs.ErrConflict)
		}
		if !changed {
			return nil
		}
		if err := uc.persistTransition(ctx, tx, o, order.ActorCarrier); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if applied {
		slog.InfoContext(ctx, "carrier status applied",
			slog.String("tracking_number", update.TrackingNumber),
			slog.String("code", update.Code))
	}
	return applied, nil
}

func (uc *orderCommandsImpl) lockByTrackingCode(ctx context.Context, tx shared.Tx, code string) (*order.Order, error) {
	o, err := tx.Orders().GetByTrackingCode(ctx, tx.DB(), code, true)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (uc *orderCommandsImpl) transition(ctx context.Context, tx shared.Tx, o *order.Order, to order.Status, actor order.Actor, note string) (*StatusChangeResult, error) {
	kind, err := o.Transition(to, actor, note, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrConflict)
	}
	if err := uc.persistTransition(ctx, tx, o, actor); err != nil {
		return nil, err
	}
	return &StatusChangeResult{
		OrderNumber: o.Number(),
		Status:      o.Status(),
		Kind:        kind,
		UpdatedAt:   o.UpdatedAt(),
	}, nil
}

// persistTransition saves the new status, restocks on cancellation and
// queues the status event.
func (uc *orderCommandsImpl) persistTransition(ctx context.Context, tx shared.Tx, o *order.Order, actor order.Actor) error {
	if err := tx.Orders().SaveStatus(ctx, tx.DB(), o); err != nil {
		return err
	}
	if o.Status() == order.StatusCancelled {
		for _, it := range o.TrackedItems() {
			if err := tx.Products().Increment(ctx, tx.DB(), *it.ProductID, it.Size, it.Quantity); err != nil {
				return err
			}
		}
	}
	return enqueueEvent(ctx, tx, shared.TopicOrderStatusChanged, o, actor, o.UpdatedAt())
}
