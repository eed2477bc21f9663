package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/domain/pricing"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/shared"

	"github.com/google/uuid"
)

// NotificationSettings addresses the operator alert.
type NotificationSettings struct {
	OwnerEmail string
}

// ConfirmationRecorder stores the outcome of a customer confirmation email.
type ConfirmationRecorder interface {
	RecordConfirmation(ctx context.Context, orderID uuid.UUID, sendErr error) error
}

type confirmationRecorderImpl struct {
	uow shared.UnitOfWork
}

func NewConfirmationRecorder(uow shared.UnitOfWork) ConfirmationRecorder {
	return &confirmationRecorderImpl{uow: uow}
}

func (r *confirmationRecorderImpl) RecordConfirmation(ctx context.Context, orderID uuid.UUID, sendErr error) error {
	status := order.ConfirmationSent
	var lastError *string
	if sendErr != nil {
		status = order.ConfirmationFailed
		msg := sendErr.Error()
		lastError = &msg
	}
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().UpdateConfirmation(ctx, tx.DB(), orderID, status, lastError)
	})
}

// enqueuePlacement queues the owner alert, the customer confirmation and the
// order.placed event in the placing transaction.
func enqueuePlacement(ctx context.Context, tx shared.Tx, settings NotificationSettings, o *order.Order, now time.Time) error {
	if settings.OwnerEmail != "" {
		alert := shared.EmailPayload{
			OrderID: o.ID(),
			To:      settings.OwnerEmail,
			Subject: "New order " + o.Number(),
			Body:    ownerAlertBody(o),
		}
		if err := enqueue(ctx, tx, shared.JobKindEmail, shared.TopicOwnerAlert, alert, now); err != nil {
			return err
		}
	}

	confirmation := shared.EmailPayload{
		OrderID: o.ID(),
		To:      o.Customer().Email,
		Subject: "Your order " + o.Number(),
		Body:    confirmationBody(o),
	}
	if err := enqueue(ctx, tx, shared.JobKindEmail, shared.TopicCustomerConfirmation, confirmation, now); err != nil {
		return err
	}

	return enqueueEvent(ctx, tx, shared.TopicOrderPlaced, o, "", now)
}

func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, o *order.Order, by order.Actor, now time.Time) error {
	event := shared.OrderEvent{
		Type:         topic,
		OrderID:      o.ID(),
		OrderNumber:  o.Number(),
		Status:       string(o.Status()),
		TotalCents:   o.Amounts().TotalCents,
		OccurredAt:   now,
		TransitionBy: string(by),
	}
	return enqueue(ctx, tx, shared.JobKindEvent, topic, event, now)
}

func enqueue(ctx context.Context, tx shared.Tx, kind, topic string, payload any, runAt time.Time) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, raw, runAt)
}

func ownerAlertBody(o *order.Order) string {
	var b strings.Builder
	c := o.Customer()
	fmt.Fprintf(&b, "Order %s placed by %s <%s>\n", o.Number(), c.Name, c.Email)
	fmt.Fprintf(&b, "Payment: %s\n", o.PaymentMethod())
	writeLines(&b, o)
	return b.String()
}

func confirmationBody(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nThank you for your order %s.\n", o.Customer().Name, o.Number())
	fmt.Fprintf(&b, "Track it any time with code %s.\n\n", o.TrackingCode())
	writeLines(&b, o)
	return b.String()
}

func writeLines(b *strings.Builder, o *order.Order) {
	for _, it := range o.Items() {
		name := it.Name
		if it.Size != "" {
			name += " (" + it.Size.String() + ")"
		}
		fmt.Fprintf(b, "  %d x %s  %s\n", it.Quantity, name, money(it.LineTotalCents()))
	}
	a := o.Amounts()
	fmt.Fprintf(b, "Subtotal %s\n", money(a.SubtotalCents))
	if a.DiscountCents != 0 {
		fmt.Fprintf(b, "Discount -%s\n", money(a.DiscountCents))
	}
	fmt.Fprintf(b, "Tax %s\nShipping %s\nTotal %s\n", money(a.TaxCents), money(a.ShippingFeeCents), money(a.TotalCents))
}

func money(cents int64) string {
	return pricing.FromCents(cents).StringFixed(2)
}
