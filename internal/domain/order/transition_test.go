//go:build unit

package order_test

import (
	"testing"

	"cellar-shop/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTransition(t *testing.T) {
	testCases := []struct {
		name  string
		from  order.Status
		to    order.Status
		actor order.Actor
		kind  order.TransitionKind
		errIs error
	}{
		{name: "system forward", from: order.StatusPlaced, to: order.StatusConfirmed, actor: order.ActorSystem, kind: order.KindTransition},
		{name: "system processing back to confirmed", from: order.StatusProcessing, to: order.StatusConfirmed, actor: order.ActorSystem, kind: order.KindTransition},
		{name: "system skip rejected", from: order.StatusPlaced, to: order.StatusShipped, actor: order.ActorSystem, errIs: order.ErrTransitionNotAllowed},
		{name: "system cancel from picked", from: order.StatusPicked, to: order.StatusCancelled, actor: order.ActorSystem, kind: order.KindCancel},

		{name: "customer cancel placed", from: order.StatusPlaced, to: order.StatusCancelled, actor: order.ActorCustomer, kind: order.KindCancel},
		{name: "customer cancel processing", from: order.StatusProcessing, to: order.StatusCancelled, actor: order.ActorCustomer, kind: order.KindCancel},
		{name: "customer cancel shipped", from: order.StatusShipped, to: order.StatusCancelled, actor: order.ActorCustomer, errIs: order.ErrCannotCancel},
		{name: "customer cancel out for delivery", from: order.StatusOutForDelivery, to: order.StatusCancelled, actor: order.ActorCustomer, errIs: order.ErrCannotCancel},
		{name: "customer cancel delivered", from: order.StatusDelivered, to: order.StatusCancelled, actor: order.ActorCustomer, errIs: order.ErrCannotCancel},
		{name: "customer cancel twice", from: order.StatusCancelled, to: order.StatusCancelled, actor: order.ActorCustomer, errIs: order.ErrAlreadyCancelled},
		{name: "customer cannot progress", from: order.StatusPlaced, to: order.StatusConfirmed, actor: order.ActorCustomer, errIs: order.ErrTransitionNotAllowed},

		{name: "admin forward", from: order.StatusPicked, to: order.StatusShipped, actor: order.ActorAdmin, kind: order.KindTransition},
		{name: "admin override skip", from: order.StatusPlaced, to: order.StatusDelivered, actor: order.ActorAdmin, kind: order.KindOverride},
		{name: "admin override backwards", from: order.StatusShipped, to: order.StatusPlaced, actor: order.ActorAdmin, kind: order.KindOverride},
		{name: "admin cancel shipped is override", from: order.StatusShipped, to: order.StatusCancelled, actor: order.ActorAdmin, kind: order.KindOverride},
		{name: "admin from terminal", from: order.StatusDelivered, to: order.StatusShipped, actor: order.ActorAdmin, errIs: order.ErrTerminalStatus},
		{name: "admin same status", from: order.StatusPicked, to: order.StatusPicked, actor: order.ActorAdmin, errIs: order.ErrStatusUnchanged},
		{name: "admin unknown status", from: order.StatusPicked, to: order.Status("LOST"), actor: order.ActorAdmin, errIs: order.ErrInvalidStatus},

		{name: "carrier jump forward", from: order.StatusConfirmed, to: order.StatusOutForDelivery, actor: order.ActorCarrier, kind: order.KindCarrier},
		{name: "carrier regression", from: order.StatusShipped, to: order.StatusPicked, actor: order.ActorCarrier, errIs: order.ErrStaleStatus},
		{name: "carrier confirmed after processing", from: order.StatusProcessing, to: order.StatusConfirmed, actor: order.ActorCarrier, errIs: order.ErrStaleStatus},
		{name: "carrier return to sender", from: order.StatusOutForDelivery, to: order.StatusCancelled, actor: order.ActorCarrier, kind: order.KindCarrier},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := order.ResolveTransition(tc.from, tc.to, tc.actor)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, kind)
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("out for delivery")
	require.NoError(t, err)
	assert.Equal(t, order.StatusOutForDelivery, s)

	s, err = order.ParseStatus("Cancelled")
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, s)

	_, err = order.ParseStatus("lost")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestMapCarrierStatus(t *testing.T) {
	cases := map[string]order.Status{
		"I":                order.StatusConfirmed,
		"in transit":       order.StatusConfirmed,
		"p":                order.StatusPicked,
		"Picked-Up":        order.StatusPicked,
		"M":                order.StatusShipped,
		"manifest":         order.StatusShipped,
		"OT":               order.StatusOutForDelivery,
		"out_for_delivery": order.StatusOutForDelivery,
		"d":                order.StatusDelivered,
		"RS":               order.StatusCancelled,
		"return to sender": order.StatusCancelled,
		"XYZ":              order.StatusShipped,
		"":                 order.StatusShipped,
	}
	for code, want := range cases {
		assert.Equal(t, want, order.MapCarrierStatus(code), code)
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	cases := map[string]order.PaymentMethod{
		"Credit Card":     order.PaymentCreditCard,
		"CREDIT_CARD":     order.PaymentCreditCard,
		"debit-card":      order.PaymentDebitCard,
		"  PayPal ":       order.PaymentPayPal,
		"pay_at_pickup":   order.PaymentPayAtPickup,
		"Pay  At  Pickup": order.PaymentPayAtPickup,
	}
	for raw, want := range cases {
		got, err := order.NormalizePaymentMethod(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := order.NormalizePaymentMethod("bitcoin")
	assert.ErrorIs(t, err, order.ErrInvalidPaymentMethod)
}
