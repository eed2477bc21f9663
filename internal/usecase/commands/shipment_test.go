//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/pkg/clock"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/tests/common/builder"
	commandsmock "cellar-shop/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShipmentCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *txMocks
	carrier *commandsmock.MockCarrier
	clock   *clock.FixedClock
	uc      commands.ShipmentCommands
}

func (s *ShipmentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.carrier = commandsmock.NewMockCarrier(s.ctrl)
	s.carrier.EXPECT().Name().Return("UPS").AnyTimes()
	s.clock = clock.NewFixedClock(time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC))
	s.uc = commands.NewShipmentCommands(s.m.uow, s.carrier, s.clock)
}

func (s *ShipmentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestShipmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(ShipmentCommandsTestSuite))
}

func (s *ShipmentCommandsTestSuite) TestCreateShipment() {
	s.Run("books the carrier and confirms the order", func() {
		s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		o, err := builder.NewOrderBuilder().WithLines(
			builder.OrderLine{Name: "Rioja", Quantity: 2, UnitPrice: 25},
			builder.OrderLine{Name: "Port", Quantity: 1, UnitPrice: 40},
		).BuildInStatus(order.StatusPlaced)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByNumber(gomock.Any(), gomock.Any(), o.Number(), false).Return(o, nil)
		s.m.orders.EXPECT().GetByNumber(gomock.Any(), gomock.Any(), o.Number(), true).Return(o, nil)
		s.carrier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.ShipmentRequest) (*commands.ShipmentResult, error) {
				s.Equal(o.Number(), req.OrderNumber)
				s.True(decimal.RequireFromString("4.5").Equal(req.WeightKg))
				s.True(decimal.NewFromInt(o.Amounts().TotalCents).Shift(-2).Equal(req.DeclaredValue))
				s.Len(req.Items, 2)
				s.Equal("Ada Lovelace", req.Recipient.Name)
				return &commands.ShipmentResult{TrackingNumber: "1Z999", ShipmentID: "1ZS", LabelFormat: "GIF", LabelData: "R0lG"}, nil
			})
		s.m.orders.EXPECT().SaveShipment(gomock.Any(), gomock.Any(), o).Return(nil)

		res, err := s.uc.CreateShipment(context.Background(), o.Number())

		s.Require().NoError(err)
		s.Equal("1Z999", res.TrackingNumber)
		s.Equal("UPS", res.Carrier)
		s.Equal(order.StatusConfirmed, res.Status)
		s.Require().NotNil(o.Shipment())
		s.Equal("1Z999", o.Shipment().TrackingNumber)
	})

	s.Run("already confirmed orders gain no history entry", func() {
		s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		o, err := builder.NewOrderBuilder().BuildInStatus(order.StatusConfirmed)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByNumber(gomock.Any(), gomock.Any(), o.Number(), gomock.Any()).Return(o, nil).Times(2)
		s.carrier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).Return(&commands.ShipmentResult{TrackingNumber: "1Z1"}, nil)
		s.m.orders.EXPECT().SaveShipment(gomock.Any(), gomock.Any(), o).Return(nil)

		_, err = s.uc.CreateShipment(context.Background(), o.Number())

		s.Require().NoError(err)
		s.Empty(o.UnsavedHistory())
	})

	s.Run("carrier failure leaves the order untouched", func() {
		o, err := builder.NewOrderBuilder().BuildInStatus(order.StatusPlaced)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByNumber(gomock.Any(), gomock.Any(), o.Number(), false).Return(o, nil)
		s.carrier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
			Return(nil, &errs.CollaboratorError{Collaborator: "carrier", Op: "create_shipment", StatusCode: 503, Retryable: true})

		_, err = s.uc.CreateShipment(context.Background(), o.Number())

		s.True(errs.Is(err, errs.ErrCollaborator))
		s.True(errs.IsRetryable(err))
		s.Nil(o.Shipment())
		s.Equal(order.StatusPlaced, o.Status())
	})

	s.Run("order without address is a validation error", func() {
		o, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.Address = nil }).BuildInStatus(order.StatusPlaced)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByNumber(gomock.Any(), gomock.Any(), o.Number(), false).Return(o, nil)

		_, err = s.uc.CreateShipment(context.Background(), o.Number())

		var ve *errs.ValidationError
		s.Require().ErrorAs(err, &ve)
		s.Equal("shippingAddress", ve.Field)
	})

	s.Run("shipped orders conflict", func() {
		o, err := builder.NewOrderBuilder().BuildInStatus(order.StatusShipped)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByNumber(gomock.Any(), gomock.Any(), o.Number(), false).Return(o, nil)

		_, err = s.uc.CreateShipment(context.Background(), o.Number())

		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("missing order", func() {
		s.m.orders.EXPECT().GetByNumber(gomock.Any(), gomock.Any(), "ORD-404", false).Return(nil, errNotFound)

		_, err := s.uc.CreateShipment(context.Background(), "ORD-404")

		s.ErrorIs(err, commands.ErrOrderNotFound)
	})
}
