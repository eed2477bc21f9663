//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/domain/product"
	"cellar-shop/internal/domain/stock"
	sqlc "cellar-shop/internal/infra/sqlc/generated"
	"cellar-shop/internal/pkg/clock"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/internal/usecase/shared"
	"cellar-shop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	m     *txMocks
	clock *clock.FixedClock
	b     *builder.OrderBuilder
	uc    commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.b = builder.NewOrderBuilder()
	s.clock = clock.NewFixedClock(s.b.Now.Add(time.Hour))
	s.uc = commands.NewOrderCommands(s.m.uow, s.b.Factory(), s.clock, commands.NotificationSettings{OwnerEmail: "owner@cellar-shop.test"})
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

type queuedJob struct {
	kind  string
	topic string
	raw   []byte
}

func (s *OrderCommandsTestSuite) captureJobs() *[]queuedJob {
	var jobs []queuedJob
	s.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, _ time.Time) error {
			jobs = append(jobs, queuedJob{kind: kind, topic: topic, raw: payload})
			return nil
		}).AnyTimes()
	return &jobs
}

func topics(jobs []queuedJob) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.topic
	}
	return out
}

func (s *OrderCommandsTestSuite) TestPlaceOrder() {
	s.Run("creates the order and queues notifications", func() {
		jobs := s.captureJobs()
		var created *order.Order
		s.m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, o *order.Order) (bool, error) {
				created = o
				return true, nil
			})

		res, err := s.uc.PlaceOrder(context.Background(), s.b.BuildInput(), shared.Guest())

		s.Require().NoError(err)
		s.Equal(s.b.Number, res.OrderNumber)
		s.Equal(s.b.TrackingCode, res.TrackingCode)
		s.False(res.Replayed)
		s.False(res.EmailSent)
		s.Require().NotNil(created)
		s.Equal(order.StatusPlaced, created.Status())
		s.Nil(created.UserID())
		s.Equal([]string{shared.TopicOwnerAlert, shared.TopicCustomerConfirmation, shared.TopicOrderPlaced}, topics(*jobs))

		var email shared.EmailPayload
		s.Require().NoError(json.Unmarshal((*jobs)[1].raw, &email))
		s.Equal("ada@example.com", email.To)
		s.Contains(email.Body, s.b.TrackingCode)
	})

	s.Run("rejects invalid input before opening a transaction", func() {
		in := s.b.BuildInput()
		in.Items = nil

		_, err := s.uc.PlaceOrder(context.Background(), in, shared.Guest())

		var ve *errs.ValidationError
		s.Require().ErrorAs(err, &ve)
		s.Equal("items", ve.Field)
	})
}

func (s *OrderCommandsTestSuite) TestPlaceOrder_TrackedLines() {
	wine, err := product.NewUnsizedProduct("Rioja Reserva", 2500, 10)
	s.Require().NoError(err)
	pid := wine.ID()

	s.Run("decrements stock and fills the catalogue name", func() {
		s.captureJobs()
		b := builder.NewOrderBuilder().WithLines(builder.OrderLine{ProductID: &pid, Quantity: 3, UnitPrice: 25})
		uc := commands.NewOrderCommands(s.m.uow, b.Factory(), s.clock, commands.NotificationSettings{})
		s.m.reads.EXPECT().ProductByID(gomock.Any(), pid).Return(wine, nil)
		s.m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, o *order.Order) (bool, error) {
				s.Equal("Rioja Reserva", o.Items()[0].Name)
				return true, nil
			})
		s.m.products.EXPECT().Decrement(gomock.Any(), gomock.Any(), pid, stock.SizeNone, 3).Return(nil)

		_, err := uc.PlaceOrder(context.Background(), b.BuildInput(), shared.Guest())

		s.Require().NoError(err)
	})

	s.Run("unknown product is a field error", func() {
		b := builder.NewOrderBuilder().WithLines(builder.OrderLine{ProductID: &pid, Quantity: 1, UnitPrice: 25})
		uc := commands.NewOrderCommands(s.m.uow, b.Factory(), s.clock, commands.NotificationSettings{})
		s.m.reads.EXPECT().ProductByID(gomock.Any(), pid).Return(nil, errNotFound)

		_, err := uc.PlaceOrder(context.Background(), b.BuildInput(), shared.Guest())

		var ve *errs.ValidationError
		s.Require().ErrorAs(err, &ve)
		s.Equal("items[0].productId", ve.Field)
	})

	s.Run("sized product without size is a field error", func() {
		sized, err := product.NewSizedProduct("Port", 4000, stock.Ledger{stock.Size75cl: 4})
		s.Require().NoError(err)
		sid := sized.ID()
		b := builder.NewOrderBuilder().WithLines(builder.OrderLine{ProductID: &sid, Quantity: 1, UnitPrice: 40})
		uc := commands.NewOrderCommands(s.m.uow, b.Factory(), s.clock, commands.NotificationSettings{})
		s.m.reads.EXPECT().ProductByID(gomock.Any(), sid).Return(sized, nil)

		_, err = uc.PlaceOrder(context.Background(), b.BuildInput(), shared.Guest())

		var ve *errs.ValidationError
		s.Require().ErrorAs(err, &ve)
		s.Equal("items[0].size", ve.Field)
	})

	s.Run("insufficient stock aborts the placement", func() {
		b := builder.NewOrderBuilder().WithLines(builder.OrderLine{ProductID: &pid, Quantity: 30, UnitPrice: 25})
		uc := commands.NewOrderCommands(s.m.uow, b.Factory(), s.clock, commands.NotificationSettings{})
		s.m.reads.EXPECT().ProductByID(gomock.Any(), pid).Return(wine, nil)
		s.m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.m.products.EXPECT().Decrement(gomock.Any(), gomock.Any(), pid, stock.SizeNone, 30).
			Return(&stock.InsufficientStockError{Available: 10, Requested: 30})

		_, err := uc.PlaceOrder(context.Background(), b.BuildInput(), shared.Guest())

		s.True(errs.Is(err, errs.ErrInsufficientStock))
	})
}

func (s *OrderCommandsTestSuite) TestPlaceOrder_PaymentReference() {
	s.Run("replays an order already placed with the reference", func() {
		b := builder.NewOrderBuilder().WithPaymentReference("pi_123")
		existing, err := b.BuildInStatus(order.StatusConfirmed)
		s.Require().NoError(err)
		existing.SetConfirmation(order.ConfirmationSent, "")
		s.m.orders.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any(), "pi_123").Return(existing, nil)

		res, err := s.uc.PlaceOrder(context.Background(), b.BuildInput(), shared.Guest())

		s.Require().NoError(err)
		s.True(res.Replayed)
		s.True(res.EmailSent)
		s.Equal(existing.Number(), res.OrderNumber)
	})

	s.Run("replays the winner after losing the insert race", func() {
		b := builder.NewOrderBuilder().WithPaymentReference("pi_456")
		winner, err := b.BuildInStatus(order.StatusPlaced)
		s.Require().NoError(err)
		gomock.InOrder(
			s.m.orders.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any(), "pi_456").Return(nil, errNotFound),
			s.m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
			s.m.orders.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any(), "pi_456").Return(winner, nil),
		)

		res, err := s.uc.PlaceOrder(context.Background(), b.BuildInput(), shared.Guest())

		s.Require().NoError(err)
		s.True(res.Replayed)
		s.Equal(winner.TrackingCode(), res.TrackingCode)
	})
}

func (s *OrderCommandsTestSuite) TestCancelByTrackingCode() {
	owner := uuid.New()
	pid := uuid.New()
	lines := []builder.OrderLine{{ProductID: &pid, Name: "Rioja", Quantity: 2, UnitPrice: 25}}

	s.Run("owner cancels and stock is returned", func() {
		jobs := s.captureJobs()
		o, err := builder.NewOrderBuilder().WithLines(lines...).WithOwner(owner).BuildInStatus(order.StatusPlaced)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByTrackingCode(gomock.Any(), gomock.Any(), o.TrackingCode(), true).Return(o, nil)
		s.m.orders.EXPECT().SaveStatus(gomock.Any(), gomock.Any(), o).Return(nil)
		s.m.products.EXPECT().Increment(gomock.Any(), gomock.Any(), pid, stock.SizeNone, 2).Return(nil)

		res, err := s.uc.CancelByTrackingCode(context.Background(), o.TrackingCode(), shared.Actor{UserID: &owner})

		s.Require().NoError(err)
		s.Equal(order.StatusCancelled, res.Status)
		s.Equal(order.KindCancel, res.Kind)
		s.Equal([]string{shared.TopicOrderStatusChanged}, topics(*jobs))
	})

	s.Run("someone else's order looks missing", func() {
		o, err := builder.NewOrderBuilder().WithOwner(owner).BuildInStatus(order.StatusPlaced)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByTrackingCode(gomock.Any(), gomock.Any(), o.TrackingCode(), true).Return(o, nil)
		stranger := uuid.New()

		_, err = s.uc.CancelByTrackingCode(context.Background(), o.TrackingCode(), shared.Actor{UserID: &stranger})

		s.ErrorIs(err, commands.ErrOrderNotFound)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("shipped orders cannot be cancelled", func() {
		o, err := builder.NewOrderBuilder().WithOwner(owner).BuildInStatus(order.StatusShipped)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByTrackingCode(gomock.Any(), gomock.Any(), o.TrackingCode(), true).Return(o, nil)

		_, err = s.uc.CancelByTrackingCode(context.Background(), o.TrackingCode(), shared.Actor{UserID: &owner})

		s.True(errs.Is(err, errs.ErrConflict))
		s.True(errs.Is(err, order.ErrCannotCancel))
	})
}

func (s *OrderCommandsTestSuite) TestUpdateStatus() {
	s.Run("rejects an unknown status", func() {
		_, err := s.uc.UpdateStatus(context.Background(), "ORD-1", "teleported", "")

		var ve *errs.ValidationError
		s.Require().ErrorAs(err, &ve)
		s.Equal("status", ve.Field)
	})

	s.Run("records a backwards move as an override", func() {
		s.captureJobs()
		o, err := s.b.BuildInStatus(order.StatusShipped)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByNumber(gomock.Any(), gomock.Any(), o.Number(), true).Return(o, nil)
		s.m.orders.EXPECT().SaveStatus(gomock.Any(), gomock.Any(), o).Return(nil)

		res, err := s.uc.UpdateStatus(context.Background(), o.Number(), "picked", "repacked")

		s.Require().NoError(err)
		s.Equal(order.StatusPicked, res.Status)
		s.Equal(order.KindOverride, res.Kind)
		pending := o.UnsavedHistory()
		s.Require().Len(pending, 1)
		s.Equal("repacked", pending[0].Note)
	})

	s.Run("missing order", func() {
		s.m.orders.EXPECT().GetByNumber(gomock.Any(), gomock.Any(), "ORD-404", true).Return(nil, errNotFound)

		_, err := s.uc.UpdateStatus(context.Background(), "ORD-404", "confirmed", "")

		s.ErrorIs(err, commands.ErrOrderNotFound)
	})

	s.Run("terminal orders conflict", func() {
		o, err := s.b.BuildInStatus(order.StatusDelivered)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByNumber(gomock.Any(), gomock.Any(), o.Number(), true).Return(o, nil)

		_, err = s.uc.UpdateStatus(context.Background(), o.Number(), "shipped", "")

		s.True(errs.Is(err, errs.ErrConflict))
	})
}

func (s *OrderCommandsTestSuite) TestIngestCarrierStatus() {
	s.Run("applies a forward carrier update", func() {
		s.captureJobs()
		o, err := s.b.BuildInStatus(order.StatusShipped)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByCarrierTracking(gomock.Any(), gomock.Any(), "1Z999").Return(o, nil)
		s.m.orders.EXPECT().SaveStatus(gomock.Any(), gomock.Any(), o).Return(nil)

		applied, err := s.uc.IngestCarrierStatus(context.Background(), commands.CarrierStatusUpdate{
			TrackingNumber: "1Z999",
			Code:           "D",
			Description:    "Delivered",
		})

		s.Require().NoError(err)
		s.True(applied)
		s.Equal(order.StatusDelivered, o.Status())
		s.Equal(s.clock.Now(), o.UpdatedAt())
	})

	s.Run("ignores duplicates and stale codes", func() {
		o, err := s.b.BuildInStatus(order.StatusOutForDelivery)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByCarrierTracking(gomock.Any(), gomock.Any(), "1Z999").Return(o, nil).Times(2)

		dup, err := s.uc.IngestCarrierStatus(context.Background(), commands.CarrierStatusUpdate{TrackingNumber: "1Z999", Code: "out for delivery"})
		s.Require().NoError(err)
		stale, err := s.uc.IngestCarrierStatus(context.Background(), commands.CarrierStatusUpdate{TrackingNumber: "1Z999", Code: "I"})
		s.Require().NoError(err)

		s.False(dup)
		s.False(stale)
		s.Equal(order.StatusOutForDelivery, o.Status())
	})

	s.Run("return to sender cancels and restocks", func() {
		s.captureJobs()
		pid := uuid.New()
		o, err := builder.NewOrderBuilder().
			WithLines(builder.OrderLine{ProductID: &pid, Name: "Rioja", Quantity: 1, UnitPrice: 25}).
			BuildInStatus(order.StatusShipped)
		s.Require().NoError(err)
		s.m.orders.EXPECT().GetByCarrierTracking(gomock.Any(), gomock.Any(), "1Z1").Return(o, nil)
		s.m.orders.EXPECT().SaveStatus(gomock.Any(), gomock.Any(), o).Return(nil)
		s.m.products.EXPECT().Increment(gomock.Any(), gomock.Any(), pid, stock.SizeNone, 1).Return(nil)

		applied, err := s.uc.IngestCarrierStatus(context.Background(), commands.CarrierStatusUpdate{TrackingNumber: "1Z1", Code: "RS"})

		s.Require().NoError(err)
		s.True(applied)
		s.Equal(order.StatusCancelled, o.Status())
	})

	s.Run("unknown tracking number", func() {
		s.m.orders.EXPECT().GetByCarrierTracking(gomock.Any(), gomock.Any(), "nope").Return(nil, errNotFound)

		_, err := s.uc.IngestCarrierStatus(context.Background(), commands.CarrierStatusUpdate{TrackingNumber: "nope", Code: "D"})

		s.ErrorIs(err, commands.ErrOrderNotFound)
	})
}
