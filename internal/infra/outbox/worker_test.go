//go:build unit

package outbox_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cellar-shop/internal/infra/events"
	"cellar-shop/internal/infra/mailer"
	"cellar-shop/internal/infra/outbox"
	"cellar-shop/internal/infra/repository"
	"cellar-shop/internal/pkg/clock"
	"cellar-shop/internal/usecase/shared"
	commandsmock "cellar-shop/tests/mock/commands"
	outboxmock "cellar-shop/tests/mock/outbox"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type outcome struct{ kind, topic, outcome string }

type fakeRecorder struct{ seen []outcome }

func (r *fakeRecorder) OutboxJob(kind, topic, result string) {
	r.seen = append(r.seen, outcome{kind, topic, result})
}

type WorkerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	jobs         *outboxmock.MockJobStore
	mailer       *outboxmock.MockMailer
	publisher    *outboxmock.MockPublisher
	confirmation *commandsmock.MockConfirmationRecorder
	recorder     *fakeRecorder
	clock        *clock.FixedClock
	worker       *outbox.Worker
	now          time.Time
}

func (s *WorkerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.jobs = outboxmock.NewMockJobStore(s.ctrl)
	s.mailer = outboxmock.NewMockMailer(s.ctrl)
	s.publisher = outboxmock.NewMockPublisher(s.ctrl)
	s.confirmation = commandsmock.NewMockConfirmationRecorder(s.ctrl)
	s.recorder = &fakeRecorder{}
	s.now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	s.clock = clock.NewFixedClock(s.now)
	s.worker = outbox.NewWorker(s.jobs, s.mailer, s.publisher, s.confirmation, s.recorder, s.clock, outbox.Options{
		BatchSize:        10,
		MaxEventAttempts: 3,
		RetryBackoff:     time.Minute,
	})
}

func (s *WorkerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerTestSuite))
}

func (s *WorkerTestSuite) emailJob(topic string, orderID uuid.UUID) repository.NotificationJob {
	payload, err := json.Marshal(shared.EmailPayload{
		OrderID: orderID,
		To:      "ada@example.com",
		Subject: "Your order ORD-20260314092653-A1B2C3",
		Body:    "Thank you",
	})
	s.Require().NoError(err)
	return repository.NotificationJob{ID: uuid.New(), Kind: shared.JobKindEmail, Topic: topic, Payload: payload, Attempts: 1}
}

func (s *WorkerTestSuite) eventJob(attempts int) repository.NotificationJob {
	payload, err := json.Marshal(shared.OrderEvent{
		Type:        shared.TopicOrderPlaced,
		OrderID:     uuid.New(),
		OrderNumber: "ORD-20260314092653-A1B2C3",
		Status:      "PENDING",
		TotalCents:  9600,
		OccurredAt:  s.now,
	})
	s.Require().NoError(err)
	return repository.NotificationJob{ID: uuid.New(), Kind: shared.JobKindEvent, Topic: shared.TopicOrderPlaced, Payload: payload, Attempts: attempts}
}

func (s *WorkerTestSuite) TestEmailJobs() {
	s.Run("confirmation records the delivery result", func() {
		orderID := uuid.New()
		job := s.emailJob(shared.TopicCustomerConfirmation, orderID)

		s.jobs.EXPECT().ClaimDue(gomock.Any(), int32(10)).Return([]repository.NotificationJob{job}, nil)
		s.mailer.EXPECT().Send(gomock.Any(), mailer.Message{
			To:      "ada@example.com",
			Subject: "Your order ORD-20260314092653-A1B2C3",
			Body:    "Thank you",
		}).Return(nil)
		s.confirmation.EXPECT().RecordConfirmation(gomock.Any(), orderID, nil).Return(nil)
		s.jobs.EXPECT().UpdateJobStatus(gomock.Any(), job.ID, repository.JobStatusSent, nil).Return(nil)

		s.Equal(1, s.worker.ProcessBatch(context.Background()))
	})

	s.Run("failed owner alert is not retried", func() {
		job := s.emailJob(shared.TopicOwnerAlert, uuid.New())
		sendErr := errors.New("smtp: 554 rejected")

		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any()).Return([]repository.NotificationJob{job}, nil)
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(sendErr)
		s.jobs.EXPECT().UpdateJobStatus(gomock.Any(), job.ID, repository.JobStatusFailed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, lastError *string) error {
				s.Require().NotNil(lastError)
				s.Equal("smtp: 554 rejected", *lastError)
				return nil
			})

		s.worker.ProcessBatch(context.Background())
	})

	s.Run("failed confirmation is recorded on the order", func() {
		orderID := uuid.New()
		job := s.emailJob(shared.TopicCustomerConfirmation, orderID)
		sendErr := errors.New("dial tcp: connection refused")

		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any()).Return([]repository.NotificationJob{job}, nil)
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(sendErr)
		s.confirmation.EXPECT().RecordConfirmation(gomock.Any(), orderID, sendErr).Return(nil)
		s.jobs.EXPECT().UpdateJobStatus(gomock.Any(), job.ID, repository.JobStatusFailed, gomock.Any()).Return(nil)

		s.worker.ProcessBatch(context.Background())
	})
}

func (s *WorkerTestSuite) TestEventJobs() {
	s.Run("published with the order number as key", func() {
		job := s.eventJob(1)

		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any()).Return([]repository.NotificationJob{job}, nil)
		s.publisher.EXPECT().Publish(gomock.Any(), events.Event{
			Key:     "ORD-20260314092653-A1B2C3",
			Type:    shared.TopicOrderPlaced,
			Payload: job.Payload,
		}).Return(nil)
		s.jobs.EXPECT().UpdateJobStatus(gomock.Any(), job.ID, repository.JobStatusSent, nil).Return(nil)

		s.worker.ProcessBatch(context.Background())
		s.Contains(s.recorder.seen, outcome{shared.JobKindEvent, shared.TopicOrderPlaced, repository.JobStatusSent})
	})

	s.Run("broker failure reschedules with linear backoff", func() {
		job := s.eventJob(2)

		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any()).Return([]repository.NotificationJob{job}, nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
		s.jobs.EXPECT().Reschedule(gomock.Any(), job.ID, s.now.Add(2*time.Minute), "broker unavailable").Return(nil)

		s.worker.ProcessBatch(context.Background())
		s.Contains(s.recorder.seen, outcome{shared.JobKindEvent, shared.TopicOrderPlaced, "retried"})
	})

	s.Run("gives up after the last attempt", func() {
		job := s.eventJob(3)

		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any()).Return([]repository.NotificationJob{job}, nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
		s.jobs.EXPECT().UpdateJobStatus(gomock.Any(), job.ID, repository.JobStatusFailed, gomock.Any()).Return(nil)

		s.worker.ProcessBatch(context.Background())
	})
}

func (s *WorkerTestSuite) TestMalformedJobs() {
	s.Run("unknown kind", func() {
		job := repository.NotificationJob{ID: uuid.New(), Kind: "sms", Topic: "order.placed"}

		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any()).Return([]repository.NotificationJob{job}, nil)
		s.jobs.EXPECT().UpdateJobStatus(gomock.Any(), job.ID, repository.JobStatusFailed, gomock.Any()).Return(nil)

		s.worker.ProcessBatch(context.Background())
	})

	s.Run("undecodable payload", func() {
		job := repository.NotificationJob{ID: uuid.New(), Kind: shared.JobKindEvent, Topic: shared.TopicOrderPlaced, Payload: []byte("{")}

		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any()).Return([]repository.NotificationJob{job}, nil)
		s.jobs.EXPECT().UpdateJobStatus(gomock.Any(), job.ID, repository.JobStatusFailed, gomock.Any()).Return(nil)

		s.worker.ProcessBatch(context.Background())
	})

	s.Run("claim failure processes nothing", func() {
		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		s.Zero(s.worker.ProcessBatch(context.Background()))
	})
}
