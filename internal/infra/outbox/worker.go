package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cellar-shop/internal/infra/events"
	"cellar-shop/internal/infra/mailer"
	"cellar-shop/internal/infra/repository"
	"cellar-shop/internal/pkg/clock"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	DefaultMaxEventAttempts = 5
	DefaultRetryBackoff     = 30 * time.Second
	DefaultStuckAfter       = 5 * time.Minute
)

type JobStore interface {
	ClaimDue(ctx context.Context, limit int32) ([]repository.NotificationJob, error)
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string) error
	Reschedule(ctx context.Context, jobID uuid.UUID, runAt time.Time, lastError string) error
	RequeueStuck(ctx context.Context, cutoff time.Time) (int64, error)
}

type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

type Recorder interface {
	OutboxJob(kind, topic, outcome string)
}

type Options struct {
	Interval         time.Duration
	BatchSize        int32
	MaxEventAttempts int
	RetryBackoff     time.Duration
	StuckAfter       time.Duration
}

// Worker drains notification_jobs. Email jobs are attempted once; event
// jobs are retried with linear backoff.
type Worker struct {
	jobs         JobStore
	mailer       Mailer
	publisher    Publisher
	confirmation commands.ConfirmationRecorder
	recorder     Recorder
	clock        clock.Clock
	opts         Options
}

func NewWorker(
	jobs JobStore,
	m Mailer,
	p Publisher,
	confirmation commands.ConfirmationRecorder,
	recorder Recorder,
	clk clock.Clock,
	opts Options,
) *Worker {
	if opts.Interval <= 0 {
		opts.Interval = 2 * time.Second
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 20
	}
	if opts.MaxEventAttempts <= 0 {
		opts.MaxEventAttempts = DefaultMaxEventAttempts
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = DefaultRetryBackoff
	}
	if opts.StuckAfter <= 0 {
		opts.StuckAfter = DefaultStuckAfter
	}
	return &Worker{
		jobs:         jobs,
		mailer:       m,
		publisher:    p,
		confirmation: confirmation,
		recorder:     recorder,
		clock:        clk,
		opts:         opts,
	}
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.opts.Interval)
	recovery := time.NewTicker(w.opts.StuckAfter)
	defer ticker.Stop()
	defer recovery.Stop()

	slog.Info("outbox worker started", slog.Duration("interval", w.opts.Interval))
	for {
		select {
		case <-ticker.C:
			w.ProcessBatch(ctx)
		case <-recovery.C:
			w.requeueStuck(ctx)
		case <-ctx.Done():
			slog.Info("outbox worker stopped")
			return
		}
	}
}

// ProcessBatch claims and handles one batch. It returns the number claimed.
func (w *Worker) ProcessBatch(ctx context.Context) int {
	jobs, err := w.jobs.ClaimDue(ctx, w.opts.BatchSize)
	if err != nil {
		slog.ErrorContext(ctx, "failed to claim notification jobs", slog.String("error", err.Error()))
		return 0
	}
	for _, job := range jobs {
		if ctx.Err() != nil {
			return len(jobs)
		}
		w.handle(ctx, job)
	}
	return len(jobs)
}

func (w *Worker) handle(ctx context.Context, job repository.NotificationJob) {
	switch job.Kind {
	case shared.JobKindEmail:
		w.handleEmail(ctx, job)
	case shared.JobKindEvent:
		w.handleEvent(ctx, job)
	default:
		w.fail(ctx, job, errs.Newf("unknown job kind %q", job.Kind))
	}
}

func (w *Worker) handleEmail(ctx context.Context, job repository.NotificationJob) {
	var p shared.EmailPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		w.fail(ctx, job, errs.Wrap(err, "invalid email payload"))
		return
	}

	sendErr := w.mailer.Send(ctx, mailer.Message{To: p.To, Subject: p.Subject, Body: p.Body})

	if job.Topic == shared.TopicCustomerConfirmation {
		if err := w.confirmation.RecordConfirmation(ctx, p.OrderID, sendErr); err != nil {
			slog.ErrorContext(ctx, "failed to record confirmation email result",
				slog.String("job_id", job.ID.String()),
				slog.String("order_id", p.OrderID.String()),
				slog.String("error", err.Error()))
		}
	}

	if sendErr != nil {
		w.fail(ctx, job, sendErr)
		return
	}
	w.done(ctx, job)
}

func (w *Worker) handleEvent(ctx context.Context, job repository.NotificationJob) {
	var e shared.OrderEvent
	if err := json.Unmarshal(job.Payload, &e); err != nil {
		w.fail(ctx, job, errs.Wrap(err, "invalid event payload"))
		return
	}

	err := w.publisher.Publish(ctx, events.Event{Key: e.OrderNumber, Type: job.Topic, Payload: job.Payload})
	if err == nil {
		w.done(ctx, job)
		return
	}
	if job.Attempts >= w.opts.MaxEventAttempts {
		w.fail(ctx, job, err)
		return
	}

	runAt := w.clock.Now().Add(time.Duration(job.Attempts) * w.opts.RetryBackoff)
	if rerr := w.jobs.Reschedule(ctx, job.ID, runAt, err.Error()); rerr != nil {
		slog.ErrorContext(ctx, "failed to reschedule notification job",
			slog.String("job_id", job.ID.String()),
			slog.String("error", rerr.Error()))
		return
	}
	w.record(job, "retried")
	slog.WarnContext(ctx, "event publish failed, retry scheduled",
		slog.String("job_id", job.ID.String()),
		slog.Int("attempts", job.Attempts),
		slog.Time("run_at", runAt),
		slog.String("error", err.Error()))
}

func (w *Worker) done(ctx context.Context, job repository.NotificationJob) {
	if err := w.jobs.UpdateJobStatus(ctx, job.ID, repository.JobStatusSent, nil); err != nil {
		slog.ErrorContext(ctx, "failed to mark notification job sent",
			slog.String("job_id", job.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	w.record(job, repository.JobStatusSent)
}

func (w *Worker) fail(ctx context.Context, job repository.NotificationJob, cause error) {
	msg := cause.Error()
	slog.ErrorContext(ctx, "notification job failed",
		slog.String("job_id", job.ID.String()),
		slog.String("kind", job.Kind),
		slog.String("topic", job.Topic),
		slog.Int("attempts", job.Attempts),
		slog.String("error", msg))
	if err := w.jobs.UpdateJobStatus(ctx, job.ID, repository.JobStatusFailed, &msg); err != nil {
		slog.ErrorContext(ctx, "failed to mark notification job failed",
			slog.String("job_id", job.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	w.record(job, repository.JobStatusFailed)
}

func (w *Worker) requeueStuck(ctx context.Context) {
	n, err := w.jobs.RequeueStuck(ctx, w.clock.Now().Add(-w.opts.StuckAfter))
	if err != nil {
		slog.ErrorContext(ctx, "failed to requeue stuck notification jobs", slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		slog.WarnContext(ctx, "requeued stuck notification jobs", slog.Int64("count", n))
	}
}

func (w *Worker) record(job repository.NotificationJob, outcome string) {
	if w.recorder != nil {
		w.recorder.OutboxJob(job.Kind, job.Topic, outcome)
	}
}
