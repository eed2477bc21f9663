//go:build unit

package events

import (
	"context"
	"errors"
	"testing"

	"cellar-shop/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Run("keys by order and tags the event type", func(t *testing.T) {
		w := &recordingWriter{}
		p := NewKafkaPublisherWithWriter(w)

		err := p.Publish(context.Background(), Event{Key: "ORD-1", Type: "order.placed", Payload: []byte(`{"a":1}`)})

		require.NoError(t, err)
		require.Len(t, w.msgs, 1)
		assert.Equal(t, "ORD-1", string(w.msgs[0].Key))
		assert.Equal(t, `{"a":1}`, string(w.msgs[0].Value))
		assert.Equal(t, []kafka.Header{{Key: "event_type", Value: []byte("order.placed")}}, w.msgs[0].Headers)
	})

	t.Run("broker failures are retryable", func(t *testing.T) {
		p := NewKafkaPublisherWithWriter(&recordingWriter{err: errors.New("leader not available")})

		err := p.Publish(context.Background(), Event{Key: "ORD-1", Type: "order.placed"})

		require.Error(t, err)
		assert.True(t, errs.IsRetryable(err))
	})
}
