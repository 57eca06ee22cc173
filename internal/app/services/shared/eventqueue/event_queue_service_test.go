package eventqueue

import (
	"context"
	"errors"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	published  []amqp.Publishing
	routingKey string
	publishErr error
	confirms   chan amqp.Confirmation
	ack        bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.routingKey = key
	f.published = append(f.published, msg)
	if f.confirms != nil {
		f.confirms <- amqp.Confirmation{DeliveryTag: uint64(len(f.published)), Ack: f.ack}
	}
	return nil
}

func TestService_Publish(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Publishes Persistent Event And Waits For Ack", func(t *testing.T) {
		confirms := make(chan amqp.Confirmation, 1)
		channel := &fakeChannel{confirms: confirms, ack: true}
		service := newService(channel, confirms, "appointment_events", logger)
		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

		err := service.Publish(ctx, constvars.EventAppointmentCreated, map[string]string{"status": "Confirmed"})

		require.NoError(t, err)
		require.Len(t, channel.published, 1)
		assert.Equal(t, "appointment_events", channel.routingKey)

		msg := channel.published[0]
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, msg.ContentType)
		assert.Equal(t, constvars.EventAppointmentCreated, msg.Type)
		assert.Equal(t, "req-1", msg.MessageId)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(msg.Body, &body))
		assert.Equal(t, constvars.EventAppointmentCreated, body["event_type"])
		assert.Equal(t, map[string]interface{}{"status": "Confirmed"}, body["payload"])
		assert.NotEmpty(t, body["occurred_at"])
	})

	t.Run("Nack Is An Error", func(t *testing.T) {
		confirms := make(chan amqp.Confirmation, 1)
		channel := &fakeChannel{confirms: confirms, ack: false}
		service := newService(channel, confirms, "appointment_events", logger)

		err := service.Publish(context.Background(), constvars.EventAppointmentCreated, nil)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("Broker Rejects Publish", func(t *testing.T) {
		channel := &fakeChannel{publishErr: errors.New("channel/connection is not open")}
		service := newService(channel, make(chan amqp.Confirmation), "appointment_events", logger)

		err := service.Publish(context.Background(), constvars.EventAppointmentCreated, nil)

		assert.Error(t, err)
	})

	t.Run("Context Ends Before Confirm", func(t *testing.T) {
		channel := &fakeChannel{}
		service := newService(channel, make(chan amqp.Confirmation), "appointment_events", logger)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := service.Publish(ctx, constvars.EventAppointmentCreated, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
