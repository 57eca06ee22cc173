package eventqueue

import (
	"context"
	"errors"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// EventMessage is the body stored in RabbitMQ for every domain event.
type EventMessage struct {
	EventType  string      `json:"event_type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Service publishes events to a single durable queue and waits for the broker
// to confirm each message.
type Service struct {
	ch        publishChannel
	queueName string
	confirms  <-chan amqp.Confirmation
	log       *zap.Logger
	mu        sync.Mutex
}

// NewService opens a channel on conn, declares queueName as durable and
// enables publisher confirms.
func NewService(conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return newService(ch, ch.NotifyPublish(make(chan amqp.Confirmation, 1)), queueName, log), nil
}

func newService(ch publishChannel, confirms <-chan amqp.Confirmation, queueName string, log *zap.Logger) *Service {
	return &Service{
		ch:        ch,
		queueName: queueName,
		confirms:  confirms,
		log:       log,
	}
}

func (s *Service) Publish(ctx context.Context, eventType string, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("EventQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.queueName),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	)

	body, err := json.Marshal(EventMessage{
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         eventType,
		MessageId:    requestID,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmed, ok := <-s.confirms:
		if !ok {
			return exceptions.ErrRabbitMQPublishMessage(errors.New("channel closed before confirm"), s.queueName)
		}
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(errors.New("message not confirmed"), s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}

	s.log.Info("EventQueue.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	)
	return nil
}
