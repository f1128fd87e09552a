package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/alumicraft/docmailer/dto"
	"github.com/alumicraft/docmailer/interfaces"
	"github.com/alumicraft/docmailer/internal/tracing"
)

const (
	exchangeName          = "docmailer.events"
	routingKeyDispatched  = "document.email.dispatched"
	defaultPublishTimeout = 5 * time.Second
)

type rabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewRabbitMQPublisher connects to the broker and declares the events
// exchange. The host application binds its own queues to it.
func NewRabbitMQPublisher(url string) (interfaces.DispatchEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq connection failed")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "rabbitmq channel failed")
	}

	err = channel.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, errors.Wrap(err, "exchange declare failed")
	}

	return &rabbitMQPublisher{
		conn:    conn,
		channel: channel,
	}, nil
}

func (p *rabbitMQPublisher) PublishDispatched(ctx context.Context, event *dto.DocumentEmailDispatchedEvent) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "rabbitMQPublisher.PublishDispatched")
	defer span.Finish()
	tracing.TagDocument(span, event.DocumentType, event.DocumentID)

	body, err := json.Marshal(event)
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultPublishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		exchangeName,
		routingKeyDispatched,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		tracing.TraceErr(span, err)
		return errors.Wrap(err, "publish failed")
	}

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// noopPublisher is used when no broker is configured.
type noopPublisher struct{}

func NewNoopPublisher() interfaces.DispatchEventPublisher {
	return &noopPublisher{}
}

func (p *noopPublisher) PublishDispatched(ctx context.Context, event *dto.DocumentEmailDispatchedEvent) error {
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
