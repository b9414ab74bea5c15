package analytics

import (
	"context"
	"praxismatch-service/internal/app/contracts"
	"praxismatch-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// queuePublisher pushes analytics events onto a durable RabbitMQ queue.
// Consumers (recruiting dashboards, BI pipelines) live outside this service.
type queuePublisher struct {
	ch        *amqp.Channel
	queueName string
	log       *zap.Logger
}

func NewQueuePublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.AnalyticsPublisher, error) {
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

	return &queuePublisher{
		ch:        ch,
		queueName: queueName,
		log:       log,
	}, nil
}

func (p *queuePublisher) Publish(ctx context.Context, event contracts.AnalyticsEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}
	return nil
}
