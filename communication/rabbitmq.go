package communication

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const rabbitType = "rabbitmq"

// RabbitMQ connection and channel used to publish the reports
type RabbitMQ struct {
	connection *amqp.Connection
	channel    *amqp.Channel
}

// NewRabbitMQ dials rabbitURL and opens a channel. If the channel cannot be opened the connection is closed
func NewRabbitMQ(rabbitURL string) (*RabbitMQ, error) {
	connection, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	channel, err := connection.Channel()
	if err != nil {
		if closeErr := connection.Close(); closeErr != nil {
			log.Error(getLogMessage("NewRabbitMQ", "error closing connection", closeErr))
		}
		return nil, fmt.Errorf("error opening RabbitMQ channel: %w", err)
	}

	log.Debug(getLogMessage("NewRabbitMQ", "connection established", nil))
	return &RabbitMQ{
		connection: connection,
		channel:    channel,
	}, nil
}

func getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", rabbitType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", rabbitType, method, message)
}

// DeclareExchanges declares every exchange of the list, it stops at the first error
func (r *RabbitMQ) DeclareExchanges(exchangesConfig []ExchangeDeclarationConfig) error {
	for _, exchange := range exchangesConfig {
		err := r.channel.ExchangeDeclare(exchange.Name, exchange.Type, exchange.Durable, exchange.AutoDeleted, exchange.Internal, exchange.NoWait, nil)
		if err != nil {
			return fmt.Errorf("error declaring %s exchange %s: %w", exchange.Type, exchange.Name, err)
		}
	}
	return nil
}

// PublishMessageInExchange publishes message with the given routing key. Content type, delivery mode and
// mandatory flag come from publishingConfig
func (r *RabbitMQ) PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte, publishingConfig PublishingConfig) error {
	publishing := amqp.Publishing{
		ContentType:  publishingConfig.ContentType,
		DeliveryMode: publishingConfig.DeliveryMode(),
		Body:         message,
	}
	return r.channel.PublishWithContext(ctx, exchange, routingKey, publishingConfig.Mandatory, false, publishing)
}

// KillBadBunny closes the channel and then the connection
func (r *RabbitMQ) KillBadBunny() error {
	if err := r.channel.Close(); err != nil {
		return fmt.Errorf("error closing RabbitMQ channel: %w", err)
	}

	if err := r.connection.Close(); err != nil {
		return fmt.Errorf("error closing RabbitMQ connection: %w", err)
	}

	log.Debug(getLogMessage("KillBadBunny", "connection closed", nil))
	return nil
}
