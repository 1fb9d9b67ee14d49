package communication

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultExchangeName     = "bikeshare-reports"
	defaultExchangeType     = "topic"
	defaultRoutingKeyPrefix = "reports"
	defaultContentType      = "application/json"
	defaultPublishTimeout   = 5 * time.Second
)

// ExchangeDeclarationConfig contains the parameters to declare a RabbitMQ exchange
type ExchangeDeclarationConfig struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Durable     bool   `yaml:"durable"`
	AutoDeleted bool   `yaml:"auto_deleted"`
	Internal    bool   `yaml:"internal"`
	NoWait      bool   `yaml:"no_wait"`
}

// PublishingConfig properties of each published report
// + ContentType: content type of the body
// + Persistent: if true the broker stores the message on disk
// + Mandatory: if true the broker returns the message when no queue is bound to the routing key
type PublishingConfig struct {
	ContentType string `yaml:"content_type"`
	Persistent  bool   `yaml:"persistent"`
	Mandatory   bool   `yaml:"mandatory"`
}

func (pc PublishingConfig) DeliveryMode() uint8 {
	if pc.Persistent {
		return amqp.Persistent
	}
	return amqp.Transient
}

// PublisherConfig config use it for publishing the reports in a RabbitMQ exchange
type PublisherConfig struct {
	Enabled          bool                      `yaml:"enabled" env:"PUBLISHER_ENABLED"`
	RabbitURL        string                    `yaml:"rabbit_url" env:"RABBIT_URL"`
	Exchange         ExchangeDeclarationConfig `yaml:"exchange"`
	RoutingKeyPrefix string                    `yaml:"routing_key_prefix"`
	Publishing       PublishingConfig          `yaml:"publishing"`
	PublishTimeout   time.Duration             `yaml:"publish_timeout"`
}

// SetDefaults fills the fields that were left empty
func (pc *PublisherConfig) SetDefaults() {
	if pc.Exchange.Name == "" {
		pc.Exchange.Name = defaultExchangeName
	}
	if pc.Exchange.Type == "" {
		pc.Exchange.Type = defaultExchangeType
	}
	if pc.RoutingKeyPrefix == "" {
		pc.RoutingKeyPrefix = defaultRoutingKeyPrefix
	}
	if pc.Publishing.ContentType == "" {
		pc.Publishing.ContentType = defaultContentType
	}
	if pc.PublishTimeout <= 0 {
		pc.PublishTimeout = defaultPublishTimeout
	}
}

func (pc *PublisherConfig) Validate() error {
	if pc.Enabled && pc.RabbitURL == "" {
		return fmt.Errorf("publisher is enabled but rabbit_url is empty")
	}
	return nil
}
