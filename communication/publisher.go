package communication

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/l2enel/Revisited-Udacity/domain/business/reportresponse"
	log "github.com/sirupsen/logrus"
)

const publisherType = "report-publisher"

// Broker is the part of RabbitMQ used by the ReportPublisher
type Broker interface {
	DeclareExchanges(exchangesConfig []ExchangeDeclarationConfig) error
	PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte, publishingConfig PublishingConfig) error
	KillBadBunny() error
}

// ReportPublisher sends each report response to an exchange.
// Routing keys have the following format: prefix.city.reportType, e.g reports.new_york_city.time-stats
type ReportPublisher struct {
	broker Broker
	config PublisherConfig
}

// NewReportPublisher declares the output exchange and returns a publisher that uses it
func NewReportPublisher(broker Broker, publisherConfig PublisherConfig) (*ReportPublisher, error) {
	publisherConfig.SetDefaults()

	err := broker.DeclareExchanges([]ExchangeDeclarationConfig{publisherConfig.Exchange})
	if err != nil {
		return nil, err
	}

	rp := &ReportPublisher{
		broker: broker,
		config: publisherConfig,
	}
	log.Info(rp.getLogMessage("NewReportPublisher", fmt.Sprintf("exchange %s declared correctly!", publisherConfig.Exchange.Name), nil))
	return rp, nil
}

func (rp *ReportPublisher) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", publisherType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", publisherType, method, message)
}

func (rp *ReportPublisher) GetRoutingKey(response *reportresponse.ReportResponse) string {
	metadata := response.GetMetadata()
	city := strings.ReplaceAll(metadata.GetCity(), " ", "_")
	return fmt.Sprintf("%s.%s.%s", rp.config.RoutingKeyPrefix, city, metadata.GetType())
}

// Publish sends the response as json. Each message has its own timeout
func (rp *ReportPublisher) Publish(ctx context.Context, response *reportresponse.ReportResponse) error {
	message, err := json.Marshal(response)
	if err != nil {
		log.Error(rp.getLogMessage("Publish", "error marshaling report", err))
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, rp.config.PublishTimeout)
	defer cancel()

	routingKey := rp.GetRoutingKey(response)
	err = rp.broker.PublishMessageInExchange(ctx, rp.config.Exchange.Name, routingKey, message, rp.config.Publishing)
	if err != nil {
		return fmt.Errorf("error publishing report %s with routing key %s: %w", response.GetReportID(), routingKey, err)
	}

	log.Debug(rp.getLogMessage("Publish", fmt.Sprintf("report published with routing key %s", routingKey), nil))
	return nil
}

func (rp *ReportPublisher) Close() error {
	return rp.broker.KillBadBunny()
}
