package main

import (
	"context"
	"fmt"
	"os"

	"github.com/l2enel/Revisited-Udacity/communication"
	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/explorer/config"
	"github.com/l2enel/Revisited-Udacity/prompt"
	"github.com/l2enel/Revisited-Udacity/reports/factory"
	"github.com/l2enel/Revisited-Udacity/session"
	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"
)

const (
	configPathEnv     = "EXPLORER_CONFIG"
	defaultConfigPath = "explorer/config/config.yaml"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	logrus.SetFormatter(customFormatter)
	logrus.SetLevel(level)
	return nil
}

func getConfigPath() string {
	if configPath := os.Getenv(configPathEnv); configPath != "" {
		return configPath
	}
	return defaultConfigPath
}

func main() {
	explorerConfig, err := config.LoadConfig(getConfigPath())
	if err != nil {
		log.Fatalf("error loading explorer config: %s", err)
	}

	if err := InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	if err := run(explorerConfig); err != nil {
		log.Fatalf("error exploring bikeshare data: %s", err)
	}

	log.Debug("[explorer] Finish main.go")
}

func run(explorerConfig config.ExplorerConfig) error {
	loader := dataset.NewLoader(&explorerConfig.Dataset)
	reports, err := factory.NewReports(explorerConfig.Reports, explorerConfig.Dataset.DayField, loader)
	if err != nil {
		return err
	}

	var publisher session.Publisher
	if explorerConfig.Publisher.Enabled {
		reportPublisher, err := newReportPublisher(explorerConfig.Publisher)
		if err != nil {
			return fmt.Errorf("error creating report publisher: %w", err)
		}
		defer func() {
			if err := reportPublisher.Close(); err != nil {
				log.Errorf("error closing report publisher: %s", err)
			}
		}()
		publisher = reportPublisher
	}

	collector := prompt.NewFilterCollector(os.Stdin, os.Stdout)
	explorerSession := session.NewSession(collector, loader, reports, os.Stdout, publisher)
	return explorerSession.Run(context.Background())
}

func newReportPublisher(publisherConfig communication.PublisherConfig) (*communication.ReportPublisher, error) {
	rabbitMQ, err := communication.NewRabbitMQ(publisherConfig.RabbitURL)
	if err != nil {
		return nil, err
	}

	reportPublisher, err := communication.NewReportPublisher(rabbitMQ, publisherConfig)
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}
	return reportPublisher, nil
}
