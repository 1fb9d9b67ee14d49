package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/l2enel/Revisited-Udacity/communication"
	dataset "github.com/l2enel/Revisited-Udacity/dataset/config"
	"github.com/l2enel/Revisited-Udacity/utils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultLogLevel = "info"

// ExplorerConfig config of the explorer binary
// + LogLevel: logrus level
// + Dataset: where the city files are and how they are read
// + Reports: reports to print, in order. Empty means every report
// + Publisher: optional RabbitMQ publisher of the reports
type ExplorerConfig struct {
	LogLevel  string                        `yaml:"log_level" env:"LOG_LEVEL"`
	Dataset   dataset.DatasetConfig         `yaml:"dataset"`
	Reports   []string                      `yaml:"reports"`
	Publisher communication.PublisherConfig `yaml:"publisher"`
}

func Default() ExplorerConfig {
	return ExplorerConfig{
		LogLevel: defaultLogLevel,
		Dataset:  dataset.Default(),
	}
}

// LoadConfig reads the yaml file in configPath and then the environment variables, which have priority.
// If the file does not exist the defaults are used
func LoadConfig(configPath string) (ExplorerConfig, error) {
	explorerConfig := Default()

	configFile, err := utils.GetConfigFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warnf("[method: LoadConfig] config file %s not found, using default values", configPath)
	case err != nil:
		return ExplorerConfig{}, err
	default:
		err = yaml.Unmarshal(configFile, &explorerConfig)
		if err != nil {
			return ExplorerConfig{}, fmt.Errorf("error parsing explorer config file: %w", err)
		}
	}

	err = cleanenv.ReadEnv(&explorerConfig)
	if err != nil {
		return ExplorerConfig{}, fmt.Errorf("error reading environment variables: %w", err)
	}

	explorerConfig.SetDefaults()
	err = explorerConfig.Validate()
	if err != nil {
		return ExplorerConfig{}, err
	}
	return explorerConfig, nil
}

func (ec *ExplorerConfig) SetDefaults() {
	if ec.LogLevel == "" {
		ec.LogLevel = defaultLogLevel
	}
	ec.Dataset.SetDefaults()
	ec.Publisher.SetDefaults()
}

func (ec *ExplorerConfig) Validate() error {
	if _, err := log.ParseLevel(ec.LogLevel); err != nil {
		return err
	}

	if err := ec.Dataset.Validate(); err != nil {
		return fmt.Errorf("invalid dataset config: %w", err)
	}

	if err := ec.Publisher.Validate(); err != nil {
		return fmt.Errorf("invalid publisher config: %w", err)
	}
	return nil
}
