package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/l2enel/Revisited-Udacity/domain/entities/filter"
	"github.com/l2enel/Revisited-Udacity/domain/entities/trip"
)

const fileFormat = "csv"

var defaultTimestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// CityConfig files of a city
// + TripsFile: csv with the trips of the city
// + StationsFile: optional csv with name, latitude and longitude of each station
type CityConfig struct {
	TripsFile    string `yaml:"trips_file"`
	StationsFile string `yaml:"stations_file"`
}

type DatasetConfig struct {
	DataDir          string                `yaml:"data_dir" env:"DATA_DIR"`
	DayField         trip.DayField         `yaml:"day_field" env:"DAY_FIELD"`
	TimestampLayouts []string              `yaml:"timestamp_layouts"`
	Cities           map[string]CityConfig `yaml:"cities"`
}

func Default() DatasetConfig {
	return DatasetConfig{
		DataDir:          ".",
		DayField:         trip.DayOfMonth,
		TimestampLayouts: append([]string(nil), defaultTimestampLayouts...),
		Cities:           map[string]CityConfig{},
	}
}

// SetDefaults fills the fields that were left empty
func (dc *DatasetConfig) SetDefaults() {
	if dc.DataDir == "" {
		dc.DataDir = "."
	}

	if dc.DayField == "" {
		dc.DayField = trip.DayOfMonth
	}

	if len(dc.TimestampLayouts) == 0 {
		dc.TimestampLayouts = append([]string(nil), defaultTimestampLayouts...)
	}

	if dc.Cities == nil {
		dc.Cities = map[string]CityConfig{}
	}
}

func (dc *DatasetConfig) Validate() error {
	if !dc.DayField.IsValid() {
		return fmt.Errorf("invalid day field %q, possible values: %s, %s", dc.DayField, trip.DayOfMonth, trip.DayOfWeek)
	}

	for city := range dc.Cities {
		normalizedCity, ok := filter.NormalizeCity(city)
		if !ok {
			return fmt.Errorf("unknown city %q in datasets config", city)
		}
		if normalizedCity != city {
			return fmt.Errorf("city %q must be written in lower case", city)
		}
	}
	return nil
}

// TripsFilepath returns the path to the trips file of the city.
// If the city has no file configured, spaces in its name are replaced by underscores, e.g new york city -> new_york_city.csv
func (dc *DatasetConfig) TripsFilepath(city string) string {
	cityConfig, ok := dc.Cities[city]
	if ok && cityConfig.TripsFile != "" {
		return dc.resolve(cityConfig.TripsFile)
	}
	return dc.resolve(fmt.Sprintf("%s.%s", strings.ReplaceAll(city, " ", "_"), fileFormat))
}

// StationsFilepath returns the path to the stations file of the city, if there is one configured
func (dc *DatasetConfig) StationsFilepath(city string) (string, bool) {
	cityConfig, ok := dc.Cities[city]
	if !ok || cityConfig.StationsFile == "" {
		return "", false
	}
	return dc.resolve(cityConfig.StationsFile), true
}

func (dc *DatasetConfig) resolve(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(dc.DataDir, filename)
}
