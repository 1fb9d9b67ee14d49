package dataset

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/series"
	"github.com/l2enel/Revisited-Udacity/domain/entities/station"
	log "github.com/sirupsen/logrus"
)

// Columns of the stations files
const (
	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"
)

// LoadStations returns the stations of the city by name. The boolean is false if the city
// has no stations file configured
func (l *Loader) LoadStations(city string) (map[string]station.StationData, bool, error) {
	filepath, ok := l.config.StationsFilepath(city)
	if !ok {
		return nil, false, nil
	}

	frame, err := readCSV(filepath, map[string]series.Type{
		stationLatitudeColumn:  series.Float,
		stationLongitudeColumn: series.Float,
	})
	if err != nil {
		return nil, true, err
	}

	table := NewTable(city, frame)
	for _, column := range []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn} {
		if !table.HasColumn(column) {
			return nil, true, fmt.Errorf("%w: %s in %s", ErrMissingColumn, column, filepath)
		}
	}

	names := frame.Col(stationNameColumn).Records()
	latitudes := frame.Col(stationLatitudeColumn).Float()
	longitudes := frame.Col(stationLongitudeColumn).Float()

	stations := make(map[string]station.StationData, len(names))
	for i := range names {
		if math.IsNaN(latitudes[i]) || math.IsNaN(longitudes[i]) ||
			latitudes[i] < -90 || latitudes[i] > 90 || longitudes[i] < -180 || longitudes[i] > 180 {
			return nil, true, fmt.Errorf("%w: station %q has invalid coordinates (%v, %v)", ErrInvalidStation, names[i], latitudes[i], longitudes[i])
		}
		stations[names[i]] = station.StationData{
			Name:      names[i],
			Latitude:  latitudes[i],
			Longitude: longitudes[i],
		}
	}

	log.Debug(l.getLogMessage("LoadStations", fmt.Sprintf("loaded %v stations from %s", len(stations), filepath), nil))
	return stations, true, nil
}
