package stationstats

import (
	"bytes"
	"errors"
	"testing"

	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/dataset/config"
	"github.com/l2enel/Revisited-Udacity/dataset/datasettest"
	"github.com/l2enel/Revisited-Udacity/domain/entities/filter"
	"github.com/l2enel/Revisited-Udacity/domain/entities/station"
	"github.com/l2enel/Revisited-Udacity/domain/entities/trip"
	"github.com/l2enel/Revisited-Udacity/reports/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{}

func (failingProvider) LoadStations(string) (map[string]station.StationData, bool, error) {
	return nil, true, errors.New("stations file is broken")
}

func load(t *testing.T, cfg *config.DatasetConfig, city string, month string) dataset.Table {
	t.Helper()
	selection, err := filter.NewSelection(city, month, filter.All)
	require.NoError(t, err)

	table, err := dataset.NewLoader(cfg).Load(selection)
	require.NoError(t, err)
	return table
}

func TestStationStats(t *testing.T) {
	table := load(t, datasettest.NewCityDir(t), "chicago", filter.All)

	var out bytes.Buffer
	response, err := NewStationStats(nil).Generate(&out, table)
	require.NoError(t, err)

	startStation, _ := response.GetStat(StartStationLabel)
	assert.Equal(t, "Wood St & Hubbard St", startStation)

	// every end station appears once, the smallest name wins
	endStation, _ := response.GetStat(EndStationLabel)
	assert.Equal(t, "Canal St & Taylor St", endStation)

	tripName, _ := response.GetStat(TripLabel)
	assert.Equal(t, "Christiana Ave & Lawrence Ave St. Louis Ave & Balmoral Ave", tripName)

	assert.Contains(t, out.String(), "The most commonly used start station is Wood St & Hubbard St\n")
	_, ok := response.GetStat(DistanceLabel)
	assert.False(t, ok)
}

func TestStationStatsOfSingleTrip(t *testing.T) {
	table := load(t, datasettest.NewCityDir(t), "washington", "june")
	require.Equal(t, 1, table.Len())

	response, err := NewStationStats(nil).Generate(&bytes.Buffer{}, table)
	require.NoError(t, err)

	startStation, _ := response.GetStat(StartStationLabel)
	assert.Equal(t, "14th & V St NW", startStation)
	endStation, _ := response.GetStat(EndStationLabel)
	assert.Equal(t, "Georgetown Waterfront", endStation)
	tripName, _ := response.GetStat(TripLabel)
	assert.Equal(t, "14th & V St NW Georgetown Waterfront", tripName)
}

func TestStationStatsWithDistances(t *testing.T) {
	cfg := datasettest.NewCityDir(t)
	datasettest.WriteFile(t, cfg.DataDir, "washington_stations.csv", datasettest.WashingtonStationsCSV)
	cfg.Cities["washington"] = config.CityConfig{StationsFile: "washington_stations.csv"}
	table := load(t, cfg, "washington", "march")

	var out bytes.Buffer
	response, err := NewStationStats(dataset.NewLoader(cfg)).Generate(&out, table)
	require.NoError(t, err)

	distance, ok := response.GetStat(DistanceLabel)
	require.True(t, ok)
	// Lincoln Memorial to Jefferson Memorial, the trip to Union Station is skipped
	assert.Equal(t, "1.48", distance)
	assert.Contains(t, out.String(), "1 trips were skipped")
}

func TestStationStatsIgnoresBrokenStations(t *testing.T) {
	table := load(t, datasettest.NewCityDir(t), "washington", filter.All)

	response, err := NewStationStats(failingProvider{}).Generate(&bytes.Buffer{}, table)
	require.NoError(t, err)

	_, ok := response.GetStat(DistanceLabel)
	assert.False(t, ok)
}

func TestStationStatsWithoutStationNames(t *testing.T) {
	dir := t.TempDir()
	datasettest.WriteFile(t, dir, "washington.csv", `Start Time,End Time,Start Station,End Station,User Type
2017-06-21 17:45:10,2017-06-21 18:05:10,,,
`)
	table := load(t, datasettest.NewConfig(dir), "washington", filter.All)
	require.Equal(t, 1, table.Len())

	var out bytes.Buffer
	response, err := NewStationStats(nil).Generate(&out, table)
	require.NoError(t, err)

	for _, column := range []string{trip.StartStationColumn, trip.EndStationColumn, trip.TripColumn} {
		assert.True(t, response.HasMessage(runner.NoValuesMessage(column)), column)
	}
	assert.Contains(t, out.String(), "This took")
}

func TestStationStatsWithoutTrips(t *testing.T) {
	table := load(t, datasettest.NewCityDir(t), "washington", "january")

	var out bytes.Buffer
	response, err := NewStationStats(nil).Generate(&out, table)
	require.NoError(t, err)

	assert.True(t, response.HasMessage(runner.NoDataMessage))
}
