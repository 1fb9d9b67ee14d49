package stationstats

import (
	"fmt"
	"io"

	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/domain/business/distanceaccumulator"
	"github.com/l2enel/Revisited-Udacity/domain/business/reportresponse"
	"github.com/l2enel/Revisited-Udacity/domain/entities/station"
	"github.com/l2enel/Revisited-Udacity/domain/entities/trip"
	"github.com/l2enel/Revisited-Udacity/reports/runner"
	log "github.com/sirupsen/logrus"
)

const (
	reportID   = "2"
	reportType = "station-stats"
	heading    = "Calculating The Most Popular Stations and Trip..."

	StartStationLabel = "The most commonly used start station is %s"
	EndStationLabel   = "The most commonly used end station is %s"
	TripLabel         = "The most commonly used combination of stations is %s"
	DistanceLabel     = "The average distance between start and end stations is %s km"
	skippedTemplate   = "%v trips were skipped because the location of a station is unknown"
)

// StationsProvider returns the location of the stations of a city.
// The boolean is false if the city has no locations available
type StationsProvider interface {
	LoadStations(city string) (map[string]station.StationData, bool, error)
}

// StationStats displays the most popular stations and trip
type StationStats struct {
	stationsProvider StationsProvider
}

// NewStationStats returns a StationStats. stationsProvider can be nil, in that case distances are not calculated
func NewStationStats(stationsProvider StationsProvider) *StationStats {
	return &StationStats{
		stationsProvider: stationsProvider,
	}
}

func (ss *StationStats) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[report: %s][method: %s][status: ERROR] %s: %s", reportType, method, message, err.Error())
	}
	return fmt.Sprintf("[report: %s][method: %s][status: OK] %s", reportType, method, message)
}

func (ss *StationStats) GetID() string {
	return reportID
}

func (ss *StationStats) GetType() string {
	return reportType
}

func (ss *StationStats) Generate(w io.Writer, table dataset.Table) (*reportresponse.ReportResponse, error) {
	response := reportresponse.NewReportResponse(reportID, reportType)
	return runner.Run(w, table, heading, response, ss.calculate)
}

func (ss *StationStats) calculate(table dataset.Table, response *reportresponse.ReportResponse) error {
	modes := []struct {
		column string
		label  string
	}{
		{column: trip.StartStationColumn, label: StartStationLabel},
		{column: trip.EndStationColumn, label: EndStationLabel},
		{column: trip.TripColumn, label: TripLabel},
	}

	for _, mode := range modes {
		value, ok, err := runner.StringMode(table, mode.column)
		if err != nil {
			log.Error(ss.getLogMessage("calculate", fmt.Sprintf("error getting most common %s", mode.column), err))
			return err
		}
		if !ok {
			log.Debug(ss.getLogMessage("calculate", fmt.Sprintf("%s has no values", mode.column), nil))
			response.AddMessage(runner.NoValuesMessage(mode.column))
			continue
		}
		response.AddInlineStat(mode.label, value)
	}

	distanceAccumulator, ok := ss.calculateDistances(table)
	if ok {
		response.AddInlineStat(DistanceLabel, fmt.Sprintf("%.2f", distanceAccumulator.GetAverageDistance()))
		if distanceAccumulator.Skipped > 0 {
			response.AddMessage(fmt.Sprintf(skippedTemplate, distanceAccumulator.Skipped))
		}
	}
	return nil
}

// calculateDistances sums the distance between the start and end station of each trip.
// The boolean is false when there are no locations for the city
func (ss *StationStats) calculateDistances(table dataset.Table) (*distanceaccumulator.DistanceAccumulator, bool) {
	if ss.stationsProvider == nil {
		return nil, false
	}

	stations, ok, err := ss.stationsProvider.LoadStations(table.City())
	if err != nil {
		log.Warn(ss.getLogMessage("calculateDistances", fmt.Sprintf("skipping distances of %s", table.City()), err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	startStations, err := table.Strings(trip.StartStationColumn)
	if err != nil {
		return nil, false
	}
	endStations, err := table.Strings(trip.EndStationColumn)
	if err != nil {
		return nil, false
	}

	distanceAccumulator := distanceaccumulator.NewDistanceAccumulator(table.City())
	for i := range startStations {
		startStation, startOK := stations[startStations[i]]
		endStation, endOK := stations[endStations[i]]
		if !startOK || !endOK {
			distanceAccumulator.Skip()
			continue
		}
		distanceAccumulator.UpdateAccumulator(startStation.DistanceTo(endStation))
	}

	log.Debug(ss.getLogMessage("calculateDistances", fmt.Sprintf("%v trips with known stations, %v skipped", distanceAccumulator.Counter, distanceAccumulator.Skipped), nil))
	return distanceAccumulator, distanceAccumulator.HasData()
}
