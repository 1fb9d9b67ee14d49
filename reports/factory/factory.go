package factory

import (
	"fmt"
	"io"

	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/domain/business/reportresponse"
	"github.com/l2enel/Revisited-Udacity/domain/entities/trip"
	"github.com/l2enel/Revisited-Udacity/reports/factory/report_type/durationstats"
	"github.com/l2enel/Revisited-Udacity/reports/factory/report_type/stationstats"
	"github.com/l2enel/Revisited-Udacity/reports/factory/report_type/timestats"
	"github.com/l2enel/Revisited-Udacity/reports/factory/report_type/userstats"
)

const (
	timeStatsType     = "time-stats"
	stationStatsType  = "station-stats"
	durationStatsType = "duration-stats"
	userStatsType     = "user-stats"
)

// DefaultReportTypes every report, in the order they are printed
var DefaultReportTypes = []string{timeStatsType, stationStatsType, durationStatsType, userStatsType}

// IReport reads a filtered table and prints one category of statistics.
// Reports never modify the table
type IReport interface {
	GetID() string
	GetType() string
	Generate(w io.Writer, table dataset.Table) (*reportresponse.ReportResponse, error)
}

// NewReport initialize a report of some type.
// Possible report types are: time-stats, station-stats, duration-stats, user-stats
func NewReport(reportType string, dayField trip.DayField, stationsProvider stationstats.StationsProvider) (IReport, error) {
	switch reportType {
	case timeStatsType:
		return timestats.NewTimeStats(dayField), nil
	case stationStatsType:
		return stationstats.NewStationStats(stationsProvider), nil
	case durationStatsType:
		return durationstats.NewDurationStats(), nil
	case userStatsType:
		return userstats.NewUserStats(), nil
	}

	return nil, fmt.Errorf("[method: NewReport][status: error] Invalid report type %s", reportType)
}

// NewReports initialize the reports in the given order. If reportTypes is empty every report is returned
func NewReports(reportTypes []string, dayField trip.DayField, stationsProvider stationstats.StationsProvider) ([]IReport, error) {
	if len(reportTypes) == 0 {
		reportTypes = DefaultReportTypes
	}

	seen := make(map[string]struct{}, len(reportTypes))
	reports := make([]IReport, 0, len(reportTypes))
	for _, reportType := range reportTypes {
		if _, ok := seen[reportType]; ok {
			return nil, fmt.Errorf("[method: NewReports][status: error] report type %s is repeated", reportType)
		}
		seen[reportType] = struct{}{}

		report, err := NewReport(reportType, dayField, stationsProvider)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
