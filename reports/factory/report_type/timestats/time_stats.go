package timestats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/domain/business/reportresponse"
	"github.com/l2enel/Revisited-Udacity/domain/entities/filter"
	"github.com/l2enel/Revisited-Udacity/domain/entities/trip"
	"github.com/l2enel/Revisited-Udacity/reports/runner"
	log "github.com/sirupsen/logrus"
)

const (
	reportID   = "1"
	reportType = "time-stats"
	heading    = "Calculating The Most Frequent Times of Travel..."

	MonthLabel = "The most common month is;"
	DayLabel   = "The most common day is;"
	HourLabel  = "The most common start hour is;"
)

// TimeStats displays the most frequent times of travel
type TimeStats struct {
	dayField trip.DayField
}

func NewTimeStats(dayField trip.DayField) *TimeStats {
	return &TimeStats{
		dayField: dayField,
	}
}

func (ts *TimeStats) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[report: %s][method: %s][status: ERROR] %s: %s", reportType, method, message, err.Error())
	}
	return fmt.Sprintf("[report: %s][method: %s][status: OK] %s", reportType, method, message)
}

func (ts *TimeStats) GetID() string {
	return reportID
}

func (ts *TimeStats) GetType() string {
	return reportType
}

func (ts *TimeStats) Generate(w io.Writer, table dataset.Table) (*reportresponse.ReportResponse, error) {
	response := reportresponse.NewReportResponse(reportID, reportType)
	return runner.Run(w, table, heading, response, ts.calculate)
}

func (ts *TimeStats) calculate(table dataset.Table, response *reportresponse.ReportResponse) error {
	modes := []struct {
		column string
		label  string
		format func(int) string
	}{
		{column: trip.MonthColumn, label: MonthLabel, format: filter.MonthName},
		{column: trip.DayColumn, label: DayLabel, format: ts.formatDay},
		{column: trip.HourColumn, label: HourLabel, format: strconv.Itoa},
	}

	for _, mode := range modes {
		value, ok, err := runner.IntMode(table, mode.column)
		if err != nil {
			log.Error(ts.getLogMessage("calculate", fmt.Sprintf("error getting most common %s", mode.column), err))
			return err
		}
		if !ok {
			response.AddMessage(runner.NoValuesMessage(mode.column))
			continue
		}
		response.AddStat(mode.label, mode.format(value))
	}
	return nil
}

func (ts *TimeStats) formatDay(day int) string {
	if ts.dayField == trip.DayOfWeek {
		return filter.DayName(day)
	}
	return strconv.Itoa(day)
}
