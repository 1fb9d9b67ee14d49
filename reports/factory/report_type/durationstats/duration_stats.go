package durationstats

import (
	"fmt"
	"io"

	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/domain/business/durationaccumulator"
	"github.com/l2enel/Revisited-Udacity/domain/business/reportresponse"
	"github.com/l2enel/Revisited-Udacity/domain/entities/trip"
	"github.com/l2enel/Revisited-Udacity/reports/runner"
	log "github.com/sirupsen/logrus"
)

const (
	reportID   = "3"
	reportType = "duration-stats"
	heading    = "Calculating Trip Duration..."

	TotalLabel = "Total travel time is %s."
	MeanLabel  = "Mean travel time is %s."
)

// DurationStats displays the total and average trip duration
type DurationStats struct{}

func NewDurationStats() *DurationStats {
	return &DurationStats{}
}

func (ds *DurationStats) GetID() string {
	return reportID
}

func (ds *DurationStats) GetType() string {
	return reportType
}

func (ds *DurationStats) Generate(w io.Writer, table dataset.Table) (*reportresponse.ReportResponse, error) {
	response := reportresponse.NewReportResponse(reportID, reportType)
	return runner.Run(w, table, heading, response, ds.calculate)
}

func (ds *DurationStats) calculate(table dataset.Table, response *reportresponse.ReportResponse) error {
	durations, err := table.Ints(trip.DurationColumn)
	if err != nil {
		log.Errorf("[report: %s][method: calculate][status: ERROR] error getting durations: %s", reportType, err.Error())
		return err
	}

	accumulator := durationaccumulator.NewDurationAccumulatorWithData(durations)
	response.AddInlineStat(TotalLabel, accumulator.GetTotalDuration().String())
	response.AddInlineStat(MeanLabel, accumulator.GetAverageDuration().String())

	log.Debug(fmt.Sprintf("[report: %s][method: calculate][status: OK] %v durations accumulated", reportType, accumulator.Counter))
	return nil
}
