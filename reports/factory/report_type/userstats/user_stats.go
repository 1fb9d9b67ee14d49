package userstats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/domain/business/modecounter"
	"github.com/l2enel/Revisited-Udacity/domain/business/reportresponse"
	"github.com/l2enel/Revisited-Udacity/domain/entities/trip"
	"github.com/l2enel/Revisited-Udacity/reports/runner"
	log "github.com/sirupsen/logrus"
)

const (
	reportID   = "4"
	reportType = "user-stats"
	heading    = "Calculating User Stats..."

	UserTypesLabel       = "Counts of user types;"
	GenderLabel          = "Counts of gender;"
	EarliestBirthLabel   = "Earliest year of birth: %s"
	MostRecentBirthLabel = "Most recent year of birth: %s"
	CommonBirthLabel     = "Most common year of birth: %s"

	NoGenderMessage        = "Sorry, dataset has no gender data."
	NoBirthYearMessage     = "Sorry, dataset has no birth year data."
	NoBirthYearValuesLabel = "No birth years were recorded for the selected trips."
)

// UserStats displays statistics on bikeshare users. Gender and birth year are only
// reported when the dataset has those columns
type UserStats struct{}

func NewUserStats() *UserStats {
	return &UserStats{}
}

func (us *UserStats) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[report: %s][method: %s][status: ERROR] %s: %s", reportType, method, message, err.Error())
	}
	return fmt.Sprintf("[report: %s][method: %s][status: OK] %s", reportType, method, message)
}

func (us *UserStats) GetID() string {
	return reportID
}

func (us *UserStats) GetType() string {
	return reportType
}

func (us *UserStats) Generate(w io.Writer, table dataset.Table) (*reportresponse.ReportResponse, error) {
	response := reportresponse.NewReportResponse(reportID, reportType)
	return runner.Run(w, table, heading, response, us.calculate)
}

func (us *UserStats) calculate(table dataset.Table, response *reportresponse.ReportResponse) error {
	userTypes, err := table.Values(trip.UserTypeColumn)
	if err != nil {
		log.Error(us.getLogMessage("calculate", "error getting user types", err))
		return err
	}
	us.addCounts(response, UserTypesLabel, trip.UserTypeColumn, userTypes)

	if err = us.addGenderStats(table, response); err != nil {
		return err
	}

	return us.addBirthYearStats(table, response)
}

func (us *UserStats) addGenderStats(table dataset.Table, response *reportresponse.ReportResponse) error {
	if !table.HasColumn(trip.GenderColumn) {
		log.Debug(us.getLogMessage("addGenderStats", fmt.Sprintf("%s has no gender data", table.City()), nil))
		response.AddMessage(NoGenderMessage)
		return nil
	}

	genders, err := table.Values(trip.GenderColumn)
	if err != nil {
		log.Error(us.getLogMessage("addGenderStats", "error getting genders", err))
		return err
	}

	us.addCounts(response, GenderLabel, trip.GenderColumn, genders)
	return nil
}

func (us *UserStats) addCounts(response *reportresponse.ReportResponse, label string, column string, values []string) {
	if len(values) == 0 {
		response.AddMessage(runner.NoValuesMessage(column))
		return
	}
	response.AddStat(label, runner.FormatCounts(modecounter.NewModeCounterWithData(column, values).Counts()))
}

func (us *UserStats) addBirthYearStats(table dataset.Table, response *reportresponse.ReportResponse) error {
	if !table.HasColumn(trip.BirthYearColumn) {
		log.Debug(us.getLogMessage("addBirthYearStats", fmt.Sprintf("%s has no birth year data", table.City()), nil))
		response.AddMessage(NoBirthYearMessage)
		return nil
	}

	birthYears, err := table.WholeNumbers(trip.BirthYearColumn)
	if err != nil {
		log.Error(us.getLogMessage("addBirthYearStats", "error getting birth years", err))
		return err
	}

	counter := modecounter.NewModeCounterWithData(trip.BirthYearColumn, birthYears)
	earliest, ok := counter.Min()
	if !ok {
		response.AddMessage(NoBirthYearValuesLabel)
		return nil
	}
	mostRecent, _ := counter.Max()
	mostCommon, _ := counter.Mode()

	response.AddInlineStat(EarliestBirthLabel, strconv.Itoa(earliest))
	response.AddInlineStat(MostRecentBirthLabel, strconv.Itoa(mostRecent))
	response.AddInlineStat(CommonBirthLabel, strconv.Itoa(mostCommon))
	return nil
}
