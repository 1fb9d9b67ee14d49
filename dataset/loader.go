package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/l2enel/Revisited-Udacity/dataset/config"
	"github.com/l2enel/Revisited-Udacity/domain/entities/filter"
	"github.com/l2enel/Revisited-Udacity/domain/entities/trip"
	log "github.com/sirupsen/logrus"
)

const loaderType = "dataset-loader"

// Loader reads the trips of a city and applies the filters chosen by the user.
// Nothing is cached: every call reads the file again
type Loader struct {
	config *config.DatasetConfig
}

func NewLoader(datasetConfig *config.DatasetConfig) *Loader {
	return &Loader{
		config: datasetConfig,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderType, method, message)
}

// Load returns the trips of the selected city filtered by month and day
func (l *Loader) Load(selection filter.Selection) (Table, error) {
	table, err := l.LoadCity(selection.City)
	if err != nil {
		return Table{}, err
	}
	return l.ApplyFilters(table, selection)
}

// LoadCity reads the trips file of the city and adds the derived columns:
// month, day, hour, trip and duration
func (l *Loader) LoadCity(city string) (Table, error) {
	filepath := l.config.TripsFilepath(city)
	frame, err := readCSV(filepath, nil)
	if err != nil {
		log.Debug(l.getLogMessage("LoadCity", fmt.Sprintf("error reading %s", filepath), err))
		return Table{}, err
	}

	table := NewTable(city, frame)
	for _, column := range trip.RequiredColumns {
		if !table.HasColumn(column) {
			return Table{}, fmt.Errorf("%w: %s in %s", ErrMissingColumn, column, filepath)
		}
	}

	table, err = l.addDerivedColumns(table)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", filepath, err)
	}

	log.Debug(l.getLogMessage("LoadCity", fmt.Sprintf("loaded %v trips from %s", table.Len(), filepath), nil))
	return table, nil
}

// ApplyFilters keeps the rows of the selected month and day. The day is compared with the
// derived day column, so with the default day field the weekday index is matched against the day of month
func (l *Loader) ApplyFilters(table Table, selection filter.Selection) (Table, error) {
	var err error
	if monthIndex := selection.MonthIndex(); monthIndex > 0 {
		table, err = table.Filter(trip.MonthColumn, monthIndex)
		if err != nil {
			return Table{}, err
		}
	}

	if dayIndex := selection.DayIndex(); dayIndex > 0 {
		table, err = table.Filter(trip.DayColumn, dayIndex)
		if err != nil {
			return Table{}, err
		}
	}

	log.Debug(l.getLogMessage("ApplyFilters", fmt.Sprintf("[%s] %v trips left", selection, table.Len()), nil))
	return table, nil
}

func (l *Loader) addDerivedColumns(table Table) (Table, error) {
	startTimes, err := table.Strings(trip.StartTimeColumn)
	if err != nil {
		return Table{}, err
	}
	endTimes, err := table.Strings(trip.EndTimeColumn)
	if err != nil {
		return Table{}, err
	}
	startStations, err := table.Strings(trip.StartStationColumn)
	if err != nil {
		return Table{}, err
	}
	endStations, err := table.Strings(trip.EndStationColumn)
	if err != nil {
		return Table{}, err
	}

	rows := table.Len()
	months := make([]int, rows)
	days := make([]int, rows)
	hours := make([]int, rows)
	names := make([]string, rows)
	durations := make([]int, rows)

	for i := 0; i < rows; i++ {
		startDate, err := l.parseTimestamp(startTimes[i])
		if err != nil {
			return Table{}, fmt.Errorf("%w: row %v, column %s: %q: %w", ErrInvalidTimestamp, i+1, trip.StartTimeColumn, startTimes[i], err)
		}

		endDate, err := l.parseTimestamp(endTimes[i])
		if err != nil {
			return Table{}, fmt.Errorf("%w: row %v, column %s: %q: %w", ErrInvalidTimestamp, i+1, trip.EndTimeColumn, endTimes[i], err)
		}

		tripData := trip.NewTripData(startDate, endDate, startStations[i], endStations[i], l.config.DayField)
		months[i] = tripData.Month
		days[i] = tripData.Day
		hours[i] = tripData.Hour
		names[i] = tripData.Name
		if IsMissing(startStations[i]) || IsMissing(endStations[i]) {
			names[i] = ""
		}
		durations[i] = tripData.Duration
	}

	frame := table.frame.
		Mutate(series.New(months, series.Int, trip.MonthColumn)).
		Mutate(series.New(days, series.Int, trip.DayColumn)).
		Mutate(series.New(hours, series.Int, trip.HourColumn)).
		Mutate(series.New(names, series.String, trip.TripColumn)).
		Mutate(series.New(durations, series.Int, trip.DurationColumn))
	if frame.Err != nil {
		return Table{}, fmt.Errorf("%w: error adding derived columns: %s", ErrInvalidDataset, frame.Err)
	}

	return NewTable(table.city, frame), nil
}

// parseTimestamp tries every configured layout, the error lists why each one failed
func (l *Loader) parseTimestamp(value string) (time.Time, error) {
	if len(l.config.TimestampLayouts) == 0 {
		return time.Time{}, errors.New("no timestamp layout configured")
	}

	layoutErrors := make([]error, 0, len(l.config.TimestampLayouts))
	for _, layout := range l.config.TimestampLayouts {
		timestamp, err := time.Parse(layout, value)
		if err == nil {
			return timestamp, nil
		}
		layoutErrors = append(layoutErrors, err)
	}
	return time.Time{}, errors.Join(layoutErrors...)
}

// readCSV reads every column of the file as a string column unless types says otherwise.
// A file with a header and no rows is an empty DataFrame with the columns of the header
func readCSV(filepath string, types map[string]series.Type) (dataframe.DataFrame, error) {
	dataFile, err := os.Open(filepath)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %w", ErrDatasetNotFound, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", filepath, err.Error())
		}
	}(dataFile)

	records, err := csv.NewReader(dataFile).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %w", ErrInvalidDataset, filepath, err)
	}

	switch len(records) {
	case 0:
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s has no header", ErrInvalidDataset, filepath)
	case 1:
		log.Debugf("[component: %s][method: readCSV] %s has no rows", loaderType, filepath)
		return emptyFrame(filepath, records[0], types)
	}

	frame := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
	)
	if frame.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %s", ErrInvalidDataset, filepath, frame.Err)
	}
	return frame, nil
}

func emptyFrame(filepath string, header []string, types map[string]series.Type) (dataframe.DataFrame, error) {
	columns := make([]series.Series, 0, len(header))
	for _, name := range header {
		columnType, ok := types[name]
		if !ok {
			columnType = series.String
		}
		columns = append(columns, series.New([]string{}, columnType, name))
	}

	frame := dataframe.New(columns...)
	if frame.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %s", ErrInvalidDataset, filepath, frame.Err)
	}
	return frame, nil
}
