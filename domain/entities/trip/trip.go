package trip

import (
	"time"
)

// Columns of the city datasets
const (
	StartTimeColumn    = "Start Time"
	EndTimeColumn      = "End Time"
	StartStationColumn = "Start Station"
	EndStationColumn   = "End Station"
	UserTypeColumn     = "User Type"
	GenderColumn       = "Gender"
	BirthYearColumn    = "Birth Year"
)

// Columns derived from the raw ones
const (
	MonthColumn    = "month"
	DayColumn      = "day"
	HourColumn     = "hour"
	TripColumn     = "trip"
	DurationColumn = "duration"
)

// RequiredColumns are the columns every city dataset must have
var RequiredColumns = []string{
	StartTimeColumn,
	EndTimeColumn,
	StartStationColumn,
	EndStationColumn,
	UserTypeColumn,
}

// DayField selects what the derived day column holds
type DayField string

const (
	DayOfMonth DayField = "day_of_month"
	DayOfWeek  DayField = "day_of_week"
)

func (df DayField) IsValid() bool {
	return df == DayOfMonth || df == DayOfWeek
}

// TripData struct that contains the derived fields of a trip
// + Month: month of StartDate (1-12)
// + Day: day of StartDate, day of month or weekday (monday = 1) depending on the DayField
// + Hour: hour of StartDate (0-23)
// + Name: start station and end station joined by a space
// + Duration: StartDate minus EndDate, in seconds
type TripData struct {
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	Hour     int    `json:"hour"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

func NewTripData(startDate time.Time, endDate time.Time, startStation string, endStation string, dayField DayField) TripData {
	day := startDate.Day()
	if dayField == DayOfWeek {
		day = weekday(startDate)
	}

	return TripData{
		Month:    int(startDate.Month()),
		Day:      day,
		Hour:     startDate.Hour(),
		Name:     startStation + " " + endStation,
		Duration: int(startDate.Sub(endDate) / time.Second),
	}
}

// weekday returns the ISO weekday, monday = 1 and sunday = 7
func weekday(date time.Time) int {
	if date.Weekday() == time.Sunday {
		return 7
	}
	return int(date.Weekday())
}
