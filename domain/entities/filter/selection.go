package filter

import (
	"fmt"
	"strings"

	"github.com/l2enel/Revisited-Udacity/utils"
)

// All is the month or day value that disables the corresponding filter
const All = "all"

var (
	Cities = []string{"chicago", "new york city", "washington"}

	Months = []string{All, "january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december"}

	Days = []string{All, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
		"sunday"}
)

// Selection contains the filters chosen by the user for one round of reports
// + City: one of Cities
// + Month: one of Months
// + Day: one of Days
type Selection struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewSelection returns a Selection with its values normalized to the vocabularies.
// An error is returned if any value is not part of its vocabulary
func NewSelection(city string, month string, day string) (Selection, error) {
	normalizedCity, ok := NormalizeCity(city)
	if !ok {
		return Selection{}, fmt.Errorf("invalid city %q", city)
	}

	normalizedMonth, ok := NormalizeMonth(month)
	if !ok {
		return Selection{}, fmt.Errorf("invalid month %q", month)
	}

	normalizedDay, ok := NormalizeDay(day)
	if !ok {
		return Selection{}, fmt.Errorf("invalid day %q", day)
	}

	return Selection{
		City:  normalizedCity,
		Month: normalizedMonth,
		Day:   normalizedDay,
	}, nil
}

func NormalizeCity(city string) (string, bool) {
	return normalize(city, Cities)
}

func NormalizeMonth(month string) (string, bool) {
	return normalize(month, Months)
}

func NormalizeDay(day string) (string, bool) {
	return normalize(day, Days)
}

// MonthIndex returns the 1-based index of the selected month, 0 means all months
func (s Selection) MonthIndex() int {
	return utils.IndexOfString(s.Month, Months)
}

// DayIndex returns the 1-based index of the selected day (monday = 1), 0 means all days
func (s Selection) DayIndex() int {
	return utils.IndexOfString(s.Day, Days)
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", s.City, s.Month, s.Day)
}

// MonthName returns the name of a 1-based month index, or an empty string if the index is out of range
func MonthName(month int) string {
	if month < 1 || month >= len(Months) {
		return ""
	}
	return Months[month]
}

// DayName returns the name of a 1-based weekday index (monday = 1)
func DayName(day int) string {
	if day < 1 || day >= len(Days) {
		return ""
	}
	return Days[day]
}

func normalize(value string, vocabulary []string) (string, bool) {
	idx := utils.IndexOfString(value, vocabulary)
	if idx == -1 {
		return "", false
	}
	return strings.ToLower(vocabulary[idx]), true
}
