package runner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/domain/business/modecounter"
	"github.com/l2enel/Revisited-Udacity/domain/business/reportresponse"
	"github.com/l2enel/Revisited-Udacity/utils"
)

// NoDataMessage is printed instead of the statistics when the filters leave no trips
const NoDataMessage = "No trips match the selected filters."

const noValuesTemplate = "No %s was recorded for the selected trips."

// Calculator adds the statistics of a report to the response. The table is never empty
type Calculator func(table dataset.Table, response *reportresponse.ReportResponse) error

// Run prints the heading of the report, calculates its statistics, prints them and prints how much time it took
func Run(w io.Writer, table dataset.Table, heading string, response *reportresponse.ReportResponse, calculate Calculator) (*reportresponse.ReportResponse, error) {
	startTime := time.Now()
	if _, err := fmt.Fprintf(w, "\n%s\n\n", heading); err != nil {
		return nil, err
	}

	if table.IsEmpty() {
		response.AddMessage(NoDataMessage)
	} else if err := calculate(table, response); err != nil {
		return nil, err
	}

	if err := response.Print(w); err != nil {
		return nil, err
	}

	response.Elapsed = time.Since(startTime)
	_, err := fmt.Fprintf(w, "\nThis took %v seconds.\n%s\n", response.Elapsed.Seconds(), utils.Separator())
	if err != nil {
		return nil, err
	}
	return response, nil
}

// NoValuesMessage is printed instead of a statistic when every record of its column is missing
func NoValuesMessage(column string) string {
	return fmt.Sprintf(noValuesTemplate, column)
}

// IntMode returns the most common value of an int column. The boolean is false if the column has no values
func IntMode(table dataset.Table, column string) (int, bool, error) {
	values, err := table.Ints(column)
	if err != nil {
		return 0, false, err
	}

	mode, ok := modecounter.NewModeCounterWithData(column, values).Mode()
	return mode, ok, nil
}

// StringMode returns the most common value of a string column, missing values are not counted.
// The boolean is false if every record is missing
func StringMode(table dataset.Table, column string) (string, bool, error) {
	values, err := table.Values(column)
	if err != nil {
		return "", false, err
	}

	mode, ok := modecounter.NewModeCounterWithData(column, values).Mode()
	return mode, ok, nil
}

// FormatCounts returns one "value: counter" line per entry
func FormatCounts[K int | string](entries []modecounter.Entry[K]) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%v: %v", entry.Value, entry.Count))
	}
	return strings.Join(lines, "\n")
}
