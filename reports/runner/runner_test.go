package runner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/domain/business/modecounter"
	"github.com/l2enel/Revisited-Udacity/domain/business/reportresponse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(months []int, stations []string) dataset.Table {
	return dataset.NewTable("chicago", dataframe.New(
		series.New(months, series.Int, "month"),
		series.New(stations, series.String, "Start Station"),
	))
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	table := newTable([]int{1, 2, 2}, []string{"A", "B", "A"})

	response, err := Run(&out, table, "Calculating...", reportresponse.NewReportResponse("1", "test"), func(table dataset.Table, response *reportresponse.ReportResponse) error {
		response.AddStat("The most common month is;", "2")
		return nil
	})
	require.NoError(t, err)

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "\nCalculating...\n\n"))
	assert.Contains(t, output, "The most common month is;\n2\n")
	assert.Contains(t, output, "This took ")
	assert.True(t, strings.HasSuffix(output, strings.Repeat("-", 40)+"\n"))
	assert.Len(t, response.Stats, 1)
}

func TestRunWithEmptyTable(t *testing.T) {
	var out bytes.Buffer
	table := newTable([]int{}, []string{})

	called := false
	response, err := Run(&out, table, "Calculating...", reportresponse.NewReportResponse("1", "test"), func(dataset.Table, *reportresponse.ReportResponse) error {
		called = true
		return nil
	})
	require.NoError(t, err)

	assert.False(t, called)
	assert.Contains(t, out.String(), NoDataMessage)
	assert.True(t, response.HasMessage(NoDataMessage))
}

func TestRunPropagatesErrors(t *testing.T) {
	expected := errors.New("boom")
	_, err := Run(&bytes.Buffer{}, newTable([]int{1}, []string{"A"}), "Calculating...", reportresponse.NewReportResponse("1", "test"), func(dataset.Table, *reportresponse.ReportResponse) error {
		return expected
	})
	assert.ErrorIs(t, err, expected)
}

func TestModes(t *testing.T) {
	table := newTable([]int{3, 1, 3, 1, 2}, []string{"A", "B", "A", "A", "C"})

	month, ok, err := IntMode(table, "month")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, month)

	station, ok, err := StringMode(table, "Start Station")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "A", station)

	_, _, err = IntMode(table, "hour")
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
}

func TestStringModeWithoutValues(t *testing.T) {
	table := newTable([]int{1, 2}, []string{"", ""})

	_, ok, err := StringMode(table, "Start Station")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "No Start Station was recorded for the selected trips.", NoValuesMessage("Start Station"))
}

func TestFormatCounts(t *testing.T) {
	counts := modecounter.NewModeCounterWithData("User Type", []string{"Subscriber", "Customer", "Subscriber"}).Counts()
	assert.Equal(t, "Subscriber: 2\nCustomer: 1", FormatCounts(counts))
}
