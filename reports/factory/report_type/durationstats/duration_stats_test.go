package durationstats

import (
	"bytes"
	"testing"

	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/dataset/datasettest"
	"github.com/l2enel/Revisited-Udacity/domain/entities/filter"
	"github.com/l2enel/Revisited-Udacity/reports/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, city string, month string) dataset.Table {
	t.Helper()
	selection, err := filter.NewSelection(city, month, filter.All)
	require.NoError(t, err)

	table, err := dataset.NewLoader(datasettest.NewCityDir(t)).Load(selection)
	require.NoError(t, err)
	return table
}

func TestDurationStats(t *testing.T) {
	table := load(t, "washington", "march")

	var out bytes.Buffer
	response, err := NewDurationStats().Generate(&out, table)
	require.NoError(t, err)

	// durations are start minus end, so they are negative
	total, _ := response.GetStat(TotalLabel)
	assert.Equal(t, "-24m55s", total)
	mean, _ := response.GetStat(MeanLabel)
	assert.Equal(t, "-12m27.5s", mean)

	assert.Contains(t, out.String(), "Total travel time is -24m55s.\n")
	assert.Contains(t, out.String(), heading)
}

func TestDurationStatsOfWholeCity(t *testing.T) {
	table := load(t, "chicago", filter.All)

	response, err := NewDurationStats().Generate(&bytes.Buffer{}, table)
	require.NoError(t, err)

	total, _ := response.GetStat(TotalLabel)
	assert.Equal(t, "-1h8m18s", total)
}

func TestDurationStatsWithoutTrips(t *testing.T) {
	table := load(t, "chicago", "december")

	var out bytes.Buffer
	response, err := NewDurationStats().Generate(&out, table)
	require.NoError(t, err)

	assert.True(t, response.HasMessage(runner.NoDataMessage))
	_, ok := response.GetStat(MeanLabel)
	assert.False(t, ok)
}
