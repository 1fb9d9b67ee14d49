package dataset

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, content string) Table {
	t.Helper()
	frame := dataframe.ReadCSV(strings.NewReader(content), dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
	require.NoError(t, frame.Err)
	return NewTable("chicago", frame)
}

func TestValuesSkipMissingRecords(t *testing.T) {
	table := newTestTable(t, "Gender,Birth Year\nMale,1992.0\n,\nFemale,1985.0\n")

	genders, err := table.Values("Gender")
	require.NoError(t, err)
	assert.Equal(t, []string{"Male", "Female"}, genders)

	years, err := table.WholeNumbers("Birth Year")
	require.NoError(t, err)
	assert.Equal(t, []int{1992, 1985}, years)
}

func TestWholeNumbersRejectsText(t *testing.T) {
	table := newTestTable(t, "Birth Year\nnineteen\n")

	_, err := table.WholeNumbers("Birth Year")
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestFilterDoesNotModifyReceiver(t *testing.T) {
	frame := dataframe.New(
		series.New([]int{1, 2, 1}, series.Int, "month"),
		series.New([]string{"A", "B", "C"}, series.String, "Start Station"),
	)
	table := NewTable("chicago", frame)

	filtered, err := table.Filter("month", 1)
	require.NoError(t, err)

	assert.Equal(t, 2, filtered.Len())
	assert.Equal(t, 3, table.Len())

	_, err = table.Filter("hour", 1)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(""))
	assert.True(t, IsMissing("NaN"))
	assert.False(t, IsMissing("Subscriber"))
}
