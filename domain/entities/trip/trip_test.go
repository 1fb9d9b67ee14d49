package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTripData(t *testing.T) {
	start := time.Date(2017, time.June, 23, 15, 9, 32, 0, time.UTC)
	end := time.Date(2017, time.June, 23, 15, 14, 53, 0, time.UTC)

	tripData := NewTripData(start, end, "Wood St & Hubbard St", "Damen Ave & Chicago Ave", DayOfMonth)

	assert.Equal(t, 6, tripData.Month)
	assert.Equal(t, 23, tripData.Day)
	assert.Equal(t, 15, tripData.Hour)
	assert.Equal(t, "Wood St & Hubbard St Damen Ave & Chicago Ave", tripData.Name)
	// start minus end, so a forward trip has a negative duration
	assert.Equal(t, -321, tripData.Duration)
}

func TestNewTripDataDayOfWeek(t *testing.T) {
	friday := time.Date(2017, time.June, 23, 15, 0, 0, 0, time.UTC)
	sunday := time.Date(2017, time.June, 25, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, NewTripData(friday, friday, "A", "B", DayOfWeek).Day)
	assert.Equal(t, 7, NewTripData(sunday, sunday, "A", "B", DayOfWeek).Day)
	assert.Equal(t, 0, NewTripData(sunday, sunday, "A", "B", DayOfWeek).Duration)
}

func TestDayFieldIsValid(t *testing.T) {
	assert.True(t, DayOfMonth.IsValid())
	assert.True(t, DayOfWeek.IsValid())
	assert.False(t, DayField("weekday").IsValid())
}
