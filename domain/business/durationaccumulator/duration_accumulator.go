package durationaccumulator

import (
	"time"
)

// DurationAccumulator struct that collects the durations of the trips
// + Counter: counts the amount of data collected
// + TotalDuration: sum of the durations, in seconds
type DurationAccumulator struct {
	Counter       int `json:"counter"`
	TotalDuration int `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func NewDurationAccumulatorWithData(durations []int) *DurationAccumulator {
	da := NewDurationAccumulator()
	for _, duration := range durations {
		da.UpdateAccumulator(duration)
	}
	return da
}

func (da *DurationAccumulator) UpdateAccumulator(duration int) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetTotalDuration() time.Duration {
	return time.Duration(da.TotalDuration) * time.Second
}

func (da *DurationAccumulator) GetAverageDuration() time.Duration {
	if da.Counter == 0 {
		panic("[DurationAccumulator] cannot get average duration, counter is zero")
	}
	average := float64(da.TotalDuration) / float64(da.Counter)
	return time.Duration(average * float64(time.Second))
}
