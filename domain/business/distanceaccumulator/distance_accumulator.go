package distanceaccumulator

// DistanceAccumulator struct that collects the distance between the start and end stations of the trips
// + Name: name of the data collected, e.g the city
// + Counter: counts the amount of trips whose stations have a known location
// + Skipped: counts the amount of trips with at least one unknown station
// + TotalDistance: sum of distances traveled, in kilometers
type DistanceAccumulator struct {
	Name          string  `json:"name"`
	Counter       int     `json:"counter"`
	Skipped       int     `json:"skipped"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator(name string) *DistanceAccumulator {
	return &DistanceAccumulator{
		Name: name,
	}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

func (da *DistanceAccumulator) Skip() {
	da.Skipped += 1
}

func (da *DistanceAccumulator) HasData() bool {
	return da.Counter > 0
}

func (da *DistanceAccumulator) GetAverageDistance() float64 {
	if da.Counter == 0 {
		panic("[DistanceAccumulator] cannot get average, counter is zero")
	}
	return da.TotalDistance / float64(da.Counter)
}
