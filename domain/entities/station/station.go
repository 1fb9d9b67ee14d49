package station

import "github.com/umahmood/haversine"

// StationData struct that contains the location of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (sd StationData) Coord() haversine.Coord {
	return haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
}

// DistanceTo returns the great-circle distance in kilometers between two stations
func (sd StationData) DistanceTo(other StationData) float64 {
	_, km := haversine.Distance(sd.Coord(), other.Coord())
	return km
}
