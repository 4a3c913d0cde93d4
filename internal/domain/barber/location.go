package barber

import (
	"math"

	"barberline/internal/pkg/errs"
)

var ErrInvalidCoordinates = errs.New("coordinates out of range")

// Mean Earth radius used for great-circle distance.
const earthRadiusKm = 6371.0

// Location is a WGS84 point value object.
type Location struct {
	latitude  float64
	longitude float64
}

func NewLocation(latitude, longitude float64) (Location, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return Location{}, ErrInvalidCoordinates
	}
	return Location{latitude: latitude, longitude: longitude}, nil
}

func (l Location) Latitude() float64  { return l.latitude }
func (l Location) Longitude() float64 { return l.longitude }

// DistanceKm computes the haversine great-circle distance to other.
func (l Location) DistanceKm(other Location) float64 {
	lat1 := l.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - l.latitude) * math.Pi / 180
	dLon := (other.longitude - l.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
