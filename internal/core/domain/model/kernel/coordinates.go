package kernel

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	// EarthRadiusKm is the mean Earth radius used by DistanceKm.
	EarthRadiusKm = 6371.0
)

var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Coordinates is a point on the Earth surface in decimal degrees.
//
// The zero value is not (0, 0): it fails Validate and must not be used.
//
//	home, err := kernel.NewCoordinates(55.7558, 37.6173)
//	if err != nil {
//	    return err
//	}
//	km, _ := home.DistanceKm(restaurant)
type Coordinates struct { //nolint:recvcheck //private setters use pointer receivers
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewCoordinates validates latitude in [-90, 90] and longitude in
// [-180, 180]. Both violations are reported together.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	c := Coordinates{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setLatitude(lat), c.setLongitude(lon)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c Coordinates) Latitude() float64 {
	return c.lat
}

func (c Coordinates) Longitude() float64 {
	return c.lon
}

func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%.6f,%.6f)", c.lat, c.lon)
}

func (c Coordinates) IsEqual(other Coordinates) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c == other, nil
}

// DistanceKm returns the great-circle distance to other using the haversine
// formula.
func (c Coordinates) DistanceKm(other Coordinates) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := radians(c.lat)
	lat2 := radians(other.lat)
	dLat := radians(other.lat - c.lat)
	dLon := radians(other.lon - c.lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)), nil
}

func (c *Coordinates) setLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	c.lat = lat
	return nil
}

func (c *Coordinates) setLongitude(lon float64) error {
	if math.IsNaN(lon) || lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	c.lon = lon
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
