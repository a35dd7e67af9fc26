package kernel_test

import (
	"math"
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// one degree of arc on a sphere of radius 6371 km
const kmPerDegree = kernel.EarthRadiusKm * math.Pi / 180

func TestNewCoordinates(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := kernel.NewCoordinates(55.7558, 37.6173)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.InDelta(t, 55.7558, c.Latitude(), 1e-9)
		assert.InDelta(t, 37.6173, c.Longitude(), 1e-9)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		_, err := kernel.NewCoordinates(-90, 180)
		require.NoError(t, err)
		_, err = kernel.NewCoordinates(90, -180)
		require.NoError(t, err)
	})

	tests := []struct {
		name     string
		lat, lon float64
	}{
		{"latitude too small", -90.01, 0},
		{"latitude too large", 90.01, 0},
		{"longitude too small", 0, -180.5},
		{"longitude too large", 0, 181},
		{"nan latitude", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := kernel.NewCoordinates(tt.lat, tt.lon)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Error(t, c.Validate())
		})
	}

	t.Run("both errors are reported", func(t *testing.T) {
		_, err := kernel.NewCoordinates(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestCoordinates_DistanceKm(t *testing.T) {
	origin, err := kernel.NewCoordinates(0, 0)
	require.NoError(t, err)

	t.Run("zero for the same point", func(t *testing.T) {
		d, err := origin.DistanceKm(origin)
		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("one degree along the meridian", func(t *testing.T) {
		north, _ := kernel.NewCoordinates(1, 0)

		d, err := origin.DistanceKm(north)
		require.NoError(t, err)
		assert.InDelta(t, kmPerDegree, d, 1e-6)
	})

	t.Run("symmetric", func(t *testing.T) {
		moscow, _ := kernel.NewCoordinates(55.7558, 37.6173)
		spb, _ := kernel.NewCoordinates(59.9343, 30.3351)

		d1, err := moscow.DistanceKm(spb)
		require.NoError(t, err)
		d2, err := spb.DistanceKm(moscow)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
		assert.InDelta(t, 634, d1, 5)
	})

	t.Run("antipodes", func(t *testing.T) {
		other, _ := kernel.NewCoordinates(0, 180)

		d, err := origin.DistanceKm(other)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi*kernel.EarthRadiusKm, d, 1e-6)
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		_, err := origin.DistanceKm(kernel.Coordinates{})
		assert.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
	})
}

func TestCoordinates_IsEqual(t *testing.T) {
	a, _ := kernel.NewCoordinates(10, 20)
	b, _ := kernel.NewCoordinates(10, 20)
	c, _ := kernel.NewCoordinates(10, 21)

	eq, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = a.IsEqual(kernel.Coordinates{})
	assert.Error(t, err)
}
