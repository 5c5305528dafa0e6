package geo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKm(t *testing.T) {
	columbus := Coordinates{Latitude: 39.9612, Longitude: -82.9988}
	cleveland := Coordinates{Latitude: 41.4993, Longitude: -81.6944}

	d := HaversineKm(columbus, cleveland)
	assert.InDelta(t, 202, d, 5)
	assert.Zero(t, HaversineKm(columbus, columbus))
	assert.InDelta(t, HaversineKm(cleveland, columbus), d, 1e-9)
}

func TestStaticGeocoderForward(t *testing.T) {
	g := NewStaticGeocoder(map[string]Location{
		"43215": {Coordinates: Coordinates{Latitude: 39.9612, Longitude: -83.0007}, City: "Columbus", ZipCode: "43215"},
	})

	loc, err := g.Forward(context.Background(), " 43215 ")
	require.NoError(t, err)
	assert.Equal(t, "Columbus", loc.City)

	_, err = g.Forward(context.Background(), "99999")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStaticGeocoderReversePicksNearestEntry(t *testing.T) {
	g := NewStaticGeocoder(map[string]Location{
		"43215": {Coordinates: Coordinates{Latitude: 39.9612, Longitude: -83.0007}, City: "Columbus", ZipCode: "43215"},
		"44114": {Coordinates: Coordinates{Latitude: 41.5055, Longitude: -81.6921}, City: "Cleveland", ZipCode: "44114"},
	})

	loc, err := g.Reverse(context.Background(), Coordinates{Latitude: 39.95, Longitude: -83.0})
	require.NoError(t, err)
	assert.Equal(t, "43215", loc.ZipCode)
}

func TestStaticGeocoderReverseEmptyTable(t *testing.T) {
	g := NewStaticGeocoder(nil)
	_, err := g.Reverse(context.Background(), Coordinates{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNoopProvidersDegradeQuietly(t *testing.T) {
	_, err := NoopLocationProvider{}.Current(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	places, err := NoopPlaceSearch{}.Nearby(context.Background(), Coordinates{}, "clinic")
	require.NoError(t, err)
	assert.Empty(t, places)
}
