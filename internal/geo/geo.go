// Package geo defines the device capability boundary: location, geocoding
// and nearby-place search are opaque, optional collaborators. The core must
// keep working with degraded results when any of them is unavailable, so
// every failure at a call site maps to an empty result, never an error shown
// to the user.
package geo

import (
	"context"
	"math"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a resolved position with whatever address detail the provider
// could supply.
type Location struct {
	Coordinates
	City    string `json:"city,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// Place is a nearby point-of-interest search hit.
type Place struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Coordinates
}

// LocationProvider reports the device's current position.
type LocationProvider interface {
	Current(ctx context.Context) (Location, error)
}

// Geocoder resolves between addresses/ZIP codes and coordinates.
type Geocoder interface {
	Forward(ctx context.Context, query string) (Location, error)
	Reverse(ctx context.Context, c Coordinates) (Location, error)
}

// PlaceSearch finds points of interest near a position.
type PlaceSearch interface {
	Nearby(ctx context.Context, c Coordinates, query string) ([]Place, error)
}

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in
// kilometers.
func HaversineKm(a, b Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
