package geo

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable is returned by the static implementations when they cannot
// answer; callers translate it into an empty, neutral result.
var ErrUnavailable = errors.New("geo: service unavailable")

// StaticGeocoder resolves ZIP codes from a fixed table. It stands in for a
// real platform geocoder and backs the manual-ZIP degraded path.
type StaticGeocoder struct {
	ByZip map[string]Location
}

// NewStaticGeocoder seeds a geocoder with a small ZIP table.
func NewStaticGeocoder(byZip map[string]Location) *StaticGeocoder {
	if byZip == nil {
		byZip = map[string]Location{}
	}
	return &StaticGeocoder{ByZip: byZip}
}

func (g *StaticGeocoder) Forward(ctx context.Context, query string) (Location, error) {
	if loc, ok := g.ByZip[strings.TrimSpace(query)]; ok {
		return loc, nil
	}
	return Location{}, ErrUnavailable
}

func (g *StaticGeocoder) Reverse(ctx context.Context, c Coordinates) (Location, error) {
	best := Location{}
	bestDist := -1.0
	for _, loc := range g.ByZip {
		d := HaversineKm(c, loc.Coordinates)
		if bestDist < 0 || d < bestDist {
			best, bestDist = loc, d
		}
	}
	if bestDist < 0 {
		return Location{}, ErrUnavailable
	}
	best.Coordinates = c
	return best, nil
}

// NoopLocationProvider always fails, modelling a device with location
// services disabled. The flow then falls back to manual ZIP entry.
type NoopLocationProvider struct{}

func (NoopLocationProvider) Current(ctx context.Context) (Location, error) {
	return Location{}, ErrUnavailable
}

// NoopPlaceSearch returns no hits, modelling an unavailable POI service.
type NoopPlaceSearch struct{}

func (NoopPlaceSearch) Nearby(ctx context.Context, c Coordinates, query string) ([]Place, error) {
	return []Place{}, nil
}
