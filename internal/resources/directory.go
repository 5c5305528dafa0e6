// Package resources serves the bundled clinic and resource directory. The
// directory is read-only reference data; distance annotations are computed
// per query and never written back.
package resources

import (
	"context"
	"log"
	"sort"

	"github.com/sanashahul/GamiSMS-sub000/internal/geo"
	"github.com/sanashahul/GamiSMS-sub000/internal/models"
)

// Directory answers resource lookups over the static directory, optionally
// resolving ZIP codes through the geocoder.
type Directory struct {
	clinics  []models.Clinic
	geocoder geo.Geocoder
}

// NewDirectory builds a directory over the given entries. A nil geocoder
// disables ZIP lookup; ZIP queries then degrade to the unsorted list.
func NewDirectory(clinics []models.Clinic, geocoder geo.Geocoder) *Directory {
	return &Directory{clinics: clinics, geocoder: geocoder}
}

// NewSampleDirectory builds a directory over the bundled sample data.
func NewSampleDirectory(geocoder geo.Geocoder) *Directory {
	return NewDirectory(SampleClinics(), geocoder)
}

// Query narrows and orders a directory lookup. Zero values mean "no filter".
type Query struct {
	Area     models.ServiceArea
	Zip      string
	Origin   *geo.Coordinates
	MaxKm    float64
	Language string
}

// Find returns matching entries. When an origin is known (directly or via a
// resolvable ZIP) each result carries a transient DistanceKm and the list is
// sorted nearest-first; otherwise the bundled order is kept. Find never
// errors: an unresolvable ZIP just means no distance annotation.
func (d *Directory) Find(ctx context.Context, q Query) []models.Clinic {
	origin := q.Origin
	if origin == nil && q.Zip != "" && d.geocoder != nil {
		loc, err := d.geocoder.Forward(ctx, q.Zip)
		if err != nil {
			log.Printf("resources: zip %q not resolvable, returning unsorted list: %v", q.Zip, err)
		} else {
			origin = &loc.Coordinates
		}
	}

	out := []models.Clinic{}
	for _, c := range d.clinics {
		if q.Area != "" && !c.ServesArea(q.Area) {
			continue
		}
		if q.Language != "" && !speaks(c, q.Language) {
			continue
		}
		if origin != nil {
			c.DistanceKm = geo.HaversineKm(*origin, geo.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude})
			if q.MaxKm > 0 && c.DistanceKm > q.MaxKm {
				continue
			}
		}
		out = append(out, c)
	}

	if origin != nil {
		sort.Slice(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	}
	return out
}

// Get returns a directory entry by ID.
func (d *Directory) Get(id string) (models.Clinic, bool) {
	for _, c := range d.clinics {
		if c.ID == id {
			return c, true
		}
	}
	return models.Clinic{}, false
}

func speaks(c models.Clinic, lang string) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
