package resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanashahul/GamiSMS-sub000/internal/geo"
	"github.com/sanashahul/GamiSMS-sub000/internal/models"
)

func sampleDirectory() *Directory {
	return NewSampleDirectory(geo.NewStaticGeocoder(SampleZipTable()))
}

func TestFindFiltersByArea(t *testing.T) {
	d := sampleDirectory()

	for _, c := range d.Find(context.Background(), Query{Area: models.AreaHousing}) {
		assert.True(t, c.ServesArea(models.AreaHousing), c.ID)
	}
	assert.NotEmpty(t, d.Find(context.Background(), Query{Area: models.AreaHealthcare}))
}

func TestFindWithoutOriginKeepsBundledOrderAndNoDistance(t *testing.T) {
	d := sampleDirectory()

	got := d.Find(context.Background(), Query{})
	require.Equal(t, len(SampleClinics()), len(got))
	for i, c := range got {
		assert.Equal(t, SampleClinics()[i].ID, c.ID)
		assert.Zero(t, c.DistanceKm)
	}
}

func TestFindAnnotatesAndSortsByDistance(t *testing.T) {
	d := sampleDirectory()
	origin := geo.Coordinates{Latitude: 40.0076, Longitude: -83.0092} // at the free clinic

	got := d.Find(context.Background(), Query{Area: models.AreaHealthcare, Origin: &origin})
	require.NotEmpty(t, got)
	assert.Equal(t, "columbus-free-clinic", got[0].ID)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].DistanceKm, got[i].DistanceKm)
	}
}

func TestFindResolvesZipThroughGeocoder(t *testing.T) {
	d := sampleDirectory()

	got := d.Find(context.Background(), Query{Zip: "43222"})
	require.NotEmpty(t, got)
	assert.Greater(t, got[0].DistanceKm, 0.0)
	assert.Equal(t, "lower-lights", got[0].ID) // the 43222 entry itself
}

func TestFindUnknownZipDegradesToUnsortedList(t *testing.T) {
	d := sampleDirectory()

	got := d.Find(context.Background(), Query{Zip: "99999"})
	require.Equal(t, len(SampleClinics()), len(got))
	for _, c := range got {
		assert.Zero(t, c.DistanceKm)
	}
}

func TestFindAppliesRadiusCap(t *testing.T) {
	d := sampleDirectory()
	origin := geo.Coordinates{Latitude: 40.0076, Longitude: -83.0092}

	all := d.Find(context.Background(), Query{Origin: &origin})
	capped := d.Find(context.Background(), Query{Origin: &origin, MaxKm: 5})
	assert.Less(t, len(capped), len(all))
	for _, c := range capped {
		assert.LessOrEqual(t, c.DistanceKm, 5.0)
	}
}

func TestFindFiltersByLanguage(t *testing.T) {
	d := sampleDirectory()

	got := d.Find(context.Background(), Query{Language: "so"})
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.Contains(t, c.Languages, "so")
	}
}

func TestGetByID(t *testing.T) {
	d := sampleDirectory()

	c, found := d.Get("heart-of-ohio")
	require.True(t, found)
	assert.Equal(t, "Heart of Ohio Family Health", c.Name)

	_, found = d.Get("no-such-entry")
	assert.False(t, found)
}

func TestDistanceAnnotationIsTransient(t *testing.T) {
	d := sampleDirectory()
	origin := geo.Coordinates{Latitude: 40.0, Longitude: -83.0}

	_ = d.Find(context.Background(), Query{Origin: &origin})
	// A second query without an origin must not see stale distances.
	for _, c := range d.Find(context.Background(), Query{}) {
		assert.Zero(t, c.DistanceKm)
	}
}
