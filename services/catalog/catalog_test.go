package catalog

import (
	"testing"

	"weddingplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCategoryHasCuratedOptions(t *testing.T) {
	for _, cat := range models.CategoryOrder {
		require.True(t, Has(cat), "category %q", cat)
		options := Options(cat)
		require.NotEmpty(t, options, "category %q", cat)
		for _, opt := range options {
			assert.NotEmpty(t, opt.ID)
			assert.NotEmpty(t, opt.Name)
			assert.Greater(t, opt.Price, 0.0, "curated options carry real prices")
			assert.NotEmpty(t, opt.ImageURL)
		}
	}
}

func TestVenuePricesMatchCuratedData(t *testing.T) {
	venues := Options(models.CategoryVenues)
	require.Len(t, venues, 4)

	prices := make([]float64, len(venues))
	for i, v := range venues {
		prices[i] = v.Price
	}
	assert.Equal(t, []float64{8500, 4200, 6800, 7200}, prices)
}

func TestOptionsReturnsACopy(t *testing.T) {
	first := Options(models.CategoryMusic)
	first[0].Name = "mutated"
	first[0].Price = -1

	again := Options(models.CategoryMusic)
	assert.Equal(t, "Live Jazz Band", again[0].Name)
	assert.Equal(t, 3500.0, again[0].Price)
}

func TestLookupResolvesStableRecords(t *testing.T) {
	opt, ok := Lookup("venue-2")
	require.True(t, ok)
	assert.Equal(t, "The Rustic Barn", opt.Name)
	assert.Equal(t, 4200.0, opt.Price)

	// Same id resolves the same record on every call.
	again, ok := Lookup("venue-2")
	require.True(t, ok)
	assert.Equal(t, opt, again)

	_, ok = Lookup("venue-999")
	assert.False(t, ok)
}

func TestUnknownCategoryHasNoOptions(t *testing.T) {
	assert.False(t, Has("attire"))
	assert.Nil(t, Options("attire"))
}
