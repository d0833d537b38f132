package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOrderIsFixed(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryVenues,
		CategoryCatering,
		CategoryMusic,
		CategoryFlowers,
		CategoryPhotography,
	}, CategoryOrder)
}

func TestEveryOrderedCategoryHasASpec(t *testing.T) {
	for _, cat := range CategoryOrder {
		spec, ok := SpecFor(cat)
		require.True(t, ok, "category %q", cat)
		assert.NotEmpty(t, spec.Label)
		assert.NotEmpty(t, spec.Singular)
		assert.NotEmpty(t, spec.QueryPhrase)
		assert.NotEmpty(t, spec.Intro)
		assert.Greater(t, spec.MaxResults, 0)
	}
}

func TestBudgetSharesLeaveHeadroom(t *testing.T) {
	sum := 0.0
	for _, cat := range CategoryOrder {
		spec, _ := SpecFor(cat)
		sum += spec.BudgetShare
	}
	assert.LessOrEqual(t, sum, 1.0)
	assert.InDelta(t, 0.91, sum, 1e-9)
}

func TestOnlyCateringIsPerPerson(t *testing.T) {
	for _, cat := range CategoryOrder {
		spec, _ := SpecFor(cat)
		assert.Equal(t, cat == CategoryCatering, spec.PerPerson, "category %q", cat)
	}
}

func TestUnknownCategoryIsRejected(t *testing.T) {
	assert.False(t, IsValidCategory("attire"))
	assert.False(t, IsValidCategory(""))
	assert.Equal(t, -1, CategoryIndex("attire"))

	_, ok := SpecFor("invitations")
	assert.False(t, ok)
}

func TestCategoryIndexMatchesOrder(t *testing.T) {
	for i, cat := range CategoryOrder {
		assert.Equal(t, i, CategoryIndex(cat))
	}
}

func TestCategoryLabelFallsBackToKey(t *testing.T) {
	assert.Equal(t, "Catering & Food", CategoryLabel(CategoryCatering))
	assert.Equal(t, "attire", CategoryLabel("attire"))
}
