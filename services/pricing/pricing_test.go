package pricing

import (
	"math"
	"math/rand"
	"testing"

	"weddingplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetForBudgetShares(t *testing.T) {
	s := NewSynthesizerWithUniform(func() float64 { return 0.5 })

	assert.Equal(t, 12000.0, s.TargetFor(models.CategoryVenues, 30000, 100))
	assert.Equal(t, 75.0, s.TargetFor(models.CategoryCatering, 30000, 100))
	assert.Equal(t, 3000.0, s.TargetFor(models.CategoryMusic, 30000, 100))

	// Per-person falls back to the default guest count.
	assert.Equal(t, 75.0, s.TargetFor(models.CategoryCatering, 30000, 0))

	assert.Equal(t, 0.0, s.TargetFor(models.CategoryVenues, 0, 100))
	assert.Equal(t, 0.0, s.TargetFor("attire", 30000, 100))
}

func TestSynthesizeStaysOnGridWithinBand(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewSynthesizerWithUniform(rng.Float64)

	const target = 12000.0
	for i := 0; i < 500; i++ {
		price := s.Synthesize(target)
		assert.Equal(t, 0.0, math.Mod(price, 50), "price %.2f not on the 50 grid", price)
		assert.GreaterOrEqual(t, price, 9600.0)
		assert.LessOrEqual(t, price, 14400.0)
	}
}

func TestSynthesizeBandEdges(t *testing.T) {
	low := NewSynthesizerWithUniform(func() float64 { return 0 })
	assert.Equal(t, 9600.0, low.Synthesize(12000))

	mid := NewSynthesizerWithUniform(func() float64 { return 0.5 })
	assert.Equal(t, 12000.0, mid.Synthesize(12000))

	high := NewSynthesizerWithUniform(func() float64 { return 0.999999 })
	assert.InDelta(t, 14400.0, high.Synthesize(12000), 50)
}

func TestSynthesizeZeroTarget(t *testing.T) {
	s := NewSynthesizerWithUniform(func() float64 { return 0.5 })
	assert.Equal(t, 0.0, s.Synthesize(0))
	assert.Equal(t, 0.0, s.Synthesize(-100))
}

func TestApplyFillsOnlyZeroPrices(t *testing.T) {
	s := NewSynthesizerWithUniform(func() float64 { return 0.5 })
	options := []models.VendorOption{
		{ID: "venues-a", Price: 0},
		{ID: "venues-b", Price: 9999},
	}

	s.Apply(options, models.CategoryVenues, 30000, 100)

	// u = 0.5 means no jitter: target 12000 lands exactly on the grid.
	assert.Equal(t, 12000.0, options[0].Price)
	assert.Equal(t, 9999.0, options[1].Price)
}

func TestApplySkipsWhenBudgetUnknown(t *testing.T) {
	s := NewSynthesizerWithUniform(func() float64 { return 0.5 })
	options := []models.VendorOption{{ID: "venues-a", Price: 0}}

	s.Apply(options, models.CategoryVenues, 0, 100)

	require.Equal(t, 0.0, options[0].Price, "zero price stays the unknown sentinel")
}

func TestApplyPerPersonTarget(t *testing.T) {
	s := NewSynthesizerWithUniform(func() float64 { return 0.5 })
	options := []models.VendorOption{{ID: "catering-a", Price: 0}}

	s.Apply(options, models.CategoryCatering, 30000, 100)

	// Target 30000 * 0.25 / 100 = 75; the grid rounds 1.5 units up to 100.
	assert.Equal(t, 100.0, options[0].Price)
}
