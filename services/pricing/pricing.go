// Package pricing synthesizes plausible vendor prices from a total budget
// when live search results publish none.
package pricing

import (
	"math"
	"math/rand"
	"time"

	"weddingplanner/models"
)

// priceGrid is the coarse rounding increment for synthesized prices.
const priceGrid = 50

// Synthesizer derives advisory prices from per-category budget shares with
// controlled jitter. The uniform sampler is injected so tests can pin it.
type Synthesizer struct {
	uniform func() float64
}

// NewSynthesizer returns a synthesizer with time-seeded jitter.
func NewSynthesizer() *Synthesizer {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Synthesizer{uniform: rng.Float64}
}

// NewSynthesizerWithUniform injects the uniform sampler (values in [0, 1)).
func NewSynthesizerWithUniform(uniform func() float64) *Synthesizer {
	return &Synthesizer{uniform: uniform}
}

// TargetFor returns the budget-share price target for cat: the category's
// share of the budget, divided by guest count for per-person categories.
// Zero when the budget is unknown or the category has no share.
func (s *Synthesizer) TargetFor(cat models.Category, budget float64, guestCount int) float64 {
	if budget <= 0 {
		return 0
	}
	spec, ok := models.SpecFor(cat)
	if !ok {
		return 0
	}
	target := budget * spec.BudgetShare
	if spec.PerPerson {
		if guestCount <= 0 {
			guestCount = models.DefaultGuestCount
		}
		target /= float64(guestCount)
	}
	return target
}

// Synthesize jitters target by ±20% and rounds to the nearest 50. The result
// is advisory only and intentionally varies per call.
func (s *Synthesizer) Synthesize(target float64) float64 {
	if target <= 0 {
		return 0
	}
	u := 0.8 + 0.4*s.uniform()
	return math.Round(target*u/priceGrid) * priceGrid
}

// Apply fills in synthesized prices for options that carry the zero-price
// sentinel. Options with real prices keep them, and nothing is synthesized
// when the budget is unknown (zero then means "display as unknown").
func (s *Synthesizer) Apply(options []models.VendorOption, cat models.Category, budget float64, guestCount int) {
	if budget <= 0 {
		return
	}
	target := s.TargetFor(cat, budget, guestCount)
	if target <= 0 {
		return
	}
	for i := range options {
		if options[i].Price == 0 {
			options[i].Price = s.Synthesize(target)
		}
	}
}
