package models

import "fmt"

// Category identifies a wedding planning category. The category order is
// fixed and defines the step sequence of a planning session.
type Category string

const (
	CategoryVenues      Category = "venues"
	CategoryCatering    Category = "catering"
	CategoryMusic       Category = "music"
	CategoryFlowers     Category = "flowers"
	CategoryPhotography Category = "photography"
)

// CategoryOrder is the fixed step sequence of a planning session.
var CategoryOrder = []Category{
	CategoryVenues,
	CategoryCatering,
	CategoryMusic,
	CategoryFlowers,
	CategoryPhotography,
}

// CategorySpec holds the fixed configuration for one category.
type CategorySpec struct {
	Label string
	// Singular is the display-name fallback for unnamed live results
	// ("Venue 1", "Caterer 2", ...).
	Singular string
	// QueryPhrase is the search phrase combined with location and style.
	QueryPhrase string
	// GenericDescription is the last-resort description for live results.
	GenericDescription string
	// MaxResults is the default vendor count requested from live search.
	MaxResults int
	// BudgetShare is this category's share of the total budget, used to
	// synthesize prices for live vendors that publish none.
	BudgetShare float64
	// PerPerson marks categories whose unit price multiplies by guest count.
	PerPerson bool
	// Intro is the presentation copy shown when the category opens.
	Intro string
}

var categorySpecs = map[Category]CategorySpec{
	CategoryVenues: {
		Label:              "Venues",
		Singular:           "Venue",
		QueryPhrase:        "wedding venue",
		GenericDescription: "Wedding venue",
		MaxResults:         4,
		BudgetShare:        0.40,
		Intro: "Now for the most exciting part — choosing where your love story will unfold! " +
			"I've curated venues that match your style. Take your time browsing — the venue sets the tone for everything else.",
	},
	CategoryCatering: {
		Label:              "Catering & Food",
		Singular:           "Caterer",
		QueryPhrase:        "wedding caterer",
		GenericDescription: "Wedding catering service",
		MaxResults:         6,
		BudgetShare:        0.25,
		PerPerson:          true,
		Intro: "With your venue locked in, let's talk about the food — because great food makes great memories! " +
			"Based on your venue choice, here are catering styles that would work beautifully.",
	},
	CategoryMusic: {
		Label:              "Music & Entertainment",
		Singular:           "Music",
		QueryPhrase:        "wedding DJ or live band",
		GenericDescription: "Wedding music & entertainment",
		MaxResults:         4,
		BudgetShare:        0.10,
		Intro: "Time to set the soundtrack for your celebration! " +
			"Music creates the atmosphere — from the ceremony entrance to the last dance. Here are options that match your vibe.",
	},
	CategoryFlowers: {
		Label:              "Flowers & Decoration",
		Singular:           "Florist",
		QueryPhrase:        "wedding florist",
		GenericDescription: "Wedding flowers & decoration",
		MaxResults:         4,
		BudgetShare:        0.06,
		Intro: "Now let's add some natural beauty! Flowers and decoration bring your theme to life. " +
			"I've picked arrangements that complement your venue and style perfectly.",
	},
	CategoryPhotography: {
		Label:              "Photography",
		Singular:           "Photographer",
		QueryPhrase:        "wedding photographer",
		GenericDescription: "Wedding photography",
		MaxResults:         6,
		BudgetShare:        0.10,
		Intro: "These moments deserve to be captured forever! " +
			"Let's find the right photography style to tell your story. Each photographer brings a unique artistic eye.",
	},
}

func init() {
	// categorySpecs must cover the category order exactly, and the budget
	// shares must leave headroom for unallocated spend. Checked here so a
	// bad table fails at startup rather than at lookup time.
	if len(categorySpecs) != len(CategoryOrder) {
		panic(fmt.Sprintf("category specs cover %d categories, order lists %d", len(categorySpecs), len(CategoryOrder)))
	}
	shareSum := 0.0
	for _, cat := range CategoryOrder {
		spec, ok := categorySpecs[cat]
		if !ok {
			panic(fmt.Sprintf("category %q has no spec entry", cat))
		}
		if spec.MaxResults <= 0 {
			panic(fmt.Sprintf("category %q has non-positive max results", cat))
		}
		shareSum += spec.BudgetShare
	}
	if shareSum > 1.0 {
		panic(fmt.Sprintf("category budget shares sum to %.2f, exceeding the total budget", shareSum))
	}
}

// IsValidCategory reports whether cat is one of the planning categories.
func IsValidCategory(cat Category) bool {
	_, ok := categorySpecs[cat]
	return ok
}

// SpecFor returns the fixed configuration for cat.
func SpecFor(cat Category) (CategorySpec, bool) {
	spec, ok := categorySpecs[cat]
	return spec, ok
}

// CategoryIndex returns cat's position in the step sequence, or -1.
func CategoryIndex(cat Category) int {
	for i, c := range CategoryOrder {
		if c == cat {
			return i
		}
	}
	return -1
}

// CategoryLabel returns the display label for cat, falling back to the raw key.
func CategoryLabel(cat Category) string {
	if spec, ok := categorySpecs[cat]; ok {
		return spec.Label
	}
	return string(cat)
}
