// Package catalog holds the curated fallback vendors served whenever live
// search is unavailable or returns nothing useful.
package catalog

import "weddingplanner/models"

// curated is keyed by category; entries are stable for the process lifetime
// so selections made against catalog ids always resolve to the same record.
var curated = map[models.Category][]models.VendorOption{
	models.CategoryVenues: {
		{
			ID:          "venue-1",
			Name:        "Château de Fleurs",
			Description: "Elegant French château with manicured gardens and a grand ballroom.",
			Price:       8500,
			ImageURL:    "https://picsum.photos/seed/chateau-wedding/400/300",
			Details:     []string{"Capacity: 150 guests", "Indoor & outdoor spaces", "On-site catering kitchen", "Free parking"},
		},
		{
			ID:          "venue-2",
			Name:        "The Rustic Barn",
			Description: "Charming converted barn surrounded by rolling countryside.",
			Price:       4200,
			ImageURL:    "https://picsum.photos/seed/barn-wedding/400/300",
			Details:     []string{"Capacity: 120 guests", "Outdoor ceremony area", "Vintage decor included", "Pet friendly"},
		},
		{
			ID:          "venue-3",
			Name:        "Skyline Terrace",
			Description: "Modern rooftop venue with panoramic city views.",
			Price:       6800,
			ImageURL:    "https://picsum.photos/seed/rooftop-venue/400/300",
			Details:     []string{"Capacity: 100 guests", "360° city views", "Built-in sound system", "Valet parking"},
		},
		{
			ID:          "venue-4",
			Name:        "Seaside Garden",
			Description: "Beachfront garden with ocean views and a sunset ceremony spot.",
			Price:       7200,
			ImageURL:    "https://picsum.photos/seed/beach-wedding/400/300",
			Details:     []string{"Capacity: 80 guests", "Beach ceremony", "Tiki bar available", "Accommodation nearby"},
		},
	},
	models.CategoryCatering: {
		{
			ID:          "catering-1",
			Name:        "Fine Dining Experience",
			Description: "Elegant multi-course sit-down dinner with wine pairing.",
			Price:       120,
			ImageURL:    "https://picsum.photos/seed/fine-dining/400/300",
			Details:     []string{"5-course meal", "Wine pairing included", "Dietary accommodations", "Price per person"},
		},
		{
			ID:          "catering-2",
			Name:        "Rustic Feast Buffet",
			Description: "Farm-to-table buffet with seasonal local ingredients.",
			Price:       75,
			ImageURL:    "https://picsum.photos/seed/buffet-food/400/300",
			Details:     []string{"Unlimited buffet", "Local sourcing", "Live cooking stations", "Price per person"},
		},
		{
			ID:          "catering-3",
			Name:        "Food Truck Festival",
			Description: "Curated selection of gourmet food trucks for a casual vibe.",
			Price:       55,
			ImageURL:    "https://picsum.photos/seed/food-truck/400/300",
			Details:     []string{"3 food trucks", "Diverse cuisines", "Interactive & fun", "Price per person"},
		},
		{
			ID:          "catering-4",
			Name:        "Mediterranean Mezze",
			Description: "Family-style Mediterranean sharing platters with fresh flavors.",
			Price:       85,
			ImageURL:    "https://picsum.photos/seed/mediterranean-food/400/300",
			Details:     []string{"Sharing platters", "Mediterranean cuisine", "Vegetarian friendly", "Price per person"},
		},
	},
	models.CategoryMusic: {
		{
			ID:          "music-1",
			Name:        "Live Jazz Band",
			Description: "Sophisticated 5-piece jazz ensemble for an elegant atmosphere.",
			Price:       3500,
			ImageURL:    "https://picsum.photos/seed/jazz-band/400/300",
			Details:     []string{"5-piece band", "4 hours performance", "Cocktail & dinner sets", "Song requests welcome"},
		},
		{
			ID:          "music-2",
			Name:        "DJ & Light Show",
			Description: "Professional DJ with full sound system and dance floor lighting.",
			Price:       2000,
			ImageURL:    "https://picsum.photos/seed/dj-party/400/300",
			Details:     []string{"Professional DJ", "LED light show", "6 hours", "Custom playlist"},
		},
		{
			ID:          "music-3",
			Name:        "String Quartet",
			Description: "Classical string quartet for a timeless, romantic feel.",
			Price:       2800,
			ImageURL:    "https://picsum.photos/seed/string-quartet/400/300",
			Details:     []string{"4 musicians", "3 hours performance", "Ceremony & reception", "Classical & modern"},
		},
		{
			ID:          "music-4",
			Name:        "Acoustic Duo",
			Description: "Intimate acoustic guitar and vocals for a warm, personal touch.",
			Price:       1500,
			ImageURL:    "https://picsum.photos/seed/acoustic-guitar/400/300",
			Details:     []string{"Guitar & vocals", "4 hours", "Indoor/outdoor", "Custom song learning"},
		},
	},
	models.CategoryFlowers: {
		{
			ID:          "flowers-1",
			Name:        "Romantic Garden",
			Description: "Lush roses, peonies, and greenery for a classic romantic look.",
			Price:       3200,
			ImageURL:    "https://picsum.photos/seed/roses-bouquet/400/300",
			Details:     []string{"Bridal bouquet", "6 table centerpieces", "Ceremony arch flowers", "Boutonnières included"},
		},
		{
			ID:          "flowers-2",
			Name:        "Wildflower Meadow",
			Description: "Rustic wildflower arrangements with a natural, effortless feel.",
			Price:       1800,
			ImageURL:    "https://picsum.photos/seed/wildflowers/400/300",
			Details:     []string{"Bridal bouquet", "Mason jar centerpieces", "Loose petal aisle", "Seasonal flowers"},
		},
		{
			ID:          "flowers-3",
			Name:        "Modern Minimalist",
			Description: "Clean lines with white orchids, calla lilies, and geometric vases.",
			Price:       2500,
			ImageURL:    "https://picsum.photos/seed/white-orchid/400/300",
			Details:     []string{"Bridal bouquet", "Geometric centerpieces", "Aisle markers", "Minimalist palette"},
		},
		{
			ID:          "flowers-4",
			Name:        "Tropical Paradise",
			Description: "Bold tropical blooms with exotic foliage for a vibrant celebration.",
			Price:       2800,
			ImageURL:    "https://picsum.photos/seed/tropical-flowers/400/300",
			Details:     []string{"Bridal bouquet", "Tropical centerpieces", "Statement ceremony arch", "Colorful palette"},
		},
	},
	models.CategoryPhotography: {
		{
			ID:          "photo-1",
			Name:        "Documentary Style",
			Description: "Candid, natural moments captured as they unfold.",
			Price:       3500,
			ImageURL:    "https://picsum.photos/seed/candid-wedding/400/300",
			Details:     []string{"8 hours coverage", "500+ edited photos", "Online gallery", "Engagement shoot included"},
		},
		{
			ID:          "photo-2",
			Name:        "Classic Portrait",
			Description: "Timeless posed portraits with beautiful lighting and composition.",
			Price:       2800,
			ImageURL:    "https://picsum.photos/seed/portrait-photo/400/300",
			Details:     []string{"6 hours coverage", "300+ edited photos", "Printed album", "Family portraits"},
		},
		{
			ID:          "photo-3",
			Name:        "Artistic & Editorial",
			Description: "Magazine-quality editorial shots with creative direction.",
			Price:       4500,
			ImageURL:    "https://picsum.photos/seed/editorial-photo/400/300",
			Details:     []string{"10 hours coverage", "700+ edited photos", "Second photographer", "Drone shots included"},
		},
		{
			ID:          "photo-4",
			Name:        "Photo & Video Bundle",
			Description: "Complete coverage with both photography and cinematic videography.",
			Price:       5500,
			ImageURL:    "https://picsum.photos/seed/photo-video/400/300",
			Details:     []string{"Full day coverage", "Photos + highlight reel", "2 photographers + videographer", "4K video"},
		},
	},
}

// Options returns the curated vendors for cat. The returned slice is a copy;
// callers may mutate it (e.g. synthesize prices) without touching the catalog.
func Options(cat models.Category) []models.VendorOption {
	src, ok := curated[cat]
	if !ok {
		return nil
	}
	out := make([]models.VendorOption, len(src))
	copy(out, src)
	return out
}

// Has reports whether cat has curated vendors.
func Has(cat models.Category) bool {
	_, ok := curated[cat]
	return ok
}

// Lookup resolves a vendor by id across all categories. The summary view
// holds only {id, name, price} selections and uses this to recover the full
// record (image, details) for display.
func Lookup(id string) (models.VendorOption, bool) {
	for _, options := range curated {
		for _, opt := range options {
			if opt.ID == id {
				return opt, true
			}
		}
	}
	return models.VendorOption{}, false
}
