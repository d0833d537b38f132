package models

// VendorOption is one selectable vendor within a category.
type VendorOption struct {
	// ID is unique within its category. Live results are prefixed with the
	// category key so selections keyed only by id cannot collide across
	// categories.
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	// Price 0 means the vendor publishes no price. Zero prices are eligible
	// for synthesis and must never render as currency directly.
	Price    float64  `json:"price"`
	Details  []string `json:"details"`
	ImageURL string   `json:"imageUrl"`
	// Coords is [longitude, latitude] when the search provider supplied one.
	Coords []float64 `json:"coords,omitempty"`
	URL    string    `json:"url,omitempty"`
}

// Selection is a chosen vendor bound to a category. At most one selection
// exists per category; selecting again replaces it.
type Selection struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
