package search

import (
	"context"

	"weddingplanner/models"
)

// CategoryResult is the joined outcome of one category's search.
type CategoryResult struct {
	Options []models.VendorOption
	Source  models.OptionSource
}

// VendorSearcher finds vendor options for planning categories. Implementations
// must always return a usable list for known categories: provider failures and
// empty live results converge to the curated catalog, never to an error.
type VendorSearcher interface {
	// Search returns ranked options for cat. maxResults <= 0 uses the
	// category default. The only error is an unknown category.
	Search(ctx context.Context, cat models.Category, query string, maxResults int) ([]models.VendorOption, models.OptionSource, error)

	// SearchAll fans out one search per ordered category and joins the
	// results. A category's failure never blocks another's search.
	SearchAll(ctx context.Context, location, style string) map[models.Category]CategoryResult
}
