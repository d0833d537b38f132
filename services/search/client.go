package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"weddingplanner/models"
	"weddingplanner/services/catalog"

	"go.uber.org/zap"
)

const (
	defaultBaseURL       = "https://places.googleapis.com"
	placeholderImageBase = "https://picsum.photos"
	defaultTimeout       = 10 * time.Second
)

// ErrUnknownCategory is returned when a caller asks for a category outside
// the planning set. It signals a caller bug, unlike provider failures, which
// are recovered by the curated catalog.
var ErrUnknownCategory = errors.New("unknown planning category")

// Client searches the Google Places text-search endpoint for wedding vendors,
// one parameterized client for every category. The API key is injected at
// construction; an empty key means live search is off and the curated catalog
// serves every request.
type Client struct {
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	baseURL    string
}

// NewClient builds a search client. timeout bounds every provider call; a
// timed-out search falls back exactly like any other failure.
func NewClient(apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		baseURL:    defaultBaseURL,
	}
}

// BuildQuery combines the optional style, the category's query phrase, and
// the location into one free-text search query.
func BuildQuery(cat models.Category, location, style string) string {
	spec, ok := models.SpecFor(cat)
	if !ok {
		return ""
	}
	query := spec.QueryPhrase
	if style != "" {
		query = style + " " + query
	}
	if location != "" {
		query = query + " in " + location
	}
	return query
}

// Search returns ranked vendor options for cat. Provider failures, empty
// results, and a missing API key all converge to the curated catalog; the
// caller always receives a usable list for a known category.
func (c *Client) Search(ctx context.Context, cat models.Category, query string, maxResults int) ([]models.VendorOption, models.OptionSource, error) {
	spec, ok := models.SpecFor(cat)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	if maxResults <= 0 {
		maxResults = spec.MaxResults
	}

	if c.apiKey == "" {
		c.logger.Debug("places api key not configured, serving curated catalog",
			zap.String("category", string(cat)))
		return catalog.Options(cat), models.SourceCatalog, nil
	}

	c.logger.Debug("querying places",
		zap.String("category", string(cat)),
		zap.String("query", query),
		zap.Int("maxResults", maxResults))

	places, err := c.textSearch(ctx, query, maxResults, fieldMaskFor(cat))
	if err != nil {
		c.logger.Warn("places search failed, serving curated catalog",
			zap.String("category", string(cat)),
			zap.Error(err))
		return catalog.Options(cat), models.SourceCatalog, nil
	}
	if len(places) == 0 {
		// An empty live list is "no information", not "zero vendors exist".
		c.logger.Info("places search returned no results, serving curated catalog",
			zap.String("category", string(cat)),
			zap.String("query", query))
		return catalog.Options(cat), models.SourceCatalog, nil
	}

	c.logger.Info("places search succeeded",
		zap.String("category", string(cat)),
		zap.Int("results", len(places)))

	if len(places) > maxResults {
		places = places[:maxResults]
	}
	return c.mapPlaces(cat, spec, places), models.SourceLive, nil
}

type categoryOutcome struct {
	cat    models.Category
	result CategoryResult
}

// SearchAll issues one search per ordered category concurrently and joins the
// results before returning, so no caller observes partial category data. Each
// category resolves independently to live-or-fallback.
func (c *Client) SearchAll(ctx context.Context, location, style string) map[models.Category]CategoryResult {
	outcomes := make(chan categoryOutcome, len(models.CategoryOrder))
	var wg sync.WaitGroup

	for _, cat := range models.CategoryOrder {
		wg.Add(1)
		go func(cat models.Category) {
			defer wg.Done()
			options, source, err := c.Search(ctx, cat, BuildQuery(cat, location, style), 0)
			if err != nil {
				// Ordered categories are always known; fail closed anyway.
				options, source = catalog.Options(cat), models.SourceCatalog
			}
			outcomes <- categoryOutcome{cat: cat, result: CategoryResult{Options: options, Source: source}}
		}(cat)
	}

	wg.Wait()
	close(outcomes)

	results := make(map[models.Category]CategoryResult, len(models.CategoryOrder))
	for outcome := range outcomes {
		results[outcome.cat] = outcome.result
	}
	return results
}
