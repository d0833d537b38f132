package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"weddingplanner/models"
)

// Wire types for the Google Places text-search endpoint
// (POST {base}/v1/places:searchText).

type textSearchRequest struct {
	TextQuery      string `json:"textQuery"`
	MaxResultCount int    `json:"maxResultCount"`
}

type textSearchResponse struct {
	Places []placeResult `json:"places"`
}

type placeResult struct {
	ID               string         `json:"id"`
	DisplayName      *localizedText `json:"displayName"`
	FormattedAddress string         `json:"formattedAddress"`
	EditorialSummary *localizedText `json:"editorialSummary"`
	Rating           float64        `json:"rating"`
	UserRatingCount  int            `json:"userRatingCount"`
	WebsiteURI       string         `json:"websiteUri"`
	Location         *placeLatLng   `json:"location"`
	Photos           []placePhoto   `json:"photos"`
}

type localizedText struct {
	Text string `json:"text"`
}

type placeLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type placePhoto struct {
	// Name is the full photo resource name ("places/.../photos/...").
	Name string `json:"name"`
}

const baseFieldMask = "places.id,places.displayName,places.formattedAddress," +
	"places.editorialSummary,places.photos,places.rating,places.userRatingCount,places.websiteUri"

// fieldMaskFor returns the response field selection for cat. Catering skips
// coordinates (caterers travel to the venue); every other category requests
// them for map display.
func fieldMaskFor(cat models.Category) string {
	if cat == models.CategoryCatering {
		return baseFieldMask
	}
	return baseFieldMask + ",places.location"
}

// textSearch performs a single text-search call. Any transport error,
// non-success status, or malformed payload is returned to the caller, which
// falls back to the curated catalog.
func (c *Client) textSearch(ctx context.Context, query string, maxResults int, fieldMask string) ([]placeResult, error) {
	body, err := json.Marshal(textSearchRequest{TextQuery: query, MaxResultCount: maxResults})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	endpoint := c.baseURL + "/v1/places:searchText"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("places request returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var data textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}
	return data.Places, nil
}

// mapPlaces converts provider records into vendor options. Live results carry
// the zero-price sentinel; prices are synthesized later when a budget is known.
func (c *Client) mapPlaces(cat models.Category, spec models.CategorySpec, places []placeResult) []models.VendorOption {
	options := make([]models.VendorOption, 0, len(places))
	for i, place := range places {
		name := fmt.Sprintf("%s %d", spec.Singular, i+1)
		if place.DisplayName != nil && place.DisplayName.Text != "" {
			name = place.DisplayName.Text
		}

		description := spec.GenericDescription
		if place.EditorialSummary != nil && place.EditorialSummary.Text != "" {
			description = place.EditorialSummary.Text
		} else if place.FormattedAddress != "" {
			description = place.FormattedAddress
		}

		details := make([]string, 0, 3)
		if place.Rating > 0 {
			details = append(details, fmt.Sprintf("%.1f★ rating", place.Rating))
		}
		if place.UserRatingCount > 0 {
			details = append(details, fmt.Sprintf("%d reviews", place.UserRatingCount))
		}
		if place.FormattedAddress != "" {
			details = append(details, place.FormattedAddress)
		}

		opt := models.VendorOption{
			ID:          fmt.Sprintf("%s-%s", cat, place.ID),
			Name:        name,
			Description: description,
			Price:       0,
			Details:     details,
			ImageURL:    c.imageURL(cat, i, place),
			URL:         place.WebsiteURI,
		}
		if place.Location != nil {
			opt.Coords = []float64{place.Location.Longitude, place.Location.Latitude}
		}
		options = append(options, opt)
	}
	return options
}

// imageURL resolves the first provider photo through the media endpoint, or
// falls back to a deterministic seeded placeholder so repeated renders without
// re-fetching stay stable.
func (c *Client) imageURL(cat models.Category, index int, place placeResult) string {
	if len(place.Photos) > 0 && place.Photos[0].Name != "" {
		return fmt.Sprintf("%s/v1/%s/media?maxHeightPx=300&maxWidthPx=400&key=%s",
			c.baseURL, place.Photos[0].Name, url.QueryEscape(c.apiKey))
	}
	return fmt.Sprintf("%s/seed/%s-%d/400/300", placeholderImageBase, cat, index)
}
