// Package geocode resolves street addresses to coordinates through the
// Google Geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// Client calls the Google Geocoding API.
type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type response struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address. ok=false means the API had no match
// (ZERO_RESULTS); transport failures and non-OK API statuses are errors.
func (c *Client) Geocode(ctx context.Context, address string) (lat, lng float64, ok bool, err error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return 0, 0, false, fmt.Errorf("build geocode request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, false, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, false, fmt.Errorf("geocode request: unexpected status %s", resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, false, fmt.Errorf("decode geocode response: %w", err)
	}

	switch body.Status {
	case "OK":
		if len(body.Results) == 0 {
			return 0, 0, false, nil
		}
		loc := body.Results[0].Geometry.Location
		return loc.Lat, loc.Lng, true, nil
	case "ZERO_RESULTS":
		return 0, 0, false, nil
	default:
		return 0, 0, false, fmt.Errorf("geocode API status %q", body.Status)
	}
}
