// Package nominatim implements the geocoding facade against the Nominatim
// HTTP API. Nominatim's usage policy requires an identifying User-Agent and
// modest request rates; the client sends the configured agent on every call.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	"github.com/tripflow/tripflow_backend/internal/core/domain"
	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
)

// searchLimit caps the number of candidates returned per search.
const searchLimit = 5

// Client calls the Nominatim search and reverse endpoints.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a client for the Nominatim instance at baseURL.
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Ensure Client implements portssvc.GeocoderSvcFacade
var _ portssvc.GeocoderSvcFacade = (*Client)(nil)

// place is the wire shape of a Nominatim result. Coordinates arrive as
// strings.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (p place) toDomain() (domain.GeoPlace, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return domain.GeoPlace{}, fmt.Errorf("failed to parse latitude %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return domain.GeoPlace{}, fmt.Errorf("failed to parse longitude %q: %w", p.Lon, err)
	}
	return domain.GeoPlace{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: p.DisplayName,
	}, nil
}

// Search returns up to five candidates for the free-text query, in
// Nominatim's relevance order.
func (c *Client) Search(ctx context.Context, query string) ([]domain.GeoPlace, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(searchLimit))
	params.Set("addressdetails", "1")

	var results []place
	if err := c.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}

	places := make([]domain.GeoPlace, 0, len(results))
	for _, p := range results {
		gp, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		places = append(places, gp)
	}
	return places, nil
}

// Reverse resolves coordinates to the nearest known place.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*domain.GeoPlace, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var result struct {
		place
		Error string `json:"error"`
	}
	if err := c.get(ctx, "/reverse", params, &result); err != nil {
		return nil, err
	}
	// Nominatim reports "Unable to geocode" as a 200 with an error field.
	if result.Error != "" {
		return nil, fmt.Errorf("no place at %f,%f: %w", lat, lon, apperrors.ErrNotFound)
	}

	gp, err := result.toDomain()
	if err != nil {
		return nil, err
	}
	return &gp, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build nominatim request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nominatim returned status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	return nil
}
