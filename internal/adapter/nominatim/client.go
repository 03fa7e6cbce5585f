package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fuelmon/fuelprice-exporter/internal/domain"
)

// userAgent identifies this exporter to the Nominatim usage policy.
const userAgent = "fuelprice-exporter"

// Client implements domain.Geocoder using the OSM Nominatim search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a Nominatim geocoding client.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://nominatim.openstreetmap.org",
		logger:  logger,
	}
}

// Search resolves a free-text place description to a coordinate. Only the
// first result of the response array is used; an empty array means the
// place is unknown to Nominatim and surfaces as domain.ErrUnresolvable.
func (c *Client) Search(ctx context.Context, query string) (domain.Coordinate, error) {
	params := url.Values{
		"format": {"json"},
		"q":      {query},
	}
	fullURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("nominatim request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.Coordinate{}, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.Coordinate{}, fmt.Errorf("decode nominatim response: %w", err)
	}

	if len(places) == 0 {
		return domain.Coordinate{}, fmt.Errorf("%w: %q", domain.ErrUnresolvable, query)
	}

	first := places[0]
	c.logger.Debug("nominatim search hit",
		"query", query,
		"results", len(places),
		"display_name", first.DisplayName,
	)

	// Nominatim serializes coordinates as strings, not numbers.
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return domain.Coordinate{}, &domain.ConversionError{Field: "lat", Value: first.Lat, Err: err}
	}
	long, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return domain.Coordinate{}, &domain.ConversionError{Field: "lon", Value: first.Lon, Err: err}
	}

	return domain.Coordinate{Lat: lat, Long: long}, nil
}

// Nominatim API response element.

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
