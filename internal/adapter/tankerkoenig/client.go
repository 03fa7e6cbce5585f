package tankerkoenig

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

const userAgent = "fuelprice-exporter"

// Client queries the Tankerkönig list API for fuel stations around a center
// point. It binds the API key and search radius; the center is passed per
// call because it is only known after location resolution.
type Client struct {
	apiKey     string
	radiusKm   float64
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a Tankerkönig client. The radius must respect the API
// limit of 25 km; config validation enforces that before we get here.
func NewClient(apiKey string, radiusKm float64, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey:   apiKey,
		radiusKm: radiusKm,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://creativecommons.tankerkoenig.de/json/list.php",
		logger:  logger,
	}
}

// LoadPrices fetches all stations within the configured radius of center,
// with their current prices for every fuel grade.
func (c *Client) LoadPrices(ctx context.Context, center domain.Coordinate) ([]domain.Station, error) {
	params := url.Values{
		"type":   {"all"},
		"apikey": {c.apiKey},
		"lat":    {formatParam(center.Lat)},
		"lng":    {formatParam(center.Long)},
		"rad":    {formatParam(c.radiusKm)},
	}
	fullURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tankerkoenig request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tankerkoenig API error: status %d: %s", resp.StatusCode, body)
	}

	var apiResp response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode tankerkoenig response: %w", err)
	}

	if !apiResp.OK || apiResp.Stations == nil {
		msg := apiResp.Message
		if msg == "" {
			msg = "no error message provided"
		}
		return nil, fmt.Errorf("tankerkoenig API error: %s", msg)
	}

	stations := make([]domain.Station, len(apiResp.Stations))
	for i, s := range apiResp.Stations {
		stations[i] = mapStation(s)
	}

	c.logger.Debug("prices loaded", "stations", len(stations))
	return stations, nil
}

// mapStation converts an API station to the domain model. Fuel grades the
// station does not sell come back as JSON null and are skipped.
func mapStation(s station) domain.Station {
	prices := make([]domain.FuelPrice, 0, 3)
	for _, p := range []struct {
		fuelType domain.FuelType
		price    *float64
	}{
		{domain.FuelDiesel, s.Diesel},
		{domain.FuelE5, s.E5},
		{domain.FuelE10, s.E10},
	} {
		if p.price != nil {
			prices = append(prices, domain.FuelPrice{Type: p.fuelType, Price: *p.price})
		}
	}

	return domain.Station{
		ID:         s.ID,
		Name:       s.Name,
		Brand:      s.Brand,
		IsOpen:     s.IsOpen,
		DistanceKm: s.Dist,
		Coord:      domain.Coordinate{Lat: s.Lat, Long: s.Lng},
		Prices:     prices,
	}
}

func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Tankerkönig API response types.

type response struct {
	OK       bool      `json:"ok"`
	Stations []station `json:"stations"`
	Message  string    `json:"message"`
}

type station struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Brand  string   `json:"brand"`
	Lat    float64  `json:"lat"`
	Lng    float64  `json:"lng"`
	Dist   float64  `json:"dist"`
	Diesel *float64 `json:"diesel"`
	E5     *float64 `json:"e5"`
	E10    *float64 `json:"e10"`
	IsOpen bool     `json:"isOpen"`
}
