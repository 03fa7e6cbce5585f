package tankerkoenig

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fuelmon/fuelprice-exporter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "00000000-0000-0000-0000-000000000001"

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     testAPIKey,
		radiusKm:   2,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_LoadPrices_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("type"))
		assert.Equal(t, testAPIKey, r.URL.Query().Get("apikey"))
		assert.Equal(t, "52.5", r.URL.Query().Get("lat"))
		assert.Equal(t, "13.4", r.URL.Query().Get("lng"))
		assert.Equal(t, "2", r.URL.Query().Get("rad"))

		_, err := w.Write([]byte(`{
			"ok": true,
			"stations": [
				{
					"id": "st-1",
					"name": "Tankstelle Mitte",
					"brand": "ARAL",
					"lat": 52.51,
					"lng": 13.39,
					"dist": 1.2,
					"diesel": 1.659,
					"e5": 1.789,
					"e10": null,
					"isOpen": true
				}
			]
		}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	stations, err := c.LoadPrices(context.Background(), domain.Coordinate{Lat: 52.5, Long: 13.4})
	require.NoError(t, err)
	require.Len(t, stations, 1)

	st := stations[0]
	assert.Equal(t, "st-1", st.ID)
	assert.Equal(t, "Tankstelle Mitte", st.Name)
	assert.Equal(t, "ARAL", st.Brand)
	assert.True(t, st.IsOpen)
	assert.Equal(t, 1.2, st.DistanceKm)
	assert.Equal(t, domain.Coordinate{Lat: 52.51, Long: 13.39}, st.Coord)

	// e10 is null, so only diesel and e5 survive.
	require.Len(t, st.Prices, 2)
	assert.Equal(t, domain.FuelPrice{Type: domain.FuelDiesel, Price: 1.659}, st.Prices[0])
	assert.Equal(t, domain.FuelPrice{Type: domain.FuelE5, Price: 1.789}, st.Prices[1])
}

func TestClient_LoadPrices_APIReportsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte(`{"ok": false, "message": "apikey invalid"}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.LoadPrices(context.Background(), domain.Coordinate{Lat: 52.5, Long: 13.4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apikey invalid")
}

func TestClient_LoadPrices_OKWithoutStations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte(`{"ok": true}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.LoadPrices(context.Background(), domain.Coordinate{Lat: 52.5, Long: 13.4})
	require.Error(t, err)
}

func TestClient_LoadPrices_EmptyStationList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte(`{"ok": true, "stations": []}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	stations, err := c.LoadPrices(context.Background(), domain.Coordinate{Lat: 52.5, Long: 13.4})
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestClient_LoadPrices_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.LoadPrices(context.Background(), domain.Coordinate{Lat: 52.5, Long: 13.4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
