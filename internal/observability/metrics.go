package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// stationLabels identify a station across all per-station gauges.
var stationLabels = []string{"name", "brand", "id"}

// Metrics holds the Prometheus collectors for the price exporter. The
// namespace is configurable so several exporter instances can share a scrape
// target without colliding.
type Metrics struct {
	FuelPrice       *prometheus.GaugeVec // labels: name, brand, id, fuel_type
	StationOpen     *prometheus.GaugeVec
	StationDistance *prometheus.GaugeVec
	StationLat      *prometheus.GaugeVec
	StationLong     *prometheus.GaugeVec
	LastUpdate      prometheus.Gauge

	FetchesTotal  *prometheus.CounterVec // labels: outcome={success,error}
	FetchDuration prometheus.Histogram
	PollerRunning prometheus.Gauge
}

// NewMetrics creates and registers all exporter metrics with the default
// Prometheus registry.
func NewMetrics(namespace string) *Metrics {
	m := newMetrics(namespace)

	prometheus.MustRegister(
		m.FuelPrice,
		m.StationOpen,
		m.StationDistance,
		m.StationLat,
		m.StationLong,
		m.LastUpdate,
		m.FetchesTotal,
		m.FetchDuration,
		m.PollerRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests can
// construct as many instances as they like without "already registered"
// panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics("test")
}

func newMetrics(namespace string) *Metrics {
	return &Metrics{
		FuelPrice: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fuel_price",
			Help:      "Price of each fuel type in EUR per liter.",
		}, append(stationLabels, "fuel_type")),
		StationOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "is_open",
			Help:      "1 when the station is currently open, 0 otherwise.",
		}, stationLabels),
		StationDistance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "distance_km",
			Help:      "Distance from the search center in kilometers.",
		}, stationLabels),
		StationLat: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "location_lat",
			Help:      "Latitude of the station.",
		}, stationLabels),
		StationLong: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "location_long",
			Help:      "Longitude of the station.",
		}, stationLabels),
		LastUpdate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "update",
			Help:      "Unix timestamp of the last successful price update.",
		}),
		FetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetches_total",
			Help:      "Price fetch attempts by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a complete price fetch and gauge update.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		PollerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "poller_running",
			Help:      "1 when the update loop is active, 0 when shut down.",
		}),
	}
}
