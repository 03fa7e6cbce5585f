// Package poller drives the periodic price update loop: fetch stations,
// refresh the per-station gauges, and optionally publish a snapshot.
package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/fuelmon/fuelprice-exporter/internal/domain"
	"github.com/fuelmon/fuelprice-exporter/internal/observability"
)

// PriceSource loads the current station prices around a center point.
type PriceSource interface {
	LoadPrices(ctx context.Context, center domain.Coordinate) ([]domain.Station, error)
}

// Publisher forwards a successful price snapshot to an external sink.
type Publisher interface {
	PublishStations(ctx context.Context, stations []domain.Station, fetchedAt time.Time) error
}

// Poller runs the update loop. The search center is fixed at construction
// time; location resolution has already happened by then.
type Poller struct {
	source    PriceSource
	publisher Publisher // nil disables publishing
	center    domain.Coordinate
	interval  time.Duration
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Poller. Pass a nil publisher to disable the snapshot sink
// and a nil clock to use real time.
func New(source PriceSource, publisher Publisher, center domain.Coordinate, interval time.Duration, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Poller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Poller{
		source:    source,
		publisher: publisher,
		center:    center,
		interval:  interval,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once at least one price update has succeeded.
func (p *Poller) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no successful price update yet")
	}
	return nil
}

// Run fetches prices immediately and then once per interval until the
// context is cancelled. Fetch failures are logged and counted; the loop
// keeps going and tries again on the next tick.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("poller started", "interval", p.interval, "center", p.center.String())
	p.metrics.PollerRunning.Set(1)
	defer p.metrics.PollerRunning.Set(0)

	p.update(ctx)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			p.update(ctx)
		}
	}
}

// update runs one fetch-and-publish cycle.
func (p *Poller) update(ctx context.Context) {
	start := p.clock.Now()

	stations, err := p.source.LoadPrices(ctx, p.center)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Error("price update failed", "error", err)
		p.metrics.FetchesTotal.WithLabelValues("error").Inc()
		return
	}

	p.setStationGauges(stations)
	p.metrics.LastUpdate.Set(float64(p.clock.Now().Unix()))
	p.metrics.FetchDuration.Observe(p.clock.Since(start).Seconds())
	p.metrics.FetchesTotal.WithLabelValues("success").Inc()
	p.ready.Store(true)

	if p.publisher != nil {
		if err := p.publisher.PublishStations(ctx, stations, p.clock.Now()); err != nil {
			// Publishing is best effort; the gauges already carry the update.
			p.logger.Warn("publish price snapshot failed", "error", err)
		}
	}

	p.logger.Info("price update done", "stations", len(stations))
}

func (p *Poller) setStationGauges(stations []domain.Station) {
	for _, st := range stations {
		open := 0.0
		if st.IsOpen {
			open = 1.0
		}
		p.metrics.StationOpen.WithLabelValues(st.Name, st.Brand, st.ID).Set(open)
		p.metrics.StationDistance.WithLabelValues(st.Name, st.Brand, st.ID).Set(st.DistanceKm)
		p.metrics.StationLat.WithLabelValues(st.Name, st.Brand, st.ID).Set(st.Coord.Lat)
		p.metrics.StationLong.WithLabelValues(st.Name, st.Brand, st.ID).Set(st.Coord.Long)

		for _, price := range st.Prices {
			p.metrics.FuelPrice.WithLabelValues(st.Name, st.Brand, st.ID, string(price.Type)).Set(price.Price)
		}
	}
}
