// Command exporter serves fuel prices around a configured location as
// Prometheus metrics. The location may be given as a coordinate in decimal
// or degree/minute/second notation, or as a free-text place name that is
// resolved through Nominatim once at startup.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/fuelmon/fuelprice-exporter/internal/adapter/http"
	kafkaadapter "github.com/fuelmon/fuelprice-exporter/internal/adapter/kafka"
	"github.com/fuelmon/fuelprice-exporter/internal/adapter/nominatim"
	"github.com/fuelmon/fuelprice-exporter/internal/adapter/tankerkoenig"
	"github.com/fuelmon/fuelprice-exporter/internal/config"
	"github.com/fuelmon/fuelprice-exporter/internal/domain"
	"github.com/fuelmon/fuelprice-exporter/internal/observability"
	"github.com/fuelmon/fuelprice-exporter/internal/poller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Resolve the configured location before anything else starts; a
	// location we cannot resolve is fatal.
	loc, err := domain.ParseLocation(cfg.Location)
	if err != nil {
		logger.Error("invalid location", "location", cfg.Location, "error", err)
		os.Exit(1)
	}

	geocoder := nominatim.NewClient(cfg.NominatimTimeout, logger)
	center, err := domain.ResolveCoordinates(ctx, loc, geocoder)
	if err != nil {
		logger.Error("failed to resolve location", "location", loc.String(), "error", err)
		os.Exit(1)
	}
	logger.Info("location resolved", "location", loc.String(), "coordinates", center.String())

	prices := tankerkoenig.NewClient(cfg.APIKey, cfg.RadiusKm, cfg.TankerkoenigTimeout, logger)

	var publisher poller.Publisher
	var kafkaWriter *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		kafkaWriter = kafkaadapter.NewWriter(cfg, logger)
		publisher = kafkaWriter
		logger.Info("kafka price-update sink enabled", "topic", cfg.KafkaTopic)
	}

	p := poller.New(prices, publisher, center, cfg.UpdateInterval, nil, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start price update loop.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("poller error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
