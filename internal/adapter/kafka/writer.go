package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/fuelmon/fuelprice-exporter/internal/config"
	"github.com/fuelmon/fuelprice-exporter/internal/domain"
)

// Writer publishes price-update snapshots to a Kafka topic.
// It implements poller.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured price-update topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishStations serializes and publishes one message per station in a
// single WriteMessages call.
func (w *Writer) PublishStations(ctx context.Context, stations []domain.Station, fetchedAt time.Time) error {
	if len(stations) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(stations))
	for i := range stations {
		msg, err := serializeToMessage(stations[i], fetchedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Station into a Kafka message keyed by
// station ID, so a compacted topic keeps the latest snapshot per station.
func serializeToMessage(station domain.Station, fetchedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(station)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize station: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(station.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "brand", Value: []byte(station.Brand)},
			{Key: "fetched_at", Value: []byte(fetchedAt.Format(time.RFC3339))},
		},
	}, nil
}
