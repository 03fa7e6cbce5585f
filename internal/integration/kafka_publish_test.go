//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kafkatc "github.com/testcontainers/testcontainers-go/modules/kafka"

	kafkaadapter "github.com/fuelmon/fuelprice-exporter/internal/adapter/kafka"
	"github.com/fuelmon/fuelprice-exporter/internal/config"
	"github.com/fuelmon/fuelprice-exporter/internal/domain"
)

const testTopic = "test-fuel-price-updates"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka launches a single-node Kafka container and returns its broker address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := kafkatc.Run(ctx, "confluentinc/confluent-local:7.5.0", kafkatc.WithClusterID("test-cluster"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestPublishStations verifies that a price snapshot round-trips through a
// real Kafka broker with keys, headers, and payload intact.
func TestPublishStations(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	cfg := &config.Config{
		KafkaBrokers: []string{broker},
		KafkaTopic:   testTopic,
	}

	writer := kafkaadapter.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	fetchedAt := time.Now().UTC().Truncate(time.Second)
	stations := []domain.Station{
		{
			ID:         "st-1",
			Name:       "Tankstelle Mitte",
			Brand:      "ARAL",
			IsOpen:     true,
			DistanceKm: 1.2,
			Coord:      domain.Coordinate{Lat: 52.51, Long: 13.39},
			Prices: []domain.FuelPrice{
				{Type: domain.FuelDiesel, Price: 1.659},
				{Type: domain.FuelE5, Price: 1.789},
			},
		},
		{
			ID:         "st-2",
			Name:       "Tankstelle Nord",
			Brand:      "JET",
			IsOpen:     false,
			DistanceKm: 1.9,
			Coord:      domain.Coordinate{Lat: 52.55, Long: 13.38},
			Prices: []domain.FuelPrice{
				{Type: domain.FuelE10, Price: 1.709},
			},
		},
	}

	require.NoError(t, writer.PublishStations(ctx, stations, fetchedAt))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	received := make(map[string]domain.Station, len(stations))
	headers := make(map[string]map[string]string, len(stations))
	for len(received) < len(stations) {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read from price-update topic")

		var st domain.Station
		require.NoError(t, json.Unmarshal(msg.Value, &st))
		received[string(msg.Key)] = st

		h := make(map[string]string, len(msg.Headers))
		for _, hdr := range msg.Headers {
			h[hdr.Key] = string(hdr.Value)
		}
		headers[string(msg.Key)] = h
	}

	for _, want := range stations {
		got, ok := received[want.ID]
		require.True(t, ok, "missing message for station %s", want.ID)
		assert.Equal(t, want, got)

		h := headers[want.ID]
		assert.Equal(t, want.Brand, h["brand"])
		assert.Equal(t, fetchedAt.Format(time.RFC3339), h["fetched_at"])
	}
}
