package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// maxRadiusKm is the largest search radius the Tankerkönig API permits.
const maxRadiusKm = 25

// minUpdateInterval is the shortest polling interval allowed by the
// Tankerkönig API terms of use.
const minUpdateInterval = 5 * time.Minute

// Config holds all service settings, populated from environment variables.
type Config struct {
	Location       string
	RadiusKm       float64
	APIKey         string
	UpdateInterval time.Duration

	HTTPAddr         string
	MetricsNamespace string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	NominatimTimeout    time.Duration
	TankerkoenigTimeout time.Duration

	// Optional Kafka sink for price-update snapshots.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	radius, err := parseRadius(envOrDefault("SEARCH_RADIUS_KM", "2"))
	if err != nil {
		return nil, err
	}

	updateInterval, err := parseUpdateInterval(envOrDefault("UPDATE_INTERVAL", "5m"))
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parsePositiveDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	nominatimTimeout, err := parsePositiveDuration("NOMINATIM_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	tankerkoenigTimeout, err := parsePositiveDuration("TANKERKOENIG_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	kafkaBrokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))
	kafkaEnabled := len(kafkaBrokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		Location:       os.Getenv("LOCATION"),
		RadiusKm:       radius,
		APIKey:         os.Getenv("TANKERKOENIG_API_KEY"),
		UpdateInterval: updateInterval,

		HTTPAddr:         envOrDefault("HTTP_ADDR", ":9501"),
		MetricsNamespace: envOrDefault("METRICS_NAMESPACE", "tanker_price"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		LogFormat:        envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:  shutdownTimeout,

		NominatimTimeout:    nominatimTimeout,
		TankerkoenigTimeout: tankerkoenigTimeout,

		KafkaEnabled: kafkaEnabled,
		KafkaBrokers: kafkaBrokers,
		KafkaTopic:   envOrDefault("KAFKA_TOPIC", "fuel-price-updates"),
	}

	if cfg.Location == "" {
		return nil, errors.New("LOCATION is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("TANKERKOENIG_API_KEY is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when the Kafka sink is enabled")
	}

	return cfg, nil
}

func parseRadius(s string) (float64, error) {
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("SEARCH_RADIUS_KM is not a valid number: %q", s)
	}
	if r <= 0 {
		return 0, fmt.Errorf("SEARCH_RADIUS_KM must be positive, got %v", r)
	}
	if r > maxRadiusKm {
		return 0, fmt.Errorf("SEARCH_RADIUS_KM must be at most %d (Tankerkönig API limit), got %v", maxRadiusKm, r)
	}
	return r, nil
}

func parseUpdateInterval(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("UPDATE_INTERVAL is not a valid duration: %q", s)
	}
	if d < minUpdateInterval {
		return 0, fmt.Errorf("UPDATE_INTERVAL must be at least %s to comply with the Tankerkönig API terms, got %s", minUpdateInterval, d)
	}
	return d, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBrokers(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
