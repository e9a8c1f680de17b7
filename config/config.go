package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTP          HTTPConfig
	Elasticsearch ElasticsearchConfig
	Cache         CacheConfig
	Ranking       RankingConfig
}

type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
}

type ElasticsearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
}

type CacheConfig struct {
	Enabled  bool
	RedisURL string
	TTL      time.Duration
}

// RankingConfig holds the raw boost weights and decay shape for the
// scoring pipeline. Values are validated again when the immutable
// domain.ScoringConfig is constructed at wiring time.
type RankingConfig struct {
	TagBoostWeight    float64
	FollowBoostWeight float64
	FreshnessHalfLife time.Duration
	FreshnessDecay    float64
	PopularityFactor  float64
}

func Load() (*Config, error) {
	ranking, err := loadRankingConfig()
	if err != nil {
		return nil, err
	}

	cacheTTL, err := getEnvDuration("FEED_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	redisURL := getEnvOrDefault("FEED_CACHE_REDIS_URL", "")

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:              getEnvOrDefault("HTTP_ADDR", ":9400"),
			ReadHeaderTimeout: 5 * time.Second,
		},
		Elasticsearch: ElasticsearchConfig{
			Addresses: strings.Split(getEnvOrDefault("ELASTICSEARCH_URL", "http://localhost:9200"), ","),
			Username:  getEnvOrDefault("ELASTICSEARCH_USER", ""),
			Password:  getEnvOrDefault("ELASTICSEARCH_PASSWORD", ""),
			Index:     getEnvOrDefault("ELASTICSEARCH_INDEX", "posts"),
		},
		Cache: CacheConfig{
			Enabled:  redisURL != "",
			RedisURL: redisURL,
			TTL:      cacheTTL,
		},
		Ranking: ranking,
	}

	slog.Info("Configuration loaded",
		"http_addr", cfg.HTTP.Addr,
		"elasticsearch_index", cfg.Elasticsearch.Index,
		"cache_enabled", cfg.Cache.Enabled,
		"freshness_half_life", cfg.Ranking.FreshnessHalfLife.String(),
	)

	return cfg, nil
}

// loadRankingConfig reads the boost weights from the environment. Malformed
// values fail the load; startup is the only place scoring configuration is
// allowed to fail.
func loadRankingConfig() (RankingConfig, error) {
	tagWeight, err := getEnvFloat("FEED_TAG_BOOST_WEIGHT", 2.0)
	if err != nil {
		return RankingConfig{}, err
	}
	followWeight, err := getEnvFloat("FEED_FOLLOW_BOOST_WEIGHT", 3.0)
	if err != nil {
		return RankingConfig{}, err
	}
	halfLife, err := getEnvDuration("FEED_FRESHNESS_HALF_LIFE", 168*time.Hour)
	if err != nil {
		return RankingConfig{}, err
	}
	decay, err := getEnvFloat("FEED_FRESHNESS_DECAY", 0.5)
	if err != nil {
		return RankingConfig{}, err
	}
	popularity, err := getEnvFloat("FEED_POPULARITY_FACTOR", 1.2)
	if err != nil {
		return RankingConfig{}, err
	}

	return RankingConfig{
		TagBoostWeight:    tagWeight,
		FollowBoostWeight: followWeight,
		FreshnessHalfLife: halfLife,
		FreshnessDecay:    decay,
		PopularityFactor:  popularity,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}
