package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from, in rising priority: defaults, the
// YAML file named by CONFIG_FILE, and environment variables.
func LoadConfig() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

// Load loads configuration with an explicit YAML file. An empty path skips
// the file layer.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.File = path
	}

	loadEnvironmentVariables(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// loadEnvironmentVariables overlays environment variables on the configuration
func loadEnvironmentVariables(cfg *Config) {
	setString(&cfg.Environment, "ENVIRONMENT")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	// Server
	setString(&cfg.Server.Address, "SERVER_ADDRESS")
	setDuration(&cfg.Server.ShutdownTimeout, "SHUTDOWN_TIMEOUT")
	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		cfg.Server.AllowedOrigins = parseList(val)
	}

	// Database
	setString(&cfg.Database.Driver, "STORE_DRIVER")
	setString(&cfg.Database.URL, "DATABASE_URL")
	setInt(&cfg.Database.MaxOpenConns, "DB_MAX_OPEN_CONNS")
	setInt(&cfg.Database.MaxIdleConns, "DB_MAX_IDLE_CONNS")
	setDuration(&cfg.Database.ConnMaxLifetime, "DB_CONN_MAX_LIFETIME")
	setBool(&cfg.Database.AutoMigrate, "AUTO_MIGRATE")
	setBool(&cfg.Database.SeedCategories, "SEED_CATEGORIES")

	// Events
	setString(&cfg.Events.AWSRegion, "AWS_REGION")
	setString(&cfg.Events.BusName, "EVENT_BUS_NAME")
	setString(&cfg.Events.Source, "EVENT_SOURCE")

	// Observability
	setBool(&cfg.Observability.EnableMetrics, "ENABLE_METRICS")
	setBool(&cfg.Observability.EnableTracing, "ENABLE_TRACING")
	setString(&cfg.Observability.OTLPEndpoint, "OTLP_ENDPOINT")
	if val := os.Getenv("TRACING_SAMPLE_RATE"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Observability.SampleRate = f
		}
	}

	// Circuit breaker
	setBool(&cfg.CircuitBreaker.Enabled, "CB_ENABLED")
	setUint32(&cfg.CircuitBreaker.MaxRequests, "CB_MAX_REQUESTS")
	setDuration(&cfg.CircuitBreaker.Interval, "CB_INTERVAL")
	setDuration(&cfg.CircuitBreaker.Timeout, "CB_TIMEOUT")
	setUint32(&cfg.CircuitBreaker.MinRequests, "CB_MIN_REQUESTS")
	if val := os.Getenv("CB_FAILURE_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.CircuitBreaker.FailureRatio = f
		}
	}
}

func setString(target *string, key string) {
	if val := os.Getenv(key); val != "" {
		*target = val
	}
}

func setBool(target *bool, key string) {
	if val := os.Getenv(key); val != "" {
		*target = parseBool(val)
	}
}

func setInt(target *int, key string) {
	if val := os.Getenv(key); val != "" {
		if v, ok := parseInt(val); ok {
			*target = v
		}
	}
}

func setUint32(target *uint32, key string) {
	if val := os.Getenv(key); val != "" {
		if v, err := strconv.ParseUint(val, 10, 32); err == nil {
			*target = uint32(v)
		}
	}
}

func setDuration(target *time.Duration, key string) {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*target = d
		}
	}
}
