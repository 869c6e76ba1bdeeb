package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	AMQP     AMQPConfig
	Batch    BatchConfig
	Catalog  CatalogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    slog.Level
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type AMQPConfig struct {
	URL      string
	Queue    string
	Prefetch int
}

type BatchConfig struct {
	Workers       int
	RatePerSecond float64
}

type CatalogConfig struct {
	// Path to a catalog YAML file; empty uses the embedded catalog.
	Path string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")
var errInvalidEnv = errors.New("invalid environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing, invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return def
	}
	optInt := func(key string, def int) int {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optFloat := func(key string, def float64) float64 {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
		v, err := time.ParseDuration(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogLevel:    parseLevel(opt("APP_LOG_LEVEL", "info")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", "localhost"),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     opt("DB_NAME", ""),
		DBUser:     opt("DB_USER", ""),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		TTL:      optDuration("REDIS_TTL", 600*time.Second),
	}

	cfg.AMQP = AMQPConfig{
		URL:      opt("AMQP_URL", ""),
		Queue:    opt("AMQP_QUEUE", "match.batch"),
		Prefetch: optInt("AMQP_PREFETCH", 4),
	}

	cfg.Batch = BatchConfig{
		Workers:       optInt("BATCH_WORKERS", 4),
		RatePerSecond: optFloat("BATCH_RATE_PER_SECOND", 0),
	}

	cfg.Catalog = CatalogConfig{Path: opt("CATALOG_PATH", "")}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func parseLevel(raw string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}
