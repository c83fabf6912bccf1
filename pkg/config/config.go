package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// New reads the configuration from environment variables. Variables defined in a .env file in the
// working directory are loaded first, without overriding variables that are already set.
func New() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %v", err)
	}

	e := &env{}
	config := Config{
		BasePath: e.optional("BASE_PATH", ""),
		Port:     e.optionalInt("PORT", 8080),
		DBMAPI: DBMAPI{
			Host:     e.require("DBM_API_HOST"),
			BasePath: e.optional("DBM_API_BASE_PATH", "/"),
			Token:    e.optional("DBM_API_TOKEN", ""),
			Timeout:  e.optionalDuration("DBM_API_TIMEOUT", 10*time.Second),
		},
		Postgresql: Postgresql{
			Host:         e.require("DATABASE_HOST"),
			Port:         e.requireInt("DATABASE_PORT"),
			Username:     e.require("DATABASE_USERNAME"),
			Password:     e.require("DATABASE_PASSWORD"),
			DatabaseName: e.require("DATABASE_NAME"),
		},
		TicketCacheTTL:        e.optionalDuration("TICKET_CACHE_TTL", 10*time.Minute),
		CloneBatchConcurrency: e.optionalInt("CLONE_BATCH_CONCURRENCY", 4),
		JaegerEndpoint:        e.optional("JAEGER_ENDPOINT", ""),
		Logging: Logging{
			Level:  e.optionalLevel("LOG_LEVEL", slog.LevelInfo),
			Pretty: e.optionalBool("LOG_PRETTY", false),
		},
	}

	if host, ok := os.LookupEnv("REDIS_HOST"); ok {
		config.Redis = &Redis{
			Host: host,
			Port: e.optionalInt("REDIS_PORT", 6379),
		}
	}

	if config.CloneBatchConcurrency < 1 {
		e.errs = append(e.errs, fmt.Errorf("CLONE_BATCH_CONCURRENCY must be at least 1, got %d", config.CloneBatchConcurrency))
	}

	if err := errors.Join(e.errs...); err != nil {
		return Config{}, err
	}
	return config, nil
}

type Config struct {
	BasePath              string
	Port                  int
	DBMAPI                DBMAPI
	Postgresql            Postgresql
	Redis                 *Redis
	TicketCacheTTL        time.Duration
	CloneBatchConcurrency int
	// JaegerEndpoint is the collector traces are sent to. Tracing is disabled if it's empty.
	JaegerEndpoint string
	Logging        Logging
}

// DBMAPI is the DBM backend serving tickets.
type DBMAPI struct {
	Host     string
	BasePath string
	Token    string
	Timeout  time.Duration
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Redis struct {
	Host string
	Port int
}

type Logging struct {
	Level  slog.Level
	Pretty bool
}

// env collects every problem with the environment so they can be reported at once.
type env struct {
	errs []error
}

func (e *env) require(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		e.errs = append(e.errs, fmt.Errorf("required environment variable %q not set", key))
	}
	return value
}

func (e *env) requireInt(key string) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		e.errs = append(e.errs, fmt.Errorf("required environment variable %q not set", key))
		return 0
	}
	return e.parseInt(key, value)
}

func (e *env) optional(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func (e *env) optionalInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return e.parseInt(key, value)
}

func (e *env) parseInt(key, value string) int {
	i, err := strconv.Atoi(value)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("failed to parse environment variable %q as int: %v", key, err))
	}
	return i
}

func (e *env) optionalBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("failed to parse environment variable %q as bool: %v", key, err))
	}
	return b
}

func (e *env) optionalDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("failed to parse environment variable %q as duration: %v", key, err))
	}
	return d
}

func (e *env) optionalLevel(key string, fallback slog.Level) slog.Level {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		e.errs = append(e.errs, fmt.Errorf("failed to parse environment variable %q as log level: %v", key, err))
	}
	return level
}
