// Package config loads process settings from a .env file, the environment
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Snapshot backends
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds all runtime configuration values
type Config struct {
	Port          string // HTTP port to listen on
	DataFile      string // snapshot file for the file backend
	Backend       string // "file" or "redis"
	RedisAddr     string // host:port of the Redis server
	RedisPassword string // optional
	RedisDB       int    // Redis database number
	RedisKey      string // key holding the snapshot
	CatalogFile   string // optional YAML seed catalog
	AMQPURL       string // broker for bid notifications; empty disables publishing
	AMQPQueue     string // queue bid notifications are published to
	LogLevel      string // logrus level name
}

// Load reads .env (if present), then the environment, then args (without the program name).
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DataFile:      getEnv("DATA_FILE", "data.json"),
		Backend:       getEnv("SNAPSHOT_BACKEND", BackendFile),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisKey:      getEnv("REDIS_KEY", "lot-auction:snapshot"),
		CatalogFile:   os.Getenv("CATALOG_FILE"),
		AMQPURL:       os.Getenv("AMQP_URL"),
		AMQPQueue:     getEnv("AMQP_QUEUE", "bids.committed"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if s := os.Getenv("REDIS_DB"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid int for REDIS_DB: %q", s)
		}
		cfg.RedisDB = n
	}

	flags := pflag.NewFlagSet("lot-auction", pflag.ContinueOnError)
	flags.StringVar(&cfg.Port, "port", cfg.Port, "HTTP port to listen on")
	flags.StringVar(&cfg.DataFile, "data-file", cfg.DataFile, "snapshot file (file backend)")
	flags.StringVar(&cfg.Backend, "backend", cfg.Backend, "snapshot backend: file or redis")
	flags.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "YAML seed catalog used when no snapshot exists")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendFile:
		if c.DataFile == "" {
			return errors.New("config: data file must not be empty")
		}
	case BackendRedis:
		if c.RedisAddr == "" || c.RedisKey == "" {
			return errors.New("config: redis backend needs REDIS_ADDR and REDIS_KEY")
		}
	default:
		return fmt.Errorf("config: unknown snapshot backend %q", c.Backend)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("config: invalid port %q", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
