package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP      HTTP       `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
	Engine    Engine     `mapstructure:",squash"`
	RateLimit RateLimit  `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Engine tunes the ranking pipeline. Empty values fall back to the
// engine defaults.
type Engine struct {
	WeightMethod         string  `mapstructure:"ENGINE_WEIGHT_METHOD"`
	Aggregation          string  `mapstructure:"ENGINE_AGGREGATION"`
	ZeroFloorPolicy      string  `mapstructure:"ENGINE_ZERO_FLOOR_POLICY"`
	ConsistencyThreshold float64 `mapstructure:"ENGINE_CONSISTENCY_THRESHOLD"`
}

type RateLimit struct {
	RPS int `mapstructure:"RATE_LIMIT_RPS"`
}
