package config

import (
	"time"

	"github.com/oxplot/lambdafy-greeter/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application,
	// either production or development
	LogFormat string `conf:"log_format"`

	// StartTimeout bounds the startup of the application
	StartTimeout time.Duration `conf:"start_timeout"`

	// StopTimeout bounds the graceful shutdown of the application
	StopTimeout time.Duration `conf:"stop_timeout"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":     "info",
	"log_format":    "production",
	"start_timeout": 15 * time.Second,
	"stop_timeout":  15 * time.Second,
}

var EnvMap = map[string]string{
	"LOG_LEVEL":     "log_level",
	"LOG_FORMAT":    "log_format",
	"START_TIMEOUT": "start_timeout",
	"STOP_TIMEOUT":  "stop_timeout",
}
