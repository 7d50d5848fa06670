package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes the end-to-end scenarios from the environment so CI can
// stretch latencies without touching the tests.
type Config struct {
	FetchLatency time.Duration `envconfig:"E2E_FETCH_LATENCY" default:"10ms"`
	WaitTimeout  time.Duration `envconfig:"E2E_WAIT_TIMEOUT" default:"2s"`
	LogLevel     string        `envconfig:"E2E_LOG_LEVEL" default:"DEBUG"`
}

func FromEnv() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
