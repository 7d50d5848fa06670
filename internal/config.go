package internal

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,required=true" validate:"required,oneof=DEBUG INFO WARN ERROR"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT,required=true" validate:"required"`
	DrainTimeout    time.Duration `env:"DRAIN_TIMEOUT,required=true" validate:"required"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT,required=true" validate:"required"`
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL,required=true" validate:"required"`
	MetadataBaseURL string        `env:"METADATA_BASE_URL,required=true" validate:"required,url"`

	// RosterInterval of zero disables the roster worker.
	RosterInterval time.Duration `env:"ROSTER_INTERVAL"`
	// DemoFeed joins and leaves sample players to exercise the pipeline.
	DemoFeed bool `env:"DEMO_FEED"`
	// DebugPort exposes the badger inspector when debug logging is on.
	DebugPort int `env:"DEBUG_PORT" validate:"omitempty,gt=0,lt=65536"`
}

func (c Config) Validate() error {
	return validate.Struct(c)
}
