package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// Server configuration
	Server struct {
		Port string `env:"SERVER_PORT" envDefault:"5250"`

		// Path to the SQLite database, relative to the server directory
		DatabasePath string `env:"DATABASE_PATH" envDefault:"database/rentfolio.db"`
	}

	// Reporting configuration
	Reports struct {
		// How long a cached portfolio report stays valid
		CacheTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"5m"`

		// Default trailing window for P&L reports (in months)
		MonthWindow int `env:"REPORT_MONTH_WINDOW" envDefault:"6"`
	}

	// BatchProcessing configuration for the transaction import pipeline
	BatchProcessing struct {
		// Maximum number of transactions per persisted batch
		MaxBatchSize int `env:"BATCH_MAX_SIZE" envDefault:"100"`

		// Queue buffer size (in batches)
		QueueSize int `env:"BATCH_QUEUE_SIZE" envDefault:"50"`

		// Number of concurrent batch processors
		ProcessorCount int `env:"BATCH_PROCESSOR_COUNT" envDefault:"2"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"5"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
