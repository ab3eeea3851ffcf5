package config

import "time"

// RetentionConfig contains retention sweeper configuration.
type RetentionConfig struct {
	// MaxAge is the retention window: messages and direct messages older than
	// this are deleted by the sweep.
	MaxAge time.Duration `env:"RETENTION_MAX_AGE" envDefault:"72h"`

	// Interval is the sweeper tick interval when running as a service.
	Interval time.Duration `env:"RETENTION_INTERVAL" envDefault:"24h"`

	// BatchSize bounds the rows deleted per statement so a large backlog
	// cannot hold long row locks.
	BatchSize int `env:"RETENTION_BATCH_SIZE" envDefault:"500"`
}

// Sanitize applies guardrails to retention configuration values.
func (r *RetentionConfig) Sanitize() {
	if r.MaxAge < time.Hour {
		r.MaxAge = 72 * time.Hour
	}
	if r.Interval < time.Minute {
		r.Interval = 24 * time.Hour
	}
	if r.BatchSize < 1 {
		r.BatchSize = 500
	}
}
