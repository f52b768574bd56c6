package session

import (
	"fmt"
	"time"

	"github.com/avelok/stint/internal/config"
)

// Config describes one session. It is immutable once handed to New; to
// change it, build a new Engine.
type Config struct {
	FocusDuration   time.Duration
	BreakDuration   time.Duration
	LoopCount       int
	WithPreparation bool
	CountUp         bool // surface elapsed instead of remaining time
}

// ConfigError reports an invalid session configuration. It is the only
// error the engine ever produces.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the configuration bounds. A nil result means New will
// accept the configuration.
func (c Config) Validate() error {
	if c.FocusDuration < config.MinFocusDuration {
		return &ConfigError{Field: "focus duration", Reason: fmt.Sprintf("must be at least %s", config.MinFocusDuration)}
	}
	if c.BreakDuration < 0 {
		return &ConfigError{Field: "break duration", Reason: "must not be negative"}
	}
	if c.LoopCount < config.MinLoopCount || c.LoopCount > config.MaxLoopCount {
		return &ConfigError{Field: "loop count", Reason: fmt.Sprintf("must be between %d and %d", config.MinLoopCount, config.MaxLoopCount)}
	}
	return nil
}

// TotalConfiguredDuration returns the planned length of the whole session
// in seconds, preparation included.
func (c Config) TotalConfiguredDuration() int {
	total := (int(c.FocusDuration/time.Second) + int(c.BreakDuration/time.Second)) * c.LoopCount
	if c.WithPreparation {
		total += int(config.PreparationDuration / time.Second)
	}
	return total
}
