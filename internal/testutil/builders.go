package testutil

import (
	"time"

	"github.com/avelok/stint/internal/models"
	"github.com/avelok/stint/internal/session"
)

// ConfigBuilder provides a fluent API for creating session configurations
// in tests.
type ConfigBuilder struct {
	cfg session.Config
}

func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: session.Config{
			FocusDuration: 60 * time.Second,
			BreakDuration: 30 * time.Second,
			LoopCount:     2,
		},
	}
}

func (b *ConfigBuilder) WithFocus(d time.Duration) *ConfigBuilder {
	b.cfg.FocusDuration = d
	return b
}

func (b *ConfigBuilder) WithBreak(d time.Duration) *ConfigBuilder {
	b.cfg.BreakDuration = d
	return b
}

func (b *ConfigBuilder) WithLoops(n int) *ConfigBuilder {
	b.cfg.LoopCount = n
	return b
}

func (b *ConfigBuilder) WithPreparation() *ConfigBuilder {
	b.cfg.WithPreparation = true
	return b
}

func (b *ConfigBuilder) CountingUp() *ConfigBuilder {
	b.cfg.CountUp = true
	return b
}

func (b *ConfigBuilder) Build() session.Config {
	return b.cfg
}

// SummaryBuilder builds completed-session records.
type SummaryBuilder struct {
	summary models.SessionSummary
}

func NewSummary() *SummaryBuilder {
	return &SummaryBuilder{
		summary: models.SessionSummary{
			Category:     "Study",
			Companion:    "Cat",
			CompletedAt:  time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
			LoopsPlanned: 2,
			FocusSeconds: 120,
			CoinsEarned:  4,
		},
	}
}

func (b *SummaryBuilder) WithCoins(n int) *SummaryBuilder {
	b.summary.CoinsEarned = n
	return b
}

func (b *SummaryBuilder) WithFocusSeconds(n int) *SummaryBuilder {
	b.summary.FocusSeconds = n
	return b
}

func (b *SummaryBuilder) Build() models.SessionSummary {
	return b.summary
}
