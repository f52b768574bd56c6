package models

import "time"

// Category labels what a focus session is spent on.
type Category struct {
	ID    int64
	Name  string
	Color string // terminal color code used by the TUI
}

// Companion is the decorative avatar kept on screen during a session.
type Companion struct {
	ID   int64
	Name string
	Icon string
}

// Setup holds the values of the session setup form, persisted between runs.
type Setup struct {
	FocusMinutes    int
	BreakMinutes    int
	LoopCount       int
	WithPreparation bool
	CountUp         bool
	Category        string
	Companion       string
}

// Totals are the lifetime counters accumulated across completed sessions.
type Totals struct {
	Coins        int
	FocusSeconds int
}

// SessionSummary is the record handed to persistence and the PDF exporter
// once a session completes.
type SessionSummary struct {
	Category     string
	Companion    string
	CompletedAt  time.Time
	LoopsPlanned int
	FocusSeconds int
	CoinsEarned  int
}
