package config

import "time"

// Timer durations and bounds.
const (
	PreparationDuration = 5 * time.Minute
	MinFocusDuration    = 30 * time.Second
	MinLoopCount        = 1
	MaxLoopCount        = 9
)

// CoinInterval is the amount of completed focus time, in seconds, that
// earns one coin.
const CoinInterval = 30

// Setup form defaults.
const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
	DefaultLoopCount    = 4
)

// Database/application settings.
const (
	AppName    = "stint"
	DBFileName = "stint.db"
)
