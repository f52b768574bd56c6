package database

import "github.com/avelok/stint/internal/models"

// Settings keys for lifetime counters.
const (
	keyCoinsTotal        = "coins_total"
	keyFocusSecondsTotal = "focus_seconds_total"
)

// AddSessionTotals folds a completed session into the lifetime counters.
// Call it once per completed session.
func (d *Database) AddSessionTotals(s models.SessionSummary) error {
	if err := d.AddIntSetting(keyCoinsTotal, s.CoinsEarned); err != nil {
		return err
	}
	return d.AddIntSetting(keyFocusSecondsTotal, s.FocusSeconds)
}

// Totals reads the lifetime counters. Missing keys read as zero.
func (d *Database) Totals() models.Totals {
	coins, _ := d.GetIntSetting(keyCoinsTotal)
	focus, _ := d.GetIntSetting(keyFocusSecondsTotal)
	return models.Totals{Coins: coins, FocusSeconds: focus}
}
