package tui

import "github.com/avelok/stint/internal/models"

// Store is the slice of the persistence layer the TUI needs. It is read at
// startup and on the summary screen; totals are written exactly once per
// completed session.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui
type Store interface {
	GetCategories() ([]models.Category, error)
	GetCompanions() ([]models.Companion, error)
	LoadSetup() models.Setup
	SaveSetup(s models.Setup) error
	AddSessionTotals(s models.SessionSummary) error
	Totals() models.Totals
	GetSetting(key string) (string, bool)
	SetSetting(key, value string) error
}
