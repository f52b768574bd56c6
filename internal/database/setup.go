package database

import (
	"github.com/avelok/stint/internal/config"
	"github.com/avelok/stint/internal/models"
	"github.com/avelok/stint/internal/util"
)

// Settings keys for the persisted setup form.
const (
	keyFocusMinutes    = "setup_focus_minutes"
	keyBreakMinutes    = "setup_break_minutes"
	keyLoopCount       = "setup_loop_count"
	keyWithPreparation = "setup_with_preparation"
	keyCountUp         = "setup_count_up"
	keyCategory        = "setup_category"
	keyCompanion       = "setup_companion"
)

// SaveSetup persists the setup-form values so the next run starts from
// them.
func (d *Database) SaveSetup(s models.Setup) error {
	if err := d.SetIntSetting(keyFocusMinutes, s.FocusMinutes); err != nil {
		return err
	}
	if err := d.SetIntSetting(keyBreakMinutes, s.BreakMinutes); err != nil {
		return err
	}
	if err := d.SetIntSetting(keyLoopCount, s.LoopCount); err != nil {
		return err
	}
	if err := d.SetIntSetting(keyWithPreparation, util.BoolToInt(s.WithPreparation)); err != nil {
		return err
	}
	if err := d.SetIntSetting(keyCountUp, util.BoolToInt(s.CountUp)); err != nil {
		return err
	}
	if err := d.SetSetting(keyCategory, s.Category); err != nil {
		return err
	}
	return d.SetSetting(keyCompanion, s.Companion)
}

// LoadSetup returns the persisted setup form, falling back to defaults for
// anything missing.
func (d *Database) LoadSetup() models.Setup {
	s := models.Setup{
		FocusMinutes: config.DefaultFocusMinutes,
		BreakMinutes: config.DefaultBreakMinutes,
		LoopCount:    config.DefaultLoopCount,
	}
	if v, ok := d.GetIntSetting(keyFocusMinutes); ok {
		s.FocusMinutes = v
	}
	if v, ok := d.GetIntSetting(keyBreakMinutes); ok {
		s.BreakMinutes = v
	}
	if v, ok := d.GetIntSetting(keyLoopCount); ok {
		s.LoopCount = v
	}
	if v, ok := d.GetIntSetting(keyWithPreparation); ok {
		s.WithPreparation = util.IntToBool(v)
	}
	if v, ok := d.GetIntSetting(keyCountUp); ok {
		s.CountUp = util.IntToBool(v)
	}
	if v, ok := d.GetSetting(keyCategory); ok {
		s.Category = v
	}
	if v, ok := d.GetSetting(keyCompanion); ok {
		s.Companion = v
	}
	return s
}
