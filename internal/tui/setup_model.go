package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelok/stint/internal/models"
	"github.com/avelok/stint/internal/session"
	"github.com/avelok/stint/internal/util"
)

// Setup form fields, in navigation order.
const (
	fieldFocus = iota
	fieldBreak
	fieldLoops
	fieldPreparation
	fieldCountUp
	fieldCategory
	fieldCompanion
	fieldCount
)

// SetupModel is the session configuration form.
type SetupModel struct {
	store      Store
	theme      Theme
	inputs     [3]textinput.Model // focus, break, loops
	focused    int
	prep       bool
	countUp    bool
	categories []models.Category
	companions []models.Companion
	catIdx     int
	compIdx    int
	errMsg     string
	width      int
}

func NewSetupModel(store Store) SetupModel {
	m := SetupModel{
		store: store,
		theme: themeFor(store),
	}

	saved := store.LoadSetup()
	placeholders := [3]string{"minutes", "minutes", "1-9"}
	values := [3]int{saved.FocusMinutes, saved.BreakMinutes, saved.LoopCount}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 3
		ti.Width = 7
		ti.SetValue(strconv.Itoa(values[i]))
		m.inputs[i] = ti
	}
	m.inputs[fieldFocus].Focus()
	m.prep = saved.WithPreparation
	m.countUp = saved.CountUp

	var err error
	m.categories, err = store.GetCategories()
	util.LogError("load categories", err)
	m.companions, err = store.GetCompanions()
	util.LogError("load companions", err)
	for i, c := range m.categories {
		if c.Name == saved.Category {
			m.catIdx = i
		}
	}
	for i, c := range m.companions {
		if c.Name == saved.Companion {
			m.compIdx = i
		}
	}
	return m
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (SetupModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		return m.moveFocus(1), nil
	case "shift+tab", "up":
		return m.moveFocus(-1), nil
	case "enter":
		return m.submit()
	case "ctrl+t":
		return m.cycleTheme(), nil
	case " ":
		switch m.focused {
		case fieldPreparation:
			m.prep = !m.prep
			return m, nil
		case fieldCountUp:
			m.countUp = !m.countUp
			return m, nil
		}
	case "left":
		switch m.focused {
		case fieldCategory:
			m.catIdx = cycle(m.catIdx, -1, len(m.categories))
			return m, nil
		case fieldCompanion:
			m.compIdx = cycle(m.compIdx, -1, len(m.companions))
			return m, nil
		}
	case "right":
		switch m.focused {
		case fieldCategory:
			m.catIdx = cycle(m.catIdx, 1, len(m.categories))
			return m, nil
		case fieldCompanion:
			m.compIdx = cycle(m.compIdx, 1, len(m.companions))
			return m, nil
		}
	}
	return m.updateInputs(msg)
}

func cycle(idx, delta, size int) int {
	if size == 0 {
		return 0
	}
	return (idx + delta + size) % size
}

func (m SetupModel) moveFocus(delta int) SetupModel {
	m.focused = cycle(m.focused, delta, fieldCount)
	for i := range m.inputs {
		if i == m.focused {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m SetupModel) updateInputs(msg tea.Msg) (SetupModel, tea.Cmd) {
	if m.focused >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m SetupModel) cycleTheme() SetupModel {
	next := "ember"
	if m.theme.Name == Themes["ember"].Name {
		next = "default"
	}
	m.theme = Themes[next]
	util.LogError("save theme", m.store.SetSetting(settingTheme, next))
	return m
}

// currentSetup reads the form into a Setup record. Numeric parse failures
// surface later through Config.Validate as zero values.
func (m SetupModel) currentSetup() models.Setup {
	focus, _ := strconv.Atoi(m.inputs[fieldFocus].Value())
	brk, _ := strconv.Atoi(m.inputs[fieldBreak].Value())
	loops, _ := strconv.Atoi(m.inputs[fieldLoops].Value())
	s := models.Setup{
		FocusMinutes:    focus,
		BreakMinutes:    brk,
		LoopCount:       loops,
		WithPreparation: m.prep,
		CountUp:         m.countUp,
	}
	if len(m.categories) > 0 {
		s.Category = m.categories[m.catIdx].Name
	}
	if len(m.companions) > 0 {
		s.Companion = m.companions[m.compIdx].Name
	}
	return s
}

func (m SetupModel) submit() (SetupModel, tea.Cmd) {
	setup := m.currentSetup()
	cfg := session.Config{
		FocusDuration:   time.Duration(setup.FocusMinutes) * time.Minute,
		BreakDuration:   time.Duration(setup.BreakMinutes) * time.Minute,
		LoopCount:       setup.LoopCount,
		WithPreparation: setup.WithPreparation,
		CountUp:         setup.CountUp,
	}
	engine, err := session.New(cfg)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""
	util.LogError("save setup", m.store.SaveSetup(setup))
	return m, func() tea.Msg {
		return startSessionMsg{engine: engine, setup: setup}
	}
}
