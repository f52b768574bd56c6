// Package tui is the terminal frontend: a setup form, the live session
// screen, and the completion summary. It owns the one-second driver for
// the timer engine and is the only writer to the persistence layer.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelok/stint/internal/models"
	"github.com/avelok/stint/internal/session"
)

// Settings keys owned by the TUI.
const settingTheme = "theme"

// appState defines the high-level mode of the application.
type appState int

const (
	stateSetup appState = iota
	stateSession
)

// startSessionMsg carries a freshly built engine from the setup form to the
// session screen.
type startSessionMsg struct {
	engine *session.Engine
	setup  models.Setup
}

// setupRequestedMsg returns to the setup form after a completed session.
type setupRequestedMsg struct{}

// MainModel is the root bubbletea model that switches between sub-models.
type MainModel struct {
	state         appState
	store         Store
	setup         SetupModel
	session       SessionModel
	width, height int
}

func NewMainModel(store Store) MainModel {
	return MainModel{
		state: stateSetup,
		store: store,
		setup: NewSetupModel(store),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.setup.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.setup.width = msg.Width
		m.session.width = msg.Width
	case startSessionMsg:
		m.state = stateSession
		m.session = NewSessionModel(m.store, msg.engine, msg.setup)
		m.session.width = m.width
		return m, nil
	case setupRequestedMsg:
		m.state = stateSetup
		m.setup = NewSetupModel(m.store)
		m.setup.width = m.width
		return m, m.setup.Init()
	}

	switch m.state {
	case stateSetup:
		next, cmd := m.setup.Update(msg)
		m.setup = next
		return m, cmd
	default:
		next, cmd := m.session.Update(msg)
		m.session = next
		return m, cmd
	}
}

func (m MainModel) View() string {
	switch m.state {
	case stateSetup:
		return m.setup.View()
	default:
		return m.session.View()
	}
}
