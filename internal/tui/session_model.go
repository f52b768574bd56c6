package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelok/stint/internal/models"
	"github.com/avelok/stint/internal/session"
	"github.com/avelok/stint/internal/util"
)

// TickMsg is the one-second driver signal.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// SessionModel owns one engine and the live session screen. The tick
// command is re-armed only while the engine reports Running, so a paused
// or completed session receives no ticks at all.
type SessionModel struct {
	store    Store
	engine   *session.Engine
	setup    models.Setup
	theme    Theme
	progress progress.Model
	ticking  bool
	saved    bool
	exported string
	width    int
}

func NewSessionModel(store Store, engine *session.Engine, setup models.Setup) SessionModel {
	p := progress.New(progress.WithDefaultGradient())
	p.Width = 30
	return SessionModel{
		store:    store,
		engine:   engine,
		setup:    setup,
		theme:    themeFor(store),
		progress: p,
	}
}

func (m SessionModel) Init() tea.Cmd {
	return nil
}

func (m SessionModel) Update(msg tea.Msg) (SessionModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		target := msg.Width - 20
		m.progress.Width = util.Clamp(target, 10, 60)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m SessionModel) handleKey(msg tea.KeyMsg) (SessionModel, tea.Cmd) {
	switch msg.String() {
	case "s":
		m.engine.Start()
		return m.armTick()
	case "p":
		m.engine.Pause()
		return m, nil
	case "r":
		m.engine.Reset()
		m.saved = false
		m.exported = ""
		return m, nil
	case "k":
		m.engine.SkipPhase()
		return m.afterMutation()
	case "e":
		if m.engine.Snapshot().RunState == session.RunCompleted {
			m = m.exportReport()
		}
		return m, nil
	case "n":
		if m.engine.Snapshot().RunState == session.RunCompleted {
			return m, func() tea.Msg { return setupRequestedMsg{} }
		}
		return m, nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m SessionModel) handleTick() (SessionModel, tea.Cmd) {
	m.ticking = false
	m.engine.Tick()
	return m.afterMutation()
}

// afterMutation persists the session once it completes and keeps the tick
// driver armed only while the engine still runs.
func (m SessionModel) afterMutation() (SessionModel, tea.Cmd) {
	switch m.engine.Snapshot().RunState {
	case session.RunRunning:
		return m.armTick()
	case session.RunCompleted:
		m = m.persistOnce()
	}
	return m, nil
}

func (m SessionModel) armTick() (SessionModel, tea.Cmd) {
	if m.ticking || m.engine.Snapshot().RunState != session.RunRunning {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd()
}

func (m SessionModel) persistOnce() SessionModel {
	if m.saved {
		return m
	}
	m.saved = true
	util.LogError("save session totals", m.store.AddSessionTotals(m.summary()))
	return m
}

func (m SessionModel) summary() models.SessionSummary {
	s := m.engine.Snapshot()
	return models.SessionSummary{
		Category:     m.setup.Category,
		Companion:    m.setup.Companion,
		CompletedAt:  time.Now(),
		LoopsPlanned: m.engine.Config().LoopCount,
		FocusSeconds: s.CompletedFocusSeconds,
		CoinsEarned:  s.CoinsEarned,
	}
}
