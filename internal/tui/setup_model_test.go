package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelok/stint/internal/models"
	"github.com/golang/mock/gomock"
)

func TestSetupLoadsSavedForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any()).Return("", false).AnyTimes()
	store.EXPECT().LoadSetup().Return(models.Setup{
		FocusMinutes: 50, BreakMinutes: 10, LoopCount: 3,
		WithPreparation: true, Category: "Work", Companion: "Cat",
	})
	store.EXPECT().GetCategories().Return([]models.Category{{Name: "Study"}, {Name: "Work"}}, nil)
	store.EXPECT().GetCompanions().Return([]models.Companion{{Name: "Cat"}}, nil)

	m := NewSetupModel(store)
	if m.inputs[fieldFocus].Value() != "50" || m.inputs[fieldLoops].Value() != "3" {
		t.Fatalf("form should start from the saved setup")
	}
	if !m.prep {
		t.Fatalf("preparation toggle should start from the saved setup")
	}
	if m.catIdx != 1 {
		t.Fatalf("saved category should be preselected, got %d", m.catIdx)
	}
}

func TestSubmitBuildsEngine(t *testing.T) {
	m := NewSetupModel(stubStore(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("valid form should start a session")
	}
	msg, ok := cmd().(startSessionMsg)
	if !ok {
		t.Fatalf("expected startSessionMsg, got %T", cmd())
	}
	cfg := msg.engine.Config()
	if cfg.FocusDuration != 25*time.Minute || cfg.BreakDuration != 5*time.Minute || cfg.LoopCount != 4 {
		t.Fatalf("engine config does not match the form: %+v", cfg)
	}
	if msg.setup.Category != "Study" {
		t.Fatalf("setup should carry the selected category: %+v", msg.setup)
	}
}

func TestSubmitRejectsInvalidForm(t *testing.T) {
	m := NewSetupModel(stubStore(t))
	m.inputs[fieldLoops].SetValue("12")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("invalid form must not start a session")
	}
	if !strings.Contains(next.errMsg, "loop count") {
		t.Fatalf("expected a loop count error, got %q", next.errMsg)
	}
	if !strings.Contains(next.View(), "loop count") {
		t.Fatalf("error should be rendered")
	}

	// Fixing the field clears the error on the next submit.
	next.inputs[fieldLoops].SetValue("2")
	next, cmd = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || next.errMsg != "" {
		t.Fatalf("corrected form should start a session")
	}
}

func TestToggleAndPickerNavigation(t *testing.T) {
	m := NewSetupModel(stubStore(t))
	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.focused != fieldPreparation {
		t.Fatalf("expected focus on the preparation toggle, got %d", m.focused)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !m.prep {
		t.Fatalf("space should toggle the preparation phase")
	}

	for i := 0; i < 2; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.focused != fieldCategory {
		t.Fatalf("expected focus on the category picker, got %d", m.focused)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.catIdx != 1 {
		t.Fatalf("right should cycle the category, got %d", m.catIdx)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.catIdx != 0 {
		t.Fatalf("left should cycle back, got %d", m.catIdx)
	}
}

func TestThemeCyclePersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	store.EXPECT().GetSetting(settingTheme).Return("", false).AnyTimes()
	store.EXPECT().LoadSetup().Return(models.Setup{FocusMinutes: 25, BreakMinutes: 5, LoopCount: 4})
	store.EXPECT().GetCategories().Return(nil, nil)
	store.EXPECT().GetCompanions().Return(nil, nil)
	store.EXPECT().SetSetting(settingTheme, "ember").Return(nil).Times(1)

	m := NewSetupModel(store)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.theme.Name != "Ember" {
		t.Fatalf("expected the ember theme, got %s", m.theme.Name)
	}
}

func TestMainModelSwitchesStates(t *testing.T) {
	root := NewMainModel(stubStore(t))
	if root.state != stateSetup {
		t.Fatalf("root should start in setup")
	}
	if view := root.View(); !strings.Contains(view, "New session") {
		t.Fatalf("setup view missing:\n%s", view)
	}

	_, cmd := root.setup.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a start command")
	}
	next, _ := root.Update(cmd())
	root = next.(MainModel)
	if root.state != stateSession {
		t.Fatalf("start message should switch to the session screen")
	}

	next, _ = root.Update(setupRequestedMsg{})
	root = next.(MainModel)
	if root.state != stateSetup {
		t.Fatalf("setup request should return to the form")
	}
}
