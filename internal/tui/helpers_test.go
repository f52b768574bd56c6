package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"

	"github.com/avelok/stint/internal/models"
	"github.com/avelok/stint/internal/session"
	"github.com/avelok/stint/internal/testutil"
)

// stubStore returns a mock store with permissive defaults for everything a
// model reads during construction and rendering. Tests add strict
// expectations on top for the calls they care about.
func stubStore(t *testing.T) *MockStore {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any()).Return("", false).AnyTimes()
	store.EXPECT().SetSetting(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().LoadSetup().Return(models.Setup{FocusMinutes: 25, BreakMinutes: 5, LoopCount: 4}).AnyTimes()
	store.EXPECT().SaveSetup(gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().GetCategories().Return([]models.Category{{ID: 1, Name: "Study"}, {ID: 2, Name: "Work"}}, nil).AnyTimes()
	store.EXPECT().GetCompanions().Return([]models.Companion{{ID: 1, Name: "Cat", Icon: "🐈"}}, nil).AnyTimes()
	store.EXPECT().Totals().Return(models.Totals{}).AnyTimes()
	return store
}

func newTestSession(t *testing.T, store Store, cfg session.Config) SessionModel {
	t.Helper()
	engine, err := session.New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	setup := models.Setup{Category: "Study", Companion: "Cat", LoopCount: cfg.LoopCount}
	return NewSessionModel(store, engine, setup)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var _ Store = (*MockStore)(nil)

// quickConfig is the short session most tui tests drive to completion.
func quickConfig() session.Config {
	return testutil.NewConfig().WithFocus(30 * time.Second).WithBreak(0).WithLoops(1).Build()
}
