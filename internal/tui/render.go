package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/avelok/stint/internal/messages"
	"github.com/avelok/stint/internal/session"
)

func (m SessionModel) phaseStyle(p session.Phase) lipgloss.Style {
	switch p {
	case session.PhaseBreak:
		return m.theme.Break
	case session.PhasePreparation:
		return m.theme.Preparation
	default:
		return m.theme.Focus
	}
}

func phaseLabel(p session.Phase) string {
	switch p {
	case session.PhasePreparation:
		return "PREPARATION"
	case session.PhaseFocus:
		return "FOCUS"
	case session.PhaseBreak:
		return "BREAK"
	default:
		return "DONE"
	}
}

// fitLine truncates a rendered line to the model width, ANSI-aware.
func (m SessionModel) fitLine(s string) string {
	if m.width <= 0 {
		return s
	}
	return ansi.Truncate(s, m.width-4, "…")
}

func (m SessionModel) View() string {
	snap := m.engine.Snapshot()
	if snap.RunState == session.RunCompleted {
		return m.summaryView(snap)
	}
	return m.sessionView(snap)
}

func (m SessionModel) sessionView(snap session.State) string {
	var b strings.Builder

	companion := m.setup.Companion
	header := fmt.Sprintf("%s  ·  %s  ·  loop %d/%d", companion, m.setup.Category, snap.CurrentLoop, m.engine.Config().LoopCount)
	b.WriteString(m.fitLine(m.theme.Header.Render(header)))
	b.WriteString("\n\n")

	phase := m.phaseStyle(snap.Phase).Render(phaseLabel(snap.Phase))
	clock := m.theme.Timer.Render(m.engine.FormattedDisplayTime())
	direction := "remaining"
	if m.engine.Config().CountUp {
		direction = "elapsed"
	}
	b.WriteString(m.fitLine(fmt.Sprintf("%s  %s %s", phase, clock, m.theme.Dim.Render(direction))))
	b.WriteString("\n\n")

	b.WriteString(m.fitLine(m.progress.ViewAs(m.engine.PhaseProgress())))
	b.WriteString("\n\n")

	coins := m.theme.Coin.Render(fmt.Sprintf("⬤ %d", snap.CoinsEarned))
	focus := m.theme.Dim.Render(fmt.Sprintf("focus %s", session.FormatTime(snap.CompletedFocusSeconds)))
	b.WriteString(m.fitLine(fmt.Sprintf("%s  %s", coins, focus)))
	b.WriteString("\n\n")

	b.WriteString(m.fitLine(m.theme.Highlight.Render(messages.For(snap))))
	b.WriteString("\n\n")

	b.WriteString(m.fitLine(m.theme.Dim.Render(m.footer(snap))))
	return m.theme.Base.Render(b.String())
}

func (m SessionModel) footer(snap session.State) string {
	switch snap.RunState {
	case session.RunRunning:
		return "p pause · k skip phase · r reset · q quit"
	case session.RunPaused:
		return "s resume · r reset · q quit"
	default:
		return "s start · r reset · q quit"
	}
}

func (m SessionModel) summaryView(snap session.State) string {
	var b strings.Builder
	totals := m.store.Totals()

	b.WriteString(m.fitLine(m.theme.Header.Render("Session complete")))
	b.WriteString("\n\n")
	b.WriteString(m.fitLine(fmt.Sprintf("%s  ·  %s", m.setup.Companion, m.setup.Category)))
	b.WriteString("\n\n")
	b.WriteString(m.fitLine(fmt.Sprintf("Focus time   %s", session.FormatTime(snap.CompletedFocusSeconds))))
	b.WriteString("\n")
	b.WriteString(m.fitLine(m.theme.Coin.Render(fmt.Sprintf("Coins earned ⬤ %d", snap.CoinsEarned))))
	b.WriteString("\n\n")
	b.WriteString(m.fitLine(m.theme.Dim.Render(fmt.Sprintf("Lifetime: ⬤ %d coins · %s focused", totals.Coins, session.FormatTime(totals.FocusSeconds)))))
	b.WriteString("\n\n")
	if m.exported != "" {
		b.WriteString(m.fitLine(m.theme.Highlight.Render("Report saved to " + m.exported)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.fitLine(m.theme.Dim.Render("e export PDF · n new session · q quit")))
	return m.theme.Base.Render(b.String())
}

func (m SetupModel) View() string {
	var b strings.Builder
	labels := [3]string{"Focus", "Break", "Loops"}

	b.WriteString(m.theme.Header.Render("New session"))
	b.WriteString("\n\n")
	for i, ti := range m.inputs {
		marker := "  "
		if m.focused == i {
			marker = m.theme.Highlight.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%-7s %s\n", marker, labels[i], ti.View()))
	}
	b.WriteString(m.toggleLine(fieldPreparation, "Prep phase (5m)", m.prep))
	b.WriteString(m.toggleLine(fieldCountUp, "Count up", m.countUp))
	b.WriteString(m.pickerLine(fieldCategory, "Category", m.categoryName()))
	b.WriteString(m.pickerLine(fieldCompanion, "Companion", m.companionName()))
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.theme.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Dim.Render("tab/↑↓ move · space toggle · ←→ pick · ctrl+t theme · enter start"))
	return m.theme.Base.Render(b.String())
}

func (m SetupModel) toggleLine(field int, label string, on bool) string {
	marker := "  "
	if m.focused == field {
		marker = m.theme.Highlight.Render("> ")
	}
	box := "[ ]"
	if on {
		box = "[x]"
	}
	return fmt.Sprintf("%s%-16s %s\n", marker, label, box)
}

func (m SetupModel) pickerLine(field int, label, value string) string {
	marker := "  "
	if m.focused == field {
		marker = m.theme.Highlight.Render("> ")
	}
	return fmt.Sprintf("%s%-16s ← %s →\n", marker, label, value)
}

func (m SetupModel) categoryName() string {
	if len(m.categories) == 0 {
		return "-"
	}
	return m.categories[m.catIdx].Name
}

func (m SetupModel) companionName() string {
	if len(m.companions) == 0 {
		return "-"
	}
	c := m.companions[m.compIdx]
	return c.Icon + " " + c.Name
}
