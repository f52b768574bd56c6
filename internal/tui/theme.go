package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name        string
	Base        lipgloss.Style
	Header      lipgloss.Style
	Timer       lipgloss.Style
	Focus       lipgloss.Style
	Break       lipgloss.Style
	Preparation lipgloss.Style
	Coin        lipgloss.Style
	Input       lipgloss.Style
	Error       lipgloss.Style
	Dim         lipgloss.Style
	Highlight   lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Timer:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Focus:       lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Break:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Preparation: lipgloss.NewStyle().Foreground(lipgloss.Color("147")),
		Coin:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"ember": {
		Name:        "Ember",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Timer:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Focus:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Break:       lipgloss.NewStyle().Foreground(lipgloss.Color("150")).Bold(true),
		Preparation: lipgloss.NewStyle().Foreground(lipgloss.Color("181")),
		Coin:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("215")).Padding(0, 1),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	},
}

// themeFor resolves the persisted theme preference, falling back to the
// default when the key is missing or names an unknown theme.
func themeFor(store Store) Theme {
	if name, ok := store.GetSetting(settingTheme); ok {
		if theme, found := Themes[name]; found {
			return theme
		}
	}
	return Themes["default"]
}
