package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header      *lipgloss.Style
	Footer      *lipgloss.Style
	Info        *lipgloss.Style
	Error       *lipgloss.Style
	Item        *lipgloss.Style
	ItemHover   *lipgloss.Style
	ItemGlow    *lipgloss.Style
	Label       *lipgloss.Style
	Placeholder *lipgloss.Style
	Feedback    *lipgloss.Style
	JumpPrompt  *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("249")).
			Align(lipgloss.Center),
	),
	ItemHover: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Align(lipgloss.Center),
	),
	// ItemGlow marks the upper half of the breathing cycle so the idle
	// pulse stays visible even when cell quantisation hides the width
	// change.
	ItemGlow: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Foreground(lipgloss.Color("252")).
			Align(lipgloss.Center),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("236")).
			Foreground(lipgloss.Color("238")).
			Align(lipgloss.Center),
	),
	Feedback: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Align(lipgloss.Center),
	),
	JumpPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
