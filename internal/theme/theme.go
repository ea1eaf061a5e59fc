package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title               *lipgloss.Style
	Frame               *lipgloss.Style
	StatusBox           *lipgloss.Style
	Status              *lipgloss.Style
	MenuBox             *lipgloss.Style
	GroupHeader         *lipgloss.Style
	SelectedGroupHeader *lipgloss.Style
	Item                *lipgloss.Style
	SelectedItem        *lipgloss.Style
	Description         *lipgloss.Style
	SelectedDescription *lipgloss.Style
	Empty               *lipgloss.Style
	Footer              *lipgloss.Style
	Indicator           *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	),
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("14")),
	),
	StatusBox: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("10")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	),
	MenuBox: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("245")),
	),
	GroupHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	),
	SelectedGroupHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true),
	),
	Description: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	SelectedDescription: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("11")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Indicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
