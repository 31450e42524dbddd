// Package tui provides terminal versions of the two dashboards built on
// Bubble Tea.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette shared by both dashboards.
var (
	// Primary backs the title bar.
	Primary = lipgloss.Color("#101F38")
	// Accent marks titles, focus and success messages.
	Accent = lipgloss.Color("#8BC34A")
	// Muted is used for labels and key hints.
	Muted = lipgloss.Color("#6b7280")
	// Border outlines input boxes.
	Border = lipgloss.Color("#dce0e5")
	// Destructive colors load errors.
	Destructive = lipgloss.Color("#e53935")
	// Warning colors empty search results.
	Warning = lipgloss.Color("#FFC107")
	// Info colors prompts and instructions.
	Info = lipgloss.Color("#2196F3")

	// Chart colors, cycled per category.
	ChartColors = []lipgloss.Color{"#e57373", "#4db6ac", "#29434e", "#ffd54f", "#ff8a65"}
)

// Styles holds the styled components shared by both dashboards.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Focused lipgloss.Style
	Input   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(Accent).Background(Primary).Padding(0, 1),
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Label:   lipgloss.NewStyle().Foreground(Muted),
		Value:   lipgloss.NewStyle().Bold(true),
		Info:    lipgloss.NewStyle().Foreground(Info),
		Warning: lipgloss.NewStyle().Foreground(Warning),
		Error:   lipgloss.NewStyle().Foreground(Destructive),
		Success: lipgloss.NewStyle().Foreground(Accent),
		Muted:   lipgloss.NewStyle().Foreground(Muted),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
	}
}
