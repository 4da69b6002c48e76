// Package style defines lipgloss styles for the TUI.
package style

import (
	"github.com/alkime/musclememory/internal/colorfilter"
	"github.com/charmbracelet/lipgloss"
)

// Neutral is used where a highlight color is unknown, mirroring the
// untinted fallback of the web illustrations.
const Neutral = lipgloss.Color("252")

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use.
var (
	// Title is used for page headings.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	// Subtitle is used for taglines under a heading.
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	// Heading is used for section headings ("List of exercises", "Instructions").
	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("253"))

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Label is used for navigation entries that are not selected.
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	// Muted is used for de-emphasized text (durations, hidden body regions).
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// Stage frames the body diagram panel.
	Stage = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(1, 2).
		Width(36).
		Align(lipgloss.Center)

	// Placeholder is the prompt shown when nothing is selected.
	Placeholder = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Italic(true)

	// Card frames one exercise on a group page.
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
)

// HighlightColor returns the terminal color for a highlight hex value, or
// Neutral when the value is not one of the known highlight colors.
func HighlightColor(hex string) lipgloss.TerminalColor {
	c, ok := colorfilter.ParseHex(hex)
	if !ok {
		return Neutral
	}

	return lipgloss.Color(c.Hex())
}

// Highlight returns a bold foreground style in the group's highlight color.
func Highlight(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(HighlightColor(hex))
}

// Glow frames the stage in the group's highlight color.
func Glow(hex string) lipgloss.Style {
	return Stage.BorderForeground(HighlightColor(hex))
}
