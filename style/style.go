// Package style wraps lipgloss into small composable render helpers.
//
// Command output goes through these helpers instead of raw ANSI sequences so
// color handling stays in one place and respects the terminal's capabilities.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty style to build on.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with the given foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a render function that paints strings in the given foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Common text attributes.
var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)
