package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/twitchy-cli/twitchy/color"
)

// Truecolor scheme for composed surfaces like the missing-dependency box.
// Inline command output uses the ANSI palette from the color package so it
// follows the terminal theme; these constants mark the few spots where the
// Twitch identity should win over it.
var (
	Text    = lipgloss.Color("#efeff1")
	Subtext = lipgloss.Color("#adadb8")

	AccentColor = color.BrandPurple
	ErrorColor  = lipgloss.Color("#eb0400")
)
