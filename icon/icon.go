// Package icon renders the status symbols shown next to terminal output.
//
// Every symbol exists in several variants (emoji, nerd-font glyphs, plain
// ASCII, kaomoji, Unicode squares) so users on limited fonts or plain TTYs
// can pick one that survives their terminal.
package icon

import (
	"github.com/spf13/viper"
	"github.com/twitchy-cli/twitchy/key"
)

// Variant names as they appear in the config.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists every variant name, in the order shown by shell completion.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef holds the rendering of one symbol in each variant.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

// render picks the representation matching the configured variant.
// Unknown variants render as nothing rather than garbage.
func (d *iconDef) render() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders the given symbol in the user's configured variant.
func Get(i Icon) string {
	return icons[i].render()
}
