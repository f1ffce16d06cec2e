package version

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/icon"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/util"
)

// Notify prints an update hint when a release newer than the running build
// exists. Lookup failures stay silent: a hint is never worth an error.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a newer release...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}

	if newer, err := Compare(latest, constant.Version); err != nil || newer <= 0 {
		return
	}

	fmt.Printf("\n%s %s %s\n%s\n\n",
		style.Fg(color.BrandPurple)("▇▇▇"),
		style.Bold(constant.Twitchy+" "+latest+" is out!"),
		style.Faint("(you are on "+constant.Version+")"),
		style.Faint("https://github.com/twitchy-cli/twitchy/releases/tag/v"+latest),
	)
}
