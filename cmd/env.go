package cmd

import (
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/config"
	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/where"
)

func init() {
	rootCmd.AddCommand(envCmd)

	envCmd.Flags().BoolP("set-only", "s", false, "List only variables that currently hold a value")
	envCmd.Flags().BoolP("unset-only", "u", false, "List only variables that are currently empty")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd lists every environment variable the application reads, with its
// current value.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables twitchy reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, name := range envNames() {
			value := os.Getenv(name)
			present := value != ""

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(name), "=")
			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}

// envNames collects the config-derived variables plus the standalone path
// overrides, sorted by the name that actually gets printed.
func envNames() []string {
	names := lo.Map(config.EnvExposed, func(key string, _ int) string {
		return strings.ToUpper(constant.Twitchy + "_" + config.EnvKeyReplacer.Replace(key))
	})

	names = append(names, where.EnvConfigPath, where.EnvCredentialsPath)
	slices.Sort(names)
	return names
}
