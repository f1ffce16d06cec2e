package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/where"
)

// whereTarget is one named application directory the where command can print.
type whereTarget struct {
	name   string
	path   func() string
	flag   string
	short  mo.Option[string]
	hidden bool
}

// whereTargets lists every directory the application owns. Hidden entries are
// internal state (wiped by "clear"), reachable by flag but left out of the
// overview.
var whereTargets = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false},
	{"Credentials", where.Credentials, "credentials", mo.Some("r"), false},
	{"Player profile", where.Player, "player", mo.Some("p"), false},
	{"Logs", where.Logs, "logs", mo.Some("l"), false},
	{"Cache", where.Cache, "cache", mo.None[string](), true},
	{"Temp", where.Temp, "temp", mo.None[string](), true},
	{"History", where.History, "history", mo.None[string](), true},
	{"Queries", where.Queries, "queries", mo.None[string](), true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range whereTargets {
		if short, ok := t.short.Get(); ok {
			whereCmd.Flags().BoolP(t.flag, short, false, t.name+" path")
		} else {
			whereCmd.Flags().Bool(t.flag, false, t.name+" path")
		}

		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t *whereTarget, _ int) string {
		return t.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd displays localized filesystem paths for application resources.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the localized filesystem paths for application-specific resources",
	Run: func(cmd *cobra.Command, args []string) {
		// A single flag prints the bare path, handy for shell substitution
		// like cd "$(twitchy where -l)".
		for _, t := range whereTargets {
			if lo.Must(cmd.Flags().GetBool(t.flag)) {
				cmd.Println(t.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Filter(whereTargets, func(t *whereTarget, _ int) bool {
			return !t.hidden
		})

		for i, t := range visible {
			cmd.Printf("%s %s\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.flag))
			cmd.Println(t.path())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
