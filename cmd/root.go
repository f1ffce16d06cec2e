// Package cmd implements the twitchy command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/icon"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/player"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/version"
	"github.com/twitchy-cli/twitchy/watch"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("continue", "c", false, "Resume the most recently watched channel")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("quality", "q", "", "Stream quality (best, worst, 1080p60, 720p, audio_only, ...)")
	lo.Must0(viper.BindPFlag(key.StreamlinkQuality, rootCmd.PersistentFlags().Lookup("quality")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist playback progress to the watch history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnWatch, rootCmd.PersistentFlags().Lookup("write-history")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the twitchy application.
var rootCmd = &cobra.Command{
	Use:   constant.Twitchy,
	Short: "Browse and watch Twitch streams from the command line",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.BrandPurple).Render("    - Browse and watch Twitch streams from the command line"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		options := watch.Options{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		handleErr(watch.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// handleErr reports a fatal error and exits. Playback failures exit with the
// subprocess's own code so wrapper scripts can tell what happened.
func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))

	code := 1
	var playbackErr *player.PlaybackError
	if errors.As(err, &playbackErr) && playbackErr.Code > 0 {
		code = playbackErr.Code
	}

	os.Exit(code)
}
