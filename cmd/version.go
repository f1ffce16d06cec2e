package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(color.BrandPurple),
}).Parse(`{{ purple "▇▇▇" }} {{ purple .App }}

  {{ faint (printf "%-11s" "Version") }} {{ bold .Version }}
  {{ faint (printf "%-11s" "Git Commit") }} {{ bold .Revision }}
  {{ faint (printf "%-11s" "Build Date") }} {{ bold .BuiltAt }}
  {{ faint (printf "%-11s" "Built By") }} {{ bold .BuiltBy }}
  {{ faint (printf "%-11s" "Platform") }} {{ bold .OS }}/{{ bold .Arch }}
`))

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display exhaustive version and build metadata",
	Long:  "Display the current application version, build revision, platform architecture, and related metadata.",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		// The update banner, if any, goes below the metadata block.
		defer version.Notify()

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			App      string
			Version  string
			Revision string
			BuiltAt  string
			BuiltBy  string
			OS       string
			Arch     string
		}{
			App:      constant.Twitchy,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
		}))
	},
}
