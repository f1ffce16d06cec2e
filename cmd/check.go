package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/icon"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/style"
)

// CheckDependencies verifies that the external tools playback relies on are
// reachable. Streamlink extracts the stream, the configured player renders it;
// missing either one makes watch mode pointless, so the failure is loud.
func CheckDependencies() {
	for _, dep := range []string{
		viper.GetString(key.StreamlinkPath),
		viper.GetString(key.PlayerPath),
	} {
		if _, err := exec.LookPath(dep); err != nil {
			printMissingDependencyError(dep)
			os.Exit(1)
		}
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install " + dep
	case constant.Linux:
		installCmd = "sudo apt install " + dep // Generic, maybe check distro
	case constant.Windows:
		installCmd = "scoop install " + dep
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\n%s\n  %s",
			style.New().Foreground(style.Subtext).Render("To install it, try running:"),
			style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
