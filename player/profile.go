package player

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/where"
)

// WriteProfile materializes the managed mpv profile (mpv.conf, input.conf)
// in the config dir. Files that already exist are left alone so user edits
// survive upgrades; delete a file to regenerate it from config.
func WriteProfile() error {
	files := []struct {
		name   string
		render func() string
	}{
		{"mpv.conf", mpvConf},
		{"input.conf", inputConf},
	}

	for _, file := range files {
		path := filepath.Join(where.Player(), file.name)

		exists, err := filesystem.API().Exists(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if exists {
			continue
		}

		if err := filesystem.API().WriteFile(path, []byte(file.render()), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Infof("wrote player profile file %s", path)
	}

	return nil
}

// profileArg is the player argument that activates the managed profile.
func profileArg() string {
	return fmt.Sprintf("--config-dir=%s", where.Player())
}

func mpvConf() string {
	var b strings.Builder
	put := func(option string, value any) {
		fmt.Fprintf(&b, "%s=%v\n", option, value)
	}

	b.WriteString("# Managed by twitchy. Delete to regenerate from config.\n")
	put("vo", viper.GetString(key.PlayerVideoOutput))
	put("ao", viper.GetString(key.PlayerAudioOutput))
	put("hwdec", viper.GetString(key.PlayerHwaccel))
	put("sid", viper.GetString(key.PlayerSubtitles))
	put("loop-playlist", viper.GetString(key.PlayerLoopPlaylist))
	put("stop-screensaver", yesNo(viper.GetBool(key.PlayerStopScreensaver)))
	put("fullscreen", yesNo(viper.GetBool(key.PlayerFullscreen)))
	put("screenshot-format", "png")

	return b.String()
}

func inputConf() string {
	step := viper.GetInt(key.PlayerVolumeStep)

	var b strings.Builder
	b.WriteString("# Managed by twitchy. Delete to regenerate from config.\n")
	b.WriteString("q show-text \"THERE IS NO ESCAPE\"\n")
	b.WriteString("Q quit\n")
	b.WriteString("s screenshot\n")
	fmt.Fprintf(&b, "9 add volume -%d\n", step)
	fmt.Fprintf(&b, "0 add volume %d\n", step)

	return b.String()
}

// yesNo renders a bool in mpv's flag syntax.
func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
