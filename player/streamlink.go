package player

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/log"
)

// Streamlink wraps the external streamlink executable, which owns the
// Twitch-specific HLS plumbing: playlist access tokens, ad segment
// filtering and quality selection.
type Streamlink struct {
	// UserToken, when set, is forwarded to the Twitch plugin so that
	// subscriber and turbo benefits (ad-free, sub-only qualities) apply.
	UserToken string
}

// args assembles the argv for a single invocation. Session options come
// first, then any mode-specific flags, then the target URL and quality.
func (s *Streamlink) args(target, quality string, mode ...string) []string {
	if quality == "" {
		quality = viper.GetString(key.StreamlinkQuality)
	}

	args := []string{
		"--stream-timeout", strconv.Itoa(viper.GetInt(key.StreamlinkTimeout)),
	}

	if viper.GetBool(key.StreamlinkDisableAds) {
		args = append(args, "--twitch-disable-ads")
	}

	if s.UserToken != "" {
		// The Twitch plugin wants the legacy OAuth scheme here, not Bearer.
		args = append(args, "--twitch-api-header", "Authorization=OAuth "+s.UserToken)
	}

	args = append(args, viper.GetStringSlice(key.StreamlinkExtraArgs)...)
	args = append(args, mode...)

	return append(args, target, quality)
}

// ResolveURL asks streamlink for the direct media URL of the given target
// without starting playback. The URL is the last line of stdout; plugin
// warnings may precede it.
func (s *Streamlink) ResolveURL(target, quality string) (string, error) {
	bin := viper.GetString(key.StreamlinkPath)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin, s.args(target, quality, "--stream-url")...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Infof("resolving %s via %s", target, bin)

	if err := cmd.Run(); err != nil {
		return "", playbackError(bin, err, lastLine(stderr.String()))
	}

	resolved := lastLine(stdout.String())
	if resolved == "" {
		return "", fmt.Errorf("%s produced no stream URL for %s", bin, target)
	}

	return resolved, nil
}

// Record pipes the stream into the given output file until the stream ends
// or the user interrupts. Stdio is inherited so streamlink's own progress
// output stays visible.
func (s *Streamlink) Record(target, quality, output string) error {
	bin := viper.GetString(key.StreamlinkPath)

	cmd := exec.Command(bin, s.args(target, quality, "--output", output)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Infof("recording %s to %s", target, output)

	return playbackError(bin, cmd.Run(), "")
}

// Play hands the stream directly to the configured player binary and blocks
// until the session ends. This is the plain path with no IPC control; the
// interactive loop prefers ResolveURL plus the MPV wrapper.
func (s *Streamlink) Play(target, quality string) error {
	bin := viper.GetString(key.StreamlinkPath)
	playerBin := viper.GetString(key.PlayerPath)

	mode := []string{"--player", playerBin}

	// IINA does not understand mpv's --config-dir, so the managed profile
	// only applies to mpv-compatible binaries.
	if viper.GetBool(key.PlayerWriteConfig) && !isIINA(playerBin) {
		if err := WriteProfile(); err != nil {
			log.Warnf("player profile not written: %v", err)
		} else {
			mode = append(mode, "--player-args", profileArg())
		}
	}

	cmd := exec.Command(bin, s.args(target, quality, mode...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Infof("playing %s with %s via %s", target, playerBin, bin)

	return playbackError(bin, cmd.Run(), "")
}

// lastLine returns the last non-empty line of command output.
func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
