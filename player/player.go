// Package player drives external playback tooling: streamlink for stream
// extraction/recording and mpv (controlled over its JSON-IPC socket) for
// watching. An IINA fallback exists for macOS users who prefer the native app.
package player

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/key"
)

// Player encapsulates the required capabilities for a media playback backend.
type Player interface {
	// Play starts playback of the given URL with the specified title.
	// If a player instance is already running, it loads the new file into it.
	Play(url string, title string, headers map[string]string) error

	// TogglePause inverts the current playback suspension state.
	TogglePause() error

	// GetTimePos retrieves the current absolute playback position in seconds.
	GetTimePos() (float64, error)

	// GetDuration retrieves the total temporal length of the active media in
	// seconds. Live streams have no duration and return an error.
	GetDuration() (float64, error)

	// GetPercentWatched calculates the relative playback completion percentage (0-100).
	// Only meaningful for VODs and clips.
	GetPercentWatched() (float64, error)

	// GetPausedStatus retrieves the current suspension state of the playback engine.
	GetPausedStatus() (bool, error)

	// HasActivePlayback verifies if the player has media currently initialized and active.
	HasActivePlayback() (bool, error)

	// Seek transitions the playback position to a specific absolute timestamp in seconds.
	Seek(seconds float64) error

	// IsRunning validates the liveness of the underlying playback process or handler.
	IsRunning() bool

	// Close terminates the playback engine and releases all associated system resources.
	Close() error

	// Socket retrieves the identifier for the Inter-Process Communication (IPC) channel.
	Socket() string

	// StartIPCTicker initializes a background synchronization task to poll playback metrics.
	// It executes the provided callback at regular intervals (typically 1Hz) with current state data.
	StartIPCTicker(callback func(timePos int, duration int))

	// StopIPCTicker terminates the background synchronization task.
	StopIPCTicker()

	// Wait returns a channel that is closed when the playback session terminates.
	Wait() <-chan struct{}
}

// PlaybackError reports an external playback command that terminated with a
// non-zero status. Code carries the subprocess exit code verbatim so the CLI
// can relay it as its own exit status.
type PlaybackError struct {
	Command string
	Code    int
	Detail  string
}

func (e *PlaybackError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Command, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}

// playbackError converts a subprocess failure into a *PlaybackError when the
// command actually ran and exited non-zero. Errors that never reached the
// exec stage (binary missing, permission denied) pass through untouched.
func playbackError(command string, err error, detail string) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &PlaybackError{Command: command, Code: exitErr.ExitCode(), Detail: detail}
	}

	return err
}

// ForConfig returns the playback backend selected by the player.path option.
// A path whose base name is "iina" on macOS is launched through
// LaunchServices; anything else is treated as an mpv-compatible binary
// driven over JSON-IPC.
func ForConfig() Player {
	if isIINA(viper.GetString(key.PlayerPath)) && runtime.GOOS == constant.Darwin {
		return NewIINA()
	}

	return NewMPV()
}

func isIINA(path string) bool {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return base == "iina"
}
