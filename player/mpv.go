package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV drives an mpv process over its JSON-IPC socket.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when the mpv process exits

	mu sync.Mutex // serializes IPC round-trips

	tickMu     sync.Mutex
	tickerStop chan struct{}
}

// NewMPV returns an idle driver; nothing is launched until Play.
func NewMPV() *MPV {
	return &MPV{
		exited: make(chan struct{}),
	}
}

// Play launches mpv on the given URL. The URL comes from the stream
// resolver's stdout, so it is vetted before it may enter the argv.
func (m *MPV) Play(rawURL string, title string, headers map[string]string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if m.socketPath == "" {
		socket, err := newSocketPath()
		if err != nil {
			return err
		}
		m.socketPath = socket
	}

	m.cmd = exec.Command(viper.GetString(key.PlayerPath), m.buildArgs(target, sanitizeTitle(title), headers)...)

	// Own process group: interrupting twitchy must not tear down playback.
	m.cmd.SysProcAttr = sysProcAttr()

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	go func(cmd *exec.Cmd) {
		_ = cmd.Wait()
		close(exited)
	}(m.cmd)

	if err := m.waitForSocket(); err != nil {
		select {
		case <-exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = m.cmd.Process.Kill()
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return nil
}

// buildArgs assembles the mpv invocation. Rendering preferences (vo, ao,
// hwdec, key binds) live in the managed profile, not on the command line.
func (m *MPV) buildArgs(target, title string, headers map[string]string) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + m.socketPath,
		"--force-media-title=" + title,
		"--title=" + title, // some mpv builds only respect --title
		"--force-window=yes",
		"--idle=yes",
	}

	if viper.GetBool(key.PlayerWriteConfig) {
		if err := WriteProfile(); err != nil {
			log.Warnf("player profile not written: %v", err)
		} else {
			args = append(args, profileArg())
		}
	}

	if fields := httpHeaderFields(headers); fields != "" {
		args = append(args, "--http-header-fields="+fields)
	}

	return append(args, target)
}

// httpHeaderFields renders headers in mpv's comma-separated notation. Commas
// inside values would split the list, so they are percent-encoded.
func httpHeaderFields(headers map[string]string) string {
	if len(headers) == 0 {
		return ""
	}

	fields := make([]string, 0, len(headers))
	for k, v := range headers {
		fields = append(fields, k+": "+strings.ReplaceAll(v, ",", "%2C"))
	}
	sort.Strings(fields)

	return strings.Join(fields, ",")
}

// newSocketPath places the IPC socket in the application's temp directory,
// which gets swept on exit so sockets from crashed sessions do not pile up.
func newSocketPath() (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generate socket name: %w", err)
	}
	return filepath.Join(where.Temp(), fmt.Sprintf("mpv-%x.sock", suffix)), nil
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// waitForSocket polls until the IPC socket accepts connections, giving up
// early when the process dies first (bad URL, broken install).
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// GetTimePos returns the current playback position in seconds.
func (m *MPV) GetTimePos() (float64, error) {
	return m.floatProperty("time-pos")
}

// GetDuration returns the media length in seconds. Live streams have none
// and report an error.
func (m *MPV) GetDuration() (float64, error) {
	return m.floatProperty("duration")
}

// GetPercentWatched reports playback completion in percent. Only meaningful
// for VODs; live media has no duration to complete.
func (m *MPV) GetPercentWatched() (float64, error) {
	pos, err := m.GetTimePos()
	if err != nil {
		return 0, err
	}

	dur, err := m.GetDuration()
	if err != nil || dur <= 0 {
		return 0, err
	}

	return (pos / dur) * 100, nil
}

// GetPausedStatus reports whether playback is paused.
func (m *MPV) GetPausedStatus() (bool, error) {
	data, err := m.sendCommand([]any{"get_property", "pause"})
	if err != nil {
		return false, err
	}

	paused, ok := data.(bool)
	if !ok {
		return false, nil
	}
	return paused, nil
}

// HasActivePlayback reports whether media is loaded. "property unavailable"
// is the idle state, not an error.
func (m *MPV) HasActivePlayback() (bool, error) {
	data, err := m.sendCommand([]any{"get_property", "time-pos"})
	if err != nil {
		if strings.Contains(err.Error(), "property unavailable") {
			return false, nil
		}
		return false, err
	}
	return data != nil, nil
}

// Seek jumps to an absolute position in seconds.
func (m *MPV) Seek(seconds float64) error {
	_, err := m.sendCommand([]any{"seek", seconds, "absolute"})
	return err
}

// TogglePause flips the pause state.
func (m *MPV) TogglePause() error {
	_, err := m.sendCommand([]any{"cycle", "pause"})
	return err
}

// Set assigns an mpv property, such as an audio filter chain or the
// playback speed.
func (m *MPV) Set(property string, value any) error {
	_, err := m.sendCommand([]any{"set_property", property, value})
	return err
}

// IsRunning reports whether mpv is still answering on the socket.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]any{"get_property", "pid"})
	return err == nil
}

// StartIPCTicker polls position and duration once a second and feeds them to
// callback. Live media reports a zero duration.
func (m *MPV) StartIPCTicker(callback func(timePos int, duration int)) {
	m.tickMu.Lock()
	defer m.tickMu.Unlock()

	if m.tickerStop != nil {
		return
	}

	stop := make(chan struct{})
	m.tickerStop = stop
	go m.tick(stop, m.exited, callback)
}

func (m *MPV) tick(stop, exited <-chan struct{}, callback func(timePos, duration int)) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-exited:
			return
		case <-ticker.C:
			pos, err := m.GetTimePos()
			if err != nil {
				continue
			}

			dur, err := m.GetDuration()
			if err != nil {
				dur = 0
			}

			callback(int(pos), int(dur))
		}
	}
}

// StopIPCTicker stops the polling goroutine. Safe to call twice.
func (m *MPV) StopIPCTicker() {
	m.tickMu.Lock()
	defer m.tickMu.Unlock()

	if m.tickerStop != nil {
		close(m.tickerStop)
		m.tickerStop = nil
	}
}

// Close asks mpv to quit, escalating to a kill when it does not comply, and
// removes the socket file.
func (m *MPV) Close() error {
	m.StopIPCTicker()

	if m.socketPath == "" {
		return nil
	}

	_, _ = m.sendCommand([]any{"quit"})

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)

	return nil
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

func (m *MPV) floatProperty(name string) (float64, error) {
	data, err := m.sendCommand([]any{"get_property", name})
	if err != nil {
		return 0, err
	}

	if data == nil {
		return 0, fmt.Errorf("property %s: nil response", name)
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}

	return val, nil
}

// sanitizeMediaTarget vets a URL before it may enter the player argv. The
// direct media URL comes from the resolver's stdout and must not look like
// a flag.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	// Anything without a scheme is treated as a local file path.
	return filepath.Clean(l), nil
}

// sanitizeTitle flattens a stream title to a single line the IPC protocol
// and window managers can stomach.
func sanitizeTitle(title string) string {
	t := strings.ReplaceAll(title, "\n", " ")
	t = strings.ReplaceAll(t, "\r", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	t = strings.ReplaceAll(t, "\x00", "")
	return strings.TrimSpace(t)
}
