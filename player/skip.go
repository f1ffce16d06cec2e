package player

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/log"
)

// Twitch mutes VOD segments that trip audio content detection. Instead of
// sitting through the dead air in real time, rush through it with an audio
// silence detector attached and jump to where the sound comes back.
const (
	silenceFilter = "lavfi=[silencedetect=n=-20dB:d=1]"
	silenceSpeed  = 100

	// SilenceLogLevel is the mpv log level at which silencedetect reports
	// arrive. The detector speaks through the player log, not through
	// property events, so callers must subscribe via ObserveLogs.
	SilenceLogLevel = "warn"
)

// SilenceSkipper fast-forwards through a muted VOD segment. It is one-shot:
// armed by Start, it waits for the first silence_end report, seeks there,
// restores normal playback and disarms.
type SilenceSkipper struct {
	mpv    *MPV
	mu     sync.Mutex
	active bool
}

// NewSilenceSkipper creates a skipper bound to the given mpv instance.
func NewSilenceSkipper(mpv *MPV) *SilenceSkipper {
	return &SilenceSkipper{mpv: mpv}
}

// Start applies the detection filter and the speed-up. Playback stays
// accelerated until HandleLog sees a silence_end report or Stop is called.
func (s *SilenceSkipper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return nil
	}

	if err := s.mpv.Set("af", silenceFilter); err != nil {
		return fmt.Errorf("set silence filter: %w", err)
	}
	if err := s.mpv.Set("speed", silenceSpeed); err != nil {
		return fmt.Errorf("set speed: %w", err)
	}

	s.active = true
	return nil
}

// HandleLog inspects a single player log line. On the first silence_end
// report it seeks to the reported position and restores normal playback.
func (s *SilenceSkipper) HandleLog(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	end, ok := parseSilenceEnd(text)
	if !ok {
		return
	}

	log.Infof("silence ended at %.2fs, resuming there", end)
	if err := s.mpv.Seek(end); err != nil {
		log.Warnf("silence skip seek: %v", err)
	}

	s.restore()
	s.active = false
}

// Stop disarms the skipper and restores playback speed and filters, whether
// or not a silence report ever arrived.
func (s *SilenceSkipper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	s.restore()
	s.active = false
}

func (s *SilenceSkipper) restore() {
	if err := s.mpv.Set("speed", 1); err != nil {
		log.Warnf("restore speed: %v", err)
	}
	if err := s.mpv.Set("af", ""); err != nil {
		log.Warnf("restore audio filter: %v", err)
	}
}

// SkipLeadingSilence arms the dead-air skipper on an mpv-backed playback when
// the feature is enabled. The returned stop function restores playback state
// and is safe to call no matter what happened.
func SkipLeadingSilence(backend Player) (stop func()) {
	stop = func() {}

	if !viper.GetBool(key.PlayerSkipSilence) {
		return stop
	}

	mpv, ok := backend.(*MPV)
	if !ok {
		// IINA exposes no IPC socket to drive the skip over.
		return stop
	}

	skipper := NewSilenceSkipper(mpv)
	listener := NewEventListener(mpv.Socket(), func(name string, data any) {
		if name != "log-message" {
			return
		}
		if text, ok := data.(string); ok {
			skipper.HandleLog(text)
		}
	})

	if err := listener.Start(); err != nil {
		log.Warnf("silence skip disabled: %v", err)
		return stop
	}

	if err := listener.ObserveLogs(SilenceLogLevel); err != nil {
		log.Warnf("silence skip disabled: %v", err)
		listener.Stop()
		return stop
	}

	if err := skipper.Start(); err != nil {
		log.Warnf("silence skip disabled: %v", err)
		listener.Stop()
		return stop
	}

	return func() {
		skipper.Stop()
		listener.Stop()
	}
}

// parseSilenceEnd extracts the position from a silencedetect report line,
// e.g. "silence_end: 217.58 | silence_duration: 3.01".
func parseSilenceEnd(text string) (float64, bool) {
	tokens := strings.Fields(text)
	for i, token := range tokens {
		if token != "silence_end:" || i+1 >= len(tokens) {
			continue
		}

		end, err := strconv.ParseFloat(tokens[i+1], 64)
		if err != nil {
			return 0, false
		}
		return end, true
	}
	return 0, false
}
