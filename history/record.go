package history

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/twitchy-cli/twitchy/twitch"
)

// SavedWatch is a single channel's entry in the watch history.
type SavedWatch struct {
	SessionID      string    `json:"session_id"`
	Login          string    `json:"login"`
	DisplayName    string    `json:"display_name"`
	Game           string    `json:"game"`
	Title          string    `json:"title"`
	Quality        string    `json:"quality"`
	WatchedSeconds int       `json:"watched_seconds"`
	SavedAt        time.Time `json:"saved_at"`
}

// NewSavedWatch opens a history record for a playback session of the given
// stream. WatchedSeconds starts at zero and is bumped as the session runs.
func NewSavedWatch(stream *twitch.Stream, quality string) *SavedWatch {
	return &SavedWatch{
		SessionID:   uuid.NewString(),
		Login:       stream.UserLogin,
		DisplayName: stream.UserName,
		Game:        stream.GameName,
		Title:       stream.Title,
		Quality:     quality,
		SavedAt:     time.Now(),
	}
}

// String renders the record for menus and the continue prompt.
func (s *SavedWatch) String() string {
	watched := (time.Duration(s.WatchedSeconds) * time.Second).String()
	return fmt.Sprintf("%s - [%s] : watched %s, %s", s.DisplayName, s.Game, watched, humanize.Time(s.SavedAt))
}
