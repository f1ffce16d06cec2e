package twitch

import "time"

// User is a Twitch account as returned by /users.
type User struct {
	ID              string    `json:"id"`
	Login           string    `json:"login"`
	DisplayName     string    `json:"display_name"`
	Type            string    `json:"type"`
	BroadcasterType string    `json:"broadcaster_type"`
	Description     string    `json:"description"`
	ProfileImageURL string    `json:"profile_image_url"`
	OfflineImageURL string    `json:"offline_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// Stream is an active broadcast as returned by /streams.
type Stream struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserLogin    string    `json:"user_login"`
	UserName     string    `json:"user_name"`
	GameID       string    `json:"game_id"`
	GameName     string    `json:"game_name"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Tags         []string  `json:"tags"`
	ViewerCount  int       `json:"viewer_count"`
	StartedAt    time.Time `json:"started_at"`
	Language     string    `json:"language"`
	ThumbnailURL string    `json:"thumbnail_url"`
	IsMature     bool      `json:"is_mature"`
}

// FollowedChannel is one entry of the authenticated user's follow list.
type FollowedChannel struct {
	BroadcasterID    string    `json:"broadcaster_id"`
	BroadcasterLogin string    `json:"broadcaster_login"`
	BroadcasterName  string    `json:"broadcaster_name"`
	FollowedAt       time.Time `json:"followed_at"`
}

// Video is a VOD, highlight or upload as returned by /videos.
type Video struct {
	ID           string    `json:"id"`
	StreamID     string    `json:"stream_id"`
	UserID       string    `json:"user_id"`
	UserLogin    string    `json:"user_login"`
	UserName     string    `json:"user_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	PublishedAt  time.Time `json:"published_at"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Viewable     string    `json:"viewable"`
	ViewCount    int       `json:"view_count"`
	Language     string    `json:"language"`
	Type         string    `json:"type"`
	Duration     string    `json:"duration"`
}

// Clip is a channel clip as returned by /clips.
type Clip struct {
	ID              string    `json:"id"`
	URL             string    `json:"url"`
	EmbedURL        string    `json:"embed_url"`
	BroadcasterID   string    `json:"broadcaster_id"`
	BroadcasterName string    `json:"broadcaster_name"`
	CreatorID       string    `json:"creator_id"`
	CreatorName     string    `json:"creator_name"`
	VideoID         string    `json:"video_id"`
	GameID          string    `json:"game_id"`
	Language        string    `json:"language"`
	Title           string    `json:"title"`
	ViewCount       int       `json:"view_count"`
	CreatedAt       time.Time `json:"created_at"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Duration        float64   `json:"duration"`
}

// Game is a category as returned by /games and /games/top.
type Game struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BoxArtURL string `json:"box_art_url"`
	IGDBID    string `json:"igdb_id"`
}

// GameReference is the compact category reference embedded in schedules.
type GameReference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ScheduleSegment is one scheduled broadcast in a channel's stream schedule.
type ScheduleSegment struct {
	ID            string         `json:"id"`
	StartTime     time.Time      `json:"start_time"`
	EndTime       time.Time      `json:"end_time"`
	Title         string         `json:"title"`
	CanceledUntil *string        `json:"canceled_until"`
	Category      *GameReference `json:"category"`
	IsRecurring   bool           `json:"is_recurring"`
}

// ScheduleVacation marks the period a broadcaster has paused their schedule.
type ScheduleVacation struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Schedule is a broadcaster's stream schedule. Unlike other listings, Helix
// nests the segments inside a data object.
type Schedule struct {
	Segments         []ScheduleSegment `json:"segments"`
	BroadcasterID    string            `json:"broadcaster_id"`
	BroadcasterName  string            `json:"broadcaster_name"`
	BroadcasterLogin string            `json:"broadcaster_login"`
	Vacation         *ScheduleVacation `json:"vacation"`
}

// ChannelURL is the canonical page URL for a channel, the form the
// stream-extraction pipeline accepts as its target.
func ChannelURL(login string) string {
	return "https://www.twitch.tv/" + login
}

// VideoURL is the canonical page URL for a VOD.
func VideoURL(id string) string {
	return "https://www.twitch.tv/videos/" + id
}

// ClipURL is the canonical page URL for a clip.
func ClipURL(slug string) string {
	return "https://clips.twitch.tv/" + slug
}

// ChatURL is the popout chat page for a channel.
func ChatURL(login string) string {
	return "https://www.twitch.tv/popout/" + login + "/chat"
}
