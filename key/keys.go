// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 29

// Authentication - these keys govern how OAuth tokens are obtained and stored.
const (
	AuthFlow        = "auth.flow"
	AuthOpenBrowser = "auth.open_browser"
)

// Listing - these keys define paging behavior for Helix list requests.
const (
	ListFirst = "list.first"
)

// Stream Extraction - these keys configure the external streamlink pipeline.
const (
	StreamlinkPath       = "streamlink.path"
	StreamlinkQuality    = "streamlink.quality"
	StreamlinkTimeout    = "streamlink.timeout"
	StreamlinkDisableAds = "streamlink.disable_ads"
	StreamlinkExtraArgs  = "streamlink.extra_args"
)

// Media Playback - these keys maintain the configuration for the external mpv player.
const (
	PlayerPath            = "player.path"
	PlayerFullscreen      = "player.fullscreen"
	PlayerVideoOutput     = "player.video_output"
	PlayerAudioOutput     = "player.audio_output"
	PlayerHwaccel         = "player.hwaccel"
	PlayerSubtitles       = "player.subtitles"
	PlayerLoopPlaylist    = "player.loop_playlist"
	PlayerStopScreensaver = "player.stop_screensaver"
	PlayerVolumeStep      = "player.volume_step"
	PlayerSkipSilence     = "player.skip_silence"
	PlayerWriteConfig     = "player.write_config"
)

// History Tracking - these keys configure the persistence of playback state.
const (
	HistorySaveOnWatch = "history.save_on_watch"
)

// Search Interaction - these keys define the UI/UX parameters for channel discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Interactive (Watch) Mode - these keys configure the lightweight selection loop.
const (
	WatchSearchLimit = "watch.search_limit"
	WatchOpenChat    = "watch.open_chat"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
