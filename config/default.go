package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/style"
)

// Field is one settings entry: its key, default value and help text.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for the config info listing.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the environment variable that overrides this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Twitchy + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON emits the field with both its current and its default value,
// which is what "config info --json" shows.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	return reflect.TypeOf(f.Value).String()
}

// Parse converts raw CLI input into this field's value type, so "twitchy
// config set" can accept strings for every key.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: no value given", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return values[0], nil
	case int:
		parsed, err := strconv.ParseInt(values[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", f.Key, values[0])
		}
		return int(parsed), nil
	case bool:
		parsed, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects a boolean, got %q", f.Key, values[0])
		}
		return parsed, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("%s has unsupported type %s", f.Key, f.typeName())
	}
}

// Default indexes every registered field by its key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		// A duplicate key is a programming error, caught on startup.
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.AuthFlow, "device", "OAuth flow used by \"twitchy auth login\".\nAvailable options are: device, client-credentials.\nThe device flow grants a user token (required for followed channels);\nclient-credentials grants an app token")
	register(key.AuthOpenBrowser, true, "Open the verification URL in the default browser during device login")
	register(key.ListFirst, 20, "Default page size for Helix list requests (1-100)")
	register(key.StreamlinkPath, "streamlink", "Path to the streamlink executable")
	register(key.StreamlinkQuality, "best", "Default stream quality.\nExamples: best, worst, 1080p60, 720p, audio_only")
	register(key.StreamlinkTimeout, 30, "Stream timeout in seconds passed to streamlink")
	register(key.StreamlinkDisableAds, true, "Filter out advertisement segments (--twitch-disable-ads)")
	register(key.StreamlinkExtraArgs, []string{}, "Additional arguments appended to every streamlink invocation")
	register(key.PlayerPath, "mpv", "Path to the mpv executable")
	register(key.PlayerFullscreen, false, "Start playback in fullscreen")
	register(key.PlayerVideoOutput, "gpu,", "Video output driver preference list written to mpv.conf (vo)")
	register(key.PlayerAudioOutput, "alsa,", "Audio output driver preference list written to mpv.conf (ao)")
	register(key.PlayerHwaccel, "auto", "Hardware decoding mode written to mpv.conf (hwdec)")
	register(key.PlayerSubtitles, "auto", "Subtitle track selection written to mpv.conf (sid)")
	register(key.PlayerLoopPlaylist, "inf", "Playlist looping mode written to mpv.conf (loop-playlist)")
	register(key.PlayerStopScreensaver, true, "Keep the screensaver away during playback")
	register(key.PlayerVolumeStep, 5, "Volume change applied by the 9/0 key bindings written to input.conf")
	register(key.PlayerSkipSilence, false, "Fast-forward through muted segments in VODs using silencedetect")
	register(key.PlayerWriteConfig, true, "Write mpv.conf and input.conf on first run if they do not exist")
	register(key.HistorySaveOnWatch, true, "Save watch history when playback ends")
	register(key.SearchShowQuerySuggestions, true, "Show channel name suggestions when searching")
	register(key.WatchSearchLimit, 20, "Limit of menu entries to show in watch mode")
	register(key.WatchOpenChat, false, "Open the popout chat in the browser when watch mode starts a stream")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
