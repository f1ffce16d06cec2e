package watch

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/twitchy-cli/twitchy/auth"
	"github.com/twitchy-cli/twitchy/format"
	"github.com/twitchy-cli/twitchy/history"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/open"
	"github.com/twitchy-cli/twitchy/player"
	"github.com/twitchy-cli/twitchy/query"
	"github.com/twitchy-cli/twitchy/twitch"
	"github.com/twitchy-cli/twitchy/util"
)

type state int

const (
	modeSelectState state = iota + 1
	channelSearchState
	liveSelectState
	followSelectState
	gameSelectState
	gameStreamsState
	historySelectState
	playState
	quitState
)

// watchMode is one entry of the idle menu.
type watchMode struct {
	label string
	state state
}

func (m *watchMode) String() string {
	return m.label
}

func (w *watcher) modes() []*watchMode {
	modes := []*watchMode{
		{"Followed live streams", liveSelectState},
		{"Followed channels", followSelectState},
		{"Top games", gameSelectState},
		{"Search channel", channelSearchState},
	}

	if records, err := history.Get(); err == nil && len(records) > 0 {
		modes = append(modes, &watchMode{"Continue watching", historySelectState})
	}

	return modes
}

// Menu wrappers rendering Helix records as single truncated lines.
type (
	streamItem  struct{ *twitch.Stream }
	followItem  struct{ *twitch.FollowedChannel }
	gameItem    struct{ *twitch.Game }
	historyItem struct{ *history.SavedWatch }
)

func (s streamItem) String() string {
	return format.Truncate(format.StreamDetailed(s.Stream), truncateAt)
}

func (f followItem) String() string {
	return format.Truncate(format.FollowedChannel(f.FollowedChannel), truncateAt)
}

func (g gameItem) String() string {
	return format.Truncate(format.Game(g.Game), truncateAt)
}

func (h historyItem) String() string {
	return format.Truncate(h.SavedWatch.String(), truncateAt)
}

// validate introspects the token once per run. Followed endpoints and the
// streamlink session header both depend on what kind of token this is.
func (w *watcher) validate() error {
	if w.validation != nil {
		return nil
	}

	erase := progress("Checking token..")
	validation, err := auth.Validate(w.token)
	erase()
	if err != nil {
		return err
	}

	w.validation = validation
	return nil
}

// requireUser resolves the authenticated user's id. App tokens have no user
// attached, so followed-channel listings need a device-flow login.
func (w *watcher) requireUser() (string, error) {
	if err := w.validate(); err != nil {
		return "", err
	}

	if w.validation.UserID == "" {
		return "", fmt.Errorf("followed channels need a user token; run \"twitchy auth login\" with the device flow")
	}

	return w.validation.UserID, nil
}

// userToken returns the token when it belongs to a user, for the streamlink
// Twitch session header. App tokens stay out of the stream session.
func (w *watcher) userToken() string {
	if err := w.validate(); err != nil || w.validation.Login == "" {
		return ""
	}
	return w.token
}

// followedChannels fetches (once per run) the first hundred follows, the
// most a single /streams liveness lookup can check anyway.
func (w *watcher) followedChannels() ([]*twitch.FollowedChannel, error) {
	if w.follows != nil {
		return w.follows, nil
	}

	userID, err := w.requireUser()
	if err != nil {
		return nil, err
	}

	page, err := w.client.FollowedChannels(userID, 100, "")
	if err != nil {
		return nil, err
	}

	w.follows = make([]*twitch.FollowedChannel, 0, len(page.Data))
	for i := range page.Data {
		w.follows = append(w.follows, &page.Data[i])
	}

	return w.follows, nil
}

func (w *watcher) handleModeSelectState() error {
	title("What to watch")

	b, mode, err := menu(w.modes())
	if err != nil {
		return err
	}

	if quit.eq(b) {
		w.newState(quitState)
		return nil
	}

	w.newState(mode.state)
	return nil
}

func (w *watcher) handleChannelSearchState() error {
	title("Search channel")

	var searchLoop func() error
	searchLoop = func() error {
		in, err := getInput(func(s string) bool {
			return strings.TrimSpace(s) != ""
		})
		if err != nil {
			return err
		}

		login := strings.ToLower(in.value)

		erase := progress(fmt.Sprintf("Looking up %s..", login))
		page, err := w.client.Streams(twitch.StreamsParams{UserLogins: []string{login}})
		erase()
		if err != nil {
			return err
		}

		if len(page.Data) == 0 {
			fail(format.Offline(login))
			return searchLoop()
		}

		if err := query.Remember(login, 1); err != nil {
			log.Warnf("remembering query: %v", err)
		}

		w.selectedStream = &page.Data[0]
		w.quality = ""
		w.newState(playState)
		return nil
	}

	return searchLoop()
}

func (w *watcher) handleLiveSelectState() error {
	erase := progress("Fetching followed live streams..")
	follows, err := w.followedChannels()
	if err != nil {
		erase()
		return err
	}

	logins := lo.Map(follows, func(c *twitch.FollowedChannel, _ int) string {
		return c.BroadcasterLogin
	})

	// An empty login filter would return the global top streams instead.
	if len(logins) == 0 {
		erase()
		fail("You are not following anyone")
		w.previousState()
		return nil
	}

	page, err := w.client.Streams(twitch.StreamsParams{UserLogins: logins, First: len(logins)})
	erase()
	if err != nil {
		return err
	}

	if len(page.Data) == 0 {
		fail("No followed channels are live right now")
		w.previousState()
		return nil
	}

	items := make([]streamItem, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, streamItem{&page.Data[i]})
	}

	title(fmt.Sprintf("Live now (%s)", util.Quantify(len(items), "stream", "streams")))
	b, item, err := menu(items, back)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		w.newState(quitState)
	case back.eq(b):
		w.previousState()
	default:
		w.selectedStream = item.Stream
		w.quality = ""
		w.newState(playState)
	}

	return nil
}

func (w *watcher) handleFollowSelectState() error {
	erase := progress("Fetching followed channels..")
	follows, err := w.followedChannels()
	erase()
	if err != nil {
		return err
	}

	if len(follows) == 0 {
		fail("You are not following anyone")
		w.previousState()
		return nil
	}

	items := lo.Map(follows, func(c *twitch.FollowedChannel, _ int) followItem {
		return followItem{c}
	})

	title("Followed channels")
	b, item, err := menu(items, back)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		w.newState(quitState)
		return nil
	case back.eq(b):
		w.previousState()
		return nil
	}

	login := item.BroadcasterLogin

	erase = progress(fmt.Sprintf("Checking %s..", login))
	page, err := w.client.Streams(twitch.StreamsParams{UserLogins: []string{login}})
	erase()
	if err != nil {
		return err
	}

	if len(page.Data) == 0 {
		fail(format.Offline(login))
		return nil // stay on the follow menu
	}

	w.selectedStream = &page.Data[0]
	w.quality = ""
	w.newState(playState)
	return nil
}

func (w *watcher) handleGameSelectState() error {
	erase := progress("Fetching top games..")
	page, err := w.client.TopGames(viper.GetInt(key.WatchSearchLimit), "")
	erase()
	if err != nil {
		return err
	}

	if len(page.Data) == 0 {
		fail("No games to show")
		w.previousState()
		return nil
	}

	items := make([]gameItem, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, gameItem{&page.Data[i]})
	}

	title("Top games")
	b, item, err := menu(items, back)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		w.newState(quitState)
	case back.eq(b):
		w.previousState()
	default:
		w.selectedGame = item.Game
		w.newState(gameStreamsState)
	}

	return nil
}

func (w *watcher) handleGameStreamsState() error {
	game := w.selectedGame

	erase := progress(fmt.Sprintf("Fetching %s streams..", game.Name))
	page, err := w.client.Streams(twitch.StreamsParams{
		GameIDs: []string{game.ID},
		First:   viper.GetInt(key.WatchSearchLimit),
	})
	erase()
	if err != nil {
		return err
	}

	if len(page.Data) == 0 {
		fail(fmt.Sprintf("Nobody is streaming %s", game.Name))
		w.previousState()
		return nil
	}

	items := make([]streamItem, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, streamItem{&page.Data[i]})
	}

	title(game.Name)
	b, item, err := menu(items, back)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		w.newState(quitState)
	case back.eq(b):
		w.previousState()
	default:
		w.selectedStream = item.Stream
		w.quality = ""
		w.newState(playState)
	}

	return nil
}

func (w *watcher) handleHistorySelectState() error {
	records, err := history.Get()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fail("Watch history is empty")
		w.previousState()
		return nil
	}

	sorted := lo.Values(records)
	slices.SortFunc(sorted, func(a, b *history.SavedWatch) int {
		return b.SavedAt.Compare(a.SavedAt)
	})

	items := lo.Map(sorted, func(r *history.SavedWatch, _ int) historyItem {
		return historyItem{r}
	})

	title("Continue watching")
	b, item, err := menu(items, back)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		w.newState(quitState)
		return nil
	case back.eq(b):
		w.previousState()
		return nil
	}

	erase := progress(fmt.Sprintf("Checking %s..", item.Login))
	page, err := w.client.Streams(twitch.StreamsParams{UserLogins: []string{item.Login}})
	erase()
	if err != nil {
		return err
	}

	if len(page.Data) == 0 {
		fail(format.Offline(item.Login))
		return nil // stay on the history menu
	}

	w.selectedStream = &page.Data[0]
	w.quality = item.Quality
	w.newState(playState)
	return nil
}

func (w *watcher) handlePlayState() error {
	stream := w.selectedStream
	target := twitch.ChannelURL(stream.UserLogin)

	quality := w.quality
	if quality == "" {
		quality = viper.GetString(key.StreamlinkQuality)
	}

	streamlink := &player.Streamlink{UserToken: w.userToken()}

	erase := progress(fmt.Sprintf("Resolving %s (%s)..", stream.UserLogin, quality))
	directURL, err := streamlink.ResolveURL(target, quality)
	erase()
	if err != nil {
		fail(err.Error())
		w.previousState()
		return nil
	}

	mediaTitle := format.Stream(stream)

	backend := player.ForConfig()
	if err := backend.Play(directURL, mediaTitle, nil); err != nil {
		return err
	}

	if viper.GetBool(key.WatchOpenChat) {
		if err := open.Start(twitch.ChatURL(stream.UserLogin)); err != nil {
			log.Warnf("opening chat: %v", err)
		}
	}

	record := history.NewSavedWatch(stream, quality)
	backend.StartIPCTicker(func(timePos, duration int) {
		if timePos > record.WatchedSeconds {
			record.WatchedSeconds = timePos
		}
	})

	util.ClearScreen()
	fmt.Println(format.Truncate(fmt.Sprintf("Watching %s", mediaTitle), truncateAt))
	erase = progress("Close the player to come back..")

	<-backend.Wait()

	backend.StopIPCTicker()
	util.Ignore(backend.Close)
	erase()

	if viper.GetBool(key.HistorySaveOnWatch) && record.WatchedSeconds > 0 {
		if err := history.Save(record); err != nil {
			log.Warnf("saving history: %v", err)
		}
	}

	title(fmt.Sprintf("Done watching %s", stream.UserName))
	b, _, err := menu([]fmt.Stringer{}, replay, back, search)
	if err != nil {
		return err
	}

	switch b {
	case replay:
		// playState runs again
	case back:
		w.previousState()
	case search:
		w.newState(channelSearchState)
	case quit:
		w.newState(quitState)
	}

	return nil
}
