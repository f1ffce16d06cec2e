// Package watch implements the interactive selection and playback loop: a
// lightweight menu-driven state machine over the Helix client and the player.
package watch

import (
	"os"

	"github.com/twitchy-cli/twitchy/auth"
	"github.com/twitchy-cli/twitchy/twitch"
	"github.com/twitchy-cli/twitchy/util"
)

var truncateAt = 100

// Options configure the watch loop entry point.
type Options struct {
	// Continue jumps straight to the watch history instead of the mode menu.
	Continue bool
}

type watcher struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	client     *twitch.Client
	token      string
	validation *auth.Validation // nil until the token was introspected

	follows []*twitch.FollowedChannel // fetched once per run

	selectedStream *twitch.Stream
	selectedGame   *twitch.Game
	quality        string
}

func newWatcher(client *twitch.Client, token string) *watcher {
	return &watcher{
		statesHistory: util.Stack[state]{},
		client:        client,
		token:         token,
	}
}

// previousState pops the navigation stack, falling back to the mode menu
// when there is nowhere left to go back to.
func (w *watcher) previousState() {
	if w.statesHistory.Len() > 0 {
		w.setState(w.statesHistory.Pop())
		return
	}
	w.setState(modeSelectState)
}

func (w *watcher) setState(s state) {
	w.state = s
}

func (w *watcher) newState(s state) {
	if w.state == s {
		return
	}

	w.statesHistory.Push(w.state)
	w.setState(s)
}

// Run starts the interactive loop. It authenticates from the credentials
// file, then drives the menu state machine until the user quits.
func Run(options *Options) error {
	if options == nil {
		options = &Options{}
	}

	creds, err := auth.LoadCredentials()
	if err != nil {
		return err
	}

	token, err := auth.ResolveToken(creds)
	if err != nil {
		return err
	}

	w := newWatcher(twitch.New(creds.ClientID, token), token)

	w.state = modeSelectState
	if options.Continue {
		w.state = historySelectState
	}

	if width, height, err := util.TerminalSize(); err == nil {
		w.width, w.height = width, height
		truncateAt = width
	}

	for {
		if err := w.handleState(); err != nil {
			return err
		}
	}
}

func (w *watcher) handleState() error {
	switch w.state {
	case modeSelectState:
		return w.handleModeSelectState()
	case channelSearchState:
		return w.handleChannelSearchState()
	case liveSelectState:
		return w.handleLiveSelectState()
	case followSelectState:
		return w.handleFollowSelectState()
	case gameSelectState:
		return w.handleGameSelectState()
	case gameStreamsState:
		return w.handleGameStreamsState()
	case historySelectState:
		return w.handleHistorySelectState()
	case playState:
		return w.handlePlayState()
	case quitState:
		os.Exit(0)
	}

	return nil
}
