// Package query remembers the channel names the user has searched for and
// serves them back as ranked suggestions while typing.
package query

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/where"
)

// maxRemembered caps the store at a few screenfuls of channels. Anything
// past that is noise nobody will cycle back to.
const maxRemembered = 100

type entry struct {
	Hits     int       `json:"hits"`
	Query    string    `json:"query"`
	LastSeen time.Time `json:"last_seen"`
}

var store = gache.New[map[string]*entry](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// matches avoids re-ranking while the user is cycling through suggestions
// for the same partial input. Remember invalidates it.
var matches = make(map[string][]*entry)

// Remember records a searched channel name or bumps its popularity.
func Remember(q string, weight int) error {
	q = sanitize(q)

	entries, expired, err := store.Get()
	if expired || err != nil || entries == nil {
		entries = make(map[string]*entry)
	}

	if e, ok := entries[q]; ok {
		e.Hits += weight
		e.LastSeen = time.Now()
	} else {
		entries[q] = &entry{Hits: weight, Query: q, LastSeen: time.Now()}
	}

	evict(entries)
	clear(matches)

	return store.Set(entries)
}

// Suggest returns the single best remembered channel name for a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered channel names fuzzily matching the partial
// input. Ties in popularity go to the channel seen most recently.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return nil
	}

	q = sanitize(q)

	ranked, ok := matches[q]
	if !ok {
		entries, expired, err := store.Get()
		if err != nil || expired || entries == nil {
			return nil
		}

		for _, e := range entries {
			if fuzzy.Match(q, e.Query) {
				ranked = append(ranked, e)
			}
		}

		slices.SortFunc(ranked, byRelevance)
		matches[q] = ranked
	}

	return lo.Map(ranked, func(e *entry, _ int) string {
		return e.Query
	})
}

// byRelevance orders by hits, most recently seen first among equals.
func byRelevance(a, b *entry) int {
	if a.Hits != b.Hits {
		return b.Hits - a.Hits
	}
	return b.LastSeen.Compare(a.LastSeen)
}

// evict drops the least relevant entries once the store outgrows its cap.
func evict(entries map[string]*entry) {
	if len(entries) <= maxRemembered {
		return
	}

	ranked := lo.Values(entries)
	slices.SortFunc(ranked, byRelevance)

	for _, e := range ranked[maxRemembered:] {
		delete(entries, e.Query)
	}
}

// sanitize folds input the way Twitch logins are written: lowercase, no
// surrounding whitespace.
func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
