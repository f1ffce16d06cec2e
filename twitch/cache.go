package twitch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"

	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/where"
)

// cacheData defines the structured format for persisting cached Helix lookups to disk.
type cacheData[K comparable, T any] struct {
	Lookups map[K]T `json:"lookups"`
}

// cacher provides a generic, thread-safe wrapper for high-level caching operations.
type cacher[K comparable, T any] struct {
	internal   *gache.Cache[*cacheData[K, T]]
	keyWrapper func(K) K
	mu         sync.RWMutex
}

// Get retrieves a value from the cache associated with the specified key.
func (c *cacher[K, T]) Get(key K) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	value, ok := data.Lookups[c.keyWrapper(key)]
	if ok {
		return mo.Some(value)
	}

	return mo.None[T]()
}

// Set persists a key-value pair to the cache.
func (c *cacher[K, T]) Set(key K, t T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if !expired && data != nil {
		data.Lookups[c.keyWrapper(key)] = t
		return c.internal.Set(data)
	}

	internal := &cacheData[K, T]{Lookups: make(map[K]T)}
	internal.Lookups[c.keyWrapper(key)] = t
	return c.internal.Set(internal)
}

// Delete removes the entry associated with the specified key from the cache.
func (c *cacher[K, T]) Delete(key K) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if !expired && data != nil {
		delete(data.Lookups, c.keyWrapper(key))
		return c.internal.Set(data)
	}

	return nil
}

// normalizedKey folds lookup keys the way Helix matches them.
func normalizedKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// userCacher persists login-to-user resolutions. Logins rarely move between
// accounts, so a day of lifetime is safe.
var userCacher = &cacher[string, *User]{
	internal: gache.New[*cacheData[string, *User]](
		&gache.Options{
			Path:       filepath.Join(where.Cache(), "user_cache.json"),
			Lifetime:   time.Hour * 24,
			FileSystem: &filesystem.GacheFs{},
		},
	),
	keyWrapper: normalizedKey,
}

// gameCacher persists game name-to-record resolutions. Category ids never
// change once assigned.
var gameCacher = &cacher[string, *Game]{
	internal: gache.New[*cacheData[string, *Game]](
		&gache.Options{
			Path:       filepath.Join(where.Cache(), "game_cache.json"),
			Lifetime:   time.Hour * 24 * 10,
			FileSystem: &filesystem.GacheFs{},
		},
	),
	keyWrapper: normalizedKey,
}
