// Package cache maintains the on-disk cache directory.
//
// The gache-backed stores (user and game lookups, the version check) expire
// their entries logically but never remove the files; this package sweeps the
// leftovers so the cache directory does not grow forever. The temp directory
// gets the same treatment on a shorter leash, catching IPC sockets left
// behind by crashed sessions.
package cache

import (
	"path/filepath"
	"time"

	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/where"
)

// TTL is how long an untouched cache file may linger before the sweeper
// removes it. Generous on purpose: everything under the cache directory can
// be regenerated, but re-fetching costs API calls.
const TTL = 30 * 24 * time.Hour

// tempTTL is the leash for the temp directory. A day is far longer than any
// playback session, so a second running instance never sweeps a live socket.
const tempTTL = 24 * time.Hour

// CollectGarbage removes stale cache and temp files. It runs synchronously;
// callers that do not want to wait wrap it in a goroutine.
func CollectGarbage() {
	removed := sweep(where.Cache(), TTL) + sweep(where.Temp(), tempTTL)
	if removed > 0 {
		log.Infof("swept %d stale files", removed)
	}
}

func sweep(dir string, ttl time.Duration) (removed int) {
	fs := filesystem.API()

	entries, err := fs.ReadDir(dir)
	if err != nil {
		log.Warnf("sweep %s: %v", dir, err)
		return 0
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if time.Since(entry.ModTime()) <= ttl {
			continue
		}

		if err := fs.Remove(filepath.Join(dir, entry.Name())); err != nil {
			log.Warnf("sweep %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	return removed
}
