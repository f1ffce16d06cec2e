// Package history tracks which channels were watched, for how long and in
// what quality, so sessions can be resumed from the watch menu or --continue.
package history

import (
	"github.com/metafates/gache"

	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/where"
)

// cacher is the disk-backed registry of watch records, keyed by channel login.
var cacher = gache.New[map[string]*SavedWatch](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of watch records from the persistent store.
func Get() (map[string]*SavedWatch, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedWatch), nil
	}
	return cached, nil
}

// Save persists a watch record. Re-saves from the same playback session only
// ever increase the watched duration; a new session replaces the channel's
// record outright.
func Save(record *SavedWatch) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	if existing, exists := saved[record.Login]; exists && existing.SessionID == record.SessionID {
		if record.WatchedSeconds < existing.WatchedSeconds {
			record.WatchedSeconds = existing.WatchedSeconds
		}
	}

	saved[record.Login] = record
	return cacher.Set(saved)
}

// Remove permanently deletes a channel's record from the history registry.
func Remove(record *SavedWatch) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.Login)
	return cacher.Set(saved)
}

// Last returns the most recently saved record, if any.
func Last() (*SavedWatch, bool, error) {
	saved, err := Get()
	if err != nil {
		return nil, false, err
	}

	var last *SavedWatch
	for _, record := range saved {
		if last == nil || record.SavedAt.After(last.SavedAt) {
			last = record
		}
	}

	return last, last != nil, nil
}
