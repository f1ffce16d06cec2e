// Package filesystem routes every disk access through one swappable afero
// backend, so tests can run against an in-memory filesystem instead of the
// real one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active filesystem backend.
func API() afero.Afero {
	return backend
}

// SetOsFs points the backend at the real operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs swaps in a volatile in-memory backend. Test packages call this
// from init so nothing they write survives the process.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
