// Package network holds the HTTP client shared by the Helix, OAuth and
// release-check calls.
package network

import (
	"net/http"
	"time"
)

// Client is the process-wide HTTP client. A single client means a single
// connection pool, so paging through listings reuses the Helix connection
// instead of redialing for every request.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	// Listings burst a handful of requests at api.twitch.tv; keep those
	// connections around between pages.
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 90 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
