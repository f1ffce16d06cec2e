// Package constant holds the identifiers baked into the binary.
package constant

const (
	// Twitchy names the application everywhere a name is needed: paths,
	// env prefixes, user agents, branding.
	Twitchy = "twitchy"

	// Version is the release this tree builds.
	Version = "0.1.0"

	// UserAgent identifies the application on outgoing HTTP requests.
	UserAgent = Twitchy + "/" + Version
)
