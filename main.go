// Package main is the entry point for the twitchy application.
package main

import (
	"github.com/samber/lo"

	"github.com/twitchy-cli/twitchy/cmd"
	"github.com/twitchy-cli/twitchy/config"
	"github.com/twitchy-cli/twitchy/internal/cache"
	"github.com/twitchy-cli/twitchy/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Cache maintenance is best-effort housekeeping; never block startup on it.
	go cache.CollectGarbage()

	cmd.Execute()
}
