// Package version answers whether a newer release of the application exists.
package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"

	"github.com/twitchy-cli/twitchy/constant"
	"github.com/twitchy-cli/twitchy/filesystem"
	"github.com/twitchy-cli/twitchy/network"
	"github.com/twitchy-cli/twitchy/util"
	"github.com/twitchy-cli/twitchy/where"
)

const releasesEndpoint = "https://api.github.com/repos/twitchy-cli/twitchy/releases/latest"

// latestCache keeps the release lookup off the hot path. Two days is fresh
// enough for an update hint and stays well inside GitHub's rate limits.
var latestCache = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest reports the newest released version, without the tag's "v" prefix.
func Latest() (string, error) {
	cached, expired, err := latestCache.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	req, err := http.NewRequest(http.MethodGet, releasesEndpoint, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	// Rate-limited and not-found responses still carry a JSON body,
	// just not one with a usable tag in it.
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup returned %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", fmt.Errorf("release has no tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = latestCache.Set(latest)
	return latest, nil
}
