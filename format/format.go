// Package format renders Twitch records as plain terminal lines.
package format

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/twitchy-cli/twitchy/twitch"
	"github.com/twitchy-cli/twitchy/util"
)

// Line renders the canonical channel line: "name - [game]", with the title
// appended after " : " when there is one.
func Line(name, game, title string) string {
	line := fmt.Sprintf("%s - [%s]", name, game)
	if title == "" {
		return line
	}
	return line + " : " + title
}

// Offline renders the not-live line for a channel.
func Offline(login string) string {
	return fmt.Sprintf("%s is not live", login)
}

// Stream renders a live stream as a plain line.
func Stream(s *twitch.Stream) string {
	return Line(s.UserName, s.GameName, s.Title)
}

// StreamDetailed appends the audience size and uptime to the stream line.
func StreamDetailed(s *twitch.Stream) string {
	return fmt.Sprintf(
		"%s (%s viewers, started %s)",
		Stream(s),
		humanize.Comma(int64(s.ViewerCount)),
		humanize.Time(s.StartedAt),
	)
}

// FollowedChannel renders one entry of the follow list.
func FollowedChannel(c *twitch.FollowedChannel) string {
	return fmt.Sprintf("%s (followed %s)", c.BroadcasterName, humanize.Time(c.FollowedAt))
}

// Game renders a category entry.
func Game(g *twitch.Game) string {
	return g.Name
}

// Video renders a VOD entry with its duration in clock form.
func Video(v *twitch.Video) string {
	return fmt.Sprintf(
		"%s [%s] (%s views, %s)",
		v.Title,
		Duration(v.Duration),
		humanize.Comma(int64(v.ViewCount)),
		humanize.Time(v.CreatedAt),
	)
}

var helixDuration = regexp.MustCompile(`^(?:(?P<hours>\d+)h)?(?:(?P<minutes>\d+)m)?(?:(?P<seconds>\d+)s)?$`)

// Duration converts Helix's compact duration notation ("3h8m33s") into clock
// form ("3:08:33"). Strings in any other shape pass through unchanged.
func Duration(raw string) string {
	groups := util.ReGroups(helixDuration, raw)
	h, m, s := groups["hours"], groups["minutes"], groups["seconds"]
	if h == "" && m == "" && s == "" {
		return raw
	}

	hours, minutes, seconds := atoi(h), atoi(m), atoi(s)
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// atoi is for digit runs the duration pattern already vetted; empty counts as zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// Clip renders a clip entry.
func Clip(c *twitch.Clip) string {
	return fmt.Sprintf(
		"%s (by %s, %s views, %s)",
		c.Title,
		c.CreatorName,
		humanize.Comma(int64(c.ViewCount)),
		humanize.Time(c.CreatedAt),
	)
}

// ScheduleSegment renders one schedule entry with a local start time.
func ScheduleSegment(seg *twitch.ScheduleSegment) string {
	line := fmt.Sprintf("%s - %s", seg.StartTime.Local().Format("Mon Jan 02 15:04"), seg.Title)
	if seg.Category != nil && seg.Category.Name != "" {
		line += fmt.Sprintf(" [%s]", seg.Category.Name)
	}
	if seg.CanceledUntil != nil {
		line += " (canceled)"
	}
	return line
}

// Truncate shortens a line to the given terminal width, marking the cut.
// Non-positive widths disable truncation.
func Truncate(line string, width int) string {
	if width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(width), "…")
}
