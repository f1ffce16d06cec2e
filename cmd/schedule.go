package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/format"
	"github.com/twitchy-cli/twitchy/style"
)

func init() {
	rootCmd.AddCommand(scheduleCmd)
	registerListFlags(scheduleCmd)
}

// scheduleCmd lists a channel's upcoming scheduled broadcasts.
var scheduleCmd = &cobra.Command{
	Use:   "schedule <channel>",
	Short: "Show a channel's stream schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		first, after, asJson := listArgs(cmd)

		session, err := newHelixSession()
		handleErr(err)

		broadcasterID, err := session.broadcasterID(strings.ToLower(args[0]))
		handleErr(err)

		schedule, cursor, err := session.client.Schedule(broadcasterID, first, after)
		handleErr(err)

		if asJson {
			page := struct {
				Data   any    `json:"data"`
				Cursor string `json:"cursor,omitempty"`
			}{Data: schedule, Cursor: cursor}

			handleErr(json.NewEncoder(os.Stdout).Encode(page))
			return
		}

		if schedule.Vacation != nil {
			fmt.Println(style.Faint(fmt.Sprintf(
				"%s is on vacation until %s",
				schedule.BroadcasterName,
				schedule.Vacation.EndTime.Local().Format("Mon Jan 02"),
			)))
		}

		if len(schedule.Segments) == 0 {
			fmt.Println(style.Faint("no scheduled streams"))
			return
		}

		for _, segment := range schedule.Segments {
			fmt.Println(format.ScheduleSegment(&segment))
		}

		if cursor != "" {
			fmt.Printf("\n%s %s\n", style.Faint("next page:"), style.Fg(color.Yellow)("--after "+cursor))
		}
	},
}
