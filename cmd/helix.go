package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/auth"
	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/twitch"
)

// helixSession bundles the credentials, the resolved bearer token and the
// Helix client built from them. Every listing command starts by opening one.
type helixSession struct {
	client *twitch.Client
	creds  *auth.Credentials
	token  string

	validation *auth.Validation
}

func newHelixSession() (*helixSession, error) {
	creds, err := auth.LoadCredentials()
	if err != nil {
		return nil, err
	}

	token, err := auth.ResolveToken(creds)
	if err != nil {
		return nil, err
	}

	return &helixSession{
		client: twitch.New(creds.ClientID, token),
		creds:  creds,
		token:  token,
	}, nil
}

// validate introspects the token once per process and caches the result.
func (s *helixSession) validate() (*auth.Validation, error) {
	if s.validation != nil {
		return s.validation, nil
	}

	validation, err := auth.Validate(s.token)
	if err != nil {
		return nil, err
	}

	s.validation = validation
	return validation, nil
}

// userID returns the id of the user the token belongs to. App access tokens
// have no user attached, so commands that act on "me" point at the device
// flow instead of failing with a bare 401 later.
func (s *helixSession) userID() (string, error) {
	validation, err := s.validate()
	if err != nil {
		return "", err
	}

	if validation.UserID == "" {
		return "", fmt.Errorf(`this command needs a user token, run "%s auth login" and pick the device flow`, rootCmd.Name())
	}

	return validation.UserID, nil
}

// broadcasterID resolves a channel login to its user id.
func (s *helixSession) broadcasterID(login string) (string, error) {
	user, err := s.client.UserByLogin(login)
	if err != nil {
		return "", err
	}

	return user.ID, nil
}

// playbackToken returns the token streamlink should present to the Twitch
// site session, or empty when none qualifies. Only user tokens work there;
// app tokens are rejected.
func (s *helixSession) playbackToken() string {
	validation, err := s.validate()
	if err != nil || validation.Login == "" {
		return ""
	}

	return s.token
}

// registerListFlags adds the paging and output flags shared by every listing
// command. A zero first falls back to the configured page size.
func registerListFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("first", "f", 0, "Maximum number of items to return per page")
	cmd.Flags().StringP("after", "a", "", "Pagination cursor from a previous page")
	cmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

func listArgs(cmd *cobra.Command) (first int, after string, asJson bool) {
	first = lo.Must(cmd.Flags().GetInt("first"))
	if first <= 0 {
		first = viper.GetInt(key.ListFirst)
	}

	after = lo.Must(cmd.Flags().GetString("after"))
	asJson = lo.Must(cmd.Flags().GetBool("json"))
	return first, after, asJson
}

// printPage renders one page of results, one formatted line per item, and
// finishes with the cursor needed to request the next page. JSON output mirrors
// the Helix envelope so scripts can feed the cursor back unchanged.
func printPage[T any](items []T, cursor string, asJson bool, line func(T) string) {
	if asJson {
		page := struct {
			Data   []T    `json:"data"`
			Cursor string `json:"cursor,omitempty"`
		}{Data: items, Cursor: cursor}

		handleErr(json.NewEncoder(os.Stdout).Encode(page))
		return
	}

	if len(items) == 0 {
		fmt.Println(style.Faint("nothing found"))
		return
	}

	for _, item := range items {
		fmt.Println(line(item))
	}

	if cursor != "" {
		fmt.Printf("\n%s %s\n", style.Faint("next page:"), style.Fg(color.Yellow)("--after "+cursor))
	}
}
