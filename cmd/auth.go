package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/auth"
	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/icon"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/log"
	"github.com/twitchy-cli/twitchy/open"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/util"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd groups token lifecycle operations.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Obtain, inspect and discard Twitch access tokens",
}

func init() {
	authCmd.AddCommand(authLoginCmd)

	authLoginCmd.Flags().StringP("flow", "f", "", "OAuth flow to run (device or client-credentials)")
	lo.Must0(authLoginCmd.RegisterFlagCompletionFunc("flow", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"device", "client-credentials"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// authLoginCmd obtains a token and stores it in the system keyring. The device
// flow yields a user token that can list follows; the client-credentials flow
// yields an app token restricted to the public endpoints.
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Obtain an access token and store it in the system keyring",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		creds, err := auth.LoadCredentials()
		handleErr(err)

		flow := lo.Must(cmd.Flags().GetString("flow"))
		if flow == "" {
			flow = viper.GetString(key.AuthFlow)
		}

		switch flow {
		case "device":
			loginDevice(creds)
		case "client-credentials":
			loginClientCredentials(creds)
		default:
			handleErr(fmt.Errorf("unknown auth flow: %s (want device or client-credentials)", flow))
		}
	},
}

func loginDevice(creds *auth.Credentials) {
	authz, err := auth.RequestDeviceCode(creds.ClientID, []string{auth.ScopeReadFollows})
	handleErr(err)

	fmt.Printf(
		"%s Visit %s and enter the code %s\n",
		icon.Get(icon.Lock),
		style.Fg(color.Blue)(authz.VerificationURI),
		style.Bold(authz.UserCode),
	)

	if viper.GetBool(key.AuthOpenBrowser) {
		if err := open.Start(authz.VerificationURI); err != nil {
			log.Warnf("open browser: %v", err)
		}
	}

	e := util.PrintErasable(fmt.Sprintf("%s Waiting for you to approve the code...", icon.Get(icon.Progress)))
	token, err := auth.PollDeviceToken(creds.ClientID, authz)
	e()
	handleErr(err)

	handleErr(auth.SetAccessToken(token.AccessToken))
	if token.RefreshToken != "" {
		handleErr(auth.SetRefreshToken(token.RefreshToken))
	}

	login := "you"
	if validation, err := auth.Validate(token.AccessToken); err == nil && validation.Login != "" {
		login = validation.Login
	}

	fmt.Printf("%s Logged in as %s\n", icon.Get(icon.Success), style.Fg(color.Purple)(login))
}

func loginClientCredentials(creds *auth.Credentials) {
	if creds.ClientSecret == "" {
		handleErr(fmt.Errorf("the client-credentials flow needs %s in the credentials file", auth.EnvClientSecret))
	}

	token, err := auth.ClientCredentials(creds.ClientID, creds.ClientSecret)
	handleErr(err)

	handleErr(auth.SetAccessToken(token.AccessToken))

	fmt.Printf("%s Stored an app access token\n", icon.Get(icon.Success))
	fmt.Println(style.Faint("app tokens cannot list follows; use the device flow for that"))
}

func init() {
	authCmd.AddCommand(authRefreshCmd)
}

// authRefreshCmd exchanges the stored refresh token for a fresh pair. Twitch
// rotates the refresh token on every exchange, so both halves are re-stored.
var authRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Exchange the stored refresh token for a fresh access token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		creds, err := auth.LoadCredentials()
		handleErr(err)

		refreshToken := creds.RefreshToken
		if refreshToken == "" {
			refreshToken, err = auth.StoredRefreshToken()
			if err != nil {
				handleErr(fmt.Errorf(`no refresh token stored, run "%s auth login" first`, rootCmd.Name()))
			}
		}

		token, err := auth.Refresh(creds.ClientID, creds.ClientSecret, refreshToken)
		handleErr(err)

		handleErr(auth.SetAccessToken(token.AccessToken))
		if token.RefreshToken != "" {
			handleErr(auth.SetRefreshToken(token.RefreshToken))
		}

		fmt.Printf("%s Token refreshed\n", icon.Get(icon.Success))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

// authStatusCmd introspects whatever token the source chain resolves and
// reports who it belongs to and how long it remains valid.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whose token is in use and when it expires",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newHelixSession()
		handleErr(err)

		validation, err := session.validate()
		handleErr(err)

		faint := style.Faint
		bold := style.Bold

		if validation.Login != "" {
			fmt.Printf("%s %s\n", faint("Logged in as"), style.Fg(color.Purple)(validation.Login))
		} else {
			fmt.Println(faint("Using an app access token (no user attached)"))
		}

		fmt.Printf("%s %s\n", faint("Client id"), bold(validation.ClientID))

		if len(validation.Scopes) > 0 {
			fmt.Printf("%s %s\n", faint("Scopes"), bold(strings.Join(validation.Scopes, ", ")))
		}

		expiry := time.Now().Add(time.Duration(validation.ExpiresIn) * time.Second)
		fmt.Printf("%s %s\n", faint("Expires"), bold(humanize.Time(expiry)))
	},
}

func init() {
	authCmd.AddCommand(authLogoutCmd)
}

// authLogoutCmd discards the keyring tokens. Tokens pinned in the credentials
// file are out of reach; the command says so instead of pretending.
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored tokens from the system keyring",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteTokens())
		fmt.Printf("%s Stored tokens removed\n", icon.Get(icon.Success))

		creds, err := auth.LoadCredentials()
		if err == nil && creds.AccessToken != "" {
			fmt.Println(style.Faint("note: the credentials file still pins an ACCESS_TOKEN"))
		}
	},
}
