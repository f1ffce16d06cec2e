package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"

	"github.com/twitchy-cli/twitchy/twitch"
)

// withIdentityServer points the identity service root at a fake server.
func withIdentityServer(handler http.HandlerFunc) func() {
	server := httptest.NewServer(handler)
	previous := idBaseURL
	idBaseURL = server.URL

	return func() {
		idBaseURL = previous
		server.Close()
	}
}

func TestClientCredentials(t *testing.T) {
	Convey("Given an identity service", t, func(c C) {
		var gotGrant, gotClientID string

		restore := withIdentityServer(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.Method, ShouldEqual, http.MethodPost)
			c.So(r.URL.Path, ShouldEqual, "/token")

			_ = r.ParseForm()
			gotGrant = r.PostForm.Get("grant_type")
			gotClientID = r.PostForm.Get("client_id")

			_, _ = w.Write([]byte(`{"access_token": "app-token", "expires_in": 5011271, "token_type": "bearer"}`))
		})
		defer restore()

		Convey("The grant posts the client pair and yields an app token", func() {
			token, err := ClientCredentials("abc123", "shh")

			So(err, ShouldBeNil)
			So(token.AccessToken, ShouldEqual, "app-token")
			So(gotGrant, ShouldEqual, "client_credentials")
			So(gotClientID, ShouldEqual, "abc123")
		})
	})

	Convey("Given an identity service that rejects the client", t, func() {
		restore := withIdentityServer(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"status": 403, "message": "invalid client secret"}`))
		})
		defer restore()

		Convey("The rejection surfaces as an ApiError", func() {
			_, err := ClientCredentials("abc123", "wrong")

			var apiErr *twitch.ApiError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.Status, ShouldEqual, http.StatusForbidden)
			So(apiErr.Message, ShouldEqual, "invalid client secret")
		})
	})
}

func TestRefresh(t *testing.T) {
	Convey("Given a refresh grant", t, func(c C) {
		restore := withIdentityServer(func(w http.ResponseWriter, r *http.Request) {
			_ = r.ParseForm()
			c.So(r.PostForm.Get("grant_type"), ShouldEqual, "refresh_token")
			c.So(r.PostForm.Get("refresh_token"), ShouldEqual, "old-refresh")

			_, _ = w.Write([]byte(`{"access_token": "new-access", "refresh_token": "new-refresh"}`))
		})
		defer restore()

		Convey("The rotated pair comes back", func() {
			token, err := Refresh("abc123", "shh", "old-refresh")

			So(err, ShouldBeNil)
			So(token.AccessToken, ShouldEqual, "new-access")
			So(token.RefreshToken, ShouldEqual, "new-refresh")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given a token introspection", t, func(c C) {
		restore := withIdentityServer(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.URL.Path, ShouldEqual, "/validate")
			c.So(r.Header.Get("Authorization"), ShouldEqual, "OAuth user-token")

			_, _ = w.Write([]byte(`{"client_id": "abc123", "login": "somestreamer", "user_id": "12345", "scopes": ["user:read:follows"], "expires_in": 3600}`))
		})
		defer restore()

		Convey("The legacy OAuth scheme is used and the identity decodes", func() {
			validation, err := Validate("user-token")

			So(err, ShouldBeNil)
			So(validation.Login, ShouldEqual, "somestreamer")
			So(validation.UserID, ShouldEqual, "12345")
			So(validation.Scopes, ShouldResemble, []string{ScopeReadFollows})
		})
	})

	Convey("Given an expired token", t, func() {
		restore := withIdentityServer(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status": 401, "message": "invalid access token"}`))
		})
		defer restore()

		Convey("Validation reports a 401 ApiError", func() {
			_, err := Validate("stale")

			var apiErr *twitch.ApiError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.Status, ShouldEqual, http.StatusUnauthorized)
		})
	})
}

func TestDeviceGrant(t *testing.T) {
	Convey("Given a device-code grant", t, func(c C) {
		polls := 0

		restore := withIdentityServer(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/device":
				_ = r.ParseForm()
				c.So(r.PostForm.Get("scopes"), ShouldEqual, ScopeReadFollows)
				_, _ = w.Write([]byte(`{"device_code": "dev-1", "user_code": "ABCD-1234", "verification_uri": "https://www.twitch.tv/activate", "expires_in": 1800, "interval": 0}`))

			case "/token":
				polls++
				if polls == 1 {
					w.WriteHeader(http.StatusBadRequest)
					_, _ = w.Write([]byte(`{"status": 400, "message": "authorization_pending"}`))
					return
				}
				_, _ = w.Write([]byte(`{"access_token": "user-token", "refresh_token": "user-refresh", "scope": ["user:read:follows"]}`))
			}
		})
		defer restore()

		Convey("Polling rides out authorization_pending until approval", func() {
			authz, err := RequestDeviceCode("abc123", []string{ScopeReadFollows})
			So(err, ShouldBeNil)
			So(authz.UserCode, ShouldEqual, "ABCD-1234")

			token, err := PollDeviceToken("abc123", authz)
			So(err, ShouldBeNil)
			So(token.AccessToken, ShouldEqual, "user-token")
			So(polls, ShouldEqual, 2)
		})
	})

	Convey("Given a user who denies the request", t, func() {
		restore := withIdentityServer(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status": 400, "message": "access_denied"}`))
		})
		defer restore()

		Convey("Polling stops with the denial", func() {
			_, err := PollDeviceToken("abc123", &DeviceAuthorization{DeviceCode: "dev-1", ExpiresIn: 1800})

			var apiErr *twitch.ApiError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.Message, ShouldEqual, "access_denied")
		})
	})
}

func TestResolveToken(t *testing.T) {
	Convey("Given the token source chain", t, func() {
		keyring.MockInit()

		Convey("An explicit ACCESS_TOKEN wins over everything", func() {
			So(SetAccessToken("stored-token"), ShouldBeNil)

			token, err := ResolveToken(&Credentials{ClientID: "abc123", AccessToken: "pinned-token"})

			So(err, ShouldBeNil)
			So(token, ShouldEqual, "pinned-token")
		})

		Convey("The keyring serves a previous login", func() {
			So(SetAccessToken("stored-token"), ShouldBeNil)

			token, err := ResolveToken(&Credentials{ClientID: "abc123"})

			So(err, ShouldBeNil)
			So(token, ShouldEqual, "stored-token")
		})

		Convey("With nothing stored and no secret the chain points at auth login", func() {
			_, err := ResolveToken(&Credentials{ClientID: "abc123"})

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "auth login")
		})
	})
}

func TestKeyring(t *testing.T) {
	Convey("Given the system keyring", t, func() {
		keyring.MockInit()

		Convey("Both tokens round-trip and logout drops them", func() {
			So(SetAccessToken("a"), ShouldBeNil)
			So(SetRefreshToken("r"), ShouldBeNil)

			access, err := StoredAccessToken()
			So(err, ShouldBeNil)
			So(access, ShouldEqual, "a")

			refresh, err := StoredRefreshToken()
			So(err, ShouldBeNil)
			So(refresh, ShouldEqual, "r")

			So(DeleteTokens(), ShouldBeNil)

			_, err = StoredAccessToken()
			So(errors.Is(err, keyring.ErrNotFound), ShouldBeTrue)
		})

		Convey("Logging out twice is harmless", func() {
			So(DeleteTokens(), ShouldBeNil)
			So(DeleteTokens(), ShouldBeNil)
		})
	})
}
