package twitch

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/twitchy-cli/twitchy/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

// newTestClient binds a client to a fake Helix server.
func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := New("test-client-id", "test-token")
	client.BaseURL = server.URL
	return client, server
}

func TestClientHeaders(t *testing.T) {
	Convey("Given a Helix client", t, func() {
		var gotAuth, gotClientID string
		requests := 0

		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			requests++
			gotAuth = r.Header.Get("Authorization")
			gotClientID = r.Header.Get("Client-Id")
			_, _ = w.Write([]byte(`{"data": []}`))
		})
		defer server.Close()

		Convey("Every request carries the bearer token and the client id", func() {
			_, err := client.Streams(StreamsParams{UserLogins: []string{"somechannel"}})

			So(err, ShouldBeNil)
			So(gotAuth, ShouldEqual, "Bearer test-token")
			So(gotClientID, ShouldEqual, "test-client-id")
			So(requests, ShouldEqual, 1)
		})
	})
}

func TestClientErrors(t *testing.T) {
	Convey("Given a server that rejects the token", t, func() {
		requests := 0

		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "Unauthorized", "status": 401, "message": "Invalid OAuth token"}`))
		})
		defer server.Close()

		Convey("A 401 surfaces as an ApiError without any retry", func() {
			_, err := client.TopGames(0, "")
			So(err, ShouldNotBeNil)

			var apiErr *ApiError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.Status, ShouldEqual, http.StatusUnauthorized)
			So(apiErr.Message, ShouldEqual, "Invalid OAuth token")
			So(requests, ShouldEqual, 1)
		})
	})

	Convey("Given a server that answers with an empty error body", t, func() {
		requests := 0

		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.WriteHeader(http.StatusTooManyRequests)
		})
		defer server.Close()

		Convey("The header status still populates the error and no backoff happens", func() {
			_, err := client.TopGames(0, "")

			var apiErr *ApiError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.Status, ShouldEqual, http.StatusTooManyRequests)
			So(requests, ShouldEqual, 1)
		})
	})
}

func TestPagination(t *testing.T) {
	Convey("Given a listing spread over three pages", t, func() {
		cursors := map[string]string{
			"":         "cursor-1",
			"cursor-1": "cursor-2",
			"cursor-2": "",
		}
		var seenAfter []string

		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			after := r.URL.Query().Get("after")
			seenAfter = append(seenAfter, after)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"data":       []map[string]any{{"id": "509658", "name": "Just Chatting"}},
				"pagination": map[string]any{"cursor": cursors[after]},
			})
		})
		defer server.Close()

		Convey("The cursor is forwarded verbatim and never repeats", func() {
			first, err := client.TopGames(1, "")
			So(err, ShouldBeNil)
			So(first.Cursor(), ShouldEqual, "cursor-1")

			second, err := client.TopGames(1, first.Cursor())
			So(err, ShouldBeNil)
			So(seenAfter[1], ShouldEqual, "cursor-1")
			So(second.Cursor(), ShouldNotEqual, first.Cursor())

			third, err := client.TopGames(1, second.Cursor())
			So(err, ShouldBeNil)
			So(seenAfter[2], ShouldEqual, "cursor-2")
			So(third.Cursor(), ShouldBeEmpty)
		})
	})
}

func TestSchedule(t *testing.T) {
	Convey("Given the schedule endpoint's object envelope", t, func(c C) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.URL.Query().Get("broadcaster_id"), ShouldEqual, "141981764")

			_, _ = w.Write([]byte(`{
				"data": {
					"segments": [{
						"id": "seg-1",
						"start_time": "2026-08-28T19:00:00Z",
						"end_time": "2026-08-28T21:00:00Z",
						"title": "Community day",
						"category": {"id": "509658", "name": "Just Chatting"},
						"is_recurring": true
					}],
					"broadcaster_id": "141981764",
					"broadcaster_name": "TwitchDev",
					"broadcaster_login": "twitchdev"
				},
				"pagination": {"cursor": "schedule-cursor"}
			}`))
		})
		defer server.Close()

		Convey("Segments and cursor decode from the nested data object", func() {
			schedule, cursor, err := client.Schedule("141981764", 0, "")

			So(err, ShouldBeNil)
			So(schedule.BroadcasterName, ShouldEqual, "TwitchDev")
			So(len(schedule.Segments), ShouldEqual, 1)
			So(schedule.Segments[0].Title, ShouldEqual, "Community day")
			So(schedule.Segments[0].Category.Name, ShouldEqual, "Just Chatting")
			So(cursor, ShouldEqual, "schedule-cursor")
		})
	})
}

func TestUserLookupCache(t *testing.T) {
	Convey("Given a user lookup", t, func() {
		requests := 0

		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			requests++
			_, _ = w.Write([]byte(`{"data": [{"id": "12345", "login": "somestreamer", "display_name": "SomeStreamer"}]}`))
		})
		defer server.Close()

		Convey("The second resolution of the same login is served from the cache", func() {
			first, err := client.UserByLogin("somestreamer")
			So(err, ShouldBeNil)

			second, err := client.UserByLogin("SomeStreamer ")
			So(err, ShouldBeNil)

			So(second.ID, ShouldEqual, first.ID)
			So(requests, ShouldEqual, 1)
		})
	})
}

func TestParamValues(t *testing.T) {
	Convey("Stream filters combine without validation", t, func() {
		params := StreamsParams{
			UserLogins: []string{"alpha", "beta"},
			GameIDs:    []string{"1"},
			First:      5,
			After:      "opaque-cursor",
		}.values()

		So(params["user_login"], ShouldResemble, []string{"alpha", "beta"})
		So(params.Get("game_id"), ShouldEqual, "1")
		So(params.Get("first"), ShouldEqual, "5")
		So(params.Get("after"), ShouldEqual, "opaque-cursor")
	})

	Convey("Video selectors Helix considers exclusive still pass through together", t, func() {
		params := VideosParams{UserID: "1", GameID: "2"}.values()

		So(params.Get("user_id"), ShouldEqual, "1")
		So(params.Get("game_id"), ShouldEqual, "2")
	})

	Convey("A non-positive page size is omitted so the server default applies", t, func() {
		params := ClipsParams{BroadcasterID: "42"}.values()

		So(params.Has("first"), ShouldBeFalse)
		So(params.Has("after"), ShouldBeFalse)
	})
}
