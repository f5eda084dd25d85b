package catalog

// It uses a mock HTTP server to avoid making real network requests.

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shooterJSON = `[
  {"id":1,"title":"A","thumbnail":"u1","short_description":"d","genre":"Shooter","platform":"PC","publisher":"ignored"},
  {"id":2,"title":"B","thumbnail":"u2","short_description":"e","genre":"Shooter","platform":"Web Browser"}
]`

// setupTestServer creates a mock catalog service and records the requests it saw.
func setupTestServer(t *testing.T) (*httptest.Server, *[]*http.Request) {
	t.Helper()
	var mu sync.Mutex
	var seen []*http.Request
	mux := http.NewServeMux()

	mux.HandleFunc("/api/games", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Clone(context.Background()))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("category") {
		case "shooter":
			fmt.Fprint(w, shooterJSON)
		case "broken":
			fmt.Fprint(w, `<html>not json</html>`)
		case "object":
			fmt.Fprint(w, `{"status":0,"status_message":"No games found"}`)
		case "fail":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"message":"boom"}`)
		default:
			fmt.Fprint(w, `[]`)
		}
	})

	mux.HandleFunc("/api/game", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Clone(context.Background()))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("id") {
		case "1":
			fmt.Fprint(w, `{"id":1,"title":"A","thumbnail":"u1","description":"long","genre":"Shooter","platform":"PC","status":"Live","freetogame_profile_url":"https://www.freetogame.com/a"}`)
		case "7":
			// Unknown ids come back as a status object with a 200.
			fmt.Fprint(w, `{"status":0,"status_message":"No game found at that ID"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"status":0,"status_message":"No game found at that ID"}`)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &seen
}

func newTestClient(baseURL string) *Client {
	return New(Options{BaseURL: baseURL, APIKey: "test-key", APIHost: "test-host"}, NewBusyState())
}

func TestFetchList(t *testing.T) {
	server, seen := setupTestServer(t)
	c := newTestClient(server.URL)
	ctx := context.Background()

	t.Run("Returns upstream fields verbatim", func(t *testing.T) {
		games := c.FetchList(ctx, "shooter")
		require.Len(t, games, 2)
		assert.Equal(t, 1, games[0].ID)
		assert.Equal(t, "A", games[0].Title)
		assert.Equal(t, "u1", games[0].Thumbnail)
		assert.Equal(t, "d", games[0].ShortDescription)
		assert.Equal(t, "Shooter", games[0].Genre)
		assert.Equal(t, "PC", games[0].Platform)
		assert.Equal(t, "Web Browser", games[1].Platform)
	})

	t.Run("Sends credentials and category", func(t *testing.T) {
		*seen = nil
		c.FetchList(ctx, "sailing")
		require.Len(t, *seen, 1)
		req := (*seen)[0]
		assert.Equal(t, "/api/games", req.URL.Path)
		assert.Equal(t, "sailing", req.URL.Query().Get("category"))
		assert.Equal(t, "test-key", req.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "test-host", req.Header.Get("x-rapidapi-host"))
	})

	t.Run("Category is forwarded without validation", func(t *testing.T) {
		*seen = nil
		c.FetchList(ctx, "3d & pvp")
		require.Len(t, *seen, 1)
		assert.Equal(t, "3d & pvp", (*seen)[0].URL.Query().Get("category"))
	})

	t.Run("Empty category uses the default", func(t *testing.T) {
		*seen = nil
		games := c.FetchList(ctx, "")
		require.Len(t, *seen, 1)
		assert.Equal(t, "shooter", (*seen)[0].URL.Query().Get("category"))
		assert.Len(t, games, 2)
	})

	for _, category := range []string{"broken", "object", "fail", "nothing"} {
		t.Run("Degrades to empty for "+category, func(t *testing.T) {
			games := c.FetchList(ctx, category)
			assert.NotNil(t, games)
			assert.Empty(t, games)
			assert.False(t, c.Busy().Busy())
		})
	}

	t.Run("Transport failure returns empty", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		dead.Close()
		games := newTestClient(dead.URL).FetchList(ctx, "shooter")
		assert.NotNil(t, games)
		assert.Empty(t, games)
	})
}

func TestFetchByID(t *testing.T) {
	server, seen := setupTestServer(t)
	c := newTestClient(server.URL)
	ctx := context.Background()

	t.Run("Returns the requested game", func(t *testing.T) {
		*seen = nil
		game := c.FetchByID(ctx, 1)
		require.NotNil(t, game)
		assert.Equal(t, 1, game.ID)
		assert.Equal(t, "long", game.Description)
		assert.Equal(t, "Live", game.Status)
		assert.Equal(t, "https://www.freetogame.com/a", game.ProfileURL)
		require.Len(t, *seen, 1)
		assert.Equal(t, "1", (*seen)[0].URL.Query().Get("id"))
		assert.Equal(t, "test-key", (*seen)[0].Header.Get("x-rapidapi-key"))
	})

	t.Run("Not found returns nil", func(t *testing.T) {
		assert.Nil(t, c.FetchByID(ctx, 999))
	})

	t.Run("Status object returns nil rather than a partial record", func(t *testing.T) {
		assert.Nil(t, c.FetchByID(ctx, 7))
	})

	t.Run("Transport failure returns nil", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		dead.Close()
		assert.Nil(t, newTestClient(dead.URL).FetchByID(ctx, 1))
	})
}

func TestClientTogglesBusyState(t *testing.T) {
	var transitions []bool
	busy := NewBusyState()
	busy.Subscribe(func(b bool) { transitions = append(transitions, b) })

	var busyDuringRequest bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		busyDuringRequest = busy.Busy()
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL}, busy)
	c.FetchList(context.Background(), "shooter")
	assert.True(t, busyDuringRequest)
	assert.False(t, busy.Busy())

	c.FetchByID(context.Background(), 1) // decodes [] into an object and fails
	assert.False(t, busy.Busy())
	assert.Equal(t, []bool{true, false, true, false}, transitions)
}

func TestBusyStateNotifiesOnlyOnChange(t *testing.T) {
	busy := NewBusyState()
	var calls int
	busy.Subscribe(func(bool) { calls++ })

	busy.Set(false)
	busy.Set(true)
	busy.Set(true)
	busy.Set(false)
	assert.Equal(t, 2, calls)
}

func TestBusyStateNotificationsFollowTransitions(t *testing.T) {
	busy := NewBusyState()
	started := make(chan struct{})
	var notifications []bool
	busy.Subscribe(func(b bool) {
		if b {
			close(started)
			time.Sleep(50 * time.Millisecond)
		}
		notifications = append(notifications, b)
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		busy.Set(true)
	}()

	// The request settles while the busy notification is still in flight.
	<-started
	busy.Set(false)
	wg.Wait()

	assert.False(t, busy.Busy())
	assert.Equal(t, []bool{true, false}, notifications)
}
