package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/vrsandeep/freegames/internal/models"
)

// FakeCatalog is an in-memory stand-in for the free-to-play games service.
// It serves /api/games and /api/game and records every request.
type FakeCatalog struct {
	Server *httptest.Server

	mu        sync.Mutex
	lists     map[string][]models.GameSummary
	details   map[int]models.GameDetail
	listCalls []string
	gameCalls []int
	headers   []http.Header
}

// NewFakeCatalog starts a fake catalog service that is closed with the test.
func NewFakeCatalog(t *testing.T) *FakeCatalog {
	t.Helper()
	f := &FakeCatalog{
		lists:   make(map[string][]models.GameSummary),
		details: make(map[int]models.GameDetail),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/games", f.handleList)
	mux.HandleFunc("/api/game", f.handleGame)
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the base URL to configure the catalog client with.
func (f *FakeCatalog) URL() string {
	return f.Server.URL
}

// SetList sets the games returned for a category.
func (f *FakeCatalog) SetList(category string, games []models.GameSummary) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[category] = games
}

// SetDetail registers a game for the detail endpoint.
func (f *FakeCatalog) SetDetail(game models.GameDetail) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details[game.ID] = game
}

// ListCalls returns the categories requested so far.
func (f *FakeCatalog) ListCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.listCalls...)
}

// GameCalls returns the ids requested so far.
func (f *FakeCatalog) GameCalls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.gameCalls...)
}

// Headers returns the request headers seen so far.
func (f *FakeCatalog) Headers() []http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]http.Header(nil), f.headers...)
}

func (f *FakeCatalog) handleList(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	f.mu.Lock()
	f.listCalls = append(f.listCalls, category)
	f.headers = append(f.headers, r.Header.Clone())
	games, ok := f.lists[category]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		// The real service answers unknown categories with a status object.
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"status": 0, "status_message": "No results found"})
		return
	}
	json.NewEncoder(w).Encode(games)
}

func (f *FakeCatalog) handleGame(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.URL.Query().Get("id"))
	f.mu.Lock()
	f.gameCalls = append(f.gameCalls, id)
	f.headers = append(f.headers, r.Header.Clone())
	game, ok := f.details[id]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"status": 0, "status_message": "No game found at that ID"})
		return
	}
	json.NewEncoder(w).Encode(game)
}
