package web

import (
	"sync"

	"github.com/vrsandeep/freegames/internal/models"
)

// Renderer is the HTML surface of one browser session. It keeps what the
// view last painted into each region, the way a DOM would, so a page can be
// produced from it at any time.
type Renderer struct {
	mu             sync.RWMutex
	games          []models.GameSummary
	detail         *models.GameDetail
	overlayVisible bool
}

// NewRenderer returns a Renderer with an empty grid and a hidden overlay.
func NewRenderer() *Renderer {
	return &Renderer{games: []models.GameSummary{}}
}

func (r *Renderer) ShowGrid(games []models.GameSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games = games
}

func (r *Renderer) ShowDetail(game *models.GameDetail) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detail = game
}

func (r *Renderer) ShowOverlay() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overlayVisible = true
}

func (r *Renderer) HideOverlay() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overlayVisible = false
}

// Snapshot returns the painted regions for a page render.
func (r *Renderer) Snapshot() (games []models.GameSummary, detail *models.GameDetail, overlayVisible bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.games, r.detail, r.overlayVisible
}
