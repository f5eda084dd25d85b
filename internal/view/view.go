// Package view holds the catalog browser's presentation state: the category
// navigation, the grid of summary cards and the detail overlay.
package view

import (
	"context"
	"sync"

	"github.com/vrsandeep/freegames/internal/models"
)

// Catalog is the data source the view drives.
type Catalog interface {
	FetchList(ctx context.Context, category string) []models.GameSummary
	FetchByID(ctx context.Context, id int) *models.GameDetail
}

// Renderer paints the view. Implementations own the actual surface.
type Renderer interface {
	ShowGrid(games []models.GameSummary)
	ShowDetail(game *models.GameDetail)
	ShowOverlay()
	HideOverlay()
}

// State is the view's position in its two-state machine.
type State int

const (
	// StateGrid shows the summary grid with the overlay hidden.
	StateGrid State = iota
	// StateDetail shows one game in the overlay.
	StateDetail
)

func (s State) String() string {
	switch s {
	case StateGrid:
		return "grid"
	case StateDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// CatalogView mediates between user actions and the catalog.
//
// Fetches are never serialized: two overlapping requests both complete and
// whichever settles last is rendered. The mutex only guards view state.
type CatalogView struct {
	catalog         Catalog
	renderer        Renderer
	defaultCategory string

	mu       sync.Mutex
	state    State
	category string
	games    []models.GameSummary
	detail   *models.GameDetail
}

// New builds a view in the Grid state. Nothing is fetched until Initialize.
func New(catalog Catalog, renderer Renderer, defaultCategory string) *CatalogView {
	return &CatalogView{
		catalog:         catalog,
		renderer:        renderer,
		defaultCategory: defaultCategory,
		state:           StateGrid,
		games:           []models.GameSummary{},
	}
}

// Initialize loads the default category into the grid.
func (v *CatalogView) Initialize(ctx context.Context) {
	v.SelectCategory(ctx, v.defaultCategory)
}

// SelectCategory fetches a category and renders it into the grid. A failed
// fetch renders an empty grid.
func (v *CatalogView) SelectCategory(ctx context.Context, category string) {
	games := v.catalog.FetchList(ctx, category)

	v.mu.Lock()
	v.category = category
	v.mu.Unlock()

	v.RenderGrid(games)
}

// RenderGrid replaces the grid with one card per game.
func (v *CatalogView) RenderGrid(games []models.GameSummary) {
	if games == nil {
		games = []models.GameSummary{}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.games = games
	v.renderer.ShowGrid(games)
}

// OpenGame fetches a game and shows it in the overlay. It only acts from the
// Grid state. When the game cannot be fetched the view stays on the grid and
// OpenGame returns false.
func (v *CatalogView) OpenGame(ctx context.Context, id int) bool {
	if v.State() != StateGrid {
		return false
	}
	game := v.catalog.FetchByID(ctx, id)
	if game == nil {
		return false
	}
	v.RenderDetail(game)
	return true
}

// RenderDetail fills the overlay with one game and reveals it.
func (v *CatalogView) RenderDetail(game *models.GameDetail) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.detail = game
	v.state = StateDetail
	v.renderer.ShowDetail(game)
	v.renderer.ShowOverlay()
}

// Close hides the overlay and returns to the grid. The grid is revealed as
// it was last rendered; nothing is fetched.
func (v *CatalogView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != StateDetail {
		return
	}
	v.state = StateGrid
	v.detail = nil
	v.renderer.HideOverlay()
}

// State returns the current state.
func (v *CatalogView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Category returns the category most recently selected.
func (v *CatalogView) Category() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.category
}

// Games returns the summaries currently in the grid.
func (v *CatalogView) Games() []models.GameSummary {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.games
}

// Detail returns the game shown in the overlay, or nil in the Grid state.
func (v *CatalogView) Detail() *models.GameDetail {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.detail
}
