package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/vrsandeep/freegames/internal/catalog"
	"github.com/vrsandeep/freegames/internal/config"
	"github.com/vrsandeep/freegames/internal/websocket"
)

// App holds the core components of the application that are shared
// between the server and the CLI.
type App struct {
	Version string

	config  *config.Config
	catalog *catalog.Client
	busy    *catalog.BusyState
	wsHub   *websocket.Hub

	mu         sync.RWMutex
	categories []string
}

// New sets up and returns a new App instance. It loads the configuration,
// watches config.yml for navigation changes and builds the catalog client.
func New(version string) (*App, error) {
	app := &App{Version: version}
	cfg, err := config.Watch(func(updated *config.Config) {
		app.SetCategories(updated.Catalog.Categories)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Catalog.APIKey == "" {
		log.Println("Warning: no catalog API key configured (set FREEGAMES_CATALOG_API_KEY); requests will likely be rejected.")
	}

	app.assemble(cfg)
	log.Println("Core application setup complete.")
	return app, nil
}

// NewWithConfig assembles an App from an already loaded configuration.
func NewWithConfig(cfg *config.Config, version string) *App {
	app := &App{Version: version}
	app.assemble(cfg)
	return app
}

// assemble builds the shared components. The busy state is shared by the
// catalog client and the websocket hub.
func (a *App) assemble(cfg *config.Config) {
	busy := catalog.NewBusyState()
	hub := websocket.NewHub()
	busy.Subscribe(func(b bool) {
		hub.BroadcastJSON(map[string]bool{"busy": b})
	})

	a.config = cfg
	a.busy = busy
	a.wsHub = hub
	a.catalog = catalog.New(catalog.Options{
		BaseURL:         cfg.Catalog.BaseURL,
		APIKey:          cfg.Catalog.APIKey,
		APIHost:         cfg.Catalog.APIHost,
		DefaultCategory: cfg.Catalog.DefaultCategory,
		Timeout:         cfg.Catalog.Timeout,
	}, busy)
	a.SetCategories(cfg.Catalog.Categories)
}

func (a *App) Config() *config.Config   { return a.config }
func (a *App) Catalog() *catalog.Client { return a.catalog }
func (a *App) Busy() *catalog.BusyState { return a.busy }
func (a *App) WsHub() *websocket.Hub    { return a.wsHub }

// Categories returns the navigation tokens currently offered.
func (a *App) Categories() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]string(nil), a.categories...)
}

// SetCategories replaces the navigation tokens, e.g. after a config reload.
func (a *App) SetCategories(categories []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.categories = append([]string(nil), categories...)
}
