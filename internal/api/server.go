// It defines the web server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vrsandeep/freegames/internal/assets"
	"github.com/vrsandeep/freegames/internal/core"
	"github.com/vrsandeep/freegames/internal/session"
)

// Server holds the dependencies for our handlers.
type Server struct {
	app      *core.App
	sessions *session.Manager
}

// Sessions returns the session manager.
func (s *Server) Sessions() *session.Manager {
	return s.sessions
}

// NewServer creates a new Server instance. Every browser session gets its
// own view, all of them driving the app's single catalog client.
func NewServer(app *core.App) (*Server, error) {
	cfg := app.Config()
	sessions, err := session.NewManager(app.Catalog(), cfg.Catalog.DefaultCategory, cfg.Server.MaxSessions)
	if err != nil {
		return nil, err
	}
	return &Server{
		app:      app,
		sessions: sessions,
	}, nil
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	// View routes
	r.Get("/", s.handleIndex)
	r.Post("/category/{category}", s.handleSelectCategory)
	r.Post("/games/{gameID}", s.handleOpenGame)
	r.Post("/close", s.handleCloseDetail)

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", s.handleGetVersion)
		r.Get("/health", s.handleHealth)
		r.Get("/categories", s.handleListCategories)
		r.Get("/busy", s.handleGetBusy)
		r.Get("/games", s.handleListGames)
		r.Get("/game", s.handleGetGame)
	})

	// WebSocket route
	r.Get("/ws/busy", func(w http.ResponseWriter, r *http.Request) {
		s.app.WsHub().ServeWs(w, r)
	})

	// Create a file server for the static assets within the embedded FS.
	staticFS, err := fs.Sub(assets.WebFS, "web/static")
	if err != nil {
		log.Fatalf("Failed to create static sub-filesystem: %v", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	return r
}
