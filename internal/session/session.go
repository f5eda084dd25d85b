// Package session keeps one catalog view per browser.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vrsandeep/freegames/internal/view"
	"github.com/vrsandeep/freegames/internal/web"
)

// CookieName is the cookie carrying a browser's session token.
const CookieName = "freegames_session"

// Session pairs a browser's view with the renderer it paints into.
type Session struct {
	ID       string
	View     *view.CatalogView
	Renderer *web.Renderer

	initOnce sync.Once
}

// EnsureInitialized loads the default category the first time it is called.
func (s *Session) EnsureInitialized(ctx context.Context) {
	s.initOnce.Do(func() {
		s.View.Initialize(ctx)
	})
}

// SelectCategory renders category into the view. On a session that has not
// been initialized yet it replaces the default load.
func (s *Session) SelectCategory(ctx context.Context, category string) {
	selected := false
	s.initOnce.Do(func() {
		selected = true
		s.View.SelectCategory(ctx, category)
	})
	if !selected {
		s.View.SelectCategory(ctx, category)
	}
}

// Manager hands out sessions. The least recently used ones are dropped once
// the limit is reached; a dropped browser simply starts over.
type Manager struct {
	catalog         view.Catalog
	defaultCategory string
	sessions        *lru.Cache[string, *Session]
}

// NewManager builds a Manager whose views all share one catalog client.
func NewManager(catalog view.Catalog, defaultCategory string, maxSessions int) (*Manager, error) {
	cache, err := lru.New[string, *Session](maxSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &Manager{
		catalog:         catalog,
		defaultCategory: defaultCategory,
		sessions:        cache,
	}, nil
}

// Get returns the session for id, creating a fresh one (with a new id) when
// id is empty or unknown. The bool reports whether a new session was made.
func (m *Manager) Get(id string) (*Session, bool) {
	if id != "" {
		if s, ok := m.sessions.Get(id); ok {
			return s, false
		}
	}
	renderer := web.NewRenderer()
	s := &Session{
		ID:       uuid.NewString(),
		View:     view.New(m.catalog, renderer, m.defaultCategory),
		Renderer: renderer,
	}
	m.sessions.Add(s.ID, s)
	return s, true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}
