// A shared test server setup utility, which simplifies all API tests.

package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vrsandeep/freegames/internal/api"
	"github.com/vrsandeep/freegames/internal/config"
	"github.com/vrsandeep/freegames/internal/core"
	"github.com/vrsandeep/freegames/internal/session"
)

// TestConfig returns a configuration pointing the catalog client at baseURL.
func TestConfig(baseURL string) *config.Config {
	cfg := &config.Config{Port: 0}
	cfg.Catalog = config.Catalog{
		BaseURL:         baseURL,
		APIKey:          "test-key",
		APIHost:         "test-host",
		DefaultCategory: "shooter",
		Categories:      []string{"mmorpg", "shooter", "sailing"},
	}
	cfg.Server.MaxSessions = 16
	return cfg
}

// SetupTestApp builds a core.App wired to a fake catalog service.
func SetupTestApp(t *testing.T) (*core.App, *FakeCatalog) {
	t.Helper()
	fake := NewFakeCatalog(t)
	app := core.NewWithConfig(TestConfig(fake.URL()), "test")
	go app.WsHub().Run()
	return app, fake
}

// SetupTestServer initializes a full core.App and api.Server for integration testing.
func SetupTestServer(t *testing.T) (*api.Server, *FakeCatalog) {
	t.Helper()
	app, fake := SetupTestApp(t)
	server, err := api.NewServer(app)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	return server, fake
}

// Browser replays requests against a handler, carrying the session cookie
// between them like a browser would.
type Browser struct {
	t       *testing.T
	handler http.Handler
	cookie  *http.Cookie
}

// NewBrowser returns a Browser without a session.
func NewBrowser(t *testing.T, handler http.Handler) *Browser {
	return &Browser{t: t, handler: handler}
}

// Do sends a request and remembers any session cookie issued.
func (b *Browser) Do(method, target string) *httptest.ResponseRecorder {
	b.t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	rr := httptest.NewRecorder()
	b.handler.ServeHTTP(rr, req)
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieName {
			b.cookie = c
		}
	}
	return rr
}
