package api

// Handlers for the server-rendered catalog page. Each browser has its own
// view; actions mutate it and redirect back to the page.

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/vrsandeep/freegames/internal/session"
	"github.com/vrsandeep/freegames/internal/web"
)

// sessionFor returns the caller's session, issuing a cookie for new ones.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *session.Session {
	var token string
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		token = cookie.Value
	}
	sess, created := s.sessions.Get(token)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

// pathParam returns a URL parameter decoded. chi matches on the raw path
// when the request carries escapes such as %2F, leaving them in the value.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	sess.EnsureInitialized(r.Context())

	data := web.PageFromRenderer(sess.Renderer, s.app.Categories(), sess.View.Category(), s.app.Busy().Busy())
	templ.Handler(web.Page(data)).ServeHTTP(w, r)
}

func (s *Server) handleSelectCategory(w http.ResponseWriter, r *http.Request) {
	category, err := pathParam(r, "category")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid category")
		return
	}
	sess := s.sessionFor(w, r)
	sess.SelectCategory(r.Context(), category)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleOpenGame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid game ID")
		return
	}
	sess := s.sessionFor(w, r)
	sess.EnsureInitialized(r.Context())
	// An absent game leaves the grid in place; there is nothing to report.
	sess.View.OpenGame(r.Context(), id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleCloseDetail(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	sess.View.Close()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
