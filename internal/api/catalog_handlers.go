package api

import (
	"net/http"
	"strconv"
)

// handleListGames mirrors the catalog list call. Failures look like an
// empty category, exactly as they do in the page.
func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games := s.app.Catalog().FetchList(r.Context(), r.URL.Query().Get("category"))
	RespondWithJSON(w, http.StatusOK, games)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid game ID")
		return
	}
	game := s.app.Catalog().FetchByID(r.Context(), id)
	if game == nil {
		RespondWithError(w, http.StatusNotFound, "Game not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, game)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, s.app.Categories())
}

func (s *Server) handleGetBusy(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]bool{"busy": s.app.Busy().Busy()})
}

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"version": s.app.Version})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
