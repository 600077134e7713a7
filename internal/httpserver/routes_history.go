// internal/httpserver/routes_history.go
//
// Recorded games:
//   - GET    /history?limit=N → best completed games
//   - GET    /history/{id}    → one result
//   - DELETE /history/{id}    → remove a result (admin token required)

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/yahtzee/internal/store"
)

const maxLimit = 100

func (s *Server) mountHistory() {
	s.r.Route("/history", func(r chi.Router) {
		r.Get("/", s.handleTop)
		r.Get("/{id}", s.handleGetResult)
		r.With(s.requireAuth()).Delete("/{id}", s.handleDeleteResult)
	})
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		http.Error(w, `{"error":"bad_limit"}`, http.StatusBadRequest)
		return
	}
	rows, err := s.store.Top(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("top results")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	res, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get result")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) handleDeleteResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("delete result")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("id", id).Msg("result deleted")
	w.WriteHeader(http.StatusNoContent)
}

// parseLimit reads ?limit=N; absent means the store default.
func parseLimit(r *http.Request) (int, bool) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, false
	}
	return min(n, maxLimit), true
}
