// internal/httpserver/routes_daily.go
//
// Daily mode endpoints under /daily:
//   - GET /daily/leaderboard?date=YYYY-MM-DD → best completed daily games (default today)
//   - GET /daily/played?player=NAME&date=    → whether the player already has a daily result
//
// Daily games are played on the console; the service only reads what was recorded.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/yahtzee/internal/daily"
	"github.com/robalobadob/yahtzee/internal/store"
)

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string         `json:"date"`
	Top  []store.Result `json:"top"`
}

type playedRes struct {
	Player string `json:"player"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
}

func (s *Server) mountDaily() {
	s.r.Route("/daily", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/played", s.handlePlayed)
	})
}

// dateParam returns ?date= or today's key; ok is false for a malformed date.
func (s *Server) dateParam(r *http.Request) (string, bool) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return daily.DateKey(s.now()), true
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", false
	}
	return date, true
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date, ok := s.dateParam(r)
	if !ok {
		http.Error(w, `{"error":"bad_date"}`, http.StatusBadRequest)
		return
	}
	limit, ok := parseLimit(r)
	if !ok {
		http.Error(w, `{"error":"bad_limit"}`, http.StatusBadRequest)
		return
	}
	rows, err := s.store.Daily(r.Context(), date, limit)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("daily leaderboard")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}

func (s *Server) handlePlayed(w http.ResponseWriter, r *http.Request) {
	player := strings.TrimSpace(r.URL.Query().Get("player"))
	if player == "" {
		http.Error(w, `{"error":"player_required"}`, http.StatusBadRequest)
		return
	}
	date, ok := s.dateParam(r)
	if !ok {
		http.Error(w, `{"error":"bad_date"}`, http.StatusBadRequest)
		return
	}
	played, err := s.store.AlreadyPlayed(r.Context(), player, date)
	if err != nil {
		log.Error().Err(err).Str("player", player).Msg("already played")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(playedRes{Player: player, Date: date, Played: played})
}
