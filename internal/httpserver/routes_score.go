// internal/httpserver/routes_score.go
//
// Stateless hand evaluation:
//   - GET  /categories → the fourteen categories in card order
//   - POST /score      → what every category is worth for five dice

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/robalobadob/yahtzee/internal/game"
)

type categoryRes struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Section string `json:"section"` // upper | lower
}

type scoreReq struct {
	Dice []int `json:"dice"`
}

type categoryScore struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type scoreRes struct {
	Dice    []int           `json:"dice"`
	Yahtzee bool            `json:"yahtzee"`
	Scores  []categoryScore `json:"scores"`
}

func (s *Server) mountScoring() {
	s.r.Get("/categories", s.handleCategories)
	s.r.Post("/score", s.handleScore)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	out := make([]categoryRes, 0, game.NumCategories)
	for _, c := range game.Categories() {
		section := "lower"
		if c.Upper() {
			section = "upper"
		}
		out = append(out, categoryRes{ID: int(c), Name: c.String(), Section: section})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleScore evaluates a hand against every category. The bonus entry is
// the value of one extra Yahtzee; whether it applies depends on a scorecard.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if len(req.Dice) != game.HandSize {
		http.Error(w, `{"error":"need_5_dice"}`, http.StatusBadRequest)
		return
	}
	var h game.Hand
	copy(h[:], req.Dice)
	if !h.Valid() {
		http.Error(w, `{"error":"die_out_of_range"}`, http.StatusBadRequest)
		return
	}

	res := scoreRes{Dice: req.Dice, Yahtzee: h.IsYahtzee(), Scores: make([]categoryScore, 0, game.NumCategories)}
	for _, c := range game.Categories() {
		res.Scores = append(res.Scores, categoryScore{ID: int(c), Name: c.String(), Score: game.Score(c, h, s.rules)})
	}
	_ = json.NewEncoder(w).Encode(res)
}
