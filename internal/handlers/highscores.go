package handlers

import (
	"net/http"

	"github.com/vancomm/minesweeper-ai/internal/repository"
)

type HighscoreQuery struct {
	Username  *string `schema:"username"`
	Width     *int    `schema:"width"`
	Height    *int    `schema:"height"`
	MineCount *int    `schema:"mine_count"`
}

// Highscores lists winning solver runs, best first.
func (g *Game) Highscores(w http.ResponseWriter, r *http.Request) {
	var query HighscoreQuery
	if err := decodeQuery(&query, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSON(w, g.log, wrapError(err))
		return
	}

	scores, err := g.repo.GetHighscores(r.Context(), repository.HighscoreFilter{
		Username:  query.Username,
		Width:     query.Width,
		Height:    query.Height,
		MineCount: query.MineCount,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to fetch highscores: ", err)
		return
	}

	sendJSON(w, g.log, scores)
}
