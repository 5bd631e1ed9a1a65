package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-ai/internal/player"
	"github.com/vancomm/minesweeper-ai/internal/repository"
)

type watchFrame struct {
	Move    *player.Move    `json:"move,omitempty"`
	Outcome *player.Outcome `json:"outcome,omitempty"`
	Grid    string          `json:"grid,omitempty"`
}

/*
Watch upgrades to a websocket and runs the solver to the end of the
game, streaming one frame per move and a closing frame with the
outcome and the final board. The session is persisted afterwards, so a
watched game ends up in the same state an /autoplay call would leave.
*/
func (g *Game) Watch(w http.ResponseWriter, r *http.Request) {
	session, snap, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	if snap.Game.Dead || snap.Game.Won {
		w.WriteHeader(http.StatusConflict)
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	p := player.New(snap.Game, snap.Engine, g.rnd, g.log)
	p.OnMove = func(m player.Move) {
		if err := c.WriteJSON(watchFrame{Move: &m}); err != nil {
			g.log.Warn("write: ", err)
		}
		// pace the stream so a human can follow it
		time.Sleep(50 * time.Millisecond)
	}

	out, err := p.Play()
	if err != nil {
		g.log.Error("autoplay failed: ", err)
		return
	}

	if snap.Game.Dead {
		snap.Game.RevealMines()
	}

	blob, err := snap.Bytes()
	if err != nil {
		g.log.Error("unable to encode session state: ", err)
		return
	}
	now := time.Now().UTC()
	if _, err = g.repo.UpdateSession(r.Context(), repository.UpdateSessionParams{
		GameSessionId: session.GameSessionId,
		Dead:          snap.Game.Dead,
		Won:           snap.Game.Won,
		State:         blob,
		EndedAt:       &now,
	}); err != nil {
		g.log.Error("unable to update session: ", err)
	}

	final := watchFrame{
		Outcome: &out,
		Grid:    snap.Game.PlayerGrid.String(snap.Game.Width),
	}
	if err := c.WriteJSON(final); err != nil {
		g.log.Warn("write: ", err)
		return
	}
	c.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}
