package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-ai/internal/config"
	"github.com/vancomm/minesweeper-ai/internal/game"
	"github.com/vancomm/minesweeper-ai/internal/middleware"
	"github.com/vancomm/minesweeper-ai/internal/player"
	"github.com/vancomm/minesweeper-ai/internal/repository"
	"github.com/vancomm/minesweeper-ai/internal/solver"
)

type Game struct {
	log  *logrus.Logger
	repo *repository.Queries
	ws   *config.WebSocket
	rnd  *rand.Rand
}

func NewGame(
	log *logrus.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *Game {
	return &Game{
		log:  log,
		repo: repository.New(db),
		ws:   ws,
		rnd:  rnd,
	}
}

// Create starts a new session: a freshly mined board plus an empty
// knowledge base. An optional seed makes the board reproducible.
func (g *Game) Create(w http.ResponseWriter, r *http.Request) {
	var dto NewGameDTO
	if err := decodeQuery(&dto, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSON(w, g.log, wrapError(err))
		return
	}

	rnd := g.rnd
	if dto.Seed != nil {
		rnd = rand.New(rand.NewPCG(*dto.Seed, 0))
	}

	st, err := game.New(game.Params{
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
	}, rnd)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSON(w, g.log, wrapError(err))
		return
	}

	snap := &snapshot{
		Game:   st,
		Engine: solver.NewEngine(st.Height, st.Width),
	}
	blob, err := snap.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to encode session state: ", err)
		return
	}

	params := repository.CreateSessionParams{
		Width:     st.Width,
		Height:    st.Height,
		MineCount: st.MineCount,
		State:     blob,
	}
	if claims, ok := middleware.PlayerClaims(r); ok {
		params.PlayerId = &claims.PlayerId
	}

	session, err := g.repo.CreateSession(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to create game session: ", err)
		return
	}

	sendJSON(w, g.log, NewSessionView(session, snap))
}

func (g *Game) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *snapshot, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}
	session, err := g.repo.GetSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to fetch session: ", err)
		return nil, nil, false
	}
	snap, err := decodeSnapshot(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("db returned invalid game_session.state: ", err)
		return nil, nil, false
	}
	return session, snap, true
}

func (g *Game) saveSnapshot(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, snap *snapshot,
) bool {
	blob, err := snap.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to encode session state: ", err)
		return false
	}
	var endedAt *time.Time
	if session.EndedAt.Valid {
		endedAt = &session.EndedAt.Time
	} else if snap.Game.Dead || snap.Game.Won {
		now := time.Now().UTC()
		endedAt = &now
	}
	updated, err := g.repo.UpdateSession(r.Context(), repository.UpdateSessionParams{
		GameSessionId: session.GameSessionId,
		Dead:          snap.Game.Dead,
		Won:           snap.Game.Won,
		State:         blob,
		EndedAt:       endedAt,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to update session: ", err)
		return false
	}
	*session = *updated
	return true
}

func (g *Game) Fetch(w http.ResponseWriter, r *http.Request) {
	session, snap, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSON(w, g.log, NewSessionView(session, snap))
}

// Open probes one cell and feeds the outcome into the engine.
func (g *Game) Open(w http.ResponseWriter, r *http.Request) {
	var pos PositionDTO
	if err := decodeQuery(&pos, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSON(w, g.log, wrapError(err))
		return
	}

	session, snap, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	if snap.Game.Dead || snap.Game.Won {
		w.WriteHeader(http.StatusConflict)
		sendJSON(w, g.log, wrapError(fmt.Errorf("game has ended")))
		return
	}
	if !snap.Game.InBounds(pos.Row, pos.Col) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSON(w, g.log, wrapError(fmt.Errorf("invalid cell position")))
		return
	}

	cell := solver.Cell{Row: pos.Row, Col: pos.Col}
	count, dead := snap.Game.Open(pos.Row, pos.Col)
	if dead {
		snap.Game.RevealMines()
	} else if err := snap.Engine.AddKnowledge(cell, count); err != nil {
		if errors.Is(err, solver.ErrInvalidMove) {
			w.WriteHeader(http.StatusBadRequest)
			sendJSON(w, g.log, wrapError(err))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("engine rejected move: ", err)
		return
	}

	if !g.saveSnapshot(w, r, session, snap) {
		return
	}
	sendJSON(w, g.log, NewSessionView(session, snap))
}

type HintView struct {
	Cell  *solver.Cell `json:"cell"`
	Guess bool         `json:"guess"`
	Done  bool         `json:"done"`
}

// Hint reports the move the solver would make next, without making it.
func (g *Game) Hint(w http.ResponseWriter, r *http.Request) {
	_, snap, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if cell, ok := snap.Engine.SafeMove(); ok {
		sendJSON(w, g.log, HintView{Cell: &cell})
		return
	}
	if cell, ok := snap.Engine.LowestRiskMove(g.rnd); ok {
		sendJSON(w, g.log, HintView{Cell: &cell, Guess: true})
		return
	}
	sendJSON(w, g.log, HintView{Done: true})
}

type AutoplayView struct {
	Outcome player.Outcome `json:"outcome"`
	Session SessionView    `json:"session"`
}

// Autoplay lets the solver finish the game, then records the run.
func (g *Game) Autoplay(w http.ResponseWriter, r *http.Request) {
	session, snap, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	if snap.Game.Dead || snap.Game.Won {
		w.WriteHeader(http.StatusConflict)
		sendJSON(w, g.log, wrapError(fmt.Errorf("game has ended")))
		return
	}

	p := player.New(snap.Game, snap.Engine, g.rnd, g.log)

	started := time.Now()
	out, err := p.Play()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("autoplay failed: ", err)
		return
	}
	playtime := time.Since(started)

	if snap.Game.Dead {
		snap.Game.RevealMines()
	}
	if !g.saveSnapshot(w, r, session, snap) {
		return
	}

	runParams := repository.CreateSolverRunParams{
		GameSessionId: &session.GameSessionId,
		PlayerId:      session.PlayerId,
		Width:         snap.Game.Width,
		Height:        snap.Game.Height,
		MineCount:     snap.Game.MineCount,
		Won:           out.Won,
		Moves:         len(out.Moves),
		Guesses:       out.Guesses,
		KnownMines:    out.KnownMines,
		PlaytimeMs:    float64(playtime) / float64(time.Millisecond),
	}
	if _, err := g.repo.CreateSolverRun(r.Context(), runParams); err != nil {
		g.log.Error("unable to record solver run: ", err)
	}

	sendJSON(w, g.log, AutoplayView{
		Outcome: out,
		Session: NewSessionView(session, snap),
	})
}
