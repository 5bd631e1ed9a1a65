package handlers

import (
	"strconv"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/minesweeper-ai/internal/game"
	"github.com/vancomm/minesweeper-ai/internal/repository"
	"github.com/vancomm/minesweeper-ai/internal/solver"
)

type NewGameDTO struct {
	Width     int     `schema:"width,required"`
	Height    int     `schema:"height,required"`
	MineCount int     `schema:"mine_count,required"`
	Seed      *uint64 `schema:"seed"`
}

type PositionDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func decodeQuery(dst any, src map[string][]string) error {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec.Decode(dst, src)
}

// SessionView is the JSON shape of a game session: the player-visible
// grid plus what the engine can prove about the unopened cells.
type SessionView struct {
	SessionId string        `json:"session_id"`
	Grid      game.Grid     `json:"grid"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	MineCount int           `json:"mine_count"`
	Dead      bool          `json:"dead"`
	Won       bool          `json:"won"`
	SafeCells []solver.Cell `json:"safe_cells"`
	MineCells []solver.Cell `json:"mine_cells"`
	StartedAt int64         `json:"started_at"`
	EndedAt   *int64        `json:"ended_at,omitempty"`
}

func NewSessionView(session *repository.GameSession, snap *snapshot) SessionView {
	var endedAt *int64
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		endedAt = &e
	}
	return SessionView{
		SessionId: strconv.FormatInt(session.GameSessionId, 10),
		Grid:      snap.Game.PlayerGrid,
		Width:     snap.Game.Width,
		Height:    snap.Game.Height,
		MineCount: snap.Game.MineCount,
		Dead:      snap.Game.Dead,
		Won:       snap.Game.Won,
		SafeCells: snap.Engine.KnownSafeMoves().Cells(),
		MineCells: snap.Engine.KnownMines().Cells(),
		StartedAt: timestampMilli(session.StartedAt),
		EndedAt:   endedAt,
	}
}

func timestampMilli(ts pgtype.Timestamptz) int64 {
	if !ts.Valid {
		return 0
	}
	return ts.Time.UnixMilli()
}
