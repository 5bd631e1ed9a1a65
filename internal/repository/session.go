package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// GameSession rows carry the opaque gob blob of the combined game and
// engine state; decoding it is the handlers' business.
type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	Width         int
	Height        int
	MineCount     int
	Dead          bool
	Won           bool
	State         []byte
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
}

type CreateSessionParams struct {
	PlayerId  *int64
	Width     int
	Height    int
	MineCount int
	State     []byte
}

func (q *Queries) CreateSession(
	ctx context.Context, params CreateSessionParams,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, width, height, mine_count, state
		)
		VALUES (
			@player_id, @width, @height, @mine_count, @state
		)
		RETURNING *;`,
		pgx.NamedArgs{
			"player_id":  params.PlayerId,
			"width":      params.Width,
			"height":     params.Height,
			"mine_count": params.MineCount,
			"state":      params.State,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q *Queries) GetSession(
	ctx context.Context, gameSessionId int64,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateSessionParams struct {
	GameSessionId int64
	Dead          bool
	Won           bool
	State         []byte
	EndedAt       *time.Time
}

func (q *Queries) UpdateSession(
	ctx context.Context, params UpdateSessionParams,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		`UPDATE game_session
		SET dead = @dead
			, won = @won
			, state = @state
			, ended_at = @ended_at
		WHERE game_session_id = @game_session_id
		RETURNING *;`,
		pgx.NamedArgs{
			"game_session_id": params.GameSessionId,
			"dead":            params.Dead,
			"won":             params.Won,
			"state":           params.State,
			"ended_at":        params.EndedAt,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
