package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Queries struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Queries {
	return &Queries{db: db}
}

// Bootstrap creates the schema when it does not exist yet. The service
// owns its tables; there is no separate migration pipeline.
func (q *Queries) Bootstrap(ctx context.Context) error {
	_, err := q.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS player (
			player_id     bigserial PRIMARY KEY,
			username      text NOT NULL UNIQUE,
			password_hash bytea NOT NULL,
			created_at    timestamptz NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS game_session (
			game_session_id bigserial PRIMARY KEY,
			player_id       bigint REFERENCES player,
			width           int NOT NULL,
			height          int NOT NULL,
			mine_count      int NOT NULL,
			dead            boolean NOT NULL DEFAULT false,
			won             boolean NOT NULL DEFAULT false,
			state           bytea NOT NULL,
			started_at      timestamptz NOT NULL DEFAULT now(),
			ended_at        timestamptz
		);

		CREATE TABLE IF NOT EXISTS solver_run (
			solver_run_id   bigserial PRIMARY KEY,
			game_session_id bigint REFERENCES game_session,
			player_id       bigint REFERENCES player,
			width           int NOT NULL,
			height          int NOT NULL,
			mine_count      int NOT NULL,
			won             boolean NOT NULL,
			moves           int NOT NULL,
			guesses         int NOT NULL,
			known_mines     int NOT NULL,
			playtime_ms     double precision NOT NULL,
			created_at      timestamptz NOT NULL DEFAULT now()
		);`,
	)
	return err
}
