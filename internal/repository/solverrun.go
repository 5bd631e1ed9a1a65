package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type SolverRun struct {
	SolverRunId   int64
	GameSessionId *int64
	PlayerId      *int64
	Width         int
	Height        int
	MineCount     int
	Won           bool
	Moves         int
	Guesses       int
	KnownMines    int
	PlaytimeMs    float64
	CreatedAt     pgtype.Timestamptz
}

type CreateSolverRunParams struct {
	GameSessionId *int64
	PlayerId      *int64
	Width         int
	Height        int
	MineCount     int
	Won           bool
	Moves         int
	Guesses       int
	KnownMines    int
	PlaytimeMs    float64
}

func (q *Queries) CreateSolverRun(
	ctx context.Context, params CreateSolverRunParams,
) (*SolverRun, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solver_run (
			game_session_id, player_id, width, height, mine_count,
			won, moves, guesses, known_mines, playtime_ms
		)
		VALUES (
			@game_session_id, @player_id, @width, @height, @mine_count,
			@won, @moves, @guesses, @known_mines, @playtime_ms
		)
		RETURNING *;`,
		pgx.NamedArgs{
			"game_session_id": params.GameSessionId,
			"player_id":       params.PlayerId,
			"width":           params.Width,
			"height":          params.Height,
			"mine_count":      params.MineCount,
			"won":             params.Won,
			"moves":           params.Moves,
			"guesses":         params.Guesses,
			"known_mines":     params.KnownMines,
			"playtime_ms":     params.PlaytimeMs,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolverRun])
}

type Highscore struct {
	SolverRunId int64   `json:"solver_run_id"`
	Username    *string `json:"username"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	MineCount   int     `json:"mine_count"`
	Moves       int     `json:"moves"`
	Guesses     int     `json:"guesses"`
	PlaytimeMs  float64 `json:"playtime_ms"`
}

type HighscoreFilter struct {
	Username  *string
	Width     *int
	Height    *int
	MineCount *int
}

func (f HighscoreFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Width != nil {
		clauses = append(clauses, "width = @width")
		args["width"] = *f.Width
	}
	if f.Height != nil {
		clauses = append(clauses, "height = @height")
		args["height"] = *f.Height
	}
	if f.MineCount != nil {
		clauses = append(clauses, "mine_count = @mine_count")
		args["mine_count"] = *f.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

// GetHighscores lists winning runs, fewest guesses first.
func (q *Queries) GetHighscores(
	ctx context.Context, filter HighscoreFilter,
) ([]Highscore, error) {
	query := `
	SELECT
		solver_run_id,
		username,
		width,
		height,
		mine_count,
		moves,
		guesses,
		playtime_ms
	FROM solver_run
		LEFT OUTER JOIN player USING (player_id)
	WHERE won = true
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY guesses, playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}
