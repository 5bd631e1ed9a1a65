package handlers

import (
	"math/rand/v2"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-ai/internal/game"
	"github.com/vancomm/minesweeper-ai/internal/repository"
	"github.com/vancomm/minesweeper-ai/internal/solver"
)

func TestDecodeNewGameDTO(t *testing.T) {
	t.Parallel()

	query, err := url.ParseQuery("width=9&height=9&mine_count=10&ignored=1")
	require.NoError(t, err)

	var dto NewGameDTO
	require.NoError(t, decodeQuery(&dto, query))
	assert.Equal(t, NewGameDTO{Width: 9, Height: 9, MineCount: 10}, dto)
	assert.Nil(t, dto.Seed)

	query, err = url.ParseQuery("width=4&height=4&mine_count=2&seed=7")
	require.NoError(t, err)
	require.NoError(t, decodeQuery(&dto, query))
	require.NotNil(t, dto.Seed)
	assert.Equal(t, uint64(7), *dto.Seed)

	query, err = url.ParseQuery("width=4&height=4")
	require.NoError(t, err)
	assert.Error(t, decodeQuery(&NewGameDTO{}, query), "mine_count is required")
}

func TestSessionViewExposesDeductions(t *testing.T) {
	t.Parallel()

	st, err := game.New(
		game.Params{Width: 3, Height: 1, MineCount: 0},
		rand.New(rand.NewPCG(1, 2)),
	)
	require.NoError(t, err)
	st.Mines = []bool{false, false, true}
	st.MineCount = 1

	e := solver.NewEngine(1, 3)
	count, dead := st.Open(0, 0)
	require.False(t, dead)
	require.NoError(t, e.AddKnowledge(solver.Cell{Row: 0, Col: 0}, count))
	count, dead = st.Open(0, 1)
	require.False(t, dead)
	require.NoError(t, e.AddKnowledge(solver.Cell{Row: 0, Col: 1}, count))

	view := NewSessionView(
		&repository.GameSession{GameSessionId: 42},
		&snapshot{Game: st, Engine: e},
	)

	assert.Equal(t, "42", view.SessionId)
	assert.Equal(t, []solver.Cell{{Row: 0, Col: 2}}, view.MineCells)
	assert.Empty(t, view.SafeCells)
	assert.False(t, view.Dead)
	assert.True(t, view.Won, "both clear cells are open")
}
