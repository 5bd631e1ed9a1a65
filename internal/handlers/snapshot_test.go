package handlers

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-ai/internal/game"
	"github.com/vancomm/minesweeper-ai/internal/solver"
)

func TestSnapshotRoundTrip(t *testing.T) {
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

	blob, err := snapshot{Game: st, Engine: e}.Bytes()
	require.NoError(t, err)

	restored, err := decodeSnapshot(blob)
	require.NoError(t, err)
	assert.Equal(t, st, restored.Game)
	assert.True(t, e.MovesMade.Equal(restored.Engine.MovesMade))
	assert.True(t, e.Safes.Equal(restored.Engine.Safes))
	assert.True(t, e.Mines.Equal(restored.Engine.Mines))

	// a restored session picks up where it left off
	count, dead = restored.Game.Open(0, 1)
	require.False(t, dead)
	require.NoError(t, restored.Engine.AddKnowledge(solver.Cell{Row: 0, Col: 1}, count))
	assert.True(t, restored.Engine.KnownMines().Has(solver.Cell{Row: 0, Col: 2}))
	assert.True(t, restored.Game.Won)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := decodeSnapshot([]byte("not a gob blob"))
	assert.Error(t, err)
}
