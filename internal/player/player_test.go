package player

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-ai/internal/game"
	"github.com/vancomm/minesweeper-ai/internal/solver"
)

func newBoard(t *testing.T, rows []string) *game.State {
	t.Helper()
	p := game.Params{Width: len(rows[0]), Height: len(rows)}
	for _, line := range rows {
		for _, ch := range line {
			if ch == '*' {
				p.MineCount++
			}
		}
	}
	s, err := game.New(p, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	for i := range s.Mines {
		s.Mines[i] = rows[i/p.Width][i%p.Width] == '*'
	}
	return s
}

func newPlayer(st *game.State, seed uint64) *Player {
	e := solver.NewEngine(st.Height, st.Width)
	return New(st, e, rand.New(rand.NewPCG(seed, 0)), nil)
}

func TestPlayWinsMinelessBoard(t *testing.T) {
	t.Parallel()

	st := newBoard(t, []string{
		"....",
		"....",
	})
	out, err := newPlayer(st, 1).Play()
	require.NoError(t, err)

	assert.True(t, out.Won)
	assert.Len(t, out.Moves, 8)
	assert.LessOrEqual(t, out.Guesses, 1, "only the opening move is a guess")
}

func TestPlayClassifiesTheMineOnWin(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 20; seed++ {
		st := newBoard(t, []string{
			"....",
			"....",
			"....",
			"...*",
		})
		out, err := newPlayer(st, seed).Play()
		require.NoError(t, err)
		if !out.Won {
			continue // a guess hit the mine, nothing to assert
		}
		assert.Equal(t, 1, out.KnownMines, "seed %d", seed)
		assert.GreaterOrEqual(t, out.Guesses, 1, "seed %d", seed)
		assert.Len(t, out.Moves, 15, "seed %d", seed)
	}
}

func TestPlayRecordsLoss(t *testing.T) {
	t.Parallel()

	// every cell is adjacent to the mine, the first guess decides
	lost := false
	for seed := uint64(1); seed <= 50 && !lost; seed++ {
		st := newBoard(t, []string{
			"*.",
			"..",
		})
		out, err := newPlayer(st, seed).Play()
		require.NoError(t, err)
		if !out.Won {
			last := out.Moves[len(out.Moves)-1]
			assert.True(t, last.Mine)
			lost = true
		}
	}
	assert.True(t, lost, "expected at least one lost game in 50 seeds")
}

func TestOnMoveObservesEveryMove(t *testing.T) {
	t.Parallel()

	st := newBoard(t, []string{
		"...",
		"...",
	})
	p := newPlayer(st, 3)

	var seen []Move
	p.OnMove = func(m Move) { seen = append(seen, m) }

	out, err := p.Play()
	require.NoError(t, err)
	assert.Equal(t, out.Moves, seen)
}
