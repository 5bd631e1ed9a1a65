package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Params
		ok     bool
	}{
		{"classic", Params{Width: 9, Height: 9, MineCount: 10}, true},
		{"no mines", Params{Width: 2, Height: 2, MineCount: 0}, true},
		{"zero width", Params{Width: 0, Height: 5, MineCount: 1}, false},
		{"too many mines", Params{Width: 3, Height: 3, MineCount: 9}, false},
		{"negative mines", Params{Width: 3, Height: 3, MineCount: -1}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewPlacesExactlyMineCount(t *testing.T) {
	t.Parallel()

	s, err := New(Params{Width: 16, Height: 16, MineCount: 40}, testRand())
	require.NoError(t, err)

	placed := 0
	for _, mine := range s.Mines {
		if mine {
			placed++
		}
	}
	assert.Equal(t, 40, placed)
	assert.Len(t, s.PlayerGrid, 256)
}

func TestNeighborMines(t *testing.T) {
	t.Parallel()

	s, err := New(Params{Width: 3, Height: 3, MineCount: 0}, testRand())
	require.NoError(t, err)

	// corners and center of a fixed layout
	s.Mines = []bool{
		true, false, false,
		false, false, true,
		false, false, false,
	}

	assert.Equal(t, 0, s.NeighborMines(0, 0), "a cell does not count itself")
	assert.Equal(t, 2, s.NeighborMines(1, 1))
	assert.Equal(t, 1, s.NeighborMines(0, 1))
	assert.Equal(t, 1, s.NeighborMines(2, 2))
	assert.Equal(t, 0, s.NeighborMines(2, 0))
}

func TestOpenAndWin(t *testing.T) {
	t.Parallel()

	s, err := New(Params{Width: 2, Height: 2, MineCount: 0}, testRand())
	require.NoError(t, err)
	s.Mines = []bool{false, false, false, true}
	s.MineCount = 1

	count, dead := s.Open(0, 0)
	require.False(t, dead)
	assert.Equal(t, 1, count)
	assert.False(t, s.Won)

	// reopening is a no-op
	opened := s.Opened
	count, dead = s.Open(0, 0)
	require.False(t, dead)
	assert.Equal(t, 1, count)
	assert.Equal(t, opened, s.Opened)

	s.Open(0, 1)
	_, dead = s.Open(1, 0)
	require.False(t, dead)
	assert.True(t, s.Won)
}

func TestOpenMineKills(t *testing.T) {
	t.Parallel()

	s, err := New(Params{Width: 2, Height: 1, MineCount: 0}, testRand())
	require.NoError(t, err)
	s.Mines = []bool{false, true}
	s.MineCount = 1

	_, dead := s.Open(0, 1)
	assert.True(t, dead)
	assert.True(t, s.Dead)
	assert.Equal(t, ExplodedMine, s.PlayerGrid[1])
}

func TestStateGobRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := New(Params{Width: 2, Height: 2, MineCount: 0}, testRand())
	require.NoError(t, err)
	s.Mines = []bool{false, false, false, true}
	s.MineCount = 1

	_, dead := s.Open(0, 0)
	require.False(t, dead)
	s.Flag(1, 1)

	blob, err := s.Bytes()
	require.NoError(t, err)
	restored, err := DecodeState(blob)
	require.NoError(t, err)
	assert.Equal(t, s, restored)

	// the restored board keeps playing
	restored.Open(0, 1)
	_, dead = restored.Open(1, 0)
	require.False(t, dead)
	assert.True(t, restored.Won)
}

func TestFlagToggles(t *testing.T) {
	t.Parallel()

	s, err := New(Params{Width: 2, Height: 1, MineCount: 1}, testRand())
	require.NoError(t, err)

	s.Flag(0, 0)
	assert.Equal(t, Flagged, s.PlayerGrid[0])
	s.Flag(0, 0)
	assert.Equal(t, Unknown, s.PlayerGrid[0])
}

func TestRevealMines(t *testing.T) {
	t.Parallel()

	s, err := New(Params{Width: 3, Height: 1, MineCount: 0}, testRand())
	require.NoError(t, err)
	s.Mines = []bool{true, false, true}

	s.RevealMines()
	assert.Equal(t, RevealedMine, s.PlayerGrid[0])
	assert.Equal(t, Unknown, s.PlayerGrid[1])
	assert.Equal(t, RevealedMine, s.PlayerGrid[2])
}
