package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownMinesAndSafes(t *testing.T) {
	t.Parallel()

	a, b, c := Cell{0, 0}, Cell{0, 1}, Cell{0, 2}

	tests := []struct {
		name      string
		sentence  Sentence
		wantMines CellSet
		wantSafes CellSet
	}{
		{
			name:      "all safe",
			sentence:  NewSentence(NewCellSet(a, b, c), 0),
			wantMines: nil,
			wantSafes: NewCellSet(a, b, c),
		},
		{
			name:      "all mines",
			sentence:  NewSentence(NewCellSet(a, b), 2),
			wantMines: NewCellSet(a, b),
			wantSafes: nil,
		},
		{
			name:      "undetermined",
			sentence:  NewSentence(NewCellSet(a, b, c), 1),
			wantMines: nil,
			wantSafes: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.wantMines, test.sentence.KnownMines())
			assert.Equal(t, test.wantSafes, test.sentence.KnownSafes())
		})
	}
}

func TestMarkIdempotence(t *testing.T) {
	t.Parallel()

	a, b, c := Cell{1, 1}, Cell{1, 2}, Cell{2, 1}

	s := NewSentence(NewCellSet(a, b, c), 2)
	s.MarkMine(a)
	require.True(t, s.Equal(NewSentence(NewCellSet(b, c), 1)))
	s.MarkMine(a)
	require.True(t, s.Equal(NewSentence(NewCellSet(b, c), 1)))

	s.MarkSafe(b)
	require.True(t, s.Equal(NewSentence(NewCellSet(c), 1)))
	s.MarkSafe(b)
	require.True(t, s.Equal(NewSentence(NewCellSet(c), 1)))

	// cells never part of the sentence are ignored
	s.MarkMine(Cell{9, 9})
	s.MarkSafe(Cell{9, 9})
	require.True(t, s.Equal(NewSentence(NewCellSet(c), 1)))
}

func TestSentenceEqualIsStructural(t *testing.T) {
	t.Parallel()

	a, b := Cell{0, 0}, Cell{3, 4}

	assert.True(t,
		NewSentence(NewCellSet(a, b), 1).Equal(NewSentence(NewCellSet(b, a), 1)))
	assert.False(t,
		NewSentence(NewCellSet(a, b), 1).Equal(NewSentence(NewCellSet(a, b), 2)))
	assert.False(t,
		NewSentence(NewCellSet(a), 1).Equal(NewSentence(NewCellSet(b), 1)))
}

func TestNewSentencePanicsOnBadCount(t *testing.T) {
	t.Parallel()

	cells := NewCellSet(Cell{0, 0}, Cell{0, 1})
	assert.PanicsWithError(t,
		"sentence {0:0 0:1} = 3 breaks 0 <= count <= 2",
		func() { NewSentence(cells, 3) })
	assert.Panics(t, func() { NewSentence(cells, -1) })
}
