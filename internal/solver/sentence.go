package solver

import "fmt"

/*
A Sentence is a logical statement about the board: exactly Count of
Cells are mines. Cells only ever holds cells whose status was unknown
when the sentence was last simplified; marking a cell known removes it.
*/
type Sentence struct {
	Cells CellSet
	Count int
}

// panics [AssertionError] when count is outside [0, len(cells)]
func NewSentence(cells CellSet, count int) Sentence {
	if count < 0 || count > len(cells) {
		panic(AssertionError{fmt.Sprintf(
			"sentence %s = %d breaks 0 <= count <= %d",
			cells, count, len(cells),
		)})
	}
	return Sentence{Cells: cells, Count: count}
}

func (s Sentence) Equal(other Sentence) bool {
	return s.Count == other.Count && s.Cells.Equal(other.Cells)
}

func (s Sentence) Empty() bool { return len(s.Cells) == 0 }

// KnownMines returns every cell of the sentence when the count equals
// the number of cells, i.e. all of them must be mines.
func (s Sentence) KnownMines() CellSet {
	if len(s.Cells) > 0 && s.Count == len(s.Cells) {
		return s.Cells.Clone()
	}
	return nil
}

// KnownSafes returns every cell of the sentence when the count is zero.
func (s Sentence) KnownSafes() CellSet {
	if len(s.Cells) > 0 && s.Count == 0 {
		return s.Cells.Clone()
	}
	return nil
}

// MarkMine removes a cell known to be a mine, accounting for it in the
// count. No-op when the cell is not part of the sentence.
func (s *Sentence) MarkMine(c Cell) {
	if s.Cells.Has(c) {
		s.Cells.Remove(c)
		s.Count--
	}
}

// MarkSafe removes a cell known to be safe. No-op when the cell is not
// part of the sentence.
func (s *Sentence) MarkSafe(c Cell) {
	if s.Cells.Has(c) {
		s.Cells.Remove(c)
	}
}

func (s Sentence) String() string {
	return fmt.Sprintf("%s = %d", s.Cells, s.Count)
}
