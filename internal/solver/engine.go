package solver

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
)

/*
Engine is the knowledge base built up while playing a single game. The
grid simulation reports every safely opened cell together with its
neighboring mine count; the engine folds each report into a new
sentence and runs inference to a fixed point, growing the sets of cells
proven to be mines or proven safe.

All state lives in exported fields so a session can be gob-encoded the
same way game states are. The engine is not safe for concurrent use.
*/
type Engine struct {
	Height, Width int
	MovesMade     CellSet
	Mines         CellSet
	Safes         CellSet
	Knowledge     []Sentence
}

func NewEngine(height, width int) *Engine {
	return &Engine{
		Height:    height,
		Width:     width,
		MovesMade: NewCellSet(),
		Mines:     NewCellSet(),
		Safes:     NewCellSet(),
	}
}

func DecodeEngine(buf []byte) (*Engine, error) {
	var e Engine
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (e *Engine) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Engine) InBounds(c Cell) bool {
	return 0 <= c.Row && c.Row < e.Height && 0 <= c.Col && c.Col < e.Width
}

// KnownSafeMoves returns the cells proven safe but not yet probed.
func (e *Engine) KnownSafeMoves() CellSet {
	return e.Safes.Diff(e.MovesMade)
}

// KnownMines returns the cells proven to contain a mine.
func (e *Engine) KnownMines() CellSet {
	return e.Mines.Clone()
}

/*
AddKnowledge records that cell was opened safely and that count of its
neighbors are mines, then derives every conclusion the updated
knowledge base supports. Fails with [ErrInvalidMove] when the cell is
out of bounds or was probed before; an inconsistent count surfaces as
an [AssertionError].
*/
func (e *Engine) AddKnowledge(cell Cell, count int) (err error) {
	if !e.InBounds(cell) {
		return fmt.Errorf("%w: %s is out of bounds", ErrInvalidMove, cell)
	}
	if e.MovesMade.Has(cell) {
		return fmt.Errorf("%w: %s was already probed", ErrInvalidMove, cell)
	}

	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok && errors.As(rerr, &ae) {
				err = ae
				return
			}
			panic(r)
		}
	}()

	e.MovesMade.Add(cell)
	e.markSafe(cell)

	/*
	 * Build the new sentence from the neighbors whose status is still
	 * unknown; neighbors already proven to be mines are accounted for
	 * by decrementing the count up front.
	 */
	unknown := NewCellSet()
	for _, n := range e.neighbors(cell) {
		if e.Safes.Has(n) {
			continue
		}
		if e.Mines.Has(n) {
			count--
			continue
		}
		unknown.Add(n)
	}
	if len(unknown) > 0 {
		e.addSentence(NewSentence(unknown, count))
	}

	e.infer()
	return nil
}

func (e *Engine) neighbors(cell Cell) []Cell {
	ns := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{cell.Row + dr, cell.Col + dc}
			if e.InBounds(n) {
				ns = append(ns, n)
			}
		}
	}
	return ns
}

// markSafe records a safe cell and simplifies every live sentence.
func (e *Engine) markSafe(c Cell) {
	e.Safes.Add(c)
	for i := range e.Knowledge {
		e.Knowledge[i].MarkSafe(c)
	}
}

// markMine records a mine and simplifies every live sentence.
func (e *Engine) markMine(c Cell) {
	e.Mines.Add(c)
	for i := range e.Knowledge {
		e.Knowledge[i].MarkMine(c)
	}
}

func (e *Engine) hasSentence(s Sentence) bool {
	for _, k := range e.Knowledge {
		if k.Equal(s) {
			return true
		}
	}
	return false
}

func (e *Engine) addSentence(s Sentence) bool {
	if s.Empty() || e.hasSentence(s) {
		return false
	}
	e.Knowledge = append(e.Knowledge, s)
	return true
}

/*
infer runs the deductive loop to a fixed point. Each pass extracts the
facts every sentence forces on its own, cascades them through the rest
of the knowledge base, discards resolved sentences and derives the
subset differences. Termination: marking a cell strictly shrinks the
sentences holding it, and a derived sentence is strictly smaller than
its superset parent, so over a finite grid the loop must run dry.
*/
func (e *Engine) infer() {
	for {
		changed := false

		/*
		 * Snapshot the facts before mutating: marking a mine mid-scan
		 * rewrites the sentences still to be scanned.
		 */
		mines, safes := NewCellSet(), NewCellSet()
		for _, s := range e.Knowledge {
			for c := range s.KnownMines() {
				mines.Add(c)
			}
			for c := range s.KnownSafes() {
				safes.Add(c)
			}
		}
		for c := range mines {
			if !e.Mines.Has(c) {
				e.markMine(c)
				changed = true
			}
		}
		for c := range safes {
			if !e.Safes.Has(c) {
				e.markSafe(c)
				changed = true
			}
		}

		live := e.Knowledge[:0]
		for _, s := range e.Knowledge {
			if !s.Empty() {
				live = append(live, s)
			}
		}
		e.Knowledge = live

		/*
		 * Subset inference: A ⊆ B yields B−A = B.count − A.count.
		 * Derivations come off a snapshot so appends cannot invalidate
		 * the iteration.
		 */
		snapshot := make([]Sentence, len(e.Knowledge))
		copy(snapshot, e.Knowledge)
		for i, a := range snapshot {
			for j, b := range snapshot {
				if i == j || !a.Cells.SubsetOf(b.Cells) {
					continue
				}
				d := NewSentence(b.Cells.Diff(a.Cells), b.Count-a.Count)
				if e.addSentence(d) {
					changed = true
				}
			}
		}

		if !changed {
			return
		}
	}
}
