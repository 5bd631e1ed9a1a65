package solver

import (
	"fmt"
	"sort"
	"strings"
)

// Cell identifies a grid position by row and column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// CellSet is a set of cells keyed by value.
type CellSet map[Cell]bool

func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = true
	}
	return s
}

func (s CellSet) Has(c Cell) bool { return s[c] }

func (s CellSet) Add(c Cell) { s[c] = true }

func (s CellSet) Remove(c Cell) { delete(s, c) }

func (s CellSet) Clone() CellSet {
	clone := make(CellSet, len(s))
	for c := range s {
		clone[c] = true
	}
	return clone
}

func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other[c] {
			return false
		}
	}
	return true
}

func (s CellSet) SubsetOf(other CellSet) bool {
	if len(s) > len(other) {
		return false
	}
	for c := range s {
		if !other[c] {
			return false
		}
	}
	return true
}

// Diff returns s minus other as a new set.
func (s CellSet) Diff(other CellSet) CellSet {
	d := make(CellSet)
	for c := range s {
		if !other[c] {
			d[c] = true
		}
	}
	return d
}

// Cells returns the members in row-major order.
func (s CellSet) Cells() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

func (s CellSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.Cells() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte('}')
	return b.String()
}
