package game

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Question     CellState = -3
	Unknown      CellState = -2
	Flagged      CellState = -1
	RevealedMine CellState = 64
	ExplodedMine CellState = 65
	/*
	 * Values 0 to 8 mean the square is open and carries that
	 * surrounding mine count; the named values cover everything a
	 * player (or the solver) may see.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Question:
		return "?"
	case s == Unknown:
		return " "
	case s == Flagged:
		return "*"
	case s == RevealedMine:
		return "o"
	case s == ExplodedMine:
		return "X"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player-visible board in row-major order.
type Grid []CellState

func (g Grid) String(width int) string {
	var b strings.Builder
	for row := range len(g) / width {
		for col := range width {
			b.WriteString(g[row*width+col].String())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
