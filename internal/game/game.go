package game

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand/v2"
)

// Params fixes the board shape for one game.
type Params struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("invalid board size %dx%d", p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.Width*p.Height {
		return fmt.Errorf(
			"mine count %d does not fit a %dx%d board",
			p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p Params) InBounds(row, col int) bool {
	return 0 <= row && row < p.Height && 0 <= col && col < p.Width
}

/*
State holds the ground truth of a single game plus what the player has
uncovered so far. Mines is hidden from the playing side; everything it
learns arrives through Open.
*/
type State struct {
	Params
	Mines      []bool /* ground truth, row-major */
	PlayerGrid Grid
	Opened     int
	Dead, Won  bool
}

// New places MineCount mines uniformly at random.
func New(p Params, r *rand.Rand) (*State, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	size := p.Width * p.Height
	s := &State{
		Params:     p,
		Mines:      make([]bool, size),
		PlayerGrid: make(Grid, size),
	}
	for i := range s.PlayerGrid {
		s.PlayerGrid[i] = Unknown
	}
	for _, i := range r.Perm(size)[:p.MineCount] {
		s.Mines[i] = true
	}
	return s, nil
}

func DecodeState(buf []byte) (*State, error) {
	var s State
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *State) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *State) IsMine(row, col int) bool {
	return s.Mines[row*s.Width+col]
}

// NeighborMines counts the mines among the up-to-8 cells surrounding
// the given one.
func (s *State) NeighborMines(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if s.InBounds(row+dr, col+dc) && s.IsMine(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

/*
Open probes a cell. On a mine the game is lost and dead is true;
otherwise count is the cell's neighboring mine count and the game is
won once every clear cell has been opened. Re-opening an open cell
returns its count again without side effects.
*/
func (s *State) Open(row, col int) (count int, dead bool) {
	i := row*s.Width + col
	if s.Mines[i] {
		s.Dead = true
		s.PlayerGrid[i] = ExplodedMine
		return 0, true
	}
	count = s.NeighborMines(row, col)
	if v := s.PlayerGrid[i]; 0 <= v && v <= 8 {
		return count, false
	}
	s.PlayerGrid[i] = CellState(count)
	s.Opened++
	if s.Opened == s.Width*s.Height-s.MineCount {
		s.Won = true
	}
	return count, false
}

// Flag toggles a flag on an unopened cell.
func (s *State) Flag(row, col int) {
	i := row*s.Width + col
	if s.PlayerGrid[i] == Unknown {
		s.PlayerGrid[i] = Flagged
	} else if s.PlayerGrid[i] == Flagged {
		s.PlayerGrid[i] = Unknown
	}
}

// RevealMines uncovers every remaining mine, typically after the game
// has ended.
func (s *State) RevealMines() {
	for i, mine := range s.Mines {
		if mine && s.PlayerGrid[i] != ExplodedMine {
			s.PlayerGrid[i] = RevealedMine
		}
	}
}
