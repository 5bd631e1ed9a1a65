package solver

import "math/rand/v2"

/*
Move selection. The engine never opens cells itself; callers pick a
move here, open it on the real board and feed the resulting count back
through AddKnowledge. Randomness is always supplied by the caller so
runs can be reproduced from a seed.
*/

// SafeMove returns a cell proven safe that has not been probed yet.
// Which one is unspecified when several qualify. ok is false when no
// provably safe move exists.
func (e *Engine) SafeMove() (Cell, bool) {
	for c := range e.KnownSafeMoves() {
		return c, true
	}
	return Cell{}, false
}

// RandomMove returns a uniformly chosen cell among those not yet
// probed and not known to be mines. ok is false when no such cell
// remains, i.e. the board is beaten.
func (e *Engine) RandomMove(r *rand.Rand) (Cell, bool) {
	candidates := e.candidates()
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[r.IntN(len(candidates))], true
}

/*
LowestRiskMove returns the candidate with the smallest estimated chance
of being a mine, judging each cell by the worst count/size ratio among
the sentences that mention it. Cells no sentence constrains get an even
prior. Ties break uniformly. Falls back to ok=false exactly when
RandomMove would.
*/
func (e *Engine) LowestRiskMove(r *rand.Rand) (Cell, bool) {
	candidates := e.candidates()
	if len(candidates) == 0 {
		return Cell{}, false
	}

	const unconstrained = 0.5

	risk := make(map[Cell]float64)
	for _, s := range e.Knowledge {
		if len(s.Cells) == 0 {
			continue
		}
		p := float64(s.Count) / float64(len(s.Cells))
		for c := range s.Cells {
			if p > risk[c] {
				risk[c] = p
			}
		}
	}
	cellRisk := func(c Cell) float64 {
		if p, ok := risk[c]; ok {
			return p
		}
		return unconstrained
	}

	best := make([]Cell, 0, 1)
	bestRisk := 2.0
	for _, c := range candidates {
		switch p := cellRisk(c); {
		case p < bestRisk:
			bestRisk = p
			best = append(best[:0], c)
		case p == bestRisk:
			best = append(best, c)
		}
	}
	return best[r.IntN(len(best))], true
}

// candidates lists every cell not probed and not a known mine, in
// row-major order so a seeded rand yields reproducible picks.
func (e *Engine) candidates() []Cell {
	cells := make([]Cell, 0, e.Height*e.Width)
	for row := 0; row < e.Height; row++ {
		for col := 0; col < e.Width; col++ {
			c := Cell{row, col}
			if !e.MovesMade.Has(c) && !e.Mines.Has(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
