package player

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-ai/internal/game"
	"github.com/vancomm/minesweeper-ai/internal/solver"
)

// Move is one probe of the autoplayer, in the order it was made.
type Move struct {
	Cell  solver.Cell `json:"cell"`
	Guess bool        `json:"guess"`
	Count int         `json:"count"`
	Mine  bool        `json:"mine"`
}

type Outcome struct {
	Won        bool   `json:"won"`
	Moves      []Move `json:"moves"`
	Guesses    int    `json:"guesses"`
	KnownMines int    `json:"known_mines"`
}

/*
Player drives the inference engine against a game to completion: a
proven-safe move when one exists, the lowest-risk guess otherwise.
OnMove, when set, observes each move as it is made.
*/
type Player struct {
	game   *game.State
	engine *solver.Engine
	rnd    *rand.Rand
	log    *logrus.Logger

	OnMove func(Move)
}

func New(st *game.State, e *solver.Engine, r *rand.Rand, log *logrus.Logger) *Player {
	return &Player{game: st, engine: e, rnd: r, log: log}
}

// Next picks the cell to probe without making the move. guess reports
// whether the pick is a gamble rather than a proven-safe cell; ok is
// false when no probe remains, i.e. the board is beaten.
func (p *Player) Next() (cell solver.Cell, guess, ok bool) {
	if cell, ok := p.engine.SafeMove(); ok {
		return cell, false, true
	}
	cell, ok = p.engine.LowestRiskMove(p.rnd)
	return cell, true, ok
}

// Play runs the game to the end. The returned error reports an engine
// contract breach, never a lost game.
func (p *Player) Play() (Outcome, error) {
	var out Outcome
	for !p.game.Dead && !p.game.Won {
		cell, guess, ok := p.Next()
		if !ok {
			break
		}

		count, dead := p.game.Open(cell.Row, cell.Col)
		move := Move{Cell: cell, Guess: guess, Count: count, Mine: dead}
		out.Moves = append(out.Moves, move)
		if guess {
			out.Guesses++
		}

		if p.log != nil {
			p.log.WithFields(logrus.Fields{
				"cell":  cell.String(),
				"guess": guess,
				"count": count,
				"mine":  dead,
			}).Debug("move")
		}
		if p.OnMove != nil {
			p.OnMove(move)
		}

		if dead {
			break
		}
		if err := p.engine.AddKnowledge(cell, count); err != nil {
			return out, fmt.Errorf("feeding %s back: %w", cell, err)
		}
	}

	out.Won = p.game.Won
	out.KnownMines = len(p.engine.KnownMines())
	return out, nil
}
