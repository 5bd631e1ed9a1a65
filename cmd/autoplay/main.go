package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-ai/internal/game"
	"github.com/vancomm/minesweeper-ai/internal/player"
	"github.com/vancomm/minesweeper-ai/internal/solver"
)

var log = logrus.New()

var (
	width   = flag.Int("width", 9, "board width")
	height  = flag.Int("height", 9, "board height")
	mines   = flag.Int("mines", 10, "mine count")
	games   = flag.Int("games", 1, "number of games to play")
	seed    = flag.Uint64("seed", 1, "rng seed")
	verbose = flag.Bool("v", false, "log every move")
	boards  = flag.Bool("boards", false, "print the final board of every game")
)

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true, DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	params := game.Params{Width: *width, Height: *height, MineCount: *mines}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	rnd := rand.New(rand.NewPCG(*seed, 0))

	var won, lost, totalMoves, totalGuesses int
	for i := range *games {
		st, err := game.New(params, rnd)
		if err != nil {
			log.Fatal(err)
		}

		engine := solver.NewEngine(st.Height, st.Width)
		out, err := player.New(st, engine, rnd, log).Play()
		if err != nil {
			log.Fatal(err)
		}

		totalMoves += len(out.Moves)
		totalGuesses += out.Guesses
		if out.Won {
			won++
		} else {
			lost++
			st.RevealMines()
		}

		log.WithFields(logrus.Fields{
			"game":    i + 1,
			"won":     out.Won,
			"moves":   len(out.Moves),
			"guesses": out.Guesses,
			"mines":   out.KnownMines,
		}).Info("game over")

		if *boards {
			fmt.Fprint(os.Stdout, st.PlayerGrid.String(st.Width))
		}
	}

	fmt.Printf(
		"played %d: won %d, lost %d (%.0f%%), %d moves, %d guesses\n",
		*games, won, lost,
		100*float64(won)/float64(*games),
		totalMoves, totalGuesses,
	)
}
