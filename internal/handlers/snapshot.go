package handlers

import (
	"bytes"
	"encoding/gob"

	"github.com/vancomm/minesweeper-ai/internal/game"
	"github.com/vancomm/minesweeper-ai/internal/solver"
)

// snapshot is what a game_session.state blob holds: the hidden board
// together with everything the engine has deduced so far.
type snapshot struct {
	Game   *game.State
	Engine *solver.Engine
}

// sessionBlob is the stored form. Board and engine are encoded
// separately so either part can be decoded on its own.
type sessionBlob struct {
	Game   []byte
	Engine []byte
}

func (s snapshot) Bytes() ([]byte, error) {
	gameBlob, err := s.Game.Bytes()
	if err != nil {
		return nil, err
	}
	engineBlob, err := s.Engine.Bytes()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = gob.NewEncoder(&buf).Encode(sessionBlob{
		Game:   gameBlob,
		Engine: engineBlob,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeSnapshot(b []byte) (*snapshot, error) {
	var blob sessionBlob
	if err := gob.NewDecoder(bytes.NewBuffer(b)).Decode(&blob); err != nil {
		return nil, err
	}
	st, err := game.DecodeState(blob.Game)
	if err != nil {
		return nil, err
	}
	e, err := solver.DecodeEngine(blob.Engine)
	if err != nil {
		return nil, err
	}
	return &snapshot{Game: st, Engine: e}, nil
}
