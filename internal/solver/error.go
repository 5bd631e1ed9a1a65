package solver

import "errors"

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// ErrInvalidMove reports a cell that is out of bounds or was already
// probed.
var ErrInvalidMove = errors.New("invalid move")
