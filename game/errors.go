package game

import "errors"

// Errors returned by Board and Game operations. All are recoverable:
// bad input from a caller never panics the engine. Match them with
// errors.Is; the wrapped messages carry the offending coordinate.
var (
	// ErrInvalidSize reports a board dimension outside [1, MaxSize].
	ErrInvalidSize = errors.New("invalid board size")
	// ErrOutOfBounds reports a coordinate outside the board extent.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrCellOccupied reports a placement on a cell that already holds a stone.
	ErrCellOccupied = errors.New("cell already occupied")
	// ErrGameOver reports a move played after the game has been decided.
	ErrGameOver = errors.New("game already has a winner")
)
