package apperror

import "errors"

// Move rejections. The game state is left untouched when any of these is returned.
var (
	ErrOutOfBounds          = errors.New("coordinates out of bounds")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrWrongBoard           = errors.New("move must be played in the active board")
	ErrBoardAlreadyResolved = errors.New("board is already resolved")
	ErrGameOver             = errors.New("game is already finished")
)

var ErrNoActiveGame = errors.New("no active game")

// IsRejection reports whether err is one of the move rejections.
func IsRejection(err error) bool {
	return errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrWrongBoard) ||
		errors.Is(err, ErrBoardAlreadyResolved) ||
		errors.Is(err, ErrGameOver)
}
