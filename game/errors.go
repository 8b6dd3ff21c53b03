package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize     = errors.New("board must be at least 1x1")
	ErrTooManyMines    = errors.New("more mines than cells")
	ErrTooWide         = errors.New("board is wider than the column letters A-Z")
	ErrUnknownDirector = errors.New("unknown director")
	ErrBadLocation     = errors.New("bad location")
	ErrNoRand          = errors.New("mine placement needs a random source")
)

// OutOfBoundsError is the panic value of raw cell accessors given a
// coordinate outside the board
type OutOfBoundsError struct {
	X, Y          uint
	Width, Height uint
}

func (err OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) outside %dx%d board", err.X, err.Y, err.Width, err.Height)
}
