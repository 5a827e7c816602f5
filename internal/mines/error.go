package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
	ErrInvalidState    = errors.New("invalid state")
)

var (
	ErrNegativeSize  = fmt.Errorf("%w: width and height must be non-negative", ErrInvalidArgument)
	ErrNegativeMines = fmt.Errorf("%w: mine count must be non-negative", ErrInvalidArgument)
	ErrTooManyMines  = fmt.Errorf("%w: mine count exceeds cell count", ErrInvalidArgument)
	ErrDuplicateMine = fmt.Errorf("%w: duplicate mine position", ErrInvalidArgument)

	// a flagged cell has to be unflagged before the player can reveal it
	ErrCellFlagged  = fmt.Errorf("%w: cell is flagged", ErrInvalidArgument)
	ErrCellRevealed = fmt.Errorf("%w: cell is already revealed", ErrInvalidState)
	ErrNotANumber   = fmt.Errorf("%w: cell is a mine", ErrInvalidArgument)
)

// CellError records the operation and coordinates that failed.
type CellError struct {
	Op    string
	Point Point
	Err   error
}

// [*CellError] implements [error]
func (e *CellError) Error() string {
	return "mines: " + e.Op + " " + e.Point.String() + ": " + e.Err.Error()
}

func (e *CellError) Unwrap() error {
	return e.Err
}

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
