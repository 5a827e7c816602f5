package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var errQuit = errors.New("quit")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"c": 2,
	"r": 0,
	"n": 0,
	"p": 0,
	"q": 0,
}

const usage = `commands:
  o ROW COL  open a cell
  f ROW COL  toggle a flag
  c ROW COL  open around a satisfied number
  r          give up
  n          new board
  p          print the board
  q          quit`

// parseRowCol reads a pair of 1-based coordinates.
func parseRowCol(twoStrings []string) (p mines.Point, err error) {
	row, err := strconv.Atoi(twoStrings[0])
	if err != nil {
		return p, errors.New("first argument must be an int")
	}
	col, err := strconv.Atoi(twoStrings[1])
	if err != nil {
		return p, errors.New("second argument must be an int")
	}
	return mines.Pt(row-1, col-1), nil
}

func (app *application) executeCommand(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}

	var p mines.Point
	if nargs == 2 {
		var err error
		if p, err = parseRowCol(parts[1:]); err != nil {
			return err
		}
		if !app.session.Params().PointInBounds(p) {
			return errors.New("invalid cell coordinates")
		}
	}

	switch parts[0] {
	case "o":
		_, err := app.session.Open(p)
		return err
	case "f":
		return app.session.Flag(p)
	case "c":
		_, err := app.session.Chord(p)
		return err
	case "r":
		return app.session.Forfeit()
	case "n":
		return app.session.Retry()
	case "p":
		return nil
	case "q":
		return errQuit
	}
	return errors.New("invalid command")
}
