package session

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown       CellState = -2
	Flag          CellState = -1
	CorrectFlag   CellState = 64 // post-game-over
	ExplodedMine  CellState = 65
	WrongFlag     CellState = 66
	UnflaggedMine CellState = 67
	// 0-8 for an opened cell with the given number of mined neighbors
)

func (s CellState) String() string {
	switch s {
	case Unknown:
		return "-"
	case Flag, CorrectFlag:
		return "F"
	case WrongFlag:
		return "x"
	case ExplodedMine:
		return "X"
	case UnflaggedMine:
		return "*"
	case 0:
		return "."
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

func (s CellState) Opened() bool {
	return 0 <= s && s <= 8
}

// Grid is the player's view of a board, row-major.
type Grid []CellState

func (g Grid) ToString(width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

func (g Grid) Count(state CellState) (count int) {
	for _, s := range g {
		if s == state {
			count++
		}
	}
	return
}
