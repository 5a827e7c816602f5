package main

import (
	"fmt"
	"io"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

func render(w io.Writer, snap session.Snapshot) {
	width, height, _ := snap.Params.Unpack()

	fmt.Fprintf(w, "Mines left: %d  Time: %ds\n", snap.MinesLeft, int(snap.Elapsed.Seconds()))

	fmt.Fprint(w, "   ")
	for col := range width {
		fmt.Fprintf(w, "%3d", col+1)
	}
	fmt.Fprintln(w)

	for row := range height {
		fmt.Fprintf(w, "%3d", row+1)
		for col := range width {
			fmt.Fprintf(w, "%3s", snap.Grid[row*width+col])
		}
		fmt.Fprintln(w)
	}

	switch {
	case snap.Status == mines.Won:
		fmt.Fprintln(w, "Minefield cleared!")
	case snap.Status == mines.Lost && snap.Exploded != nil:
		fmt.Fprintln(w, "Hit mine!")
	case snap.Status == mines.Lost:
		fmt.Fprintln(w, "Gave up.")
	}
}
