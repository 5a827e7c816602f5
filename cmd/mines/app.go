package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

type application struct {
	logger  *slog.Logger
	session *session.Session
	in      io.Reader
	out     io.Writer
	clock   time.Duration
}

// run plays until the player quits, input ends or ctx is cancelled. The
// returned error is errQuit on a normal exit.
func (app *application) run(ctx context.Context) error {
	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)

	// Reads from stdin cannot be interrupted, so the reader lives outside
	// the group and is abandoned on shutdown.
	go readLines(app.in, lines, done)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.commandLoop(gCtx, lines)
	})
	g.Go(func() error {
		return app.statusClock(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		app.logger.Debug("shutting down", slog.Any("reason", context.Cause(gCtx)))
		return nil
	})
	return g.Wait()
}

func readLines(r io.Reader, lines chan<- string, done <-chan struct{}) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			return
		}
	}
}

func (app *application) commandLoop(ctx context.Context, lines <-chan string) error {
	fmt.Fprintln(app.out, usage)
	app.print()
	for {
		fmt.Fprint(app.out, "> ")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if err := app.executeCommand(line); errors.Is(err, errQuit) {
				return errQuit
			} else if err != nil {
				app.logger.Debug("command failed", slog.String("command", line), slog.Any("error", err))
				fmt.Fprintln(app.out, "error:", err)
				continue
			}
			app.print()
		}
	}
}

func (app *application) print() {
	snap := app.session.Snapshot()
	render(app.out, snap)
	app.logger.Debug(
		"board",
		slog.String("status", snap.Status.String()),
		slog.String("grid", snap.Grid.ToString(snap.Params.Width)),
	)
}

// statusClock refreshes the elapsed time and mines left while a game is in
// progress.
func (app *application) statusClock(ctx context.Context) error {
	ticker := time.NewTicker(app.clock)
	defer ticker.Stop()

	last := mines.InProgress
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			status := app.session.Status()
			if status == mines.InProgress || status != last {
				app.logger.Debug(
					"tick",
					slog.String("status", status.String()),
					slog.Duration("elapsed", app.session.Elapsed()),
					slog.Int("mines left", app.session.MinesLeft()),
				)
			}
			last = status
		}
	}
}
