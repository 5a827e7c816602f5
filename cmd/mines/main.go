package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

// newLogger keeps stdout free for the board: development logs go to
// stderr, everything else to a rotated file.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	if cfg.Development {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: cfg.LogLevel}),
		), io.NopCloser(nil)
	}
	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	return slog.New(
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: cfg.LogLevel}),
	), file
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return mines.CreateRand()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closer := newLogger(cfg)
	defer closer.Close()

	logger.Info("starting up", slog.Any("config", cfg))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s, err := session.New(
		cfg.Params,
		session.WithLogger(logger),
		session.WithRand(newRand(cfg.Seed)),
	)
	if err != nil {
		logger.Error("failed to start game", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := &application{
		logger:  logger,
		session: s,
		in:      os.Stdin,
		out:     os.Stdout,
		clock:   cfg.Clock,
	}

	err = app.run(ctx)
	if err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		logger.Error("exit", slog.Any("error", err))
		return
	}
	logger.Info("bye")
}
