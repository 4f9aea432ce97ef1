package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/skyshooter/internal/config"
	gameconfig "github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/highscore"
	"github.com/tomz197/skyshooter/internal/logging"
	"github.com/tomz197/skyshooter/internal/loop"
	"github.com/tomz197/skyshooter/internal/object"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger, closeLog, err := logging.OpenFile(cfg.LogFile, "game", cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := highscore.Open(ctx, cfg.DatabaseURL, cfg.BestScoreFile)
	if err != nil {
		return err
	}
	defer closeStore()

	best, err := highscore.NewTracker(ctx, store, gameconfig.BestScoreKey)
	if err != nil {
		logger.Warn("loading best score, starting from zero", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c := loop.NewClient(os.Stdin, os.Stdout, loop.Options{
		Best:   best,
		Logger: logger,
		Screen: object.Screen{Width: float64(cfg.CanvasWidth), Height: float64(cfg.CanvasHeight)},
	})
	logger.Info("starting", "best", best.Best())
	return c.Run(ctx)
}
