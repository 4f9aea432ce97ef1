package main

import (
	"context"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/skyshooter/internal/config"
	"github.com/tomz197/skyshooter/internal/game"
	gameconfig "github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/gui"
	"github.com/tomz197/skyshooter/internal/highscore"
	"github.com/tomz197/skyshooter/internal/logging"
	"github.com/tomz197/skyshooter/internal/object"
)

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stderr, "gui", cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, closeStore, err := highscore.Open(ctx, cfg.DatabaseURL, cfg.BestScoreFile)
	if err != nil {
		cancel()
		logger.Fatal("failed to open best-score store", "err", err)
	}
	defer closeStore()

	best, err := highscore.NewTracker(ctx, store, gameconfig.BestScoreKey)
	cancel()
	if err != nil {
		logger.Warn("loading best score, starting from zero", "err", err)
	}

	screen := object.Screen{Width: float64(cfg.CanvasWidth), Height: float64(cfg.CanvasHeight)}
	g := game.New(game.Options{Screen: screen, Best: best, Logger: logger})

	ebiten.SetWindowTitle("Sky Shooter")
	ebiten.SetWindowSize(cfg.CanvasWidth, cfg.CanvasHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(gui.New(g, nil)); err != nil {
		logger.Error("game error", "err", err)
	}
}
