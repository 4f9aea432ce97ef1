package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/highscore"
	"github.com/tomz197/skyshooter/internal/object"
)

// Screen is the lifecycle state shown to the player.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenPaused
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	case ScreenGameOver:
		return "game over"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// BestScores keeps the best score across sessions. *highscore.Tracker
// satisfies it.
type BestScores interface {
	Best() int
	Submit(ctx context.Context, score int) (best int, newBest bool, err error)
}

var _ BestScores = (*highscore.Tracker)(nil)

// Observer is notified of lifecycle events. Used for metrics.
type Observer interface {
	SessionStarted()
	GameOver(o Outcome)
}

// Outcome is published once when a session ends.
type Outcome struct {
	Score   int
	Best    int
	NewBest bool
}

// Message is the line shown on the game-over screen.
func (o Outcome) Message() string {
	if o.NewBest {
		return fmt.Sprintf("New best score: %d!", o.Score)
	}
	return fmt.Sprintf("Best score: %d", o.Best)
}

// Options configures a Game. Zero values get sensible defaults.
type Options struct {
	Screen   object.Screen
	Rand     Rand
	Best     BestScores
	Observer Observer
	Logger   *log.Logger

	SubmitTimeout time.Duration
}

// Game wraps sessions with the menu, pause, and game-over screens.
// It is driven from a single goroutine.
type Game struct {
	opts    Options
	screen  Screen
	session *Session
	outcome Outcome
}

// New creates a game sitting on the menu screen.
func New(opts Options) *Game {
	if opts.Screen.Width <= 0 || opts.Screen.Height <= 0 {
		opts.Screen = object.Screen{Width: config.CanvasWidth, Height: config.CanvasHeight}
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(time.Now().UnixNano())
	}
	if opts.Best == nil {
		opts.Best = highscore.NewMemoryTracker(config.BestScoreKey)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = 2 * time.Second
	}
	return &Game{opts: opts, screen: ScreenMenu}
}

// Screen returns the current lifecycle state.
func (g *Game) Screen() Screen { return g.screen }

// Session returns the current session, or nil before the first start.
func (g *Game) Session() *Session { return g.session }

// Outcome returns the result of the last finished session.
func (g *Game) Outcome() Outcome { return g.outcome }

// Best returns the best score known so far.
func (g *Game) Best() int { return g.opts.Best.Best() }

// Bounds returns the logical size of the play field.
func (g *Game) Bounds() object.Screen { return g.opts.Screen }

// Start begins a fresh session and switches to the playing screen.
func (g *Game) Start() {
	g.session = NewSession(g.opts.Screen, g.opts.Rand)
	g.session.OnGameOver(g.finish)
	g.outcome = Outcome{}
	g.screen = ScreenPlaying

	if g.opts.Observer != nil {
		g.opts.Observer.SessionStarted()
	}
	g.opts.Logger.Debug("session started")
}

// Restart is Start from the game-over or pause screens.
func (g *Game) Restart() {
	g.Start()
}

// Pause freezes the current session.
func (g *Game) Pause() {
	if g.screen != ScreenPlaying {
		return
	}
	g.session.Pause()
	g.screen = ScreenPaused
}

// Resume continues a paused session.
func (g *Game) Resume() {
	if g.screen != ScreenPaused {
		return
	}
	g.session.Resume()
	g.screen = ScreenPlaying
}

// BackToMenu abandons the current session. An abandoned session does not
// count towards the best score.
func (g *Game) BackToMenu() {
	if g.session != nil {
		g.session.Pause()
	}
	g.screen = ScreenMenu
}

// Frame applies one frame of input and advances the session.
func (g *Game) Frame(elapsed time.Duration, in Controls) {
	switch g.screen {
	case ScreenMenu:
		if in.Confirm || in.Shots > 0 {
			g.Start()
		}

	case ScreenPlaying:
		switch {
		case in.Menu:
			g.BackToMenu()
		case in.Pause:
			g.Pause()
		default:
			g.session.Update(elapsed, in)
			if g.session.Over() {
				g.screen = ScreenGameOver
			}
		}

	case ScreenPaused:
		switch {
		case in.Menu:
			g.BackToMenu()
		case in.Pause || in.Confirm:
			g.Resume()
		}

	case ScreenGameOver:
		switch {
		case in.Menu:
			g.BackToMenu()
		case in.Confirm || in.Shots > 0:
			g.Restart()
		}
	}
}

// Render paints the current session onto surf.
func (g *Game) Render(surf Surface) {
	Render(g.session, surf)
}

// finish runs once per session at game-over.
func (g *Game) finish(s *Session) {
	ctx, cancel := context.WithTimeout(context.Background(), g.opts.SubmitTimeout)
	defer cancel()

	best, newBest, err := g.opts.Best.Submit(ctx, s.Score)
	if err != nil {
		g.opts.Logger.Warn("saving best score", "score", s.Score, "err", err)
	}

	g.outcome = Outcome{Score: s.Score, Best: best, NewBest: newBest}
	g.screen = ScreenGameOver

	if g.opts.Observer != nil {
		g.opts.Observer.GameOver(g.outcome)
	}
	g.opts.Logger.Info("game over", "score", s.Score, "best", best, "new_best", newBest)
}
