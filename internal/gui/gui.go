// Package gui runs the game in a window (or a browser tab, via wasm) with ebiten.
package gui

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/game"
	"github.com/tomz197/skyshooter/internal/physics"
)

// lineHeight is the debug font's line spacing in pixels.
const lineHeight = 16

// App adapts a game.Game to ebiten.Game.
type App struct {
	game  *game.Game
	ticks game.TickSource
}

var _ ebiten.Game = (*App)(nil)

// New wraps g. Ebiten calls Update at a fixed rate, so ticks is normally a
// game.FixedStep of one ebiten tick.
func New(g *game.Game, ticks game.TickSource) *App {
	if ticks == nil {
		ticks = game.FixedStep(time.Second / time.Duration(ebiten.DefaultTPS))
	}
	return &App{game: g, ticks: ticks}
}

// Update advances one tick. Q ends the program.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	elapsed, err := a.ticks.Next(context.Background())
	if err != nil {
		return err
	}
	a.game.Frame(elapsed, readControls(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
	return nil
}

// Draw paints the play field and the text for the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	a.game.Render(surface{screen})
	for _, l := range overlay(a.game) {
		ebitenutil.DebugPrintAt(screen, l.text, l.x, l.y)
	}
}

// Layout keeps the logical canvas size; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	b := a.game.Bounds()
	return int(b.Width), int(b.Height)
}

// readControls maps key state to frame controls. pressed reports held keys,
// just reports keys pressed this tick.
func readControls(pressed, just func(ebiten.Key) bool) game.Controls {
	c := game.Controls{
		Left:    pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA),
		Right:   pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD),
		Up:      pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW),
		Down:    pressed(ebiten.KeyArrowDown) || pressed(ebiten.KeyS),
		Confirm: just(ebiten.KeyEnter),
		Pause:   just(ebiten.KeyP),
		Menu:    just(ebiten.KeyM) || just(ebiten.KeyEscape),
	}
	if just(ebiten.KeySpace) {
		c.Shots = 1
	}
	return c
}

// surface paints onto an ebiten image.
type surface struct {
	img *ebiten.Image
}

var _ game.Surface = surface{}

func (s surface) Clear(bg draw.Color) {
	s.img.Fill(bg.RGBA())
}

func (s surface) FillRect(r physics.Rect, c draw.Color) {
	vector.FillRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.RGBA(), false)
}

type textLine struct {
	x, y int
	text string
}

// overlay lays out the text for the current screen in canvas pixels.
func overlay(g *game.Game) []textLine {
	b := g.Bounds()
	width, mid := int(b.Width), int(b.Height)/2

	var lines []textLine
	centered := func(y int, s string) {
		// The debug font is 6 pixels wide.
		lines = append(lines, textLine{x: max(width/2-len(s)*3, 0), y: y, text: s})
	}

	switch g.Screen() {
	case game.ScreenMenu:
		centered(mid-3*lineHeight, "S K Y   S H O O T E R")
		centered(mid-lineHeight, "Shoot the red blocks, dodge the blue ones")
		centered(mid+lineHeight, "Press ENTER or SPACE to start")
		centered(mid+3*lineHeight, "Arrows/WASD move  SPACE shoot  P pause  M menu  Q quit")
		centered(mid+5*lineHeight, fmt.Sprintf("Best: %d", g.Best()))

	case game.ScreenPlaying, game.ScreenPaused:
		if s := g.Session(); s != nil {
			lines = append(lines,
				textLine{x: 10, y: 8, text: fmt.Sprintf("Score: %d", s.Score)},
				textLine{x: 10, y: 8 + lineHeight, text: fmt.Sprintf("Lives: %d", s.Lives)},
				textLine{x: 10, y: 8 + 2*lineHeight, text: fmt.Sprintf("Best: %d", g.Best())},
			)
		}
		if g.Screen() == game.ScreenPaused {
			centered(mid-lineHeight, "PAUSED")
			centered(mid+lineHeight, "Press P or ENTER to resume, M for menu")
		}

	case game.ScreenGameOver:
		o := g.Outcome()
		centered(mid-2*lineHeight, "GAME OVER")
		centered(mid, fmt.Sprintf("Score: %d", o.Score))
		centered(mid+lineHeight, o.Message())
		centered(mid+3*lineHeight, "Press ENTER to play again, M for menu")
	}
	return lines
}
