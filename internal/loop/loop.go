// Package loop runs one player's game on a terminal: it reads keys, advances
// the game, and draws frames with the scaled half-block canvas.
package loop

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/game"
	gameconfig "github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/input"
	"github.com/tomz197/skyshooter/internal/object"
)

// ErrIdle ends a client that received no input for too long.
var ErrIdle = errors.New("loop: disconnected for inactivity")

// Options configures a Client. Zero values get sensible defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Clock        game.TickSource
	Rand         game.Rand
	Best         game.BestScores
	Observer     game.Observer
	Logger       *log.Logger

	// Logical size of the play field.
	Screen object.Screen

	// IdleWarn shows a countdown after this long without input;
	// IdleDisconnect ends the client. Zero disables both.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration
}

// Client owns one game and one terminal.
type Client struct {
	opts   Options
	game   *game.Game
	stream *input.Stream
	out    *draw.ChunkWriter
	canvas *draw.Canvas

	termWidth  int
	termHeight int
	needClear  bool

	overlay     []textLine
	prevOverlay []textLine

	idle time.Duration
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r io.Reader, w io.Writer, opts Options) *Client {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Clock == nil {
		opts.Clock = game.NewFrameClock(gameconfig.TargetFrameTime)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Screen.Width <= 0 || opts.Screen.Height <= 0 {
		opts.Screen = object.Screen{Width: gameconfig.CanvasWidth, Height: gameconfig.CanvasHeight}
	}

	g := game.New(game.Options{
		Screen:   opts.Screen,
		Rand:     opts.Rand,
		Best:     opts.Best,
		Observer: opts.Observer,
		Logger:   opts.Logger,
	})

	return &Client{
		opts:      opts,
		game:      g,
		stream:    input.StartStream(r),
		out:       draw.NewChunkWriter(w, 0, 0),
		canvas:    draw.NewScaledCanvas(0, 0, opts.Screen.Width, opts.Screen.Height),
		needClear: true,
	}
}

// Game returns the client's game.
func (c *Client) Game() *game.Game {
	return c.game
}

// Run drives the client until the player quits, the input closes, or ctx is
// cancelled. Quitting is not an error.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.out)
	defer func() {
		draw.ClearScreen(c.out)
		draw.ShowCursor(c.out)
		c.out.Flush()
	}()

	err := game.RunLoop(ctx, c.opts.Clock, c)
	if errors.Is(err, game.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Update reads pending input and advances the game by one frame.
func (c *Client) Update(elapsed time.Duration) error {
	in := input.ReadInput(c.stream)

	if len(in.Pressed) > 0 {
		c.idle = 0
	} else {
		c.idle += elapsed
	}
	if c.opts.IdleDisconnect > 0 && c.idle >= c.opts.IdleDisconnect {
		c.opts.Logger.Info("disconnecting idle client", "idle", c.idle)
		return ErrIdle
	}

	prev := c.game.Screen()
	c.game.Frame(elapsed, in.Controls())
	if cur := c.game.Screen(); cur != prev {
		c.opts.Logger.Debug("screen changed", "from", prev, "to", cur)
		c.stream.ResetKeyInput()
		c.needClear = true
	}

	if in.Quit || in.Closed {
		return game.ErrQuit
	}
	return c.updateScreen()
}

// updateScreen refits the canvas when the terminal size changed.
func (c *Client) updateScreen() error {
	w, h, err := c.opts.TermSizeFunc()
	if err != nil {
		return err
	}
	if w == c.termWidth && h == c.termHeight {
		return nil
	}
	c.termWidth, c.termHeight = w, h

	cols, rows, offCol, offRow := fitCanvas(w, h, c.opts.Screen.Width, c.opts.Screen.Height)
	c.canvas.Resize(cols, rows)
	c.canvas.SetOffset(offCol, offRow)
	c.out.SetOffset(offCol, offRow)
	c.needClear = true
	return nil
}

// Render draws the current frame: canvas first, text on top.
func (c *Client) Render() error {
	border := c.needClear
	if c.needClear {
		draw.ClearScreen(c.out)
		c.canvas.ForceRedraw()
		c.prevOverlay = c.prevOverlay[:0]
		c.needClear = false
	}

	c.game.Render(c.canvas)

	c.overlay = c.buildOverlay(c.overlay[:0])
	if !sameLines(c.overlay, c.prevOverlay) {
		// Text that moved or vanished leaves stale characters behind.
		for _, l := range c.prevOverlay {
			c.canvas.InvalidateRow(l.row - 1)
		}
	}

	if err := c.canvas.Render(c.out); err != nil {
		return err
	}
	if border {
		c.canvas.RenderBorder(c.out)
	}
	writeOverlay(c.out, c.overlay)

	c.prevOverlay = append(c.prevOverlay[:0], c.overlay...)
	return c.out.Flush()
}

// fitCanvas picks the largest canvas with the logical aspect ratio that fits
// the terminal, leaving room for a border when possible, and centers it.
// Each terminal row holds two square-ish sub-pixels.
func fitCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) (cols, rows, offCol, offRow int) {
	availCols, availRows := termWidth, termHeight
	if availCols > 2 {
		availCols -= 2
	}
	if availRows > 2 {
		availRows -= 2
	}

	rows = availRows
	cols = int(float64(rows) * 2 * logicalWidth / logicalHeight)
	if cols > availCols {
		cols = availCols
		rows = int(float64(cols) * logicalHeight / (2 * logicalWidth))
	}
	cols = max(cols, 1)
	rows = max(rows, 1)

	offCol = max((termWidth-cols)/2, 0)
	offRow = max((termHeight-rows)/2, 0)
	return cols, rows, offCol, offRow
}
