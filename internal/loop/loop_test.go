package loop

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/skyshooter/internal/game"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func newTestClient(r io.Reader, out *bytes.Buffer, opts Options) *Client {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = fixedSize(80, 24)
	}
	if opts.Clock == nil {
		opts.Clock = game.FixedStep(16 * time.Millisecond)
	}
	if opts.Rand == nil {
		opts.Rand = game.NewRand(1)
	}
	return NewClient(r, out, opts)
}

func TestFitCanvas(t *testing.T) {
	tests := []struct {
		name                       string
		termW, termH               int
		cols, rows, offCol, offRow int
	}{
		{"standard terminal", 80, 24, 58, 22, 11, 1},
		{"wide terminal", 200, 20, 48, 18, 76, 1},
		{"narrow terminal", 40, 50, 38, 14, 1, 18},
		{"tiny terminal", 2, 1, 2, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows, offCol, offRow := fitCanvas(tt.termW, tt.termH, 800, 600)
			if cols != tt.cols || rows != tt.rows || offCol != tt.offCol || offRow != tt.offRow {
				t.Errorf("fitCanvas(%d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					tt.termW, tt.termH, cols, rows, offCol, offRow, tt.cols, tt.rows, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestRun_EnterStartsThenEOFQuits(t *testing.T) {
	var out bytes.Buffer
	c := newTestClient(strings.NewReader("\r"), &out, Options{})

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if c.Game().Screen() != game.ScreenPlaying {
		t.Errorf("screen = %v, want playing", c.Game().Screen())
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Error("Run should restore the cursor on exit")
	}
}

func TestRun_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	c := newTestClient(pr, &out, Options{})
	if err := c.Run(ctx); err != nil {
		t.Errorf("Run() error = %v, want nil on cancellation", err)
	}
}

func TestUpdate_IdleDisconnect(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	c := newTestClient(pr, &out, Options{IdleWarn: time.Second, IdleDisconnect: 2 * time.Second})

	if err := c.Update(1500 * time.Millisecond); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if err := c.Render(); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out.String(), "disconnecting in") {
		t.Error("idle warning not shown")
	}

	if err := c.Update(time.Second); !errors.Is(err, ErrIdle) {
		t.Errorf("Update() error = %v, want ErrIdle", err)
	}
}

func TestRender_Screens(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	c := newTestClient(pr, &out, Options{})
	if err := c.updateScreen(); err != nil {
		t.Fatal(err)
	}

	render := func() string {
		t.Helper()
		out.Reset()
		if err := c.Render(); err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		return out.String()
	}

	if s := render(); !strings.Contains(s, "S K Y   S H O O T E R") || !strings.Contains(s, "Best: 0") {
		t.Errorf("menu output missing title or best score")
	}

	c.Game().Start()
	if s := render(); !strings.Contains(s, "Score: 0") || !strings.Contains(s, "Lives: 3") {
		t.Errorf("HUD missing score or lives")
	}

	c.Game().Pause()
	if s := render(); !strings.Contains(s, "PAUSED") {
		t.Errorf("pause screen missing")
	}

	c.Game().Resume()
	sess := c.Game().Session()
	sess.Score = 15
	sess.Lives = 1
	sess.SpawnTarget()
	sess.Targets[0].Good = true
	sess.Targets[0].Y = sess.Screen.Height - 1
	c.Game().Frame(0, game.Controls{})

	s := render()
	if !strings.Contains(s, "GAME OVER") || !strings.Contains(s, "New best score: 15!") {
		t.Errorf("game over output missing outcome")
	}
}

func TestRender_OnlyRepaintsChanges(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	c := newTestClient(pr, &out, Options{})
	c.updateScreen()

	c.Render()
	first := out.Len()

	out.Reset()
	c.Render()
	if out.Len() >= first {
		t.Errorf("second frame wrote %d bytes, first %d; unchanged frames should be cheaper", out.Len(), first)
	}
	if strings.Contains(out.String(), "\033[2J") {
		t.Error("unchanged frame should not clear the screen")
	}
}

func TestUpdate_ResizeClears(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	w, h := 80, 24
	var out bytes.Buffer
	c := newTestClient(pr, &out, Options{TermSizeFunc: func() (int, int, error) { return w, h, nil }})

	c.Update(0)
	c.Render()
	out.Reset()

	w, h = 120, 40
	c.Update(0)
	c.Render()
	if !strings.Contains(out.String(), "\033[2J") {
		t.Error("resize should clear the screen")
	}
	if c.canvas.TerminalHeight() != 38 {
		t.Errorf("canvas rows = %d, want 38", c.canvas.TerminalHeight())
	}
}
