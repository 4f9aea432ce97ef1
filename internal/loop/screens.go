package loop

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/game"
)

// textStyle is bright white on black, matching the play field background.
const textStyle = "\033[1;97;40m"

// textLine is one piece of overlay text at 1-based canvas coordinates.
type textLine struct {
	col, row int
	text     string
}

func sameLines(a, b []textLine) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func writeOverlay(cw *draw.ChunkWriter, lines []textLine) {
	if len(lines) == 0 {
		return
	}
	cw.WriteString(textStyle)
	for _, l := range lines {
		cw.WriteAt(l.col, l.row, l.text)
	}
	cw.WriteString("\033[0m")
}

// buildOverlay appends the text for the current screen to lines.
func (c *Client) buildOverlay(lines []textLine) []textLine {
	width := c.canvas.TerminalWidth()
	height := c.canvas.TerminalHeight()
	mid := height / 2

	centered := func(row int, s string) {
		s = truncate(s, width)
		col := max(width/2-utf8.RuneCountInString(s)/2+1, 1)
		lines = append(lines, textLine{col: col, row: max(row, 1), text: s})
	}

	switch c.game.Screen() {
	case game.ScreenMenu:
		centered(mid-3, "S K Y   S H O O T E R")
		centered(mid-1, "Shoot the red blocks, dodge the blue ones")
		centered(mid+1, "Press ENTER or SPACE to start")
		centered(mid+3, "Arrows/WASD move  SPACE shoot  P pause  M menu  Q quit")
		centered(mid+5, fmt.Sprintf("Best: %d", c.game.Best()))

	case game.ScreenPlaying:
		lines = c.hud(lines, width)

	case game.ScreenPaused:
		lines = c.hud(lines, width)
		centered(mid-1, "PAUSED")
		centered(mid+1, "Press P or ENTER to resume, M for menu")

	case game.ScreenGameOver:
		o := c.game.Outcome()
		centered(mid-2, "GAME OVER")
		centered(mid, fmt.Sprintf("Score: %d", o.Score))
		centered(mid+1, o.Message())
		centered(mid+3, "Press ENTER to play again, M for menu")
	}

	if c.opts.IdleWarn > 0 && c.idle >= c.opts.IdleWarn && c.opts.IdleDisconnect > c.idle {
		left := (c.opts.IdleDisconnect - c.idle).Round(time.Second)
		centered(height, fmt.Sprintf("Inactive - disconnecting in %s", left))
	}
	return lines
}

// hud shows score, best, and lives along the top row.
func (c *Client) hud(lines []textLine, width int) []textLine {
	s := c.game.Session()
	if s == nil {
		return lines
	}
	score := fmt.Sprintf("Score: %d", s.Score)
	lives := fmt.Sprintf("Lives: %d", s.Lives)
	best := fmt.Sprintf("Best: %d", c.game.Best())

	lines = append(lines, textLine{col: 2, row: 1, text: truncate(score, width)})
	if width > len(score)+len(lives)+len(best)+6 {
		lines = append(lines, textLine{col: width/2 - len(best)/2 + 1, row: 1, text: best})
	}
	if width > len(score)+len(lives)+3 {
		lines = append(lines, textLine{col: width - len(lives), row: 1, text: lives})
	}
	return lines
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
