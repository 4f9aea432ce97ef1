package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomz197/skyshooter/internal/physics"
)

// Canvas is a color buffer with 2x vertical resolution using half-block characters.
// Game code draws in logical coordinates which are scaled to terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]

	// Last frame written to the terminal, for diffing.
	prev      []cell
	prevValid bool

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area inside a larger terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf []byte
}

// cell is one terminal character: the upper and lower half pixels.
type cell struct {
	top, bottom Color
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the terminal dimensions the canvas occupies.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.prev = make([]cell, termWidth*termHeight)
		c.prevValid = false
	}

	if c.logicalWidth > 0 {
		c.scaleX = float64(termWidth) / c.logicalWidth
	}
	if c.logicalHeight > 0 {
		c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	}
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.prevValid = false
	}
	c.offsetCol = col
	c.offsetRow = row
}

// ForceRedraw makes the next Render repaint every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.prevValid = false
}

// staleColor never matches a real pixel, so a cell marked with it is repainted.
const staleColor Color = 1 << 31

// InvalidateRow makes the next Render repaint one canvas row (0-based), e.g.
// after text was drawn over it.
func (c *Canvas) InvalidateRow(row int) {
	if row < 0 || row >= c.termHeight {
		return
	}
	stale := cell{top: staleColor, bottom: staleColor}
	for i := row * c.termWidth; i < (row+1)*c.termWidth; i++ {
		c.prev[i] = stale
	}
}

// Clear fills the whole canvas with bg.
func (c *Canvas) Clear(bg Color) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
}

// FillRect paints a logical rectangle. Anything with a positive area covers at
// least one pixel so small objects like bullets never vanish.
func (c *Canvas) FillRect(r physics.Rect, col Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	x0 := int(math.Floor(r.X * c.scaleX))
	x1 := int(math.Ceil(r.Right() * c.scaleX))
	y0 := int(math.Floor(r.Y * c.scaleY))
	y1 := int(math.Ceil(r.Bottom() * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, c.termWidth)
	y1 = min(y1, c.subPixelHeight)

	for y := y0; y < y1; y++ {
		row := c.pixels[y*c.termWidth : (y+1)*c.termWidth]
		for x := x0; x < x1; x++ {
			row[x] = col
		}
	}
}

// At returns the pixel at terminal pixel coordinates (no scaling).
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return 0
	}
	return c.pixels[y*c.termWidth+x]
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render writes every cell that changed since the previous Render using
// upper-half blocks: the foreground is the top pixel, the background the bottom.
func (c *Canvas) Render(w io.Writer) error {
	buf := c.renderBuf[:0]

	var lastFG, lastBG Color
	haveSGR := false
	cursorCol, cursorRow := -1, -1

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			cur := cell{top: c.pixels[topOffset+col], bottom: c.pixels[bottomOffset+col]}
			idx := row*c.termWidth + col
			if c.prevValid && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur

			if row != cursorRow || col != cursorCol {
				buf = append(buf, "\033["...)
				buf = strconv.AppendInt(buf, int64(row+1+c.offsetRow), 10)
				buf = append(buf, ';')
				buf = strconv.AppendInt(buf, int64(col+1+c.offsetCol), 10)
				buf = append(buf, 'H')
			}
			if !haveSGR || cur.top != lastFG || cur.bottom != lastBG {
				buf = appendSGR(buf, cur.top, cur.bottom)
				lastFG, lastBG, haveSGR = cur.top, cur.bottom, true
			}
			buf = append(buf, string(BlockUpperHalf)...)
			cursorRow, cursorCol = row, col+1
		}
	}
	if haveSGR {
		buf = append(buf, "\033[0m"...)
	}
	c.prevValid = true
	c.renderBuf = buf

	// Write output in chunks for optimal network flow
	for len(buf) > 0 {
		chunk := buf
		if len(chunk) > maxChunkSize {
			chunk = buf[:maxChunkSize]
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		buf = buf[len(chunk):]
	}
	return nil
}

// RenderBorder draws a box border around the canvas area when the terminal
// is larger than the canvas on either axis.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	line := strings.Repeat("─", max(c.termWidth, 0))
	if hasV {
		if hasH {
			cw.WriteAbs(left, top, "┌"+line+"┐")
			cw.WriteAbs(left, bottom, "└"+line+"┘")
		} else {
			cw.WriteAbs(c.offsetCol+1, top, line)
			cw.WriteAbs(c.offsetCol+1, bottom, line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row < c.offsetRow+c.termHeight+1; row++ {
			cw.WriteAbs(left, row, "│")
			cw.WriteAbs(right, row, "│")
		}
	}
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}
