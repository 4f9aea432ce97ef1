package draw

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is a 24-bit RGB color packed as 0xRRGGBB.
type Color uint32

// RGB splits the color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA converts the color to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// String formats the color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xffffff)
}

// appendSGR appends a truecolor foreground+background escape sequence.
func appendSGR(buf []byte, fg, bg Color) []byte {
	fr, fgc, fb := fg.RGB()
	br, bgc, bb := bg.RGB()
	buf = append(buf, "\033[38;2;"...)
	buf = strconv.AppendUint(buf, uint64(fr), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(fgc), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(fb), 10)
	buf = append(buf, ";48;2;"...)
	buf = strconv.AppendUint(buf, uint64(br), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(bgc), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(bb), 10)
	buf = append(buf, 'm')
	return buf
}
