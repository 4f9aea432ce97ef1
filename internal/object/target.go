package object

import (
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/physics"
)

// Target falls from the top of the screen. Good targets should be hit or caught,
// bad ones avoided.
type Target struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Pixels per step, downward
	Good          bool
	Color         draw.Color
}

// NewTarget creates a target just above the top edge at horizontal position x.
func NewTarget(x, speed float64, good bool) *Target {
	color := draw.Color(config.ColorBadTarget)
	if good {
		color = draw.Color(config.ColorGoodTarget)
	}
	return &Target{
		X:      x,
		Y:      -config.TargetSize,
		Width:  config.TargetSize,
		Height: config.TargetSize,
		Speed:  speed,
		Good:   good,
		Color:  color,
	}
}

// Update moves the target down one step.
// Returns true once the target has passed the bottom of the screen.
func (t *Target) Update(screen Screen) bool {
	t.Y += t.Speed
	return t.Y > screen.Height
}

// Bounds returns the target's collision rectangle.
func (t *Target) Bounds() physics.Rect {
	return physics.Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}
}

// Fill returns the target's color.
func (t *Target) Fill() draw.Color {
	return t.Color
}
