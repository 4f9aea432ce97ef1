// Package object defines the entities that live on the play field.
package object

import (
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/physics"
)

// Drawable is anything the renderer can paint as a filled rectangle.
type Drawable interface {
	Bounds() physics.Rect
	Fill() draw.Color
}

// Screen holds the play field dimensions.
type Screen struct {
	Width  float64
	Height float64
}
