package game

import (
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/object"
	"github.com/tomz197/skyshooter/internal/physics"
)

// Surface is a 2D raster the renderer paints on. Coordinates are logical
// canvas units.
type Surface interface {
	Clear(bg draw.Color)
	FillRect(r physics.Rect, c draw.Color)
}

var _ Surface = (*draw.Canvas)(nil)

// Render paints the background and, while the session is running, the player,
// bullets, and targets in that order. It never mutates the session.
func Render(s *Session, surf Surface) {
	surf.Clear(draw.Color(config.ColorBackground))
	if s == nil || !s.Running {
		return
	}

	paint(surf, s.Player)
	for _, b := range s.Bullets {
		paint(surf, b)
	}
	for _, t := range s.Targets {
		paint(surf, t)
	}
}

func paint(surf Surface, d object.Drawable) {
	surf.FillRect(d.Bounds(), d.Fill())
}
