package object

import (
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/physics"
)

// Player is the block the user steers around the bottom of the screen.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Pixels per step
	Color         draw.Color
}

// NewPlayer creates a player centered horizontally near the bottom of the screen.
func NewPlayer(screen Screen) *Player {
	p := &Player{
		X:      screen.Width / 2,
		Y:      screen.Height - config.PlayerBottomMargin,
		Width:  config.PlayerSize,
		Height: config.PlayerSize,
		Speed:  config.PlayerSpeed,
		Color:  draw.Color(config.ColorPlayer),
	}
	// Small screens would otherwise start the player out of bounds.
	p.Move(0, 0, screen)
	return p
}

// Move shifts the player by dx, dy steps and keeps it inside the screen.
func (p *Player) Move(dx, dy float64, screen Screen) {
	r := p.Bounds()
	r.X += dx * p.Speed
	r.Y += dy * p.Speed
	r = physics.ClampInside(r, screen.Width, screen.Height)
	p.X, p.Y = r.X, r.Y
}

// Muzzle returns where a new bullet leaves the player.
func (p *Player) Muzzle() (x, y float64) {
	return p.X + p.Width/2, p.Y
}

// Bounds returns the player's collision rectangle.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Fill returns the player's color.
func (p *Player) Fill() draw.Color {
	return p.Color
}
