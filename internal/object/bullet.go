package object

import (
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/physics"
)

// Bullet is a projectile fired straight up by the player.
type Bullet struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Pixels per step, upward
	Color         draw.Color
}

// NewBullet creates a bullet at the given muzzle position.
func NewBullet(x, y float64) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		Width:  config.BulletWidth,
		Height: config.BulletHeight,
		Speed:  config.BulletSpeed,
		Color:  draw.Color(config.ColorBullet),
	}
}

// Update moves the bullet up one step.
// Returns true once the bullet has fully left through the top edge.
func (b *Bullet) Update() bool {
	b.Y -= b.Speed
	return b.Y <= -b.Height
}

// Bounds returns the bullet's collision rectangle.
func (b *Bullet) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Fill returns the bullet's color.
func (b *Bullet) Fill() draw.Color {
	return b.Color
}
