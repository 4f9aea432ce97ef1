package object

import (
	"testing"

	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/physics"
)

var testScreen = Screen{Width: 800, Height: 600}

// inside reports whether r already lies within the screen, i.e. clamping
// leaves it unchanged.
func inside(s Screen, r physics.Rect) bool {
	return physics.ClampInside(r, s.Width, s.Height) == r
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(testScreen)
	if p.X != 400 || p.Y != 550 {
		t.Errorf("position = (%v, %v), want (400, 550)", p.X, p.Y)
	}
	if p.Width != config.PlayerSize || p.Height != config.PlayerSize {
		t.Errorf("size = %vx%v, want %dx%d", p.Width, p.Height, config.PlayerSize, config.PlayerSize)
	}
	if p.Fill() != draw.Color(config.ColorPlayer) {
		t.Errorf("Fill = %v, want %v", p.Fill(), draw.Color(config.ColorPlayer))
	}
}

func TestNewPlayer_TinyScreen(t *testing.T) {
	screen := Screen{Width: 40, Height: 40}
	p := NewPlayer(screen)
	if !inside(screen, p.Bounds()) {
		t.Errorf("player %+v outside %+v", p.Bounds(), screen)
	}
}

func TestPlayerMove_Clamps(t *testing.T) {
	p := NewPlayer(testScreen)

	for i := 0; i < 500; i++ {
		p.Move(-1, -1, testScreen)
		if !inside(testScreen, p.Bounds()) {
			t.Fatalf("step %d: player %+v left the screen", i, p.Bounds())
		}
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("position = (%v, %v), want (0, 0)", p.X, p.Y)
	}

	for i := 0; i < 500; i++ {
		p.Move(1, 1, testScreen)
	}
	if p.X != 770 || p.Y != 570 {
		t.Errorf("position = (%v, %v), want (770, 570)", p.X, p.Y)
	}
}

func TestPlayerMuzzle(t *testing.T) {
	p := NewPlayer(testScreen)
	x, y := p.Muzzle()
	if x != 415 || y != 550 {
		t.Errorf("Muzzle = (%v, %v), want (415, 550)", x, y)
	}
}

func TestBulletUpdate(t *testing.T) {
	b := NewBullet(100, 10)

	if gone := b.Update(); gone {
		t.Fatal("bullet at y=2 should still be on screen")
	}
	if b.Y != 2 {
		t.Errorf("Y = %v, want 2", b.Y)
	}
	if gone := b.Update(); gone {
		t.Fatal("bullet at y=-6 is still partly visible")
	}
	if gone := b.Update(); !gone {
		t.Errorf("bullet at y=%v should be gone", b.Y)
	}
}

func TestNewTarget(t *testing.T) {
	good := NewTarget(50, 3, true)
	bad := NewTarget(50, 3, false)

	if good.Y != -config.TargetSize {
		t.Errorf("Y = %v, want %v", good.Y, -config.TargetSize)
	}
	if good.Fill() != draw.Color(config.ColorGoodTarget) {
		t.Errorf("good Fill = %v, want %v", good.Fill(), draw.Color(config.ColorGoodTarget))
	}
	if bad.Fill() != draw.Color(config.ColorBadTarget) {
		t.Errorf("bad Fill = %v, want %v", bad.Fill(), draw.Color(config.ColorBadTarget))
	}
}

func TestTargetUpdate_LeavesBottom(t *testing.T) {
	screen := Screen{Width: 100, Height: 20}
	tg := NewTarget(0, 10, true)

	steps := 0
	for !tg.Update(screen) {
		steps++
		if steps > 10 {
			t.Fatal("target never left the screen")
		}
	}
	// -30 -> -20 -> -10 -> 0 -> 10 -> 20 -> 30: leaves on the sixth step.
	if steps != 5 {
		t.Errorf("steps before leaving = %d, want 5", steps)
	}
}
