// Package game implements the shooter's session state, update step, collision
// resolution, rendering, and the frame loop that drives them.
package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/skyshooter/internal/game/config"
	"github.com/tomz197/skyshooter/internal/object"
)

// Rand is the randomness a session needs for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded random source. Equal seeds give equal spawn sequences.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Controls is the input consumed by one frame.
type Controls struct {
	Left, Right, Up, Down bool // Held directions
	Shots                 int  // Fire presses since the previous frame

	Confirm bool // Start / resume / play again
	Pause   bool // Toggle pause
	Menu    bool // Back to the menu
}

// Session is one play-through from start to game-over. It owns every entity.
type Session struct {
	Screen  object.Screen
	Player  *object.Player
	Bullets []*object.Bullet // Oldest first
	Targets []*object.Target // Oldest first

	Score      int
	Lives      int
	Running    bool
	SpawnTimer float64 // Milliseconds since the last spawn

	over       bool
	rng        Rand
	onGameOver func(*Session)
}

// NewSession creates a running session on a screen of the given size.
func NewSession(screen object.Screen, rng Rand) *Session {
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}
	return &Session{
		Screen:  screen,
		Player:  object.NewPlayer(screen),
		Bullets: []*object.Bullet{},
		Targets: []*object.Target{},
		Lives:   config.InitialLives,
		Running: true,
		rng:     rng,
	}
}

// OnGameOver registers fn to run once when the session ends.
func (s *Session) OnGameOver(fn func(*Session)) {
	s.onGameOver = fn
}

// Over reports whether the session reached game-over.
func (s *Session) Over() bool {
	return s.over
}

// Pause stops updates without ending the session.
func (s *Session) Pause() {
	s.Running = false
}

// Resume continues a paused session. A finished session stays finished.
func (s *Session) Resume() {
	if !s.over {
		s.Running = true
	}
}

// Update advances the session by one frame.
func (s *Session) Update(elapsed time.Duration, in Controls) {
	if !s.Running {
		return
	}

	for i := 0; i < in.Shots; i++ {
		s.Shoot()
	}

	if in.Left {
		s.Move(-1, 0)
	}
	if in.Right {
		s.Move(1, 0)
	}
	if in.Up {
		s.Move(0, -1)
	}
	if in.Down {
		s.Move(0, 1)
	}

	s.updateBullets()
	s.updateTargets()
	if !s.Running {
		return
	}

	s.ResolveCollisions()
	if !s.Running {
		return
	}

	s.SpawnTimer += elapsed.Seconds() * 1000
	if s.SpawnTimer > config.SpawnIntervalMs {
		s.SpawnTarget()
		s.SpawnTimer = 0
	}
}

// Move steps the player by dx, dy units of its speed, clamped to the screen.
func (s *Session) Move(dx, dy float64) {
	if !s.Running {
		return
	}
	s.Player.Move(dx, dy, s.Screen)
}

// Shoot fires a bullet from the player's muzzle.
func (s *Session) Shoot() {
	if !s.Running {
		return
	}
	s.Bullets = append(s.Bullets, object.NewBullet(s.Player.Muzzle()))
}

// SpawnTarget adds one target above a random column.
func (s *Session) SpawnTarget() {
	good := s.rng.Float64() > 1-config.GoodTargetRatio
	x := s.rng.Float64() * (s.Screen.Width - config.TargetSize)
	speed := config.TargetMinSpeed + s.rng.Float64()*config.TargetSpeedSpread
	s.Targets = append(s.Targets, object.NewTarget(x, speed, good))
}

// updateBullets moves bullets up and drops those past the top edge.
func (s *Session) updateBullets() {
	kept := s.Bullets[:0] // reuse backing array
	for _, b := range s.Bullets {
		if !b.Update() {
			kept = append(kept, b)
		}
	}
	clear(s.Bullets[len(kept):])
	s.Bullets = kept
}

// updateTargets moves targets down. A good target that gets past the bottom
// costs a life; bad ones just disappear.
func (s *Session) updateTargets() {
	kept := s.Targets[:0]
	for _, t := range s.Targets {
		if t.Update(s.Screen) {
			if t.Good && s.Running {
				s.loseLife()
			}
			continue
		}
		kept = append(kept, t)
	}
	clear(s.Targets[len(kept):])
	s.Targets = kept
}

// loseLife takes one life and ends the session when none are left.
func (s *Session) loseLife() {
	if s.Lives > 0 {
		s.Lives--
	}
	if s.Lives == 0 {
		s.endGame()
	}
}

func (s *Session) endGame() {
	if s.over {
		return
	}
	s.over = true
	s.Running = false
	if s.onGameOver != nil {
		s.onGameOver(s)
	}
}
