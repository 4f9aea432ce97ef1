package game

import (
	"slices"

	"github.com/tomz197/skyshooter/internal/game/config"
)

// ResolveCollisions applies bullet hits and player catches for the current
// positions. Entities are scanned newest first and removed as soon as they
// match, so each one is consumed at most once. Resolution stops at game-over.
func (s *Session) ResolveCollisions() {
	if !s.Running {
		return
	}
	s.resolveBulletHits()
	if !s.Running {
		return
	}
	s.resolvePlayerCatches()
}

// resolveBulletHits lets each bullet destroy at most one target.
func (s *Session) resolveBulletHits() {
	for i := len(s.Bullets) - 1; i >= 0; i-- {
		bullet := s.Bullets[i].Bounds()
		for j := len(s.Targets) - 1; j >= 0; j-- {
			t := s.Targets[j]
			if !bullet.Intersects(t.Bounds()) {
				continue
			}

			s.Bullets = slices.Delete(s.Bullets, i, i+1)
			s.Targets = slices.Delete(s.Targets, j, j+1)

			if t.Good {
				s.Score += config.ScoreBulletGood
			} else {
				s.Score = max(0, s.Score-config.PenaltyBulletBad)
				s.loseLife()
				if !s.Running {
					return
				}
			}
			break
		}
	}
}

// resolvePlayerCatches handles targets touching the player.
func (s *Session) resolvePlayerCatches() {
	player := s.Player.Bounds()
	for i := len(s.Targets) - 1; i >= 0; i-- {
		t := s.Targets[i]
		if !player.Intersects(t.Bounds()) {
			continue
		}

		s.Targets = slices.Delete(s.Targets, i, i+1)

		if t.Good {
			s.Score += config.ScoreCatchGood
		} else {
			s.loseLife()
			if !s.Running {
				return
			}
		}
	}
}
