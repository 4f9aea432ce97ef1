// Package config centralizes all tunable game parameters.
package config

import "time"

// Canvas - the logical drawing area. Frontends scale it to their output.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Player
const (
	PlayerSize         = 30
	PlayerSpeed        = 5.0 // Pixels per update
	PlayerBottomMargin = 50  // Start position above the bottom edge
	InitialLives       = 3
)

// Bullets
const (
	BulletWidth  = 4
	BulletHeight = 10
	BulletSpeed  = 8.0 // Pixels per update, upward
)

// Targets
const (
	TargetSize        = 30
	TargetMinSpeed    = 2.0
	TargetSpeedSpread = 3.0 // Speed is TargetMinSpeed + rand*TargetSpeedSpread
	GoodTargetRatio   = 0.7
	SpawnIntervalMs   = 1000.0
)

// Scoring
const (
	ScoreBulletGood  = 10
	PenaltyBulletBad = 5
	ScoreCatchGood   = 5
)

// Colors (0xRRGGBB)
const (
	ColorBackground = 0x000000
	ColorPlayer     = 0x4CAF50
	ColorBullet     = 0xFFD700
	ColorGoodTarget = 0xFF6B6B
	ColorBadTarget  = 0x2196F3
)

// Persistence
const (
	BestScoreKey = "bestScore"
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Inactivity (SSH sessions)
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
