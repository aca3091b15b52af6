// Package game implements the flappy simulation: a dt-scaled kinematic
// bird, a FIFO stream of gated obstacles, collision and scoring evaluation,
// and the session state machine that ties them together. It has no TUI
// dependencies; the platform layer drives it with ticks and draws snapshots.
package game

import (
	"math"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Bird is the controlled entity. X is fixed for the whole session; only Y,
// velocity and the derived angle change.
type Bird struct {
	X      float64
	Y      float64
	Vel    float64 // Vertical velocity, units/s, positive = down
	Angle  float64 // Derived tilt in degrees, clamped
	Radius float64

	// wingPhase drives the wing flutter animation. Purely visual.
	wingPhase float64

	phys config.Physics
}

// NewBird creates a bird at the default spawn point: fixed X from the
// config, vertically centered, at rest.
func NewBird(cfg config.Config) *Bird {
	return &Bird{
		X:      cfg.Bird.X,
		Y:      cfg.World.Height / 2,
		Radius: cfg.Bird.Radius,
		phys:   cfg.Physics,
	}
}

// Flap overwrites the velocity with the flap impulse. It is not additive:
// flapping twice in a row leaves the same velocity as flapping once.
func (b *Bird) Flap() {
	b.Vel = b.phys.FlapImpulse
	b.wingPhase = -0.6 // animation kick
}

// Update advances the bird by dt seconds: gravity, terminal-velocity clamp
// (downward only - the flap impulse may exceed it upward), position, and
// the velocity-derived tilt angle.
func (b *Bird) Update(dt float64) {
	b.Vel += b.phys.Gravity * dt
	if b.Vel > b.phys.TerminalVelocity {
		b.Vel = b.phys.TerminalVelocity
	}
	b.Y += b.Vel * dt

	b.Angle = core.ClampF(-b.Vel*b.phys.RotationScale, b.phys.MinAngle, b.phys.MaxAngle)

	b.wingPhase += dt * 8.0
}

// Idle advances only the wing animation, used while the session is not
// running.
func (b *Bird) Idle(dt float64) {
	b.wingPhase += dt * 4.0
}

// WingOffset returns the current wing flutter offset for rendering.
func (b *Bird) WingOffset() float64 {
	return math.Sin(b.wingPhase)
}

// Rect returns the bird's collision bounding box.
func (b *Bird) Rect() core.Rect {
	return core.NewRect(b.X-b.Radius, b.Y-b.Radius, b.Radius*2, b.Radius*2)
}
