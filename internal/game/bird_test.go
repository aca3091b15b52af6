package game

import (
	"testing"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

const testDT = 1.0 / 60.0

func TestBirdGravityMonotonicUntilTerminal(t *testing.T) {
	cfg := config.Default()
	b := NewBird(cfg)

	prev := b.Vel
	reachedClamp := false
	for i := 0; i < 600; i++ {
		b.Update(testDT)
		if reachedClamp {
			if b.Vel != cfg.Physics.TerminalVelocity {
				t.Fatalf("tick %d: velocity left the terminal clamp: %g", i, b.Vel)
			}
			continue
		}
		if b.Vel < prev {
			t.Fatalf("tick %d: velocity decreased without a flap: %g -> %g", i, prev, b.Vel)
		}
		if b.Vel > cfg.Physics.TerminalVelocity {
			t.Fatalf("tick %d: velocity exceeded terminal: %g", i, b.Vel)
		}
		if b.Vel == cfg.Physics.TerminalVelocity {
			reachedClamp = true
		}
		prev = b.Vel
	}

	if !reachedClamp {
		t.Error("terminal velocity never reached in 600 ticks")
	}
}

func TestBirdFlapOverwritesVelocity(t *testing.T) {
	cfg := config.Default()
	b := NewBird(cfg)

	// Flap from a deep fall
	b.Vel = cfg.Physics.TerminalVelocity
	b.Flap()
	if b.Vel != cfg.Physics.FlapImpulse {
		t.Errorf("Flap() should set velocity to %g, got %g", cfg.Physics.FlapImpulse, b.Vel)
	}

	// Idempotent overwrite, not cumulative
	b.Flap()
	b.Flap()
	if b.Vel != cfg.Physics.FlapImpulse {
		t.Errorf("repeated Flap() should leave velocity at %g, got %g", cfg.Physics.FlapImpulse, b.Vel)
	}
}

func TestBirdUpwardVelocityUnclamped(t *testing.T) {
	cfg := config.Default()
	b := NewBird(cfg)

	// The flap impulse magnitude may exceed terminal velocity; only the
	// downward side is clamped.
	b.Flap()
	b.Update(testDT)
	if b.Vel >= 0 {
		t.Errorf("velocity should still be upward right after a flap, got %g", b.Vel)
	}
}

func TestBirdAngleClamped(t *testing.T) {
	cfg := config.Default()
	b := NewBird(cfg)

	// Flapping tilts the nose up, falling tilts it down; both clamped.
	b.Flap()
	b.Update(testDT)
	if b.Angle < cfg.Physics.MinAngle || b.Angle > cfg.Physics.MaxAngle {
		t.Errorf("angle %g outside [%g, %g]", b.Angle, cfg.Physics.MinAngle, cfg.Physics.MaxAngle)
	}
	if b.Angle <= 0 {
		t.Errorf("angle should be nose-up after a flap, got %g", b.Angle)
	}

	for i := 0; i < 300; i++ {
		b.Update(testDT)
	}
	if b.Angle != cfg.Physics.MinAngle {
		t.Errorf("angle should rest at the nose-down clamp %g during a long fall, got %g", cfg.Physics.MinAngle, b.Angle)
	}
}

func TestBirdPositionFollowsVelocity(t *testing.T) {
	cfg := config.Default()
	b := NewBird(cfg)
	startY := b.Y

	b.Update(testDT)
	if b.Y <= startY {
		t.Errorf("gravity should pull the bird down, Y went %g -> %g", startY, b.Y)
	}

	b.Flap()
	y := b.Y
	b.Update(testDT)
	if b.Y >= y {
		t.Errorf("flap should carry the bird up, Y went %g -> %g", y, b.Y)
	}
}

func TestBirdRect(t *testing.T) {
	cfg := config.Default()
	b := NewBird(cfg)

	r := b.Rect()
	if r.W != 2*cfg.Bird.Radius || r.H != 2*cfg.Bird.Radius {
		t.Errorf("rect should be %gx%g, got %gx%g", 2*cfg.Bird.Radius, 2*cfg.Bird.Radius, r.W, r.H)
	}
	if r.X != b.X-b.Radius || r.Y != b.Y-b.Radius {
		t.Errorf("rect should be centered on the bird, got %+v", r)
	}
}
