// Package config provides YAML-based game tuning for flappy-tui.
// All world and physics constants live here as an immutable value handed
// to the simulation at construction; nothing mutates it mid-session.
package config

import (
	"fmt"
)

// Config contains the full game tuning.
type Config struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Bird      Bird      `yaml:"bird"`
	Obstacles Obstacles `yaml:"obstacles"`
}

// World defines the playfield geometry in world units.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// FieldHeight returns the traversable height above the ground.
func (w World) FieldHeight() float64 {
	return w.Height - w.GroundHeight
}

// Physics defines entity motion parameters.
// All rates are per second so the simulation is frame-rate independent;
// the defaults correspond to classic per-frame tuning at 60 FPS.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`           // Downward acceleration, units/s^2
	FlapImpulse      float64 `yaml:"flap_impulse"`      // Velocity set on flap (negative = up), units/s
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Max downward speed, units/s
	RotationScale    float64 `yaml:"rotation_scale"`    // Degrees of tilt per unit/s of velocity
	MinAngle         float64 `yaml:"min_angle"`         // Nose-down clamp, degrees
	MaxAngle         float64 `yaml:"max_angle"`         // Nose-up clamp, degrees
}

// Bird defines the controlled entity.
type Bird struct {
	X      float64 `yaml:"x"`      // Fixed horizontal position
	Radius float64 `yaml:"radius"` // Collision extent
}

// Obstacles defines the gated obstacle stream.
type Obstacles struct {
	Speed         float64 `yaml:"speed"`          // Leftward speed, units/s
	Width         float64 `yaml:"width"`          // Obstacle width
	GapSize       float64 `yaml:"gap_size"`       // Vertical gap, constant per session
	MinClearance  float64 `yaml:"min_clearance"`  // Minimum height of each segment
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Spawn offset past the right edge
	RetireMargin  float64 `yaml:"retire_margin"`  // Off-screen distance before removal
}

// Validate checks that the tuning constants are internally consistent.
// A config that cannot produce a traversable obstacle is a startup error,
// not something to clamp mid-session.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		return fmt.Errorf("config: ground height %g out of range for world height %g", c.World.GroundHeight, c.World.Height)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.FlapImpulse >= 0 {
		return fmt.Errorf("config: flap impulse must be negative (upward), got %g", c.Physics.FlapImpulse)
	}
	if c.Physics.TerminalVelocity <= 0 {
		return fmt.Errorf("config: terminal velocity must be positive, got %g", c.Physics.TerminalVelocity)
	}
	if c.Bird.Radius <= 0 {
		return fmt.Errorf("config: bird radius must be positive, got %g", c.Bird.Radius)
	}
	if c.Bird.X <= 0 || c.Bird.X >= c.World.Width {
		return fmt.Errorf("config: bird x %g outside world width %g", c.Bird.X, c.World.Width)
	}
	if c.Obstacles.Speed <= 0 {
		return fmt.Errorf("config: obstacle speed must be positive, got %g", c.Obstacles.Speed)
	}
	if c.Obstacles.Width <= 0 {
		return fmt.Errorf("config: obstacle width must be positive, got %g", c.Obstacles.Width)
	}
	if c.Obstacles.SpawnInterval <= 0 {
		return fmt.Errorf("config: spawn interval must be positive, got %g", c.Obstacles.SpawnInterval)
	}
	if c.Obstacles.GapSize <= 2*c.Bird.Radius {
		return fmt.Errorf("config: gap size %g not traversable for bird radius %g", c.Obstacles.GapSize, c.Bird.Radius)
	}
	if c.Obstacles.MinClearance < 0 {
		return fmt.Errorf("config: min clearance must be non-negative, got %g", c.Obstacles.MinClearance)
	}
	if c.Obstacles.GapSize+2*c.Obstacles.MinClearance > c.World.FieldHeight() {
		return fmt.Errorf("config: gap %g plus clearances %g does not fit field height %g",
			c.Obstacles.GapSize, 2*c.Obstacles.MinClearance, c.World.FieldHeight())
	}
	return nil
}
