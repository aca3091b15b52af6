package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the default tuning, matching the embedded YAML.
func Default() Config {
	return Config{
		World: World{
			Width:        480,
			Height:       700,
			GroundHeight: 100,
		},
		Physics: Physics{
			Gravity:          1620.0,
			FlapImpulse:      -570.0,
			TerminalVelocity: 720.0,
			RotationScale:    0.0583,
			MinAngle:         -30.0,
			MaxAngle:         80.0,
		},
		Bird: Bird{
			X:      100,
			Radius: 18,
		},
		Obstacles: Obstacles{
			Speed:         198.0,
			Width:         88,
			GapSize:       200,
			MinClearance:  80,
			SpawnInterval: 1.7,
			SpawnMargin:   20,
			RetireMargin:  60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
