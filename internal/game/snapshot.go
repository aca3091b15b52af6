package game

// Snapshot is the read-only per-frame view handed to rendering and used by
// determinism tests. It carries everything needed to draw a frame; the
// renderer feeds nothing back.
type Snapshot struct {
	Tick  uint64
	Phase Phase
	Score int
	Best  int

	BirdX      float64
	BirdY      float64
	BirdVel    float64
	BirdAngle  float64
	BirdRadius float64
	WingOffset float64

	Obstacles []Obstacle // Oldest first; copies, safe to hold
	Particles []Particle
	Clouds    []Cloud
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.stream.obstacles))
	copy(obstacles, s.stream.obstacles)

	particles := make([]Particle, len(s.fx.particles))
	copy(particles, s.fx.particles)

	clouds := make([]Cloud, len(s.fx.clouds))
	copy(clouds, s.fx.clouds)

	return Snapshot{
		Tick:       s.tick,
		Phase:      s.phase,
		Score:      s.score,
		Best:       s.best,
		BirdX:      s.bird.X,
		BirdY:      s.bird.Y,
		BirdVel:    s.bird.Vel,
		BirdAngle:  s.bird.Angle,
		BirdRadius: s.bird.Radius,
		WingOffset: s.bird.WingOffset(),
		Obstacles:  obstacles,
		Particles:  particles,
		Clouds:     clouds,
	}
}
