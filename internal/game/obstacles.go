package game

import (
	"math/rand"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Obstacle is a paired top/bottom barrier with a traversable vertical gap.
// The gap geometry is fixed at creation; only X changes afterwards.
type Obstacle struct {
	X         float64 // Left edge, decreases over time
	Width     float64
	TopHeight float64 // Height of the top segment (gap starts here)
	GapSize   float64
	Passed    bool // Scoring already counted for this obstacle
}

// TopRect returns the collision rectangle for the top segment.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, o.Width, o.TopHeight)
}

// BottomRect returns the collision rectangle for the bottom segment,
// spanning from below the gap down to the ground at fieldH.
func (o Obstacle) BottomRect(fieldH float64) core.Rect {
	bottomY := o.TopHeight + o.GapSize
	return core.NewRect(o.X, bottomY, o.Width, fieldH-bottomY)
}

// TrailingEdge returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) TrailingEdge() float64 {
	return o.X + o.Width
}

// Stream manages the active obstacles. It is strictly FIFO: obstacles are
// appended at the tail, move left at identical speed so they never reorder,
// and are retired from the head once fully off-screen. The active set is
// therefore bounded.
type Stream struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	cfg        config.Config
	sinceSpawn float64 // Sim-seconds since the last spawn
}

// NewStream creates an empty obstacle stream with the given RNG seed.
func NewStream(cfg config.Config, seed int64) *Stream {
	s := &Stream{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
	}
	s.Reset(seed)
	return s
}

// Reset clears all obstacles, re-arms the spawn timer, and reseeds the RNG.
func (s *Stream) Reset(seed int64) {
	s.obstacles = s.obstacles[:0]
	s.rng = rand.New(rand.NewSource(seed))
	// Half an interval of head start so the first obstacle shows up
	// promptly after the run starts.
	s.sinceSpawn = s.cfg.Obstacles.SpawnInterval / 2
}

// MaybeSpawn accumulates elapsed sim time and appends a new obstacle at the
// right edge when the spawn interval has elapsed, re-arming the timer.
func (s *Stream) MaybeSpawn(dt float64) {
	s.sinceSpawn += dt
	if s.sinceSpawn <= s.cfg.Obstacles.SpawnInterval {
		return
	}
	s.sinceSpawn = 0
	s.obstacles = append(s.obstacles, s.spawn())
}

// spawn creates an obstacle past the right edge with the gap placed
// uniformly so both segments keep the minimum clearance.
func (s *Stream) spawn() Obstacle {
	oc := s.cfg.Obstacles
	fieldH := s.cfg.World.FieldHeight()

	minTop := oc.MinClearance
	maxTop := fieldH - oc.GapSize - oc.MinClearance
	topHeight := minTop + s.rng.Float64()*(maxTop-minTop)

	return Obstacle{
		X:         s.cfg.World.Width + oc.SpawnMargin,
		Width:     oc.Width,
		TopHeight: topHeight,
		GapSize:   oc.GapSize,
	}
}

// Advance moves every active obstacle left by speed*dt.
func (s *Stream) Advance(dt float64) {
	dx := s.cfg.Obstacles.Speed * dt
	for i := range s.obstacles {
		s.obstacles[i].X -= dx
	}
}

// RetireExpired removes obstacles whose trailing edge has moved past the
// off-screen threshold. Removal happens only at the head; since all
// obstacles move in lockstep the head is always the oldest and leftmost.
func (s *Stream) RetireExpired() {
	n := 0
	for n < len(s.obstacles) && s.obstacles[n].TrailingEdge() < -s.cfg.Obstacles.RetireMargin {
		n++
	}
	if n > 0 {
		s.obstacles = append(s.obstacles[:0], s.obstacles[n:]...)
	}
}

// Obstacles returns the active obstacles, oldest first.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of active obstacles.
func (s *Stream) Len() int {
	return len(s.obstacles)
}
