package game

import (
	"math/rand"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

const particleLifetime = 0.6 // seconds

// Particle is a short-lived flap spark. Decorative only: particles never
// collide or score.
type Particle struct {
	X, Y   float64
	VelX   float64
	VelY   float64
	Life   float64 // Remaining lifetime in seconds
	maxAge float64
}

// Fade returns the particle's remaining life as a 0..1 fraction.
func (p Particle) Fade() float64 {
	if p.maxAge <= 0 {
		return 0
	}
	return p.Life / p.maxAge
}

// Cloud is a parallax background cloud drifting right to left.
type Cloud struct {
	X, Y  float64
	Speed float64 // units/s
	Scale float64
}

// effects holds the decorative state: flap particles and parallax clouds.
// Updated in every phase, including Idle and GameOver.
type effects struct {
	particles []Particle
	clouds    []Cloud
	rng       *rand.Rand
	cfg       config.Config
}

func newEffects(cfg config.Config, seed int64) *effects {
	e := &effects{
		particles: make([]Particle, 0, 64),
		clouds:    make([]Cloud, 6),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
	}
	for i := range e.clouds {
		e.clouds[i] = e.newCloud(true)
	}
	return e
}

// newCloud places a cloud; on initial placement anywhere on screen,
// otherwise just past the right edge.
func (e *effects) newCloud(initial bool) Cloud {
	x := e.cfg.World.Width + 60
	if initial {
		x = e.rng.Float64() * e.cfg.World.Width
	}
	return Cloud{
		X:     x,
		Y:     40 + e.rng.Float64()*160,
		Speed: 18 + e.rng.Float64()*48,
		Scale: 0.8 + e.rng.Float64()*0.8,
	}
}

// burst spawns flap sparks just behind the bird.
func (e *effects) burst(x, y float64) {
	for i := 0; i < 12; i++ {
		e.particles = append(e.particles, Particle{
			X:      x + e.rng.Float64()*12 - 6,
			Y:      y + e.rng.Float64()*12 - 6,
			VelX:   e.rng.Float64()*216 - 108,
			VelY:   -(30 + e.rng.Float64()*150),
			Life:   particleLifetime,
			maxAge: particleLifetime,
		})
	}
}

// update advances clouds and particles by dt seconds. Expired particles are
// dropped by compaction; clouds recycle past the left edge.
func (e *effects) update(dt float64) {
	for i := range e.clouds {
		e.clouds[i].X -= e.clouds[i].Speed * dt
		if e.clouds[i].X < -120 {
			e.clouds[i] = e.newCloud(false)
		}
	}

	live := e.particles[:0]
	for _, p := range e.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VelX * dt
		p.Y += p.VelY * dt
		p.VelY += e.cfg.Physics.Gravity * 0.6 * dt
		live = append(live, p)
	}
	e.particles = live
}

func (e *effects) clear() {
	e.particles = e.particles[:0]
}
