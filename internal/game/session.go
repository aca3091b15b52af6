package game

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Phase is the explicit session state. There are exactly three states and
// no flag combinations outside them.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first flap; idle animation only
	PhaseRunning               // Full simulation active
	PhaseGameOver              // Frozen, waiting for a restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// BestScoreStore is the persistence boundary for the best score.
// Implementations live outside the game package; read failures mean "no
// record yet" and write failures are swallowed by the session.
type BestScoreStore interface {
	// BestScore returns the persisted best score.
	BestScore() (int, error)

	// SaveBestScore durably stores a new best score.
	SaveBestScore(score int) error
}

// State is the per-tick summary returned by Step.
type State struct {
	Phase Phase
	Score int
	Best  int
}

// Session orchestrates one player's game: it owns the bird, the obstacle
// stream and the score, and drives the Idle -> Running -> GameOver -> Running
// state machine. All methods must be called from a single goroutine.
type Session struct {
	cfg   config.Config
	phase Phase

	bird   *Bird
	stream *Stream
	fx     *effects

	score int
	best  int
	store BestScoreStore // may be nil: scores then live only in memory

	baseSeed int64
	runs     int64 // Completed restarts, salts the per-run seed
	tick     uint64
}

// NewSession validates the config, loads the persisted best score (any
// failure reads as 0) and returns a session in the Idle phase.
func NewSession(cfg config.Config, seed int64, store BestScoreStore) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      cfg,
		phase:    PhaseIdle,
		bird:     NewBird(cfg),
		stream:   NewStream(cfg, seed),
		fx:       newEffects(cfg, seed),
		store:    store,
		baseSeed: seed,
	}

	if store != nil {
		if best, err := store.BestScore(); err == nil {
			s.best = best
		}
	}

	return s, nil
}

// Step advances the session by dt seconds with the given input frame.
// Exactly one tick of work happens per call; nothing suspends mid-tick.
func (s *Session) Step(in core.InputFrame, dt float64) State {
	s.tick++
	s.fx.update(dt)

	switch s.phase {
	case PhaseIdle:
		if in.Has(core.ActionFlap) {
			// Combined transition: the starting action is also the first flap.
			s.startRun()
			s.bird.Flap()
			s.fx.burst(s.bird.X-6, s.bird.Y)
		} else {
			s.bird.Idle(dt)
		}

	case PhaseRunning:
		s.stepRunning(in, dt)

	case PhaseGameOver:
		if in.Has(core.ActionFlap) || in.Has(core.ActionRestart) {
			s.startRun()
		} else {
			s.bird.Idle(dt)
		}
	}

	return s.State()
}

// stepRunning performs the full update cycle for one Running tick:
// input, kinematics, obstacle stream, then collision and scoring.
func (s *Session) stepRunning(in core.InputFrame, dt float64) {
	if in.Has(core.ActionFlap) {
		s.bird.Flap()
		s.fx.burst(s.bird.X-6, s.bird.Y)
	}

	s.bird.Update(dt)

	s.stream.MaybeSpawn(dt)
	s.stream.Advance(dt)
	s.stream.RetireExpired()

	out := evaluate(s.bird, s.stream, worldGeom{fieldH: s.cfg.World.FieldHeight()})

	// Score counts even on a colliding tick; collision wins the terminal state.
	if out.Passed > 0 {
		s.score += out.Passed
		s.raiseBest()
	}
	if out.Collided {
		s.phase = PhaseGameOver
	}
}

// startRun moves the session into Running with a fresh bird, an empty
// stream, zero score and a re-armed spawn timer. The run seed is derived
// from the base seed so a session's run sequence stays deterministic.
func (s *Session) startRun() {
	s.runs++
	s.bird = NewBird(s.cfg)
	s.stream.Reset(s.baseSeed + s.runs)
	s.fx.clear()
	s.score = 0
	s.phase = PhaseRunning
}

// raiseBest raises the in-memory best score and writes it through
// immediately. A write failure is non-fatal and deliberately ignored:
// gameplay is never interrupted by a persistence fault.
func (s *Session) raiseBest() {
	if s.score <= s.best {
		return
	}
	s.best = s.score
	if s.store != nil {
		_ = s.store.SaveBestScore(s.best)
	}
}

// State returns the current per-tick summary.
func (s *Session) State() State {
	return State{Phase: s.phase, Score: s.score, Best: s.best}
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.score
}

// Best returns the in-memory best score. It never decreases.
func (s *Session) Best() int {
	return s.best
}

// Config returns the immutable tuning this session runs with.
func (s *Session) Config() config.Config {
	return s.cfg
}
