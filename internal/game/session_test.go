package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// fakeStore records best-score traffic and can simulate failures.
type fakeStore struct {
	best     int
	loadErr  error
	saveErr  error
	saved    []int
	loadHits int
}

func (f *fakeStore) BestScore() (int, error) {
	f.loadHits++
	if f.loadErr != nil {
		return 0, f.loadErr
	}
	return f.best, nil
}

func (f *fakeStore) SaveBestScore(score int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.best = score
	f.saved = append(f.saved, score)
	return nil
}

func newTestSession(t *testing.T, store BestScoreStore) *Session {
	t.Helper()
	s, err := NewSession(config.Default(), 1, store)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

func flapFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFlap)
	return in
}

func TestNewSessionRejectsBadGeometry(t *testing.T) {
	cfg := config.Default()
	cfg.Obstacles.MinClearance = cfg.World.FieldHeight() // impossible
	if _, err := NewSession(cfg, 1, nil); err == nil {
		t.Error("NewSession should fail fast on inconsistent obstacle geometry")
	}
}

func TestSessionStartsIdle(t *testing.T) {
	s := newTestSession(t, nil)
	if s.Phase() != PhaseIdle {
		t.Errorf("new session should be Idle, got %v", s.Phase())
	}

	// Idle ticks do reduced updates: no motion, no spawns, no score.
	snap := s.Snapshot()
	for i := 0; i < 120; i++ {
		s.Step(core.NewInputFrame(), testDT)
	}
	after := s.Snapshot()
	if after.Phase != PhaseIdle || after.BirdY != snap.BirdY || len(after.Obstacles) != 0 {
		t.Errorf("Idle ticks should not advance the simulation: %+v", after)
	}
}

func TestIdleFlapStartsAndFlaps(t *testing.T) {
	s := newTestSession(t, nil)

	state := s.Step(flapFrame(), testDT)
	if state.Phase != PhaseRunning {
		t.Fatalf("flap in Idle should start the run, got %v", state.Phase)
	}
	// Combined start+flap: velocity equals the flap impulse exactly.
	if s.bird.Vel != s.cfg.Physics.FlapImpulse {
		t.Errorf("velocity after combined start+flap = %g, expected %g", s.bird.Vel, s.cfg.Physics.FlapImpulse)
	}
}

func TestRestartActionIgnoredWhileRunning(t *testing.T) {
	s := newTestSession(t, nil)
	s.Step(flapFrame(), testDT)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	state := s.Step(in, testDT)
	if state.Phase != PhaseRunning {
		t.Errorf("Restart while Running should be a no-op, got %v", state.Phase)
	}
}

func TestFallToGroundEndsRunExactlyOnce(t *testing.T) {
	s := newTestSession(t, nil)

	// Entity starts mid-field at rest; Running with no input.
	s.phase = PhaseRunning
	s.bird = NewBird(s.cfg)

	groundY := s.cfg.World.FieldHeight()
	prevY := s.bird.Y
	transitions := 0
	for i := 0; i < 600; i++ {
		state := s.Step(core.NewInputFrame(), testDT)
		if state.Phase == PhaseGameOver {
			transitions++
			break
		}
		if s.bird.Y <= prevY {
			t.Fatalf("tick %d: Y should strictly increase during the fall, %g -> %g", i, prevY, s.bird.Y)
		}
		prevY = s.bird.Y
	}

	if transitions != 1 {
		t.Fatalf("expected exactly one Running->GameOver transition, got %d", transitions)
	}
	if s.bird.Y+s.bird.Radius <= groundY {
		t.Errorf("game over before the ground condition was met: y=%g", s.bird.Y)
	}

	// Frozen: further empty ticks change nothing.
	y := s.bird.Y
	s.Step(core.NewInputFrame(), testDT)
	if s.bird.Y != y || s.Phase() != PhaseGameOver {
		t.Error("GameOver ticks must freeze the bird")
	}
}

func TestNoCeilingCollision(t *testing.T) {
	s := newTestSession(t, nil)
	s.Step(flapFrame(), testDT)

	// Flap relentlessly; the bird leaves the visible field upward and the
	// run keeps going - the ceiling is open on purpose.
	for i := 0; i < 180; i++ {
		state := s.Step(flapFrame(), testDT)
		if state.Phase != PhaseRunning {
			t.Fatalf("tick %d: flying above the field ended the run (%v)", i, state.Phase)
		}
	}
	if s.bird.Y >= 0 {
		t.Errorf("expected the bird far above the field, y=%g", s.bird.Y)
	}
}

func TestGameOverRestartResetsRun(t *testing.T) {
	s := newTestSession(t, nil)
	runToGameOver(t, s)

	// Scatter some score/state to check the reset.
	s.score = 7

	state := s.Step(flapFrame(), testDT)
	if state.Phase != PhaseRunning {
		t.Fatalf("flap in GameOver should restart, got %v", state.Phase)
	}
	if state.Score != 0 {
		t.Errorf("restart should reset score to 0, got %d", state.Score)
	}
	if s.stream.Len() != 0 {
		t.Errorf("restart should clear the obstacle stream, got %d", s.stream.Len())
	}
	def := NewBird(s.cfg)
	if s.bird.Y != def.Y || s.bird.Vel != def.Vel {
		t.Errorf("restart should reset the bird to its spawn state, got y=%g vel=%g", s.bird.Y, s.bird.Vel)
	}

	// The explicit Restart action works the same way.
	runToGameOver(t, s)
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	if state := s.Step(in, testDT); state.Phase != PhaseRunning {
		t.Errorf("Restart action in GameOver should restart, got %v", state.Phase)
	}
}

// runToGameOver lets the bird free-fall into the ground.
func runToGameOver(t *testing.T, s *Session) {
	t.Helper()
	if s.Phase() == PhaseIdle {
		s.Step(flapFrame(), testDT)
	}
	for i := 0; i < 1200 && s.Phase() != PhaseGameOver; i++ {
		s.Step(core.NewInputFrame(), testDT)
	}
	if s.Phase() != PhaseGameOver {
		t.Fatal("session did not reach GameOver by free fall")
	}
}

func TestScoringExactlyOncePerObstacle(t *testing.T) {
	s := newTestSession(t, nil)
	s.phase = PhaseRunning
	s.bird = NewBird(s.cfg) // y = 350

	// An obstacle already left of the bird, gap spanning the bird's row so
	// the pass cannot collide.
	s.stream.obstacles = append(s.stream.obstacles, Obstacle{
		X:         2,
		Width:     s.cfg.Obstacles.Width,
		TopHeight: 250,
		GapSize:   s.cfg.Obstacles.GapSize,
	})

	state := s.Step(core.NewInputFrame(), testDT)
	if state.Score != 1 {
		t.Fatalf("expected one ScoreEvent, got score %d", state.Score)
	}
	if state.Phase != PhaseRunning {
		t.Fatalf("pass-through should not end the run, got %v", state.Phase)
	}

	// Subsequent ticks must not count the same obstacle again.
	for i := 0; i < 10; i++ {
		state = s.Step(core.NewInputFrame(), testDT)
	}
	if state.Score != 1 {
		t.Errorf("obstacle scored more than once: %d", state.Score)
	}
	if !s.stream.obstacles[0].Passed {
		t.Error("scored obstacle should be marked passed")
	}
}

func TestScoreAndCollisionSameTick(t *testing.T) {
	s := newTestSession(t, nil)
	s.phase = PhaseRunning
	s.bird = NewBird(s.cfg)

	// The bird is about to hit the ground on this very tick, while an
	// obstacle's trailing edge crosses the bird's x-position. Both events
	// must fire: the collision decides the terminal state, the score still
	// counts.
	s.bird.Y = s.cfg.World.FieldHeight() - s.bird.Radius - 0.1
	s.bird.Vel = s.cfg.Physics.TerminalVelocity
	s.stream.obstacles = append(s.stream.obstacles, Obstacle{
		X:         s.bird.X - s.cfg.Obstacles.Width + 1,
		Width:     s.cfg.Obstacles.Width,
		TopHeight: 250,
		GapSize:   s.cfg.Obstacles.GapSize,
	})

	state := s.Step(core.NewInputFrame(), testDT)
	if state.Phase != PhaseGameOver {
		t.Errorf("collision should end the run, got %v", state.Phase)
	}
	if state.Score != 1 {
		t.Errorf("score event should still count on the colliding tick, got %d", state.Score)
	}
}

func TestPipeCollisionEndsRun(t *testing.T) {
	s := newTestSession(t, nil)
	s.phase = PhaseRunning
	s.bird = NewBird(s.cfg)

	// Obstacle overlapping the bird with the gap far above it.
	s.stream.obstacles = append(s.stream.obstacles, Obstacle{
		X:         s.bird.X - 1,
		Width:     s.cfg.Obstacles.Width,
		TopHeight: s.cfg.Obstacles.MinClearance,
		GapSize:   s.cfg.Obstacles.GapSize,
	})

	state := s.Step(core.NewInputFrame(), testDT)
	if state.Phase != PhaseGameOver {
		t.Errorf("bottom-segment hit should end the run, got %v", state.Phase)
	}
}

func TestBestScoreLoadedAndMonotonic(t *testing.T) {
	store := &fakeStore{best: 5}
	s := newTestSession(t, store)

	if s.Best() != 5 {
		t.Fatalf("best should load from the store, got %d", s.Best())
	}
	if store.loadHits != 1 {
		t.Errorf("best should load exactly once at construction, got %d reads", store.loadHits)
	}

	// Score below the best: no write-through.
	s.phase = PhaseRunning
	s.score = 3
	s.raiseBest()
	if len(store.saved) != 0 {
		t.Error("best must not be written while the score is below it")
	}

	// Exceeding the best writes through immediately, once per increment.
	s.score = 6
	s.raiseBest()
	s.score = 7
	s.raiseBest()
	if s.Best() != 7 {
		t.Errorf("best = %d, expected 7", s.Best())
	}
	if len(store.saved) != 2 || store.saved[0] != 6 || store.saved[1] != 7 {
		t.Errorf("write-through sequence = %v, expected [6 7]", store.saved)
	}

	// Best survives a restart with a lower score.
	s.startRun()
	if s.Best() != 7 {
		t.Errorf("restart must not lower the best, got %d", s.Best())
	}
}

func TestBestScorePersistenceFaultsAreSwallowed(t *testing.T) {
	// Read failure means "no record yet".
	s := newTestSession(t, &fakeStore{best: 99, loadErr: errors.New("disk gone")})
	if s.Best() != 0 {
		t.Errorf("load failure should read as best 0, got %d", s.Best())
	}

	// Write failure must not disturb gameplay or the in-memory best.
	store := &fakeStore{saveErr: errors.New("disk full")}
	s = newTestSession(t, store)
	s.phase = PhaseRunning
	s.score = 4
	s.raiseBest()
	if s.Best() != 4 {
		t.Errorf("in-memory best should rise despite the write failure, got %d", s.Best())
	}
	if s.Phase() != PhaseRunning {
		t.Error("a persistence fault must never interrupt the run")
	}
}

func TestSessionDeterminism(t *testing.T) {
	// Same config, seed and input sequence produce identical runs.
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%20 == 0 {
			inputs[i].Set(core.ActionFlap)
		}
	}

	run := func() Snapshot {
		s, err := NewSession(config.Default(), 12345, nil)
		if err != nil {
			t.Fatalf("NewSession() failed: %v", err)
		}
		for _, in := range inputs {
			s.Step(in, testDT)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.Phase != b.Phase || a.Score != b.Score ||
		a.BirdY != b.BirdY || a.BirdVel != b.BirdVel || len(a.Obstacles) != len(b.Obstacles) {
		t.Errorf("identical runs diverged:\nrun1: %+v\nrun2: %+v", a, b)
	}
	for i := range a.Obstacles {
		if a.Obstacles[i] != b.Obstacles[i] {
			t.Errorf("obstacle %d diverged: %+v vs %+v", i, a.Obstacles[i], b.Obstacles[i])
		}
	}
}

func TestSessionRender(t *testing.T) {
	s := newTestSession(t, nil)
	s.Step(flapFrame(), testDT)
	for i := 0; i < 120; i++ {
		s.Step(core.NewInputFrame(), testDT)
	}

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}

	// Ground line sits at the projected field height.
	groundY := int(s.cfg.World.FieldHeight() * float64(screen.Height()) / s.cfg.World.Height)
	if screen.Get(0, groundY) != groundChar {
		t.Errorf("ground should be drawn at row %d, got %q", groundY, screen.Get(0, groundY))
	}
}
