package game

// Outcome is the result of one frame's collision and scoring evaluation.
// Scoring and collision are independent checks: a frame can both score and
// collide, in which case the collision decides the terminal state and the
// score still counts.
type Outcome struct {
	Passed   int  // Obstacles newly passed this frame
	Collided bool // Terminal: bird hit the ground or an obstacle
}

// evaluate runs the per-frame collision and scoring checks.
// Scoring marks each obstacle Passed exactly once, when its trailing edge
// has moved left of the bird's fixed x-position. Collision checks the
// ground first, then obstacles in stream order; the first hit
// short-circuits (which obstacle is "blamed" is not observable).
// There is deliberately no ceiling check: the bird may fly above the
// visible field without penalty.
func evaluate(bird *Bird, stream *Stream, world worldGeom) Outcome {
	var out Outcome

	obstacles := stream.Obstacles()
	for i := range obstacles {
		if !obstacles[i].Passed && obstacles[i].TrailingEdge() < bird.X {
			obstacles[i].Passed = true
			out.Passed++
		}
	}

	if bird.Y+bird.Radius > world.fieldH {
		out.Collided = true
		return out
	}

	birdRect := bird.Rect()
	for _, o := range obstacles {
		if birdRect.Intersects(o.TopRect()) || birdRect.Intersects(o.BottomRect(world.fieldH)) {
			out.Collided = true
			break
		}
	}

	return out
}

// worldGeom is the slice of world geometry the evaluator needs.
type worldGeom struct {
	fieldH float64 // Ground line: world height minus ground height
}
