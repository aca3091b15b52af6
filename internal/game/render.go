package game

import (
	"fmt"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Glyphs for game elements.
const (
	birdBody     = '●'
	birdBeak     = '▶'
	pipeChar     = '█'
	pipeCapUpper = '▄' // Cap at the bottom of the top segment
	pipeCapLower = '▀' // Cap at the top of the bottom segment
	groundChar   = '═'
	dirtChar     = '░'
	cloudChar    = '▒'
	sparkChar    = '•'
	sparkFaded   = '·'
)

// projection maps world coordinates onto the screen cell grid.
type projection struct {
	sx, sy float64
}

func (p projection) x(wx float64) int { return int(wx * p.sx) }
func (p projection) y(wy float64) int { return int(wy * p.sy) }

// Render draws the current session state into the screen buffer.
// The world is projected onto whatever cell grid the terminal offers;
// rendering reads state and feeds nothing back into the simulation.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	p := projection{
		sx: float64(dst.Width()) / s.cfg.World.Width,
		sy: float64(dst.Height()) / s.cfg.World.Height,
	}

	s.drawClouds(dst, p)
	for _, o := range s.stream.obstacles {
		s.drawObstacle(dst, p, o)
	}
	s.drawGround(dst, p)
	s.drawParticles(dst, p)
	s.drawBird(dst, p)
	s.drawHUD(dst)
}

func (s *Session) drawClouds(dst *core.Screen, p projection) {
	for _, c := range s.fx.clouds {
		cx, cy := p.x(c.X), p.y(c.Y)
		w := core.Max(2, int(c.Scale*4))
		for i := 0; i < w; i++ {
			dst.SetCell(cx+i, cy, cloudChar, core.ColorBrightWhite)
		}
	}
}

func (s *Session) drawObstacle(dst *core.Screen, p projection, o Obstacle) {
	left := p.x(o.X)
	right := p.x(o.TrailingEdge())
	w := core.Max(1, right-left)

	gapTop := p.y(o.TopHeight)
	gapBottom := p.y(o.TopHeight + o.GapSize)
	groundY := p.y(s.cfg.World.FieldHeight())

	// Top segment, capped at the gap edge
	for y := 0; y < gapTop; y++ {
		dst.DrawHLine(left, y, w, pipeChar, core.ColorGreen)
	}
	if gapTop > 0 {
		dst.DrawHLine(left, gapTop-1, w, pipeCapUpper, core.ColorGreen)
	}

	// Bottom segment, capped at the gap edge
	for y := gapBottom; y < groundY; y++ {
		dst.DrawHLine(left, y, w, pipeChar, core.ColorGreen)
	}
	if gapBottom < groundY {
		dst.DrawHLine(left, gapBottom, w, pipeCapLower, core.ColorGreen)
	}
}

func (s *Session) drawGround(dst *core.Screen, p projection) {
	groundY := p.y(s.cfg.World.FieldHeight())
	dst.DrawHLine(0, groundY, dst.Width(), groundChar, core.ColorBrown)
	for y := groundY + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), dirtChar, core.ColorBrown)
	}
}

func (s *Session) drawParticles(dst *core.Screen, p projection) {
	for _, part := range s.fx.particles {
		ch := sparkChar
		if part.Fade() < 0.4 {
			ch = sparkFaded
		}
		dst.SetCell(p.x(part.X), p.y(part.Y), ch, core.ColorBrightYellow)
	}
}

func (s *Session) drawBird(dst *core.Screen, p projection) {
	bx, by := p.x(s.bird.X), p.y(s.bird.Y)

	// Tilt the beak a row up or down from the body based on the derived angle.
	beakY := by
	switch {
	case s.bird.Angle > 30:
		beakY = by - 1
	case s.bird.Angle < -15:
		beakY = by + 1
	}

	wingY := by
	if s.bird.WingOffset() > 0 {
		wingY = by - 1
	}

	dst.SetCell(bx-1, wingY, '~', core.ColorOrange)
	dst.SetCell(bx, by, birdBody, core.ColorBrightYellow)
	dst.SetCell(bx+1, beakY, birdBeak, core.ColorOrange)
}

func (s *Session) drawHUD(dst *core.Screen) {
	dst.DrawTextCentered(1, fmt.Sprintf(" %d ", s.score), core.ColorBrightWhite)

	best := fmt.Sprintf("Best: %d", s.best)
	dst.DrawText(dst.Width()-len(best)-2, 0, best, core.ColorGray)

	switch s.phase {
	case PhaseIdle:
		dst.DrawTextCentered(dst.Height()/2, "Press SPACE to start", core.ColorBrightWhite)
	case PhaseGameOver:
		s.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R or SPACE to try again", s.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (s *Session) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
