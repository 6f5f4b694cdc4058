package strip

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	fps = 60
	// frameInterval is the delay between animation frames.
	frameInterval = time.Second / fps

	springFrequency = 9.0
	springDamping   = 1.0 // critically damped: eases in without overshoot

	settleEpsilon = 0.05
)

func newSpring() harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping)
}

// axis is one animated scalar.
type axis struct {
	pos, vel, target float64
}

func (a *axis) step(s harmonica.Spring) {
	a.pos, a.vel = s.Update(a.pos, a.vel, a.target)
	if a.settled() {
		a.snap()
	}
}

func (a *axis) snap() {
	a.pos, a.vel = a.target, 0
}

func (a axis) settled() bool {
	return math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon
}

func (a axis) value() int {
	return int(math.Round(a.pos))
}

// motion eases the indicator rectangle towards its target.
type motion struct {
	spring     harmonica.Spring
	x, y, w, h axis
	placed     bool
}

func newMotion() motion {
	return motion{spring: newSpring()}
}

func (m *motion) axes() []*axis {
	return []*axis{&m.x, &m.y, &m.w, &m.h}
}

// setTarget retargets the animation. The first visible target, and any empty one, is
// applied immediately rather than animated.
func (m *motion) setTarget(r Rect) {
	m.x.target, m.y.target = float64(r.X), float64(r.Y)
	m.w.target, m.h.target = float64(r.W), float64(r.H)
	if !m.placed || r.Empty() {
		for _, a := range m.axes() {
			a.snap()
		}
		m.placed = !r.Empty()
	}
}

// jump places the indicator on r without animating.
func (m *motion) jump(r Rect) {
	m.placed = false
	m.setTarget(r)
}

func (m *motion) step() {
	for _, a := range m.axes() {
		a.step(m.spring)
	}
}

func (m *motion) settled() bool {
	for _, a := range m.axes() {
		if !a.settled() {
			return false
		}
	}
	return true
}

// rect returns the current animated rectangle rounded to cells.
func (m *motion) rect() Rect {
	return Rect{X: m.x.value(), Y: m.y.value(), W: m.w.value(), H: m.h.value()}
}
