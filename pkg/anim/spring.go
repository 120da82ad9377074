// Package anim drives math2d vectors from a frame loop.
package anim

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/planar/pkg/math2d"
)

// Default spring parameters: moderate speed, critically damped (no overshoot).
const (
	DefaultFrequency = 4.0
	DefaultDamping   = 1.0
)

// Spring2 animates a point toward a target with one harmonica spring per axis.
type Spring2 struct {
	Position math2d.Vec2
	Velocity math2d.Vec2
	spring   harmonica.Spring
}

// NewSpring2 creates a spring stepped at fps frames per second.
func NewSpring2(fps int, frequency, damping float64) *Spring2 {
	return &Spring2{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Step advances one frame toward target and writes the new position into out.
// out may alias target.
func (s *Spring2) Step(out, target *math2d.Vec2) *math2d.Vec2 {
	tx, ty := target.X, target.Y
	s.Position.X, s.Velocity.X = s.spring.Update(s.Position.X, s.Velocity.X, tx)
	s.Position.Y, s.Velocity.Y = s.spring.Update(s.Position.Y, s.Velocity.Y, ty)
	return math2d.Copy(out, &s.Position)
}

// Settled reports whether the spring is within eps of target and moving
// slower than eps.
func (s *Spring2) Settled(target *math2d.Vec2, eps float64) bool {
	return math2d.Distance(&s.Position, target) < eps && math2d.Len(&s.Velocity) < eps
}

// Reset places the spring at pos with zero velocity.
func (s *Spring2) Reset(pos math2d.Vec2) {
	s.Position = pos
	s.Velocity = math2d.Zero2()
}
