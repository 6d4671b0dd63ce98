package game

import "math"

// FiringParams is one turn's input: an elevation angle in degrees and a
// launch power. Consumed by a single shot.
type FiringParams struct {
	AngleDeg float64
	Power    float64
}

// Shot is a projectile in flight. Position is a closed-form function of
// elapsed time, never an integrated velocity: two shots with identical
// inputs trace identical trajectories tick for tick, with no accumulation
// drift however the caller slices the time steps.
type Shot struct {
	Origin   Point
	AngleDeg float64 // as entered, 0-90
	Power    float64
	Side     Side
	Gravity  float64
	Elapsed  float64

	mirror bool // fire leftward: origin sits on the right half of the field
}

// NewShot builds a shot leaving from the station's muzzle. A station whose
// muzzle sits past the playfield midpoint fires mirrored (theta becomes
// 180-angle), so both players aim outward with the same 0-90 convention.
func NewShot(from Station, p FiringParams, cfg Config) *Shot {
	m := from.Muzzle()
	return &Shot{
		Origin:   m,
		AngleDeg: p.AngleDeg,
		Power:    p.Power,
		Side:     from.Side,
		Gravity:  cfg.Gravity,
		mirror:   m.X > float64(cfg.Width)/2,
	}
}

// theta returns the launch angle in radians, mirrored for right-half shots.
func (s *Shot) theta() float64 {
	a := s.AngleDeg
	if s.mirror {
		a = 180 - a
	}
	return a * math.Pi / 180
}

// PositionAt evaluates the trajectory at elapsed time t:
//
//	x(t) = x0 + v*cos(theta)*t
//	y(t) = y0 - v*sin(theta)*t + g*t*t/2
func (s *Shot) PositionAt(t float64) Point {
	th := s.theta()
	return Point{
		X: s.Origin.X + s.Power*math.Cos(th)*t,
		Y: s.Origin.Y - s.Power*math.Sin(th)*t + 0.5*s.Gravity*t*t,
	}
}

// Advance moves the shot clock forward one step and returns the position
// at the new elapsed time.
func (s *Shot) Advance(dt float64) Point {
	s.Elapsed += dt
	return s.PositionAt(s.Elapsed)
}
