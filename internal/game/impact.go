package game

// OutcomeKind classifies how a flight ended.
type OutcomeKind int

const (
	OutcomeOutOfBounds OutcomeKind = iota
	OutcomeTerrainHit
	OutcomeDirectHit
)

// String returns the log-facing name of the outcome.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOutOfBounds:
		return "out_of_bounds"
	case OutcomeTerrainHit:
		return "terrain"
	case OutcomeDirectHit:
		return "direct"
	default:
		return "unknown"
	}
}

// Impact is the terminal result of a shot. Target is meaningful only for
// OutcomeDirectHit.
type Impact struct {
	Kind   OutcomeKind
	Pos    Point
	Target Side
}

// ResolveImpact tests one projectile position against the exit conditions.
// ok is false while the flight continues. Checks run bounds first, then
// the target station, then terrain: a position inside the station rect is
// a direct hit even when the ground line has also been crossed there. Only
// the opposing station is ever tested, never the firer's own.
func ResolveImpact(p Point, t *Terrain, target Station, cfg Config) (Impact, bool) {
	if p.X < 0 || p.X >= float64(cfg.Width) || p.Y > t.Bottom {
		return Impact{Kind: OutcomeOutOfBounds, Pos: p}, true
	}
	if cfg.ClosedTop && p.Y < 0 {
		return Impact{Kind: OutcomeOutOfBounds, Pos: p}, true
	}
	if target.Contains(p) {
		return Impact{Kind: OutcomeDirectHit, Pos: p, Target: target.Side}, true
	}
	if p.Y >= t.ElevationAt(p.X) {
		return Impact{Kind: OutcomeTerrainHit, Pos: p}, true
	}
	return Impact{}, false
}
