package game

import "math/rand"

// DuelSim is a headless match harness used by tests and the batch report
// runner. It wraps a Match with deterministic seeding, scripted fixtures
// (flat terrain, pinned stations), and per-flight position capture.
type DuelSim struct {
	Match *Match

	cfg Config
	rng *rand.Rand

	lastFlight []Point
}

// duelOptionKind controls the pass in which an option is applied.
type duelOptionKind int

const (
	duelOptInfra   duelOptionKind = iota // seed, config: applied before the match exists
	duelOptFixture                       // terrain/station/turn overrides: applied after setup
)

// DuelOption is a builder function applied to a DuelSim during construction.
type DuelOption struct {
	kind duelOptionKind
	fn   func(*DuelSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) DuelOption {
	return DuelOption{duelOptInfra, func(ds *DuelSim) {
		ds.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithConfig replaces the default engine config.
func WithConfig(cfg Config) DuelOption {
	return DuelOption{duelOptInfra, func(ds *DuelSim) {
		ds.cfg = cfg
	}}
}

// WithVerboseLog records per-tick projectile positions in the match log.
func WithVerboseLog() DuelOption {
	return DuelOption{duelOptFixture, func(ds *DuelSim) {
		ds.Match.log.verbose = true
	}}
}

// WithFlatTerrain levels every column to the given elevation and re-seats
// both stations on the new surface at their existing x positions.
func WithFlatTerrain(elev float64) DuelOption {
	return DuelOption{duelOptFixture, func(ds *DuelSim) {
		t := ds.Match.terrain
		for i := range t.Heights {
			t.Heights[i] = elev
		}
		ds.reseatStations()
	}}
}

// WithStationsAt pins the stations' horizontal positions, re-seating them
// on the current terrain. Apply after WithFlatTerrain when combining.
func WithStationsAt(leftX, rightX float64) DuelOption {
	return DuelOption{duelOptFixture, func(ds *DuelSim) {
		ds.Match.stations[0].X = leftX
		ds.Match.stations[1].X = rightX
		ds.reseatStations()
	}}
}

// WithStartingPlayer overrides the coin toss.
func WithStartingPlayer(i int) DuelOption {
	return DuelOption{duelOptFixture, func(ds *DuelSim) {
		ds.Match.current = i
	}}
}

// NewDuelSim constructs a DuelSim in two ordered passes: infrastructure
// options first (seed, config), then the match itself, then fixture
// options in argument order.
func NewDuelSim(opts ...DuelOption) *DuelSim {
	ds := &DuelSim{
		cfg: DefaultConfig(),
		rng: rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		if o.kind == duelOptInfra {
			o.fn(ds)
		}
	}
	ds.Match = NewMatch(ds.rng, ds.cfg)
	for _, o := range opts {
		if o.kind == duelOptFixture {
			o.fn(ds)
		}
	}
	return ds
}

// reseatStations drops both stations back onto the terrain after a
// fixture modified the surface or the station x positions.
func (ds *DuelSim) reseatStations() {
	m := ds.Match
	for i := range m.stations {
		m.stations[i] = seatStation(m.terrain, m.stations[i].X, m.cfg, m.stations[i].Side)
	}
}

// Fire submits the given parameters for the current player and runs the
// flight to completion, capturing every position.
func (ds *DuelSim) Fire(angle, power float64) (Impact, error) {
	if err := ds.Match.SubmitAngle(angle); err != nil {
		return Impact{}, err
	}
	if err := ds.Match.SubmitPower(power); err != nil {
		return Impact{}, err
	}
	ds.lastFlight = ds.lastFlight[:0]
	imp := ds.Match.RunFlight(func(p Point) {
		ds.lastFlight = append(ds.lastFlight, p)
	})
	return imp, nil
}

// RandomShot fires uniform random valid parameters for the current
// player. Not an aiming opponent, just a sampler for batch statistics.
func (ds *DuelSim) RandomShot() (Impact, error) {
	cfg := ds.cfg
	angle := cfg.MinAngle + ds.rng.Float64()*(cfg.MaxAngle-cfg.MinAngle)
	power := cfg.MinPower + ds.rng.Float64()*(cfg.MaxPower-cfg.MinPower)
	return ds.Fire(angle, power)
}

// LastFlight returns the positions of the most recent flight, in tick order.
func (ds *DuelSim) LastFlight() []Point {
	return ds.lastFlight
}
