package game

import (
	"fmt"
	"math/rand"
)

// Phase is the match controller state.
type Phase int

const (
	PhaseAwaitingAngle Phase = iota
	PhaseAwaitingPower
	PhaseFiring
	PhaseRoundOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAngle:
		return "awaiting_angle"
	case PhaseAwaitingPower:
		return "awaiting_power"
	case PhaseFiring:
		return "firing"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// Match owns the entire state of one artillery duel: terrain, both
// stations, whose turn it is, the shot in flight, and the series score
// across rounds. There is no state outside this struct; only one shot is
// ever in flight, and ticks of that flight are strictly ordered through
// StepFlight.
type Match struct {
	cfg Config
	rng *rand.Rand
	log *MatchLog

	terrain  *Terrain
	stations [2]Station
	current  int // index into stations: 0 = left player, 1 = right
	phase    Phase
	winner   int // station index, -1 while the round is live

	round int
	score [2]int // round wins per player, kept across resets

	angle float64 // accepted angle waiting for its power input
	shot  *Shot
	tick  int // flight tick counter for the current shot
}

// NewMatch sets up a full match: generated terrain, seated stations, and
// a random starting player. The rng drives every random decision the
// match ever makes, so a seeded source reproduces the whole game.
func NewMatch(rng *rand.Rand, cfg Config) *Match {
	m := &Match{cfg: cfg, rng: rng, log: NewMatchLog(false)}
	m.setupRound()
	return m
}

// setupRound builds a fresh round: new terrain, new placements, new coin
// toss. The series score survives.
func (m *Match) setupRound() {
	m.round++
	m.terrain = GenerateTerrain(m.rng, m.cfg)
	left, right := PlaceStations(m.rng, m.terrain, m.cfg)
	m.stations = [2]Station{left, right}
	m.current = m.rng.Intn(2)
	m.phase = PhaseAwaitingAngle
	m.winner = -1
	m.angle = 0
	m.shot = nil
	m.tick = 0
	m.log.Add(0, playerLabel(m.current), "round", "start",
		fmt.Sprintf("round %d, %s to fire first", m.round, playerLabel(m.current)), float64(m.round))
}

// Reset discards the current round wholesale, including any shot still
// in flight, and sets up a new one.
func (m *Match) Reset() {
	m.setupRound()
}

// SubmitAngle accepts the current player's firing angle. An out-of-range
// value returns a *ValidationError and changes nothing.
func (m *Match) SubmitAngle(v float64) error {
	if m.phase != PhaseAwaitingAngle {
		return fmt.Errorf("angle submitted in phase %s", m.phase)
	}
	if err := validateRange("angle", v, m.cfg.MinAngle, m.cfg.MaxAngle); err != nil {
		return err
	}
	m.angle = v
	m.phase = PhaseAwaitingPower
	return nil
}

// SubmitPower accepts the current player's power and starts the flight.
// An out-of-range value returns a *ValidationError and changes nothing.
func (m *Match) SubmitPower(v float64) error {
	if m.phase != PhaseAwaitingPower {
		return fmt.Errorf("power submitted in phase %s", m.phase)
	}
	if err := validateRange("power", v, m.cfg.MinPower, m.cfg.MaxPower); err != nil {
		return err
	}
	m.shot = NewShot(m.stations[m.current], FiringParams{AngleDeg: m.angle, Power: v}, m.cfg)
	m.tick = 0
	m.phase = PhaseFiring
	m.log.Add(0, playerLabel(m.current), "shot", "fired",
		fmt.Sprintf("angle=%.1f power=%.1f", m.angle, v), v)
	return nil
}

// StepFlight advances the projectile one time step. It returns the new
// position, plus a non-nil Impact on the terminating tick, by which
// point the crater is carved, the win evaluated, and the turn switched,
// so the next turn's state is readable the moment the impact is returned.
func (m *Match) StepFlight() (Point, *Impact) {
	if m.phase != PhaseFiring || m.shot == nil {
		panic("game: StepFlight outside the Firing phase")
	}
	m.tick++
	pos := m.shot.Advance(m.cfg.TimeStep)
	imp, done := ResolveImpact(pos, m.terrain, m.stations[1-m.current], m.cfg)
	if !done {
		m.log.AddVerbose(m.tick, playerLabel(m.current), "flight", "position",
			fmt.Sprintf("(%.1f, %.1f)", pos.X, pos.Y), 0)
		return pos, nil
	}
	m.resolveOutcome(imp)
	return pos, &imp
}

// RunFlight drives the current flight to completion, invoking onTick for
// every position including the terminal one. onTick may be nil.
func (m *Match) RunFlight(onTick func(Point)) Impact {
	for {
		pos, imp := m.StepFlight()
		if onTick != nil {
			onTick(pos)
		}
		if imp != nil {
			return *imp
		}
	}
}

// resolveOutcome applies a terminal impact: deform terrain, decide
// lethality, then either end the round or pass the turn.
func (m *Match) resolveOutcome(imp Impact) {
	cur := m.current
	target := m.stations[1-cur]
	m.shot = nil

	m.log.Add(m.tick, playerLabel(cur), "impact", imp.Kind.String(),
		fmt.Sprintf("(%.1f, %.1f)", imp.Pos.X, imp.Pos.Y), 0)

	if imp.Kind == OutcomeOutOfBounds {
		m.passTurn()
		return
	}

	// Terrain is deformed before any turn or win transition is visible.
	m.terrain.Crater(imp.Pos, m.cfg.ExplosionRadius)
	m.log.Add(m.tick, playerLabel(cur), "crater", "carved",
		fmt.Sprintf("x=%.1f r=%.1f", imp.Pos.X, m.cfg.ExplosionRadius), m.cfg.ExplosionRadius)

	kill := imp.Kind == OutcomeDirectHit
	how := "direct"
	if !kill && dist(imp.Pos, target.Center()) <= m.cfg.ExplosionRadius {
		kill = true
		how = "splash"
	}
	if !kill {
		m.passTurn()
		return
	}

	m.winner = cur
	m.score[cur]++
	m.phase = PhaseRoundOver
	m.log.Add(m.tick, playerLabel(cur), "round", "over",
		fmt.Sprintf("%s wins by %s hit", playerLabel(cur), how), 0)
}

// passTurn hands control to the other player.
func (m *Match) passTurn() {
	m.current = 1 - m.current
	m.phase = PhaseAwaitingAngle
	m.tick = 0
	m.log.Add(0, playerLabel(m.current), "turn", "begin", "awaiting angle", 0)
}

// playerLabel returns the log label for a player index.
func playerLabel(i int) string {
	if i == 0 {
		return "P1"
	}
	return "P2"
}

// Phase returns the current controller phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// CurrentPlayer returns the index (0 or 1) of the player whose turn it is.
func (m *Match) CurrentPlayer() int {
	return m.current
}

// Terrain returns the live terrain. Callers that need a stable snapshot
// should use HeightmapCopy.
func (m *Match) Terrain() *Terrain {
	return m.terrain
}

// HeightmapCopy returns a copy of the current surface elevations.
func (m *Match) HeightmapCopy() []float64 {
	out := make([]float64, len(m.terrain.Heights))
	copy(out, m.terrain.Heights)
	return out
}

// Stations returns the left and right stations.
func (m *Match) Stations() (Station, Station) {
	return m.stations[0], m.stations[1]
}

// Winner returns the winning side once the round is over.
func (m *Match) Winner() (Side, bool) {
	if m.winner < 0 {
		return 0, false
	}
	return m.stations[m.winner].Side, true
}

// Score returns round wins for the left and right players.
func (m *Match) Score() (int, int) {
	return m.score[0], m.score[1]
}

// Round returns the 1-based round number.
func (m *Match) Round() int {
	return m.round
}

// Log returns the match event log.
func (m *Match) Log() *MatchLog {
	return m.log
}
