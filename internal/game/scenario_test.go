package game

import (
	"testing"
)

// dumpLog prints the full match log to t.Log so it appears in
// `go test -v` output.
func dumpLog(t *testing.T, ds *DuelSim) {
	t.Helper()
	entries := ds.Match.Log().Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// --- Scenario: the canonical flat-field opening shot ---

func TestScenario_FlatFieldOpeningShot(t *testing.T) {
	t.Log("=== TestScenario_FlatFieldOpeningShot ===")
	t.Log("--- Setup: flat terrain at 400, stations at x=100 and x=700, left fires 45/300 ---")

	ds := NewDuelSim(
		WithSeed(42),
		WithFlatTerrain(400),
		WithStationsAt(100, 700),
		WithStartingPlayer(0),
	)
	m := ds.Match

	left, _ := m.Stations()
	wantY := 400 - m.cfg.StationH - m.cfg.MarginY
	if left.Y != wantY {
		t.Fatalf("left station seated at y=%f, want %f on flat 400 ground", left.Y, wantY)
	}

	imp, err := ds.Fire(45, 300)
	if err != nil {
		t.Fatalf("Fire: %v", err)
	}
	dumpLog(t, ds)

	if imp.Kind != OutcomeTerrainHit {
		t.Fatalf("impact = %v, want TerrainHit", imp.Kind)
	}
	if imp.Pos.Y < 400 {
		t.Fatalf("terrain hit reported above the surface: y=%f", imp.Pos.Y)
	}
	if imp.Pos.X <= left.Muzzle().X || imp.Pos.X >= 700 {
		t.Fatalf("impact x=%f outside the expected downrange window", imp.Pos.X)
	}

	// x strictly increases tick over tick for an interior angle with power.
	flight := ds.LastFlight()
	if len(flight) < 2 {
		t.Fatalf("flight recorded only %d positions", len(flight))
	}
	for i := 1; i < len(flight); i++ {
		if flight[i].X <= flight[i-1].X {
			t.Fatalf("tick %d: x not monotone (%f -> %f)", i, flight[i-1].X, flight[i].X)
		}
	}
}

// --- Scenario: full random duel, structural invariants every shot ---

func TestScenario_RandomDuelInvariants(t *testing.T) {
	t.Log("=== TestScenario_RandomDuelInvariants ===")
	t.Log("--- Setup: generated terrain, random valid shots until a kill ---")

	ds := NewDuelSim(WithSeed(1234))
	m := ds.Match
	cfg := m.cfg

	shots := 0
	for i := 0; i < 500 && m.Phase() != PhaseRoundOver; i++ {
		firer := m.CurrentPlayer()
		imp, err := ds.RandomShot()
		if err != nil {
			t.Fatalf("RandomShot: %v", err)
		}
		shots++

		// Heightmap shape never changes, and no column escapes the canvas.
		if len(m.Terrain().Heights) != cfg.Width {
			t.Fatalf("heightmap length drifted to %d", len(m.Terrain().Heights))
		}
		for x, h := range m.Terrain().Heights {
			if h > m.Terrain().Bottom {
				t.Fatalf("column %d carved past the bottom: %f", x, h)
			}
		}

		// A non-lethal outcome must pass the turn; a lethal one must crown
		// the firer.
		switch m.Phase() {
		case PhaseAwaitingAngle:
			if m.CurrentPlayer() == firer {
				t.Fatalf("shot %d: turn did not pass after %v", shots, imp.Kind)
			}
		case PhaseRoundOver:
			winner, ok := m.Winner()
			if !ok {
				t.Fatal("round over without a winner")
			}
			if int(winner) != firer {
				t.Fatalf("winner %v but the kill was fired by player %d", winner, firer)
			}
		default:
			t.Fatalf("shot %d: unexpected phase %v between turns", shots, m.Phase())
		}
	}
	t.Logf("duel resolved after %d shots", shots)
	t.Log(CollectRoundStats(m).Format())

	if m.Phase() == PhaseRoundOver {
		if m.Log().CountCategory("round", "over") != 1 {
			t.Fatal("round-over logged more than once")
		}
	}
}

// --- Scenario: seeded duels reproduce exactly ---

func TestScenario_SeededDuelReproduces(t *testing.T) {
	run := func() ([]float64, []MatchLogEntry) {
		ds := NewDuelSim(WithSeed(99))
		for i := 0; i < 20 && ds.Match.Phase() != PhaseRoundOver; i++ {
			if _, err := ds.RandomShot(); err != nil {
				t.Fatalf("RandomShot: %v", err)
			}
		}
		return ds.Match.HeightmapCopy(), ds.Match.Log().Entries()
	}

	h1, log1 := run()
	h2, log2 := run()

	if len(h1) != len(h2) {
		t.Fatalf("heightmap lengths differ: %d vs %d", len(h1), len(h2))
	}
	for x := range h1 {
		if h1[x] != h2[x] {
			t.Fatalf("same seed diverged at column %d: %f vs %f", x, h1[x], h2[x])
		}
	}
	if len(log1) != len(log2) {
		t.Fatalf("event logs differ in length: %d vs %d", len(log1), len(log2))
	}
	for i := range log1 {
		if log1[i] != log2[i] {
			t.Fatalf("event %d differs:\n%s\n%s", i, log1[i].String(), log2[i].String())
		}
	}
}
