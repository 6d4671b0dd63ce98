package game

import "testing"

func flatTerrain(width int, elev, bottom float64) *Terrain {
	h := make([]float64, width)
	for i := range h {
		h[i] = elev
	}
	return &Terrain{Heights: h, Bottom: bottom}
}

func TestResolveImpact_InFlight(t *testing.T) {
	cfg := DefaultConfig()
	tr := flatTerrain(cfg.Width, 400, float64(cfg.Height))
	target := Station{X: 700, Y: 380, W: 48, H: 16, Side: SideRight}

	if _, done := ResolveImpact(Point{X: 300, Y: 200}, tr, target, cfg); done {
		t.Fatal("open air position should not terminate the flight")
	}
}

func TestResolveImpact_LateralAndBottomBounds(t *testing.T) {
	cfg := DefaultConfig()
	tr := flatTerrain(cfg.Width, 400, float64(cfg.Height))
	target := Station{X: 700, Y: 380, W: 48, H: 16, Side: SideRight}

	cases := []Point{
		{X: -0.1, Y: 200},
		{X: float64(cfg.Width), Y: 200},
		{X: 300, Y: float64(cfg.Height) + 1},
	}
	for _, p := range cases {
		imp, done := ResolveImpact(p, tr, target, cfg)
		if !done || imp.Kind != OutcomeOutOfBounds {
			t.Fatalf("position %+v: got (%v, %v), want OutOfBounds", p, imp.Kind, done)
		}
	}
}

func TestResolveImpact_TopEdgePolicy(t *testing.T) {
	cfg := DefaultConfig()
	tr := flatTerrain(cfg.Width, 400, float64(cfg.Height))
	target := Station{X: 700, Y: 380, W: 48, H: 16, Side: SideRight}
	high := Point{X: 300, Y: -50}

	// Default: the top is open so lobs can arc above the field.
	if _, done := ResolveImpact(high, tr, target, cfg); done {
		t.Fatal("open-top config should let the shot continue above the field")
	}

	cfg.ClosedTop = true
	imp, done := ResolveImpact(high, tr, target, cfg)
	if !done || imp.Kind != OutcomeOutOfBounds {
		t.Fatalf("closed-top config: got (%v, %v), want OutOfBounds", imp.Kind, done)
	}
}

func TestResolveImpact_TerrainHitUsesInterpolation(t *testing.T) {
	cfg := DefaultConfig()
	tr := flatTerrain(cfg.Width, 400, float64(cfg.Height))
	tr.Heights[300] = 300
	tr.Heights[301] = 400
	target := Station{X: 700, Y: 380, W: 48, H: 16, Side: SideRight}

	// Surface at x=300.5 is 350 by linear interpolation.
	if _, done := ResolveImpact(Point{X: 300.5, Y: 349}, tr, target, cfg); done {
		t.Fatal("position above the interpolated slope should stay in flight")
	}
	imp, done := ResolveImpact(Point{X: 300.5, Y: 350}, tr, target, cfg)
	if !done || imp.Kind != OutcomeTerrainHit {
		t.Fatalf("got (%v, %v), want TerrainHit at the interpolated surface", imp.Kind, done)
	}
}

func TestResolveImpact_DirectHitBeatsSimultaneousTerrainHit(t *testing.T) {
	cfg := DefaultConfig()
	tr := flatTerrain(cfg.Width, 390, float64(cfg.Height))
	// Station straddles the ground line so a point can be inside both.
	target := Station{X: 700, Y: 380, W: 48, H: 16, Side: SideRight}

	p := Point{X: 710, Y: 392} // below the surface and inside the rect
	imp, done := ResolveImpact(p, tr, target, cfg)
	if !done || imp.Kind != OutcomeDirectHit {
		t.Fatalf("got (%v, %v), want DirectHit to win the tie", imp.Kind, done)
	}
	if imp.Target != SideRight {
		t.Fatalf("direct hit target = %v, want SideRight", imp.Target)
	}
}

func TestResolveImpact_OnlyTargetStationChecked(t *testing.T) {
	cfg := DefaultConfig()
	tr := flatTerrain(cfg.Width, 500, float64(cfg.Height))
	target := Station{X: 700, Y: 380, W: 48, H: 16, Side: SideRight}

	// A position inside where the firer's own station would be is open air:
	// ResolveImpact never sees the firer's rect.
	if _, done := ResolveImpact(Point{X: 124, Y: 385}, tr, target, cfg); done {
		t.Fatal("firer-side position should not terminate against the target")
	}
}
