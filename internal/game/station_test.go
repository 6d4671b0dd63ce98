package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestPlaceStations_SeparationAcrossSeeds(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		tr := GenerateTerrain(rng, cfg)
		left, right := PlaceStations(rng, tr, cfg)

		if left.Side != SideLeft || right.Side != SideRight {
			t.Fatalf("seed %d: sides mislabeled: %v / %v", seed, left.Side, right.Side)
		}
		if left.X < cfg.MarginX {
			t.Fatalf("seed %d: left station at %f breaches left margin", seed, left.X)
		}
		if right.X+right.W > float64(cfg.Width)-cfg.MarginX {
			t.Fatalf("seed %d: right station at %f breaches right margin", seed, right.X)
		}
		if gap := right.X - left.X; gap < minSeparation {
			t.Fatalf("seed %d: stations only %f apart, want >= %d", seed, gap, minSeparation)
		}
	}
}

func TestSeatStation_RestsOnFootprintPeak(t *testing.T) {
	cfg := DefaultConfig()
	// Sloped terrain: a pronounced peak inside the footprint.
	tr := &Terrain{Heights: make([]float64, cfg.Width), Bottom: float64(cfg.Height)}
	for i := range tr.Heights {
		tr.Heights[i] = 400
	}
	tr.Heights[110] = 350 // highest ground under the footprint

	st := seatStation(tr, 100, cfg, SideLeft)
	wantY := 350 - cfg.StationH - cfg.MarginY
	if st.Y != wantY {
		t.Fatalf("station Y=%f, want %f (seated on the peak)", st.Y, wantY)
	}

	// The whole base must clear the surface at every footprint column.
	for ix := int(math.Floor(st.X)); ix <= int(math.Ceil(st.X+st.W)); ix++ {
		if float64(ix) >= float64(len(tr.Heights)) {
			break
		}
		if st.Y+st.H > tr.Heights[ix] {
			t.Fatalf("station base %f embedded below surface %f at x=%d", st.Y+st.H, tr.Heights[ix], ix)
		}
	}
}

func TestStation_ContainsInclusiveBounds(t *testing.T) {
	st := Station{X: 100, Y: 380, W: 48, H: 16}
	for _, p := range []Point{
		{100, 380}, {148, 380}, {100, 396}, {148, 396}, {124, 388},
	} {
		if !st.Contains(p) {
			t.Fatalf("point %+v should be inside", p)
		}
	}
	for _, p := range []Point{
		{99.9, 388}, {148.1, 388}, {124, 379.9}, {124, 396.1},
	} {
		if st.Contains(p) {
			t.Fatalf("point %+v should be outside", p)
		}
	}
}

func TestStation_CenterAndMuzzle(t *testing.T) {
	st := Station{X: 100, Y: 380, W: 48, H: 16}
	if c := st.Center(); c.X != 124 || c.Y != 388 {
		t.Fatalf("center = %+v, want (124, 388)", c)
	}
	if m := st.Muzzle(); m.X != 124 || m.Y != 380 {
		t.Fatalf("muzzle = %+v, want (124, 380)", m)
	}
}
