package game

import (
	"math"
	"math/rand"
)

// Terrain is the destructible playfield surface: one elevation sample per
// integer x column, left to right. Elevations are canvas-style y values
// (larger = lower on screen); Bottom is the canvas height, the deepest any
// column can be carved.
type Terrain struct {
	Heights []float64
	Bottom  float64
}

// GenerateTerrain builds a terrain profile from randomized control points
// joined by cosine blending. The point count is drawn from the configured
// range, points are spaced evenly across [0, width] with the last forced
// to exactly width, and every integer column gets a sample. Output is
// fully determined by the supplied rng.
func GenerateTerrain(rng *rand.Rand, cfg Config) *Terrain {
	width := cfg.Width
	n := cfg.MinControlPoints + rng.Intn(cfg.MaxControlPoints-cfg.MinControlPoints+1)

	xs := make([]float64, n)
	ys := make([]float64, n)
	step := float64(width) / float64(n-1)
	for i := range xs {
		xs[i] = float64(i) * step
		ys[i] = controlElevation(rng, cfg)
	}
	xs[n-1] = float64(width)

	heights := make([]float64, width)
	idx := 0
	for seg := 0; seg+1 < n; seg++ {
		x0, x1 := xs[seg], xs[seg+1]
		for ; idx < width && float64(idx) < x1; idx++ {
			t := (float64(idx) - x0) / (x1 - x0)
			t2 := (1 - math.Cos(t*math.Pi)) / 2
			heights[idx] = ys[seg]*(1-t2) + ys[seg+1]*t2
		}
	}
	// Back-fill any trailing columns the segment walk left behind due to
	// rounding of the control point spacing.
	for last := heights[idx-1]; idx < width; idx++ {
		heights[idx] = last
	}

	return &Terrain{Heights: heights, Bottom: float64(cfg.Height)}
}

// controlElevation draws one control point elevation: the normal band most
// of the time, otherwise a shallow spike or a deep chasm with equal odds.
func controlElevation(rng *rand.Rand, cfg Config) float64 {
	if rng.Float64() >= cfg.ExtremeProb {
		return cfg.MinElev + rng.Float64()*(cfg.MaxElev-cfg.MinElev)
	}
	if rng.Intn(2) == 0 {
		return cfg.Floor + rng.Float64()*(cfg.MinElev-1-cfg.Floor)
	}
	return cfg.MaxElev + 1 + rng.Float64()*(float64(cfg.Height)-cfg.MaxElev-1)
}

// Width returns the playfield width in columns.
func (t *Terrain) Width() int {
	return len(t.Heights)
}

// ElevationAt returns the surface elevation at a possibly fractional x,
// linearly interpolated between the two bracketing integer samples. An
// integer x returns its stored sample exactly. Anything left of 0 or at or
// beyond width-1 reads as Bottom: open space past the map edge.
func (t *Terrain) ElevationAt(x float64) float64 {
	i := int(math.Floor(x))
	if i < 0 || i >= len(t.Heights)-1 {
		return t.Bottom
	}
	frac := x - float64(i)
	return t.Heights[i]*(1-frac) + t.Heights[i+1]*frac
}

// Crater carves a conical depression centered on the impact column: every
// column within radius is lowered by radius*(1-d/radius), a linear falloff
// that peaks at the center and tapers to zero at the rim. Columns never
// sink past Bottom; columns outside the radius are untouched.
func (t *Terrain) Crater(center Point, radius float64) {
	if radius <= 0 {
		return
	}
	lo := int(math.Ceil(center.X - radius))
	hi := int(math.Floor(center.X + radius))
	if lo < 0 {
		lo = 0
	}
	if hi > len(t.Heights)-1 {
		hi = len(t.Heights) - 1
	}
	for x := lo; x <= hi; x++ {
		d := math.Abs(float64(x) - center.X)
		if d >= radius {
			continue
		}
		t.Heights[x] += radius * (1 - d/radius)
		if t.Heights[x] > t.Bottom {
			t.Heights[x] = t.Bottom
		}
	}
}
