package game

import (
	"math"
	"math/rand"
)

// Side identifies which half of the playfield a station occupies.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	return 1 - s
}

// Station is a player's gun emplacement: a fixed axis-aligned rectangle
// seated on the terrain at round setup and immutable until the next round.
// (X, Y) is the top-left corner.
type Station struct {
	X, Y float64
	W, H float64
	Side Side
}

// Center returns the station's geometric center, the reference point for
// splash-kill distance checks.
func (s Station) Center() Point {
	return Point{X: s.X + s.W/2, Y: s.Y + s.H/2}
}

// Muzzle is the launch origin for shots fired from this station.
func (s Station) Muzzle() Point {
	return Point{X: s.X + s.W/2, Y: s.Y}
}

// Contains reports whether p falls within the station rectangle. Bounds
// are inclusive on all four edges.
func (s Station) Contains(p Point) bool {
	return p.X >= s.X && p.X <= s.X+s.W && p.Y >= s.Y && p.Y <= s.Y+s.H
}

// minSeparation is the guaranteed horizontal gap between the two station
// spawn bands, preventing degenerate close-range rounds.
const minSeparation = 300

// PlaceStations picks both stations' horizontal positions and seats them
// on the terrain. The left station lands in [MarginX, width/2-150], the
// right in [width/2+150, width-MarginX-W], so centers are always at least
// minSeparation apart.
func PlaceStations(rng *rand.Rand, t *Terrain, cfg Config) (Station, Station) {
	half := math.Floor(float64(cfg.Width) / 2)

	leftLo := cfg.MarginX
	leftHi := half - minSeparation/2
	lx := leftLo + rng.Float64()*(leftHi-leftLo)

	rightLo := half + minSeparation/2
	rightHi := float64(cfg.Width) - cfg.MarginX - cfg.StationW
	rx := rightLo + rng.Float64()*(rightHi-rightLo)

	return seatStation(t, lx, cfg, SideLeft), seatStation(t, rx, cfg, SideRight)
}

// seatStation rests a station of the configured size on the highest ground
// point under its footprint, so the whole base sits on or above the
// surface even when the footprint spans a slope.
func seatStation(t *Terrain, x float64, cfg Config, side Side) Station {
	peak := t.Bottom
	for ix := int(math.Floor(x)); ix <= int(math.Ceil(x+cfg.StationW)); ix++ {
		if ix < 0 || ix >= len(t.Heights) {
			continue
		}
		if t.Heights[ix] < peak {
			peak = t.Heights[ix]
		}
	}
	return Station{
		X:    x,
		Y:    peak - cfg.StationH - cfg.MarginY,
		W:    cfg.StationW,
		H:    cfg.StationH,
		Side: side,
	}
}
