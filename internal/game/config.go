package game

// Config is the full option surface the engine recognizes. The zero value
// is not usable; start from DefaultConfig and override fields.
type Config struct {
	Width  int // playfield width in columns
	Height int // playfield height; also the terrain bottom edge

	Gravity  float64 // positive, pulls shots down (y grows downward)
	TimeStep float64 // simulation dt per flight tick

	// ExplosionRadius doubles as the crater radius and the splash-kill
	// distance from an impact to the target station's center.
	ExplosionRadius float64

	// Terrain generation. Control point elevations are drawn from the
	// normal band [MinElev, MaxElev] with probability 1-ExtremeProb,
	// otherwise from the shallow band [Floor, MinElev-1] or the deep band
	// [MaxElev+1, Height] with equal odds.
	MinControlPoints int
	MaxControlPoints int
	MinElev          float64
	MaxElev          float64
	Floor            float64
	ExtremeProb      float64

	// Station (emplacement) geometry.
	StationW float64
	StationH float64
	MarginX  float64 // minimum gap between a station and the map edge
	MarginY  float64 // gap between the footprint's peak and the station base

	// Firing parameter bounds, inclusive.
	MinAngle float64
	MaxAngle float64
	MinPower float64
	MaxPower float64

	// ClosedTop ends a flight that leaves through the top edge. Off by
	// default: high lobs may arc above the visible field and come back.
	ClosedTop bool
}

// DefaultConfig returns the canonical 800x600 duel setup.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,

		Gravity:  200.0,
		TimeStep: 0.05,

		ExplosionRadius: 40.0,

		MinControlPoints: 2,
		MaxControlPoints: 21,
		MinElev:          220,
		MaxElev:          540,
		Floor:            60,
		ExtremeProb:      0.1,

		StationW: 48,
		StationH: 16,
		MarginX:  40,
		MarginY:  2,

		MinAngle: 0,
		MaxAngle: 90,
		MinPower: 0,
		MaxPower: 500,
	}
}
