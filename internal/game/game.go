package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// Presentation pacing and input tuning. Turn-switch delays are a pacing
// concern and live here; the engine's turn switch is instantaneous.
const (
	stepsPerFrame = 2    // sim ticks advanced per rendered frame during flight
	impactPause   = 45   // frames to hold on the explosion before the next prompt
	angleStep     = 0.5  // degrees per held-key frame
	powerStep     = 2.5  // power units per held-key frame
)

// Game is the windowed presentation of a Match. All simulation state lives
// in the Match; this struct holds only input, pacing, and draw scratch.
type Game struct {
	cfg   Config
	match *Match

	angle float64 // value being dialed in during AwaitingAngle
	power float64 // value being dialed in during AwaitingPower

	trail      []Point // projectile positions of the current/last flight
	lastImpact *Impact
	pause      int // frames left in the post-impact hold

	prevKeys  map[ebiten.Key]bool
	status    string // transient HUD line: errors, copy confirmation
	bannerBuf *ebiten.Image
}

// New builds a windowed game around a freshly rolled match.
func New(cfg Config) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	return &Game{
		cfg:      cfg,
		match:    NewMatch(rng, cfg),
		angle:    45,
		power:    250,
		prevKeys: make(map[ebiten.Key]bool),
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// keyJustPressed is edge-triggered key detection against the previous frame.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k) && !g.prevKeys[k]
}

// Update implements ebiten.Game: one input/pacing frame.
func (g *Game) Update() error {
	defer func() {
		for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR, ebiten.KeyC} {
			g.prevKeys[k] = ebiten.IsKeyPressed(k)
		}
	}()

	if g.keyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(CollectRoundStats(g.match).Format()); err != nil {
			g.status = "clipboard unavailable"
		} else {
			g.status = "report copied to clipboard"
		}
	}

	if g.pause > 0 {
		g.pause--
		if g.pause == 0 && g.match.Phase() != PhaseRoundOver {
			g.trail = g.trail[:0]
			g.lastImpact = nil
		}
		return nil
	}

	switch g.match.Phase() {
	case PhaseAwaitingAngle:
		g.angle = g.adjust(g.angle, angleStep, g.cfg.MinAngle, g.cfg.MaxAngle)
		if g.keyJustPressed(ebiten.KeyEnter) {
			if err := g.match.SubmitAngle(g.angle); err != nil {
				g.status = err.Error()
			} else {
				g.status = ""
			}
		}

	case PhaseAwaitingPower:
		g.power = g.adjust(g.power, powerStep, g.cfg.MinPower, g.cfg.MaxPower)
		if g.keyJustPressed(ebiten.KeyEnter) {
			if err := g.match.SubmitPower(g.power); err != nil {
				g.status = err.Error()
			} else {
				g.status = ""
				g.trail = g.trail[:0]
				g.lastImpact = nil
			}
		}

	case PhaseFiring:
		for i := 0; i < stepsPerFrame; i++ {
			pos, imp := g.match.StepFlight()
			g.trail = append(g.trail, pos)
			if imp != nil {
				g.lastImpact = imp
				g.pause = impactPause
				break
			}
		}

	case PhaseRoundOver:
		if g.keyJustPressed(ebiten.KeyR) {
			g.match.Reset()
			g.trail = g.trail[:0]
			g.lastImpact = nil
			g.status = ""
		}
	}
	return nil
}

// adjust applies held up/down arrows to a dialed value, clamped to [lo, hi].
func (g *Game) adjust(v, step, lo, hi float64) float64 {
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v -= step
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// prompt returns the HUD instruction line for the current phase.
func (g *Game) prompt() string {
	switch g.match.Phase() {
	case PhaseAwaitingAngle:
		return fmt.Sprintf("%s  angle: %.1f  [up/down adjust, enter to set]",
			playerLabel(g.match.CurrentPlayer()), g.angle)
	case PhaseAwaitingPower:
		return fmt.Sprintf("%s  power: %.1f  [up/down adjust, enter to fire]",
			playerLabel(g.match.CurrentPlayer()), g.power)
	case PhaseFiring:
		return "..."
	case PhaseRoundOver:
		return "[R] next round   [C] copy report"
	}
	return ""
}
