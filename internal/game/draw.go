package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// bannerScale is the integer upscale applied to the round-over banner text.
const bannerScale = 3

var (
	skyColor        = color.RGBA{18, 24, 38, 255}
	terrainColor    = color.RGBA{86, 62, 44, 255}
	crustColor      = color.RGBA{110, 140, 62, 255}
	stationColors   = [2]color.RGBA{{220, 70, 70, 255}, {80, 140, 230, 255}}
	stationHighlite = color.RGBA{250, 240, 200, 255}
	projectileColor = color.RGBA{255, 240, 180, 255}
	trailColor      = color.RGBA{255, 240, 180, 80}
	blastColor      = color.RGBA{255, 150, 40, 200}
	bannerColor     = color.RGBA{250, 240, 200, 255}
)

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.drawTerrain(screen)
	g.drawStations(screen)
	g.drawFlight(screen)
	g.drawHUD(screen)
}

// drawTerrain renders each column as a filled strip from the surface down
// to the bottom edge, with a thin grass crust on top.
func (g *Game) drawTerrain(screen *ebiten.Image) {
	t := g.match.Terrain()
	for x, h := range t.Heights {
		top := float32(h)
		bottom := float32(t.Bottom)
		if top >= bottom {
			continue
		}
		vector.DrawFilledRect(screen, float32(x), top, 1, bottom-top, terrainColor, false)
		vector.DrawFilledRect(screen, float32(x), top, 1, 3, crustColor, false)
	}
}

// drawStations renders both emplacements; the current player's carries a
// highlight outline while the round is live.
func (g *Game) drawStations(screen *ebiten.Image) {
	left, right := g.match.Stations()
	for i, st := range []Station{left, right} {
		vector.DrawFilledRect(screen,
			float32(st.X), float32(st.Y), float32(st.W), float32(st.H),
			stationColors[i], false)
		if g.match.Phase() != PhaseRoundOver && g.match.CurrentPlayer() == i {
			vector.StrokeRect(screen,
				float32(st.X)-2, float32(st.Y)-2, float32(st.W)+4, float32(st.H)+4,
				1, stationHighlite, false)
		}
	}
}

// drawFlight renders the trail, the projectile, and the blast ring during
// the post-impact hold.
func (g *Game) drawFlight(screen *ebiten.Image) {
	for _, p := range g.trail {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 1.5, trailColor, false)
	}
	if g.match.Phase() == PhaseFiring && len(g.trail) > 0 {
		tip := g.trail[len(g.trail)-1]
		vector.DrawFilledCircle(screen, float32(tip.X), float32(tip.Y), 3, projectileColor, false)
	}
	if g.lastImpact != nil && g.lastImpact.Kind != OutcomeOutOfBounds {
		r := float32(g.cfg.ExplosionRadius)
		if g.pause > 0 {
			// Ring expands over the hold window.
			r = r * float32(impactPause-g.pause) / impactPause
		}
		vector.StrokeCircle(screen,
			float32(g.lastImpact.Pos.X), float32(g.lastImpact.Pos.Y), r, 2, blastColor, false)
	}
}

// drawHUD renders the prompt/status lines and, once the round is over,
// the scaled winner banner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	p1, p2 := g.match.Score()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("round %d   P1 %d - %d P2", g.match.Round(), p1, p2), 6, 4)
	ebitenutil.DebugPrintAt(screen, g.prompt(), 6, 20)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 6, 36)
	}

	if g.match.Phase() == PhaseRoundOver {
		if winner, ok := g.match.Winner(); ok {
			g.drawBanner(screen, fmt.Sprintf("%s SIDE WINS THE ROUND", strings.ToUpper(winner.String())))
		}
	}
}

// drawBanner renders msg at 1x into an offscreen buffer, then blits it
// centered at bannerScale so the fixed-size font reads at a distance.
func (g *Game) drawBanner(screen *ebiten.Image, msg string) {
	face := basicfont.Face7x13
	w := len(msg)*face.Advance + 16
	h := face.Height + 12
	if g.bannerBuf == nil || g.bannerBuf.Bounds().Dx() != w {
		g.bannerBuf = ebiten.NewImage(w, h)
	}
	g.bannerBuf.Clear()
	text.Draw(g.bannerBuf, msg, face, 8, face.Ascent+6, bannerColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate(
		float64(g.cfg.Width)/2-float64(w*bannerScale)/2,
		float64(g.cfg.Height)/3,
	)
	screen.DrawImage(g.bannerBuf, op)
}
