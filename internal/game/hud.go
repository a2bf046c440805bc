package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPad        = 12
	hudLineHeight = 15
	healthBarW    = 200
	healthBarH    = 12
	crosshairGap  = 4
	crosshairLen  = 8
)

var (
	hudWhite   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	hudDim     = color.RGBA{R: 150, G: 160, B: 150, A: 255}
	hudAccent  = color.RGBA{R: 250, G: 210, B: 90, A: 255}
	hudDanger  = color.RGBA{R: 240, G: 80, B: 70, A: 255}
	hudHealthy = color.RGBA{R: 90, G: 220, B: 110, A: 255}
	hudPanelBg = color.RGBA{R: 8, G: 10, B: 14, A: 160}
)

// hudText draws bitmap text with the basicfont face.
type hudText struct {
	face *text.GoXFace
}

func newHUDText() *hudText {
	return &hudText{face: text.NewGoXFace(basicfont.Face7x13)}
}

// draw renders s with its top-left corner at (x, y).
func (h *hudText) draw(screen *ebiten.Image, s string, x, y float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, h.face, op)
}

// drawCentered renders s horizontally centred on cx, scaled by scale. Multi-line
// strings are laid out at hudLineHeight.
func (h *hudText) drawCentered(screen *ebiten.Image, s string, cx, y, scale float64, c color.RGBA) {
	w, _ := text.Measure(s, h.face, hudLineHeight)
	op := &text.DrawOptions{}
	op.LineSpacing = hudLineHeight
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w*scale/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, h.face, op)
}

// hudState is what the overlay needs from the game beyond the sim itself.
type hudState struct {
	simSpeed float64
	muted    bool
	status   string
	fps, tps float64
}

func speedLabel(speed float64) string {
	switch speed {
	case 0:
		return "PAUSED"
	case 1:
		return "1x"
	default:
		return fmt.Sprintf("%gx", speed)
	}
}

// drawHUD renders every overlay element on top of the scene.
func (h *hudText) drawHUD(screen *ebiten.Image, s *Sim, st hudState) {
	w, ht := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float32(w)/2, float32(ht)/2

	drawCrosshair(screen, cx, cy, s.Weapon.HitMarker > 0)

	// Top-left readout.
	lines := []struct {
		s string
		c color.RGBA
	}{
		{fmt.Sprintf("Yaw: %.2f", s.Camera.Yaw), hudWhite},
		{fmt.Sprintf("Pitch: %.2f", s.Camera.Pitch), hudWhite},
		{fmt.Sprintf("Score: %d  Acc: %.0f%%", s.Stats.Hits, s.Stats.Accuracy()*100), hudAccent},
		{fmt.Sprintf("Wave %d  Cubes: %d", s.Wave, s.World.Count()), hudAccent},
		{fmt.Sprintf("FPS %.0f  TPS %.0f  SIM %s", st.fps, st.tps, speedLabel(st.simSpeed)), hudDim},
	}
	vector.FillRect(screen, hudPad-4, hudPad-4, 230, float32(len(lines)*hudLineHeight+8), hudPanelBg, false)
	for i, l := range lines {
		h.draw(screen, l.s, hudPad, float64(hudPad+i*hudLineHeight), l.c)
	}

	h.drawHealth(screen, s.Health, s.Cfg.MaxHealth, ht)
	s.Feed.Draw(screen, h, s.Tick, w)

	hint := "WASD move  SPACE jump  LMB fire  P pause  ,/. speed  F9 report  M mute"
	if st.muted {
		hint += " [muted]"
	}
	h.draw(screen, hint, hudPad, float64(ht-hudPad-hudLineHeight), hudDim)
	if st.status != "" {
		h.draw(screen, st.status, hudPad, float64(ht-hudPad-2*hudLineHeight), hudAccent)
	}

	switch {
	case s.Over:
		h.drawCentered(screen, "YOU WERE OVERRUN", float64(cx), float64(cy)-80, 3, hudDanger)
		h.drawCentered(screen, s.Stats.Format(s.Cfg.MaxHealth), float64(cx), float64(cy)-30, 1, hudWhite)
		h.drawCentered(screen, "press R to restart", float64(cx), float64(cy)+40, 2, hudAccent)
	case st.simSpeed == 0:
		h.drawCentered(screen, "PAUSED", float64(cx), float64(cy)-60, 3, hudAccent)
	case !captured():
		h.drawCentered(screen, "click to capture the mouse", float64(cx), float64(cy)+30, 1, hudDim)
	}
}

func (h *hudText) drawHealth(screen *ebiten.Image, health, maxHealth float64, screenH int) {
	x := float32(hudPad)
	y := float32(screenH - hudPad - 2*hudLineHeight - healthBarH - 14)
	frac := 0.0
	if maxHealth > 0 {
		frac = math.Max(0, math.Min(1, health/maxHealth))
	}
	c := hudHealthy
	if frac < 0.3 {
		c = hudDanger
	}
	vector.FillRect(screen, x, y, healthBarW, healthBarH, hudPanelBg, false)
	vector.FillRect(screen, x, y, float32(frac*healthBarW), healthBarH, c, false)
	vector.StrokeRect(screen, x, y, healthBarW, healthBarH, 1, hudDim, false)
	h.draw(screen, fmt.Sprintf("HP %.0f", math.Max(0, health)), float64(x+healthBarW+8), float64(y)-1, c)
}

// drawCrosshair draws four ticks around the centre; a hit marker adds diagonals.
func drawCrosshair(screen *ebiten.Image, cx, cy float32, hit bool) {
	c := hudWhite
	vector.StrokeLine(screen, cx-crosshairGap-crosshairLen, cy, cx-crosshairGap, cy, 1.5, c, false)
	vector.StrokeLine(screen, cx+crosshairGap, cy, cx+crosshairGap+crosshairLen, cy, 1.5, c, false)
	vector.StrokeLine(screen, cx, cy-crosshairGap-crosshairLen, cx, cy-crosshairGap, 1.5, c, false)
	vector.StrokeLine(screen, cx, cy+crosshairGap, cx, cy+crosshairGap+crosshairLen, 1.5, c, false)
	if !hit {
		return
	}
	const d, l = 6, 6
	for _, s := range [4][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		vector.StrokeLine(screen, cx+s[0]*d, cy+s[1]*d, cx+s[0]*(d+l), cy+s[1]*(d+l), 2, hudDanger, false)
	}
}
