package game

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minFog keeps distant geometry faintly visible.
const minFog = 0.15

var (
	skyColor    = color.RGBA{R: 10, G: 12, B: 18, A: 255}
	gridColor   = color.RGBA{R: 40, G: 120, B: 70, A: 255}
	cubeColor   = color.RGBA{R: 90, G: 220, B: 255, A: 255}
	weaponColor = color.RGBA{R: 170, G: 175, B: 185, A: 255}
	flashColor  = color.RGBA{R: 255, G: 220, B: 120, A: 255}
)

// fogFactor is the brightness (minFog..1) of geometry at distance d.
func fogFactor(d, fogDistance float64) float64 {
	if fogDistance <= 0 {
		return 1
	}
	return mgl64.Clamp(1-d/fogDistance, minFog, 1)
}

func fogged(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// renderer draws the wireframe scene for one frame.
type renderer struct {
	cam *Camera
	vp  Viewport
	cfg *Config
}

func newRenderer(cam *Camera, cfg *Config, w, h int) renderer {
	return renderer{
		cam: cam,
		cfg: cfg,
		vp:  Viewport{Width: float64(w), Height: float64(h), Focal: cfg.FocalLength, Near: cfg.NearPlane},
	}
}

// line draws a world-space segment, clipped against the near plane.
func (r renderer) line(screen *ebiten.Image, a, b mgl64.Vec3, width float32, c color.RGBA) {
	x0, y0, x1, y1, ok := r.vp.ProjectSegment(r.cam.Rotate3D(a), r.cam.Rotate3D(b))
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, c, true)
}

// drawGrid draws the ground lines. Each line is split into grid-sized pieces
// so fog can dim the far ends.
func (r renderer) drawGrid(screen *ebiten.Image) {
	half := r.cfg.ArenaHalfSize
	step := r.cfg.GridSpacing
	if step <= 0 {
		return
	}
	for u := -half; u <= half+1e-9; u += step {
		for v := -half; v < half-1e-9; v += step {
			next := v + step
			if next > half {
				next = half
			}
			r.gridPiece(screen, mgl64.Vec3{u, 0, v}, mgl64.Vec3{u, 0, next})
			r.gridPiece(screen, mgl64.Vec3{v, 0, u}, mgl64.Vec3{next, 0, u})
		}
	}
}

func (r renderer) gridPiece(screen *ebiten.Image, a, b mgl64.Vec3) {
	mid := a.Add(b).Mul(0.5)
	f := fogFactor(mid.Sub(r.cam.Pos).Len(), r.cfg.FogDistance)
	r.line(screen, a, b, 1, fogged(gridColor, f))
}

// drawCubes draws every cube's 12 edges, far cubes first.
func (r renderer) drawCubes(screen *ebiten.Image, cubes []Cube) {
	sort.Slice(cubes, func(i, j int) bool {
		return cubes[i].Center.Sub(r.cam.Pos).Len() > cubes[j].Center.Sub(r.cam.Pos).Len()
	})
	for _, c := range cubes {
		col := fogged(cubeColor, fogFactor(c.Center.Sub(r.cam.Pos).Len(), r.cfg.FogDistance))
		verts := WireframeVertices(c.Center, c.Phase)
		for _, e := range cubeEdges {
			r.line(screen, verts[e[0]], verts[e[1]], 2, col)
		}
	}
}

// drawWeapon draws the gun as a 2D shape anchored bottom-right of centre,
// pushed down by recoil and scaled by the pulse.
func drawWeapon(screen *ebiten.Image, w *Weapon, cfg *Config) {
	sw, sh := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	s := float32(w.SpriteScale(cfg))
	ax := sw/2 + 90
	ay := sh + float32(w.SpriteOffset(cfg))

	bodyW, bodyH := 70*s, 120*s
	barrelW, barrelH := 22*s, 70*s
	bx := ax - bodyW/2
	by := ay - bodyH
	vector.FillRect(screen, bx, by, bodyW, bodyH, fogged(weaponColor, 0.55), true)
	vector.StrokeRect(screen, bx, by, bodyW, bodyH, 2, weaponColor, true)

	tx := ax - barrelW/2
	ty := by - barrelH
	vector.FillRect(screen, tx, ty, barrelW, barrelH, fogged(weaponColor, 0.75), true)
	vector.StrokeRect(screen, tx, ty, barrelW, barrelH, 2, weaponColor, true)

	if w.Flash > 0 {
		vector.FillCircle(screen, ax, ty-8*s, 14*s, flashColor, true)
	}
}

// drawScene renders sky, grid, cubes and the weapon.
func drawScene(screen *ebiten.Image, s *Sim) {
	screen.Fill(skyColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	r := newRenderer(&s.Camera, &s.Cfg, w, h)
	r.drawGrid(screen)
	r.drawCubes(screen, s.World.Cubes())
	drawWeapon(screen, &s.Weapon, &s.Cfg)
}
