package game

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mlange-42/arche/ecs"
	"github.com/mlange-42/arche/generic"
)

// cubeHalf is half the edge length of every cube; cubes rest on the ground.
const cubeHalf = 0.5

// Position is the world-space centre of a cube.
type Position struct {
	P mgl64.Vec3
}

// Enemy marks a cube that drifts toward the player.
type Enemy struct {
	Serial int     // spawn order, stable across removals
	Speed  float64 // units per second
	Wave   int
}

// Spin is the cosmetic wireframe rotation.
type Spin struct {
	Phase float64
	Rate  float64 // radians per second
}

// Cube is a read-only snapshot of one cube entity.
type Cube struct {
	Entity ecs.Entity
	Serial int
	Center mgl64.Vec3
	Speed  float64
	Wave   int
	Phase  float64
}

// World owns the entity store. Structural changes (spawn/remove) never happen
// while a query is open: callers work from Cubes() snapshots.
type World struct {
	ecs    *ecs.World
	cubes  generic.Map3[Position, Enemy, Spin]
	pos    generic.Map1[Position]
	spin   generic.Map1[Spin]
	filter *generic.Filter3[Position, Enemy, Spin]
	serial int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := ecs.NewWorld()
	return &World{
		ecs:    &w,
		cubes:  generic.NewMap3[Position, Enemy, Spin](&w),
		pos:    generic.NewMap1[Position](&w),
		spin:   generic.NewMap1[Spin](&w),
		filter: generic.NewFilter3[Position, Enemy, Spin](),
	}
}

// SpawnCube adds an enemy cube centred at p.
func (w *World) SpawnCube(p mgl64.Vec3, speed float64, wave int, spinRate float64) ecs.Entity {
	s := w.serial
	w.serial++
	return w.cubes.NewWith(
		&Position{P: p},
		&Enemy{Serial: s, Speed: speed, Wave: wave},
		&Spin{Rate: spinRate},
	)
}

// RemoveCube deletes a cube. Removing a dead entity is a no-op.
func (w *World) RemoveCube(e ecs.Entity) bool {
	if !w.ecs.Alive(e) {
		return false
	}
	w.ecs.RemoveEntity(e)
	return true
}

// Alive reports whether the entity still exists.
func (w *World) Alive(e ecs.Entity) bool {
	return w.ecs.Alive(e)
}

// Cubes returns all cubes ordered by spawn serial.
func (w *World) Cubes() []Cube {
	q := w.filter.Query(w.ecs)
	out := make([]Cube, 0, q.Count())
	for q.Next() {
		p, en, sp := q.Get()
		out = append(out, Cube{
			Entity: q.Entity(),
			Serial: en.Serial,
			Center: p.P,
			Speed:  en.Speed,
			Wave:   en.Wave,
			Phase:  sp.Phase,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Serial < out[j].Serial })
	return out
}

// Count returns the number of live cubes.
func (w *World) Count() int {
	q := w.filter.Query(w.ecs)
	n := q.Count()
	q.Close()
	return n
}

// SetCenter moves a cube.
func (w *World) SetCenter(e ecs.Entity, p mgl64.Vec3) {
	if !w.ecs.Alive(e) {
		return
	}
	w.pos.Get(e).P = p
}

// AdvanceSpin steps the cosmetic rotation of every cube.
func (w *World) AdvanceSpin(dt float64) {
	q := w.filter.Query(w.ecs)
	for q.Next() {
		_, _, sp := q.Get()
		sp.Phase = normalizeAngle(sp.Phase + sp.Rate*dt)
	}
}

// Reset removes every cube and restarts spawn serials.
func (w *World) Reset() {
	for _, c := range w.Cubes() {
		w.ecs.RemoveEntity(c.Entity)
	}
	w.serial = 0
}

// cubeVertices are the unit cube corners relative to the centre.
var cubeVertices = [8]mgl64.Vec3{
	{-cubeHalf, -cubeHalf, -cubeHalf},
	{cubeHalf, -cubeHalf, -cubeHalf},
	{cubeHalf, cubeHalf, -cubeHalf},
	{-cubeHalf, cubeHalf, -cubeHalf},
	{-cubeHalf, -cubeHalf, cubeHalf},
	{cubeHalf, -cubeHalf, cubeHalf},
	{cubeHalf, cubeHalf, cubeHalf},
	{-cubeHalf, cubeHalf, cubeHalf},
}

// cubeEdges index pairs into cubeVertices.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connectors
}

// WireframeVertices returns the world-space corners of a cube rotated about
// its vertical axis by phase.
func WireframeVertices(center mgl64.Vec3, phase float64) [8]mgl64.Vec3 {
	rot := mgl64.Rotate3DY(phase)
	var out [8]mgl64.Vec3
	for i, v := range cubeVertices {
		out[i] = center.Add(rot.Mul3x1(v))
	}
	return out
}
