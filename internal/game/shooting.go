package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mlange-42/arche/ecs"
)

// ShotResult describes one trigger pull.
type ShotResult struct {
	Fired    bool // false while the weapon is cooling down
	Hit      bool
	Entity   ecs.Entity
	Serial   int
	Point    mgl64.Vec3 // ray sample that found the cube (or the ray's end on a miss)
	Distance float64    // distance marched from the eye
}

// Raycast marches from origin along dir in fixed steps up to maxRange and
// returns the index (into cubes) of the first cube whose centre lies within
// radius of a sample. When several cubes qualify at the same sample the one
// nearest to the sample wins; equal distances go to the lower spawn serial.
// Returns -1 on a miss.
func Raycast(origin, dir mgl64.Vec3, cubes []Cube, step, maxRange, radius float64) (idx int, point mgl64.Vec3, dist float64) {
	if dir.Len() < 1e-12 || step <= 0 {
		return -1, origin, 0
	}
	dir = dir.Normalize()
	r2 := radius * radius
	for i := 1; ; i++ {
		d := float64(i) * step
		if d > maxRange+1e-9 {
			break
		}
		p := origin.Add(dir.Mul(d))
		best := -1
		bestD2 := 0.0
		for i, c := range cubes {
			delta := c.Center.Sub(p)
			d2 := delta.Dot(delta)
			if d2 >= r2 {
				continue
			}
			if best < 0 || d2 < bestD2 || (d2 == bestD2 && c.Serial < cubes[best].Serial) {
				best, bestD2 = i, d2
			}
		}
		if best >= 0 {
			return best, p, d
		}
	}
	return -1, origin.Add(dir.Mul(maxRange)), maxRange
}

// Shoot fires the weapon if it is ready: it starts the cooldown, casts the ray
// from the eye along the view direction and removes the cube it hits.
func Shoot(cam *Camera, w *Weapon, world *World, cfg *Config) ShotResult {
	if !w.Ready() {
		return ShotResult{}
	}
	w.Fire(cfg)

	cubes := world.Cubes()
	idx, p, d := Raycast(cam.Pos, cam.Forward(), cubes, cfg.RayStep, cfg.RayRange, cfg.HitRadius)
	res := ShotResult{Fired: true, Point: p, Distance: d}
	if idx < 0 {
		return res
	}
	hit := cubes[idx]
	world.RemoveCube(hit.Entity)
	w.MarkHit(cfg)
	res.Hit = true
	res.Entity = hit.Entity
	res.Serial = hit.Serial
	return res
}
