package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// contactSlack widens the touching test so cubes that separation nudges just
// outside the contact radius still press on the player.
const contactSlack = 0.25

// DriftEnemies moves every cube toward the player's x/z at its own constant
// speed, stopping at contactRadius, then pushes apart pairs closer than the
// separation distance. New centres are written back to the world. Returns
// the number of cubes touching the player after the move.
func DriftEnemies(world *World, target mgl64.Vec3, cfg *Config, dt float64) int {
	cubes := world.Cubes()
	if len(cubes) == 0 {
		return 0
	}
	next := make([]mgl64.Vec3, len(cubes))
	for i, c := range cubes {
		next[i] = driftToward(c.Center, target, c.Speed*dt, cfg.ContactRadius)
	}

	separate(next, cfg.SeparationDist, cfg.SeparationNudge*dt)

	touching := 0
	for i, c := range cubes {
		p := clampArena(next[i], cfg.ArenaHalfSize)
		p[1] = cubeHalf
		world.SetCenter(c.Entity, p)
		if horizontalDist(p, target) <= cfg.ContactRadius+contactSlack {
			touching++
		}
	}
	return touching
}

// driftToward steps p toward target on the ground plane without entering the
// contact radius.
func driftToward(p, target mgl64.Vec3, step, contact float64) mgl64.Vec3 {
	dx := target.X() - p.X()
	dz := target.Z() - p.Z()
	dist := math.Hypot(dx, dz)
	room := dist - contact
	if room <= 0 || dist < 1e-9 {
		return p
	}
	if step > room {
		step = room
	}
	return mgl64.Vec3{p.X() + dx/dist*step, p.Y(), p.Z() + dz/dist*step}
}

// separate nudges every pair of points closer than minDist apart along
// their ground-plane delta, each by nudge. Coincident points are split along X
// with the earlier index moving to -X.
func separate(pts []mgl64.Vec3, minDist, nudge float64) {
	if nudge <= 0 {
		return
	}
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			dx := pts[j].X() - pts[i].X()
			dz := pts[j].Z() - pts[i].Z()
			d := math.Hypot(dx, dz)
			if d >= minDist {
				continue
			}
			var ux, uz float64
			if d < 1e-9 {
				ux, uz = 1, 0
			} else {
				ux, uz = dx/d, dz/d
			}
			pts[i][0] -= ux * nudge
			pts[i][2] -= uz * nudge
			pts[j][0] += ux * nudge
			pts[j][2] += uz * nudge
		}
	}
}
