package game

import (
	"github.com/go-gl/mathgl/mgl64"
)

// blockedByCube reports whether moving from -> to ends closer (on the ground
// plane) than radius to a cube centre while also getting nearer to it. Moving
// away from a cube that already overlaps the player is always allowed.
func blockedByCube(from, to mgl64.Vec3, cubes []Cube, radius float64) bool {
	for _, c := range cubes {
		d := horizontalDist(to, c.Center)
		if d < radius && d < horizontalDist(from, c.Center) {
			return true
		}
	}
	return false
}

// clampArena keeps a point inside the square arena.
func clampArena(p mgl64.Vec3, half float64) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(p.X(), -half, half),
		p.Y(),
		mgl64.Clamp(p.Z(), -half, half),
	}
}

// MoveCamera applies one tick of horizontal movement. A step that would put the
// player inside an enemy's radius is rejected; the x-only then z-only parts
// are tried so the player slides along the obstruction. Returns true if the
// camera moved.
func MoveCamera(cam *Camera, in Input, cubes []Cube, cfg *Config, dt float64) bool {
	fwd, strafe := in.moveAxes()
	if fwd == 0 && strafe == 0 {
		return false
	}
	dir := cam.FlatForward().Mul(fwd).Add(cam.Right().Mul(strafe))
	if dir.Len() < 1e-9 {
		return false
	}
	step := dir.Normalize().Mul(cfg.MoveSpeed * dt)

	candidates := []mgl64.Vec3{
		step,
		{step.X(), 0, 0},
		{0, 0, step.Z()},
	}
	for _, d := range candidates {
		if d.Len() < 1e-12 {
			continue
		}
		next := clampArena(cam.Pos.Add(d), cfg.ArenaHalfSize)
		if next.ApproxEqual(cam.Pos) {
			continue
		}
		if blockedByCube(cam.Pos, next, cubes, cfg.PlayerRadius) {
			continue
		}
		cam.Pos = next
		return true
	}
	return false
}

// Jump starts a jump when the player stands on the ground.
func Jump(cam *Camera, cfg *Config) bool {
	if !cam.OnGround {
		return false
	}
	cam.VelY = cfg.JumpSpeed
	cam.OnGround = false
	return true
}

// ApplyGravity integrates vertical velocity and clamps to the ground. Returns
// true on the tick the player lands.
func ApplyGravity(cam *Camera, cfg *Config, dt float64) bool {
	wasAirborne := !cam.OnGround
	cam.VelY -= cfg.Gravity * dt
	y := cam.Pos.Y() + cam.VelY*dt
	if y <= cfg.EyeHeight {
		y = cfg.EyeHeight
		cam.VelY = 0
		cam.OnGround = true
	} else {
		cam.OnGround = false
	}
	cam.Pos[1] = y
	return wasAirborne && cam.OnGround
}
