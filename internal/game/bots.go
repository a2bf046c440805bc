package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// botMaxTurn caps how far (radians) a bot can swing its view per tick.
const botMaxTurn = 0.08

// AimAngles returns the yaw and pitch that point the camera at target.
func AimAngles(eye, target mgl64.Vec3) (yaw, pitch float64) {
	d := target.Sub(eye)
	yaw = math.Atan2(-d.X(), d.Z())
	pitch = math.Atan2(d.Y(), math.Hypot(d.X(), d.Z()))
	return yaw, pitch
}

// nearestCube returns the cube closest to p, or false when there are none.
func nearestCube(p mgl64.Vec3, cubes []Cube) (Cube, bool) {
	best := -1
	bestD := 0.0
	for i, c := range cubes {
		d := c.Center.Sub(p).Len()
		if best < 0 || d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return Cube{}, false
	}
	return cubes[best], true
}

// AimInput produces the mouse deltas that turn the camera toward target,
// limited to botMaxTurn per tick, and whether the shot would land on target.
func AimInput(cam *Camera, target mgl64.Vec3, cfg *Config) (dx, dy float64, onTarget bool) {
	wantYaw, wantPitch := AimAngles(cam.Pos, target)
	dYaw := mgl64.Clamp(normalizeAngle(wantYaw-cam.Yaw), -botMaxTurn, botMaxTurn)
	dPitch := mgl64.Clamp(wantPitch-cam.Pitch, -botMaxTurn, botMaxTurn)
	// Look subtracts the scaled delta from yaw/pitch.
	dx = -dYaw / cfg.MouseSensitivity
	dy = -dPitch / cfg.MouseSensitivity

	dist := target.Sub(cam.Pos).Len()
	if dist < 1e-9 {
		return dx, dy, true
	}
	tolerance := math.Atan2(cfg.HitRadius*0.5, dist)
	errYaw := math.Abs(normalizeAngle(wantYaw - cam.Yaw))
	errPitch := math.Abs(wantPitch - cam.Pitch)
	onTarget = errYaw < tolerance && errPitch < tolerance && dist <= cfg.RayRange
	return dx, dy, onTarget
}

// TurretBot stands still and shoots the nearest cube.
func TurretBot(s *Sim) Input {
	var in Input
	c, ok := nearestCube(s.Camera.Pos, s.World.Cubes())
	if !ok {
		return in
	}
	in.LookDX, in.LookDY, in.Fire = AimInput(&s.Camera, c.Center, &s.Cfg)
	return in
}

// StrafeBot circle-strafes while shooting the nearest cube, hopping every
// couple of seconds.
func StrafeBot(s *Sim) Input {
	in := TurretBot(s)
	in.Right = true
	in.Jump = s.Tick%(2*TicksPerSecond) == 0
	return in
}

// KiteBot backs away from the nearest cube while shooting it.
func KiteBot(s *Sim) Input {
	in := TurretBot(s)
	c, ok := nearestCube(s.Camera.Pos, s.World.Cubes())
	if ok && horizontalDist(c.Center, s.Camera.Pos) < s.Cfg.SpawnMinRadius/2 {
		in.Back = true
	}
	return in
}
