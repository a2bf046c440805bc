package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is the player's eye: position plus yaw/pitch look angles and the
// vertical motion state used by the jump/gravity integration.
//
// Yaw 0 looks down +Z; positive yaw turns left. Positive pitch looks up.
type Camera struct {
	Pos      mgl64.Vec3
	Yaw      float64
	Pitch    float64
	VelY     float64
	OnGround bool
}

// NewCamera returns a camera standing on the ground at (x, z).
func NewCamera(x, z, eyeHeight float64) Camera {
	return Camera{Pos: mgl64.Vec3{x, eyeHeight, z}, OnGround: true}
}

// Look applies a mouse delta in pixels. Pitch is clamped to straight up/down.
func (c *Camera) Look(dx, dy, sensitivity float64) {
	c.Yaw = normalizeAngle(c.Yaw - dx*sensitivity)
	c.AddPitch(-dy * sensitivity)
}

// AddPitch nudges pitch and clamps it to [-pi/2, pi/2].
func (c *Camera) AddPitch(d float64) {
	c.Pitch = mgl64.Clamp(c.Pitch+d, -math.Pi/2, math.Pi/2)
}

// Forward is the unit view direction including pitch.
func (c *Camera) Forward() mgl64.Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	sp, cp := math.Sincos(c.Pitch)
	return mgl64.Vec3{-sy * cp, sp, cy * cp}
}

// FlatForward is the view direction projected on the ground plane.
func (c *Camera) FlatForward() mgl64.Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	return mgl64.Vec3{-sy, 0, cy}
}

// Right is the ground-plane strafe direction (screen right).
func (c *Camera) Right() mgl64.Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	return mgl64.Vec3{cy, 0, sy}
}

// viewMatrix undoes yaw first, then pitch, so Forward maps onto +Z.
func (c *Camera) viewMatrix() mgl64.Mat3 {
	return mgl64.Rotate3DX(c.Pitch).Mul3(mgl64.Rotate3DY(c.Yaw))
}

// Rotate3D transforms a world point into camera space.
func (c *Camera) Rotate3D(p mgl64.Vec3) mgl64.Vec3 {
	return c.viewMatrix().Mul3x1(p.Sub(c.Pos))
}

// Viewport describes the projection target.
type Viewport struct {
	Width, Height float64
	Focal         float64 // field-of-view scale in pixels
	Near          float64
}

// Project maps a camera-space point to screen pixels. ok is false when the
// point is on or behind the near plane.
func (vp Viewport) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	if p.Z() <= vp.Near {
		return 0, 0, false
	}
	s := vp.Focal / p.Z()
	return vp.Width/2 + p.X()*s, vp.Height/2 - p.Y()*s, true
}

// ClipSegment clips a camera-space segment against the near plane. ok is false
// when the whole segment lies behind it.
func (vp Viewport) ClipSegment(a, b mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3, bool) {
	aIn := a.Z() > vp.Near
	bIn := b.Z() > vp.Near
	switch {
	case aIn && bIn:
		return a, b, true
	case !aIn && !bIn:
		return a, b, false
	}
	// Exactly one endpoint is behind; move it onto a plane just in front of near.
	plane := vp.Near * 1.0001
	t := (plane - a.Z()) / (b.Z() - a.Z())
	cut := a.Add(b.Sub(a).Mul(t))
	if aIn {
		return a, cut, true
	}
	return cut, b, true
}

// ProjectSegment clips and projects a camera-space segment.
func (vp Viewport) ProjectSegment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	a, b, ok = vp.ClipSegment(a, b)
	if !ok {
		return 0, 0, 0, 0, false
	}
	x0, y0, okA := vp.Project(a)
	x1, y1, okB := vp.Project(b)
	return x0, y0, x1, y1, okA && okB
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// horizontalDist is the x/z distance between two points.
func horizontalDist(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}
