package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAimAngles_MatchForward(t *testing.T) {
	eye := mgl64.Vec3{1, 1.6, -2}
	for _, target := range []mgl64.Vec3{{4, 0.5, 3}, {-6, 2, -1}, {1, 0.5, 9}} {
		yaw, pitch := AimAngles(eye, target)
		c := Camera{Pos: eye, Yaw: yaw, Pitch: pitch}
		want := target.Sub(eye).Normalize()
		if !nearVec(c.Forward(), want) {
			t.Fatalf("target %v: forward %v does not point at %v", target, c.Forward(), want)
		}
	}
}

func TestAimInput_TurnsTowardTarget(t *testing.T) {
	cfg := DefaultConfig()
	cam := NewCamera(0, 0, cfg.EyeHeight)
	target := mgl64.Vec3{-10, cubeHalf, 10} // 45 degrees left

	dx, dy, on := AimInput(&cam, target, &cfg)
	if on {
		t.Fatal("target 45 degrees off should not be on target")
	}
	cam.Look(dx, dy, cfg.MouseSensitivity)
	if !near(cam.Yaw, botMaxTurn) {
		t.Fatalf("turn should be capped at %.2f, got %.4f", botMaxTurn, cam.Yaw)
	}
	if cam.Pitch >= 0 {
		t.Fatalf("ground target should pitch down, got %.4f", cam.Pitch)
	}

	for i := 0; i < 50; i++ {
		dx, dy, on = AimInput(&cam, target, &cfg)
		if on {
			break
		}
		cam.Look(dx, dy, cfg.MouseSensitivity)
	}
	if !on {
		t.Fatal("bot never settled on the target")
	}
	if math.Abs(cam.Yaw-math.Pi/4) > 0.05 {
		t.Fatalf("expected yaw near pi/4, got %.4f", cam.Yaw)
	}
}

func TestTurretBot_NoTargetIdles(t *testing.T) {
	ts := NewTestSim()
	if in := TurretBot(ts.Sim); in != (Input{}) {
		t.Fatalf("empty arena should produce no input, got %+v", in)
	}
}

func TestStrafeBot_MovesAndJumps(t *testing.T) {
	ts := NewTestSim(WithCube(0, 20, 0))
	jumped := false
	for i := 0; i < 3*TicksPerSecond; i++ {
		in := StrafeBot(ts.Sim)
		if !in.Right {
			t.Fatal("strafe bot should always strafe")
		}
		jumped = jumped || in.Jump
		ts.Step(in)
	}
	if !jumped || ts.Stats.Jumps == 0 {
		t.Fatal("strafe bot should hop within three seconds")
	}
}

func TestKiteBot_BacksOffWhenClose(t *testing.T) {
	ts := NewTestSim(WithCube(0, 3, 0))
	if in := KiteBot(ts.Sim); !in.Back {
		t.Fatal("kite bot should back away from a close cube")
	}
	far := NewTestSim(WithCube(0, 20, 0))
	if in := KiteBot(far.Sim); in.Back {
		t.Fatal("kite bot should hold ground against a far cube")
	}
}
