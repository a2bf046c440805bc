package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDriftToward_StepsAtSpeed(t *testing.T) {
	p := driftToward(mgl64.Vec3{0, cubeHalf, 10}, mgl64.Vec3{0, 1.6, 0}, 1, 1.1)
	if !nearVec(p, mgl64.Vec3{0, cubeHalf, 9}) {
		t.Fatalf("expected (0, 0.5, 9), got %v", p)
	}
}

func TestDriftToward_StopsAtContact(t *testing.T) {
	p := driftToward(mgl64.Vec3{3, cubeHalf, 4}, mgl64.Vec3{}, 20, 1.1)
	if d := horizontalDist(p, mgl64.Vec3{}); !near(d, 1.1) {
		t.Fatalf("large step should stop on the contact radius, got %.4f", d)
	}
	q := driftToward(p, mgl64.Vec3{}, 1, 1.1)
	if q != p {
		t.Fatalf("cube already in contact must not move, got %v", q)
	}
}

func TestSeparate_PushesApart(t *testing.T) {
	pts := []mgl64.Vec3{{0, 0, 0}, {0.5, 0, 0}}
	separate(pts, 1.5, 0.1)
	if !near(pts[0].X(), -0.1) || !near(pts[1].X(), 0.6) {
		t.Fatalf("expected x = -0.1 and 0.6, got %v", pts)
	}
}

func TestSeparate_CoincidentSplitsAlongX(t *testing.T) {
	pts := []mgl64.Vec3{{2, 0, 2}, {2, 0, 2}}
	separate(pts, 1.5, 0.1)
	if !near(pts[0].X(), 1.9) || !near(pts[1].X(), 2.1) || pts[0].Z() != 2 || pts[1].Z() != 2 {
		t.Fatalf("coincident points should split along x, got %v", pts)
	}
}

func TestSeparate_FarPairsUntouched(t *testing.T) {
	pts := []mgl64.Vec3{{0, 0, 0}, {5, 0, 0}}
	separate(pts, 1.5, 0.1)
	if pts[0] != (mgl64.Vec3{}) || pts[1] != (mgl64.Vec3{5, 0, 0}) {
		t.Fatalf("pairs beyond the separation distance moved: %v", pts)
	}
}

func TestDriftEnemies_ContactCount(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld()
	w.SpawnCube(mgl64.Vec3{0, cubeHalf, 1.2}, 10, 1, 0)
	w.SpawnCube(mgl64.Vec3{0, cubeHalf, -20}, 1, 1, 0)
	target := mgl64.Vec3{0, cfg.EyeHeight, 0}

	touching := DriftEnemies(w, target, &cfg, tickDT)
	if touching != 1 {
		t.Fatalf("expected 1 cube in contact, got %d", touching)
	}
	cubes := w.Cubes()
	if d := horizontalDist(cubes[0].Center, target); !near(d, cfg.ContactRadius) {
		t.Fatalf("fast cube should stop at the contact radius, got %.4f", d)
	}
	if !near(cubes[1].Center.Z(), -20+tickDT) {
		t.Fatalf("far cube should drift by speed*dt, got z=%.4f", cubes[1].Center.Z())
	}
}

func TestDriftEnemies_StayOnGroundInArena(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld()
	w.SpawnCube(mgl64.Vec3{cfg.ArenaHalfSize, 3, 0}, 1, 1, 0)
	w.SpawnCube(mgl64.Vec3{cfg.ArenaHalfSize, 3, 0}, 1, 1, 0)
	// Target beyond the wall pulls the cubes outward; separation pushes too.
	DriftEnemies(w, mgl64.Vec3{cfg.ArenaHalfSize + 10, 0, 0}, &cfg, tickDT)
	for _, c := range w.Cubes() {
		if c.Center.Y() != cubeHalf {
			t.Fatalf("cube should rest on the ground, y=%.4f", c.Center.Y())
		}
		if c.Center.X() > cfg.ArenaHalfSize {
			t.Fatalf("cube left the arena: %v", c.Center)
		}
	}
}

func TestDriftEnemies_EventuallySurround(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld()
	for i := 0; i < 4; i++ {
		w.SpawnCube(mgl64.Vec3{float64(i*3 - 4), cubeHalf, 8}, 2, 1, 0)
	}
	target := mgl64.Vec3{0, cfg.EyeHeight, 0}
	for tick := 0; tick < 10*TicksPerSecond; tick++ {
		DriftEnemies(w, target, &cfg, tickDT)
	}
	cubes := w.Cubes()
	closest := 1e9
	for _, c := range cubes {
		closest = min(closest, horizontalDist(c.Center, target))
	}
	if closest > cfg.ContactRadius+contactSlack {
		t.Fatalf("cubes should reach the player within 10 seconds, closest=%.3f", closest)
	}
	for i := range cubes {
		for j := i + 1; j < len(cubes); j++ {
			if horizontalDist(cubes[i].Center, cubes[j].Center) < 0.5 {
				t.Fatalf("cubes %d and %d collapsed onto each other", i, j)
			}
		}
	}
}
