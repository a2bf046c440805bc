package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWorld_SpawnAndRemove(t *testing.T) {
	w := NewWorld()
	a := w.SpawnCube(mgl64.Vec3{1, cubeHalf, 1}, 1, 1, 0)
	b := w.SpawnCube(mgl64.Vec3{2, cubeHalf, 2}, 1, 1, 0)
	w.SpawnCube(mgl64.Vec3{3, cubeHalf, 3}, 1, 1, 0)
	if w.Count() != 3 {
		t.Fatalf("expected 3 cubes, got %d", w.Count())
	}

	if !w.RemoveCube(b) {
		t.Fatal("removing a live cube should report true")
	}
	if w.RemoveCube(b) {
		t.Fatal("removing a dead cube should be a no-op")
	}
	if w.Alive(b) || !w.Alive(a) {
		t.Fatal("liveness does not match removals")
	}

	cubes := w.Cubes()
	if len(cubes) != 2 || cubes[0].Serial != 0 || cubes[1].Serial != 2 {
		t.Fatalf("expected serials [0 2], got %+v", cubes)
	}
}

func TestWorld_CubesOrderedBySerial(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 10; i++ {
		w.SpawnCube(mgl64.Vec3{float64(i), cubeHalf, 0}, 1, 1, 0)
	}
	// Removing and respawning reuses entity slots but never serials.
	for _, c := range w.Cubes()[:4] {
		w.RemoveCube(c.Entity)
	}
	w.SpawnCube(mgl64.Vec3{}, 1, 2, 0)
	cubes := w.Cubes()
	for i := 1; i < len(cubes); i++ {
		if cubes[i-1].Serial >= cubes[i].Serial {
			t.Fatalf("cubes out of serial order at %d: %d >= %d", i, cubes[i-1].Serial, cubes[i].Serial)
		}
	}
	if last := cubes[len(cubes)-1]; last.Serial != 10 || last.Wave != 2 {
		t.Fatalf("respawned cube should have serial 10 wave 2, got %+v", last)
	}
}

func TestWorld_SetCenterAndSpin(t *testing.T) {
	w := NewWorld()
	e := w.SpawnCube(mgl64.Vec3{0, cubeHalf, 5}, 1, 1, 1)
	w.SetCenter(e, mgl64.Vec3{1, cubeHalf, 4})
	w.AdvanceSpin(0.5)
	c := w.Cubes()[0]
	if c.Center != (mgl64.Vec3{1, cubeHalf, 4}) {
		t.Fatalf("SetCenter not applied: %v", c.Center)
	}
	if !near(c.Phase, 0.5) {
		t.Fatalf("expected spin phase 0.5, got %.4f", c.Phase)
	}
	w.RemoveCube(e)
	w.SetCenter(e, mgl64.Vec3{9, 9, 9}) // dead entity: ignored
}

func TestWorld_Reset(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		w.SpawnCube(mgl64.Vec3{}, 1, 1, 0)
	}
	w.Reset()
	if w.Count() != 0 {
		t.Fatalf("expected empty world after reset, got %d", w.Count())
	}
	w.SpawnCube(mgl64.Vec3{}, 1, 1, 0)
	if s := w.Cubes()[0].Serial; s != 0 {
		t.Fatalf("serials should restart at 0, got %d", s)
	}
}

func TestWireframeVertices_UnitEdges(t *testing.T) {
	verts := WireframeVertices(mgl64.Vec3{2, cubeHalf, -3}, 0.7)
	for _, e := range cubeEdges {
		if l := verts[e[0]].Sub(verts[e[1]]).Len(); !near(l, 1) {
			t.Fatalf("edge %v has length %.4f", e, l)
		}
	}
	for _, v := range verts {
		if !near(v.Y(), 0) && !near(v.Y(), 1) {
			t.Fatalf("spin about Y must keep the cube on the ground, got y=%.4f", v.Y())
		}
	}
}
