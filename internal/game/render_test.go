package game

import (
	"image/color"
	"testing"
)

func TestFogFactor(t *testing.T) {
	if f := fogFactor(0, 35); f != 1 {
		t.Fatalf("no fog at the eye, got %.3f", f)
	}
	if f := fogFactor(17.5, 35); !near(f, 0.5) {
		t.Fatalf("half way should be 0.5, got %.3f", f)
	}
	if f := fogFactor(100, 35); f != minFog {
		t.Fatalf("far geometry should floor at %.2f, got %.3f", minFog, f)
	}
	if f := fogFactor(100, 0); f != 1 {
		t.Fatalf("zero fog distance disables fog, got %.3f", f)
	}
}

func TestFogged_KeepsAlpha(t *testing.T) {
	c := fogged(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	if c != (color.RGBA{R: 100, G: 50, B: 25, A: 255}) {
		t.Fatalf("unexpected fogged colour %+v", c)
	}
}

func TestSpeedSteps(t *testing.T) {
	if s := fasterSpeed(1); s != 2 {
		t.Fatalf("1x faster should be 2x, got %g", s)
	}
	if s := fasterSpeed(4); s != 4 {
		t.Fatalf("4x is the top speed, got %g", s)
	}
	if s := slowerSpeed(1); s != 0.5 {
		t.Fatalf("1x slower should be 0.5x, got %g", s)
	}
	if s := slowerSpeed(0); s != 0 {
		t.Fatalf("paused is the bottom speed, got %g", s)
	}
	if speedLabel(0) != "PAUSED" || speedLabel(0.5) != "0.5x" {
		t.Fatal("speed labels are wrong")
	}
}
