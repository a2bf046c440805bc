package game

import (
	"strings"
	"testing"
)

func TestSessionStats_AccuracyNoShots(t *testing.T) {
	var s SessionStats
	if s.Accuracy() != 0 || s.KillsPerMinute() != 0 {
		t.Fatal("empty stats should report zero accuracy and rate")
	}
}

func TestSessionStats_Rates(t *testing.T) {
	s := SessionStats{Shots: 8, Hits: 6, TicksAlive: 30 * TicksPerSecond}
	if !near(s.Accuracy(), 0.75) {
		t.Fatalf("expected accuracy 0.75, got %.4f", s.Accuracy())
	}
	if !near(s.SecondsAlive(), 30) {
		t.Fatalf("expected 30s alive, got %.2f", s.SecondsAlive())
	}
	if !near(s.KillsPerMinute(), 12) {
		t.Fatalf("expected 12 kills/min, got %.2f", s.KillsPerMinute())
	}
}

func TestSessionStats_ScoreBounds(t *testing.T) {
	perfect := SessionStats{Shots: 100, Hits: 100, WavesCleared: 10, TicksAlive: 60 * TicksPerSecond}
	if sc := perfect.Score(100); !near(sc, 100) {
		t.Fatalf("perfect run should score 100, got %.2f", sc)
	}
	if g := LetterGrade(perfect.Score(100)); g != "A+" {
		t.Fatalf("perfect run should grade A+, got %s", g)
	}
	hopeless := SessionStats{Shots: 50, DamageTaken: 100, TicksAlive: 600}
	if sc := hopeless.Score(100); sc != 0 {
		t.Fatalf("no hits, no waves and full damage should score 0, got %.2f", sc)
	}
	if g := LetterGrade(0); g != "F" {
		t.Fatalf("zero should grade F, got %s", g)
	}
}

func TestLetterGrade_Thresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{93, "A+"}, {85, "A"}, {78, "B+"}, {70, "B"}, {62, "C+"}, {55, "C"}, {45, "D"}, {44.9, "F"},
	}
	for _, c := range cases {
		if got := LetterGrade(c.score); got != c.want {
			t.Fatalf("score %.1f: expected %s, got %s", c.score, c.want, got)
		}
	}
}

func TestSessionStats_Format(t *testing.T) {
	s := SessionStats{Shots: 4, Hits: 2, WavesCleared: 1}
	out := s.Format(100)
	for _, want := range []string{"grade=", "shots=4", "hits=2", "accuracy=50%", "waves_cleared=1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("Format output missing %q:\n%s", want, out)
		}
	}
}
