package game

import (
	"fmt"
	"math"
	"strings"
)

// SessionStats accumulates player performance for one life.
type SessionStats struct {
	Shots        int
	Hits         int
	WavesCleared int
	Jumps        int
	DamageTaken  float64
	Distance     float64 // ground distance walked
	TicksAlive   int
	// PeakPressure is the most cubes touching the player at once.
	PeakPressure int
}

// Accuracy is hits per shot in [0,1]; zero when nothing was fired.
func (s *SessionStats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

// SecondsAlive converts ticks to seconds.
func (s *SessionStats) SecondsAlive() float64 {
	return float64(s.TicksAlive) / TicksPerSecond
}

// KillsPerMinute is the kill rate over the time alive.
func (s *SessionStats) KillsPerMinute() float64 {
	secs := s.SecondsAlive()
	if secs <= 0 {
		return 0
	}
	return float64(s.Hits) / secs * 60
}

// Score is a 0-100 rating blending accuracy, kill rate, waves and damage.
func (s *SessionStats) Score(maxHealth float64) float64 {
	acc := s.Accuracy() * 40
	rate := math.Min(s.KillsPerMinute()/30, 1) * 30
	waves := math.Min(float64(s.WavesCleared)/5, 1) * 20
	health := 10.0
	if maxHealth > 0 {
		health = math.Max(0, 1-s.DamageTaken/maxHealth) * 10
	}
	return acc + rate + waves + health
}

// LetterGrade maps a 0-100 score to a letter.
func LetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

// Format renders the stats as a short multi-line block.
func (s *SessionStats) Format(maxHealth float64) string {
	var sb strings.Builder
	score := s.Score(maxHealth)
	fmt.Fprintf(&sb, "grade=%s score=%.1f\n", LetterGrade(score), score)
	fmt.Fprintf(&sb, "shots=%d hits=%d accuracy=%.0f%% kpm=%.1f\n",
		s.Shots, s.Hits, s.Accuracy()*100, s.KillsPerMinute())
	fmt.Fprintf(&sb, "waves_cleared=%d jumps=%d distance=%.1f\n", s.WavesCleared, s.Jumps, s.Distance)
	fmt.Fprintf(&sb, "damage_taken=%.1f peak_pressure=%d alive=%.1fs\n",
		s.DamageTaken, s.PeakPressure, s.SecondsAlive())
	return sb.String()
}
