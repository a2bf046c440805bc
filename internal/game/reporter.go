package game

import (
	"fmt"
	"math"
	"strings"
)

// reportWindowTicks is the default sliding window for recent-pressure reports (~10s at 60TPS).
const reportWindowTicks = 600

// SimReport is a snapshot of the fight at one tick.
type SimReport struct {
	Tick        int
	Wave        int
	Health      float64
	CubesAlive  int
	Touching    int     // cubes in contact with the player
	NearestDist float64 // ground distance to the closest cube; -1 when none
	MeanDist    float64 // mean ground distance of all cubes; -1 when none
	Shots       int     // cumulative
	Hits        int     // cumulative
}

// SimReporter collects periodic reports from the simulation and can produce
// summaries over sliding time windows.
type SimReporter struct {
	history     []SimReport
	windowTicks int
}

// NewSimReporter creates a reporter with the given window size.
func NewSimReporter(windowTicks int) *SimReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SimReporter{windowTicks: windowTicks}
}

// Collect gathers a snapshot from the current simulation state.
// Sim.Step calls this once per second.
func (r *SimReporter) Collect(s *Sim, touching int) {
	rpt := SimReport{
		Tick:        s.Tick,
		Wave:        s.Wave,
		Health:      s.Health,
		Touching:    touching,
		NearestDist: -1,
		MeanDist:    -1,
		Shots:       s.Stats.Shots,
		Hits:        s.Stats.Hits,
	}
	cubes := s.World.Cubes()
	rpt.CubesAlive = len(cubes)
	if len(cubes) > 0 {
		sum := 0.0
		nearest := math.Inf(1)
		for _, c := range cubes {
			d := horizontalDist(c.Center, s.Camera.Pos)
			sum += d
			nearest = math.Min(nearest, d)
		}
		rpt.NearestDist = nearest
		rpt.MeanDist = sum / float64(len(cubes))
	}
	r.history = append(r.history, rpt)
}

// Reset drops all history, e.g. on restart.
func (r *SimReporter) Reset() {
	r.history = r.history[:0]
}

// Latest returns the most recent report, or nil if none.
func (r *SimReporter) Latest() *SimReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns all collected reports.
func (r *SimReporter) History() []SimReport {
	return r.history
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	AvgCubesAlive  float64
	AvgTouching    float64
	AvgNearestDist float64 // over samples that had a cube
	MinNearestDist float64
	HealthLost     float64
	ShotsInWindow  int
	HitsInWindow   int
}

// WindowSummary aggregates the reports inside the most recent window.
func (r *SimReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	var window []SimReport
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Tick < cutoff {
			break
		}
		window = append(window, r.history[i])
	}

	newest, oldest := window[0], window[len(window)-1]
	wr := &WindowReport{
		FromTick:       oldest.Tick,
		ToTick:         newest.Tick,
		SampleCount:    len(window),
		MinNearestDist: -1,
		HealthLost:     math.Max(0, oldest.Health-newest.Health),
		ShotsInWindow:  newest.Shots - oldest.Shots,
		HitsInWindow:   newest.Hits - oldest.Hits,
	}
	withCube := 0
	for _, rpt := range window {
		wr.AvgCubesAlive += float64(rpt.CubesAlive)
		wr.AvgTouching += float64(rpt.Touching)
		if rpt.NearestDist >= 0 {
			withCube++
			wr.AvgNearestDist += rpt.NearestDist
			if wr.MinNearestDist < 0 || rpt.NearestDist < wr.MinNearestDist {
				wr.MinNearestDist = rpt.NearestDist
			}
		}
	}
	n := float64(len(window))
	wr.AvgCubesAlive /= n
	wr.AvgTouching /= n
	if withCube > 0 {
		wr.AvgNearestDist /= float64(withCube)
	} else {
		wr.AvgNearestDist = -1
	}
	return wr
}

// pressureLabel describes how hard the cubes are pressing.
func pressureLabel(avgTouching, avgNearest float64) string {
	switch {
	case avgTouching >= 2:
		return "overrun"
	case avgTouching > 0:
		return "in contact"
	case avgNearest >= 0 && avgNearest < 5:
		return "closing"
	default:
		return "clear"
	}
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Pressure Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)
	fmt.Fprintf(&sb, "cubes_alive=%.1f touching=%.2f nearest[avg/min]=%.1f/%.1f  %s\n",
		wr.AvgCubesAlive, wr.AvgTouching, wr.AvgNearestDist, wr.MinNearestDist,
		pressureLabel(wr.AvgTouching, wr.AvgNearestDist))
	fmt.Fprintf(&sb, "health_lost=%.1f shots=%d hits=%d\n", wr.HealthLost, wr.ShotsInWindow, wr.HitsInWindow)
	return sb.String()
}

// FormatLatest returns a concise snapshot of the most recent collected report.
func (r *SimReporter) FormatLatest() string {
	rpt := r.Latest()
	if rpt == nil {
		return "No data.\n"
	}
	return fmt.Sprintf("--- Snapshot T=%d ---\nwave=%d health=%.0f cubes=%d touching=%d nearest=%.1f mean=%.1f shots=%d hits=%d\n",
		rpt.Tick, rpt.Wave, rpt.Health, rpt.CubesAlive, rpt.Touching, rpt.NearestDist, rpt.MeanDist, rpt.Shots, rpt.Hits)
}
