package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// reportTicks is the default window of sim log included in a debug report.
const reportTicks = 5 * TicksPerSecond

// DebugReport describes the session state and the recent sim log.
func DebugReport(s *Sim, lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = reportTicks
	}
	toTick := s.Tick
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- WireStrike debug report ---\n")
	fmt.Fprintf(&b, "session=%s seed=%d tick=%d wave=%d over=%v\n", s.SessionID, s.Seed(), s.Tick, s.Wave, s.Over)

	c := s.Camera
	fmt.Fprintf(&b, "\n== camera ==\n")
	fmt.Fprintf(&b, "pos=(%.2f, %.2f, %.2f) yaw=%.3f pitch=%.3f velY=%.2f onGround=%v\n",
		c.Pos.X(), c.Pos.Y(), c.Pos.Z(), c.Yaw, c.Pitch, c.VelY, c.OnGround)
	f := c.Forward()
	fmt.Fprintf(&b, "forward=(%.3f, %.3f, %.3f) health=%.1f/%.0f\n", f.X(), f.Y(), f.Z(), s.Health, s.Cfg.MaxHealth)

	w := s.Weapon
	fmt.Fprintf(&b, "weapon: cooldown=%.2f kick=%.2f flash=%.2f hitMarker=%.2f\n", w.Cooldown, w.Kick, w.Flash, w.HitMarker)

	cubes := s.World.Cubes()
	fmt.Fprintf(&b, "\n== cubes (%d) ==\n", len(cubes))
	if len(cubes) == 0 {
		b.WriteString("(none)\n")
	}
	for _, cb := range cubes {
		fmt.Fprintf(&b, "  C%-4d wave=%d pos=(%.2f, %.2f) dist=%.2f speed=%.2f\n",
			cb.Serial, cb.Wave, cb.Center.X(), cb.Center.Z(), horizontalDist(cb.Center, c.Pos), cb.Speed)
	}

	fmt.Fprintf(&b, "\n== stats ==\n")
	b.WriteString(s.Stats.Format(s.Cfg.MaxHealth))

	fmt.Fprintf(&b, "\n== pressure ==\n")
	b.WriteString(s.Reporter.FormatLatest())
	b.WriteString(s.Reporter.WindowSummary().Format())

	fmt.Fprintf(&b, "\n== log [%d..%d] ==\n", fromTick, toTick)
	if d := s.Log.Dropped(); d > 0 {
		fmt.Fprintf(&b, "(%d older entries dropped)\n", d)
	}
	if lines := s.Log.FormatRange(fromTick, toTick); lines != "" {
		b.WriteString(lines)
	} else {
		b.WriteString("(no entries)\n")
	}
	return b.String()
}

// copyDebugReport writes the report to the system clipboard.
func copyDebugReport(s *Sim) (string, error) {
	report := DebugReport(s, reportTicks)
	if err := clipboard.WriteAll(report); err != nil {
		return report, fmt.Errorf("copy debug report: %w", err)
	}
	return report, nil
}
