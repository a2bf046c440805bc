package game

import (
	"fmt"
	"slices"
	"strings"
)

// SimLogEntry is one recorded simulation event.
type SimLogEntry struct {
	Tick     int
	Subject  string  // "P" for the player, "C7" for cube serial 7, "--" for global events
	Category string  // shot, move, enemy, player, wave, session
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] P    shot      hit              C3 at 7.4
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Subject, e.Category, e.Key, e.Value)
}

// SimLog is the structured record of a session, queried by tests, the
// headless report and the debug report. EventFeed is the on-screen view.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
	limit   int
	dropped int
}

// NewSimLog returns an unbounded log. Verbose logs also keep the per-tick
// position and look entries.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// NewBoundedSimLog keeps only the newest limit entries, for long interactive
// sessions.
func NewBoundedSimLog(limit int) *SimLog {
	return &SimLog{limit: limit}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, subject, category, key, value string, numVal float64) {
	if sl.limit > 0 && len(sl.entries) >= sl.limit {
		// Drop the oldest half in one go so appends stay amortised O(1).
		n := copy(sl.entries, sl.entries[len(sl.entries)/2:])
		sl.dropped += len(sl.entries) - n
		sl.entries = sl.entries[:n]
	}
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Subject:  subject,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, subject, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, subject, category, key, value, numVal)
}

// Entries returns the retained entries, oldest first.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Dropped is the number of entries discarded by a bounded log.
func (sl *SimLog) Dropped() int {
	return sl.dropped
}

// matches reports whether the entry has the category and key. An empty
// argument matches anything.
func (e SimLogEntry) matches(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

func (sl *SimLog) where(keep func(SimLogEntry) bool) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Filter returns entries matching category and key; "" matches any.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.matches(category, key) })
}

// FilterSubject returns entries logged for one subject, e.g. "C7".
func (sl *SimLog) FilterSubject(label string) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.Subject == label })
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.Tick >= fromTick && e.Tick <= toTick })
}

// CountCategory counts entries matching category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	n := 0
	for _, e := range sl.entries {
		if e.matches(category, key) {
			n++
		}
	}
	return n
}

// FirstTick is the tick of the earliest matching entry, or -1.
func (sl *SimLog) FirstTick(category, key string) int {
	i := slices.IndexFunc(sl.entries, func(e SimLogEntry) bool { return e.matches(category, key) })
	if i < 0 {
		return -1
	}
	return sl.entries[i].Tick
}

// LastOf returns the latest matching entry.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		if sl.entries[i].matches(category, key) {
			return sl.entries[i], true
		}
	}
	return SimLogEntry{}, false
}

// HasEntry reports whether some entry matches category and key and has
// valueSubstr in its Value.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	return slices.ContainsFunc(sl.entries, func(e SimLogEntry) bool {
		return e.matches(category, key) && strings.Contains(e.Value, valueSubstr)
	})
}

func writeEntries(entries []SimLogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Format renders every retained entry, one per line.
func (sl *SimLog) Format() string {
	return writeEntries(sl.entries)
}

// FormatRange renders the entries in [fromTick, toTick].
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	return writeEntries(sl.FilterTickRange(fromTick, toTick))
}

// Summary describes the player, the wave and the logged event counts.
func (sl *SimLog) Summary(s *Sim) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", s.Tick)
	fmt.Fprintf(&sb, "Player: pos=(%.2f,%.2f,%.2f) yaw=%.2f pitch=%.2f health=%.0f/%.0f\n",
		s.Camera.Pos.X(), s.Camera.Pos.Y(), s.Camera.Pos.Z(),
		s.Camera.Yaw, s.Camera.Pitch, s.Health, s.Cfg.MaxHealth)
	fmt.Fprintf(&sb, "Wave: %d  cubes=%d  over=%v\n", s.Wave, s.World.Count(), s.Over)
	fmt.Fprintf(&sb, "Events: shots=%d hits=%d hurt=%d waves=%d\n",
		sl.CountCategory("shot", "fired"), sl.CountCategory("shot", "hit"),
		sl.CountCategory("player", "hurt"), sl.CountCategory("wave", "spawn"))
	return sb.String()
}
