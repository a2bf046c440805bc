package game

import (
	"strings"
	"testing"
)

func TestSimLog_FilterAndFirstTick(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "P", "shot", "fired", "", 0)
	sl.Add(2, "C3", "shot", "hit", "C3 at 4.3", 4.3)
	sl.Add(5, "P", "shot", "fired", "", 0)
	sl.Add(9, "P", "player", "hurt", "1 cube(s) in contact", 99)

	if n := sl.CountCategory("shot", "fired"); n != 2 {
		t.Fatalf("expected 2 shots, got %d", n)
	}
	if n := len(sl.Filter("shot", "")); n != 3 {
		t.Fatalf("empty key should match the whole category, got %d", n)
	}
	if tick := sl.FirstTick("player", "hurt"); tick != 9 {
		t.Fatalf("expected first hurt at 9, got %d", tick)
	}
	if tick := sl.FirstTick("wave", "spawn"); tick != -1 {
		t.Fatalf("missing event should give -1, got %d", tick)
	}
	if e, ok := sl.LastOf("shot", "fired"); !ok || e.Tick != 5 {
		t.Fatalf("expected last shot at tick 5, got %+v ok=%v", e, ok)
	}
	if !sl.HasEntry("shot", "hit", "C3") || sl.HasEntry("shot", "hit", "C4") {
		t.Fatal("HasEntry substring match is wrong")
	}
	if n := len(sl.FilterSubject("C3")); n != 1 {
		t.Fatalf("expected 1 entry for C3, got %d", n)
	}
	if n := len(sl.FilterTickRange(2, 5)); n != 2 {
		t.Fatalf("expected 2 entries in [2..5], got %d", n)
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "P", "player", "look", "", 0)
	if len(quiet.Entries()) != 0 {
		t.Fatal("non-verbose log recorded a verbose entry")
	}
	loud := NewSimLog(true)
	loud.AddVerbose(1, "P", "player", "look", "", 0)
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose log dropped a verbose entry")
	}
}

func TestSimLog_BoundedDropsOldest(t *testing.T) {
	sl := NewBoundedSimLog(4)
	for i := 1; i <= 5; i++ {
		sl.Add(i, "--", "test", "n", "", float64(i))
	}
	entries := sl.Entries()
	if len(entries) != 3 || entries[0].Tick != 3 || entries[2].Tick != 5 {
		t.Fatalf("expected ticks [3 4 5], got %+v", entries)
	}
	if sl.Dropped() != 2 {
		t.Fatalf("expected 2 dropped, got %d", sl.Dropped())
	}
}

func TestSimLogEntry_String(t *testing.T) {
	e := SimLogEntry{Tick: 42, Subject: "C3", Category: "shot", Key: "hit", Value: "C3 at 7.4"}
	s := e.String()
	if !strings.HasPrefix(s, "[T=042] C3") || !strings.HasSuffix(s, "C3 at 7.4") {
		t.Fatalf("unexpected format %q", s)
	}
}

func TestSimLog_FormatRange(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "P", "shot", "fired", "first", 0)
	sl.Add(4, "C2", "shot", "hit", "C2 at 3.0", 3)
	sl.Add(8, "P", "player", "hurt", "late", 90)

	out := sl.FormatRange(2, 6)
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, "C2 at 3.0") {
		t.Fatalf("expected only the tick 4 line, got:\n%s", out)
	}
	if sl.FormatRange(20, 30) != "" {
		t.Fatal("empty range should format as an empty string")
	}
	all := sl.Format()
	if strings.Count(all, "\n") != 3 || !strings.HasPrefix(all, "[T=001] P") {
		t.Fatalf("unexpected full log:\n%s", all)
	}
}
