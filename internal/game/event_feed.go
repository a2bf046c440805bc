package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedMaxEntries = 8
	feedLineHeight = 15
	feedWidth      = 260
	// feedFadeTicks is how long a line stays fully bright.
	feedFadeTicks = 3 * TicksPerSecond
	// feedFadeAlpha is the opacity of older lines.
	feedFadeAlpha = 0.45
)

// FeedKind colours a feed line.
type FeedKind int

const (
	FeedInfo FeedKind = iota
	FeedKill
	FeedDamage
	FeedWave
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Kind    FeedKind
	Message string
}

// EventFeed is a ring buffer of recent player-facing events rendered on the HUD.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest when full.
func (f *EventFeed) Add(tick int, kind FeedKind, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Kind: kind, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Clear empties the feed.
func (f *EventFeed) Clear() {
	f.head = 0
	f.count = 0
}

func feedColor(k FeedKind) color.RGBA {
	switch k {
	case FeedKill:
		return color.RGBA{R: 120, G: 230, B: 120, A: 255}
	case FeedDamage:
		return color.RGBA{R: 240, G: 90, B: 80, A: 255}
	case FeedWave:
		return color.RGBA{R: 250, G: 210, B: 90, A: 255}
	default:
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
}

// feedLineColor is the entry's colour, faded once it is older than
// feedFadeTicks.
func feedLineColor(e FeedEntry, nowTick int) color.RGBA {
	c := feedColor(e.Kind)
	if nowTick-e.Tick > feedFadeTicks {
		return fade(c, feedFadeAlpha)
	}
	return c
}

// fade scales every premultiplied component so the colour stays valid.
func fade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// Draw renders the feed in the top-right corner. Lines older than
// feedFadeTicks are dimmed.
func (f *EventFeed) Draw(screen *ebiten.Image, hud *hudText, nowTick int, screenW int) {
	entries := f.Recent()
	if len(entries) == 0 {
		return
	}
	x := float32(screenW - feedWidth - 12)
	y := float32(12)
	h := float32(len(entries)*feedLineHeight + 8)
	vector.FillRect(screen, x, y, feedWidth, h, color.RGBA{R: 8, G: 10, B: 14, A: 150}, false)

	for i, e := range entries {
		c := feedLineColor(e, nowTick)
		line := fmt.Sprintf("%5.1fs %s", float64(e.Tick)/TicksPerSecond, e.Message)
		hud.draw(screen, line, float64(x)+6, float64(y)+4+float64(i*feedLineHeight), c)
	}
}
