package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the audio rate shared by synthesis and playback.
const SampleRate = 44100

// SoundID names a synthesised effect.
type SoundID int

const (
	SoundShot SoundID = iota
	SoundHit
	SoundHurt
	SoundWave
	SoundDeath
	soundCount
)

func (id SoundID) String() string {
	switch id {
	case SoundShot:
		return "shot"
	case SoundHit:
		return "hit"
	case SoundHurt:
		return "hurt"
	case SoundWave:
		return "wave"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// soundFor maps gameplay events to effects. Events without a sound map to -1.
func soundFor(k EventKind) SoundID {
	switch k {
	case EventShot:
		return SoundShot
	case EventHit:
		return SoundHit
	case EventHurt:
		return SoundHurt
	case EventWave:
		return SoundWave
	case EventDeath:
		return SoundDeath
	default:
		return -1
	}
}

// noise is white noise from a seeded source so effects are reproducible.
func noise(seed int64) beep.Streamer {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- audio only
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
}

// decay applies an exponential fade with time constant tau and ends the
// stream after length.
func decay(s beep.Streamer, rate beep.SampleRate, tau, length time.Duration) beep.Streamer {
	total := rate.N(length)
	k := 1 / (tau.Seconds() * float64(rate))
	pos := 0
	src := beep.Take(total, s)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := src.Stream(samples)
		for i := 0; i < n; i++ {
			g := math.Exp(-float64(pos) * k)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// volume scales a stream linearly; zero mutes it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v), Silent: false}
}

// tone is a sine at freq, or silence if the generator rejects the frequency.
func tone(rate beep.SampleRate, freq float64) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(-1)
	}
	return s
}

// soundStreamer builds the effect graph for id.
func soundStreamer(id SoundID) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	switch id {
	case SoundShot:
		crack := decay(noise(1), rate, 25*time.Millisecond, 140*time.Millisecond)
		thump := decay(tone(rate, 90), rate, 40*time.Millisecond, 140*time.Millisecond)
		return volume(beep.Mix(volume(crack, 0.6), volume(thump, 0.5)), 0.7)
	case SoundHit:
		a := decay(tone(rate, 880), rate, 30*time.Millisecond, 60*time.Millisecond)
		b := decay(tone(rate, 1320), rate, 50*time.Millisecond, 110*time.Millisecond)
		return volume(beep.Seq(a, b), 0.5)
	case SoundHurt:
		low := decay(tone(rate, 110), rate, 80*time.Millisecond, 220*time.Millisecond)
		grit := decay(noise(2), rate, 60*time.Millisecond, 220*time.Millisecond)
		return volume(beep.Mix(volume(low, 0.7), volume(grit, 0.2)), 0.6)
	case SoundWave:
		notes := []float64{523.25, 659.25, 783.99}
		parts := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			parts = append(parts, decay(tone(rate, f), rate, 90*time.Millisecond, 120*time.Millisecond))
		}
		return volume(beep.Seq(parts...), 0.4)
	case SoundDeath:
		a := decay(tone(rate, 220), rate, 200*time.Millisecond, 300*time.Millisecond)
		b := decay(tone(rate, 165), rate, 300*time.Millisecond, 500*time.Millisecond)
		return volume(beep.Seq(a, b), 0.6)
	default:
		return nil
	}
}

// SynthesizePCM renders an effect as 16-bit signed little-endian stereo PCM,
// the layout audio.Context.NewPlayerFromBytes expects.
func SynthesizePCM(id SoundID) []byte {
	s := soundStreamer(id)
	if s == nil {
		return nil
	}
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := int16(mgl64.Clamp(buf[i][ch], -1, 1) * math.MaxInt16)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// SoundBank plays the synthesised effects. A nil bank is silent.
type SoundBank struct {
	players [soundCount]*audio.Player
	Muted   bool
}

// NewSoundBank synthesises every effect into a player on ctx.
func NewSoundBank(ctx *audio.Context) *SoundBank {
	b := &SoundBank{}
	for id := SoundID(0); id < soundCount; id++ {
		b.players[id] = ctx.NewPlayerFromBytes(SynthesizePCM(id))
	}
	return b
}

// Play restarts an effect from the beginning.
func (b *SoundBank) Play(id SoundID) error {
	if b == nil || b.Muted || id < 0 || id >= soundCount {
		return nil
	}
	p := b.players[id]
	if err := p.SetPosition(0); err != nil {
		return err
	}
	p.Play()
	return nil
}

// PlayEvents plays the sound of each event, returning the first playback error.
func (b *SoundBank) PlayEvents(events []EventKind) error {
	var first error
	for _, e := range events {
		if id := soundFor(e); id >= 0 {
			if err := b.Play(id); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
