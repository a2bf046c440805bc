package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// simSpeeds are the selectable simulation speed multipliers.
var simSpeeds = []float64{0, 0.5, 1, 2, 4}

// statusTicks is how long a status line (report copied, muted) stays up.
const statusTicks = 3 * TicksPerSecond

// Options configures a Game.
type Options struct {
	Config Config
	Seed   int64
	Width  int
	Height int
	Logger zerolog.Logger
	// Audio is the shared audio context; nil runs silently.
	Audio *audio.Context
	Mute  bool
}

// Game implements ebiten.Game around a Sim.
type Game struct {
	width  int
	height int
	sim    *Sim
	log    zerolog.Logger
	poller mousePoller
	look   lookBuffer
	sounds *SoundBank
	hud    *hudText

	// Simulation speed control.
	simSpeed  float64 // multiplier: 0=paused, 0.5, 1, 2, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds

	status      string
	statusUntil int
	frame       int
	lastWave    int
}

// New builds the game and spawns the first wave.
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	g := &Game{
		width:    opts.Width,
		height:   opts.Height,
		log:      opts.Logger,
		sim:      NewSim(opts.Config, opts.Seed, NewBoundedSimLog(4096)),
		hud:      newHUDText(),
		simSpeed: 1,
	}
	if opts.Audio != nil {
		g.sounds = NewSoundBank(opts.Audio)
		g.sounds.Muted = opts.Mute
	}
	g.lastWave = g.sim.Wave
	g.log.Info().
		Str("session", g.sim.SessionID).
		Int64("seed", g.sim.Seed()).
		Int("cubes", g.sim.World.Count()).
		Msg("session started")
	return g
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

func (g *Game) Update() error {
	g.frame++
	g.handleKeys()
	in := g.look.merge(g.poller.Poll())

	if g.simSpeed <= 0 {
		return nil
	}
	// For speeds > 1 run multiple sim ticks per frame.
	// For speeds < 1 accumulate fractions.
	g.tickAccum += g.simSpeed
	if g.tickAccum < 1.0 {
		g.look.hold(in)
		return nil
	}
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.sim.Step(in)
		// The mouse delta belongs to the frame, not to each tick.
		in.LookDX, in.LookDY = 0, 0
		g.afterTick()
	}
	return nil
}

// afterTick plays the tick's sounds and logs lifecycle changes.
func (g *Game) afterTick() {
	events := g.sim.Events()
	if err := g.sounds.PlayEvents(events); err != nil {
		g.log.Warn().Err(err).Msg("sound playback failed")
	}
	if g.sim.Wave != g.lastWave {
		g.lastWave = g.sim.Wave
		g.log.Info().
			Int("wave", g.sim.Wave).
			Int("cubes", g.sim.World.Count()).
			Int("tick", g.sim.Tick).
			Msg("wave spawned")
	}
	for _, e := range events {
		if e == EventDeath {
			st := g.sim.Stats
			g.log.Info().
				Int("wave", g.sim.Wave).
				Int("hits", st.Hits).
				Int("shots", st.Shots).
				Float64("seconds", st.SecondsAlive()).
				Str("grade", LetterGrade(st.Score(g.sim.Cfg.MaxHealth))).
				Msg("player overrun")
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}
}

// handleKeys processes the edge-triggered control keys.
func (g *Game) handleKeys() {
	// Sim speed controls: P=pause/resume, ,=slower, .=faster.
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		g.simSpeed = slowerSpeed(g.simSpeed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.simSpeed = fasterSpeed(g.simSpeed)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.sim.Over {
		g.sim.Restart()
		g.lastWave = g.sim.Wave
		g.tickAccum = 0
		g.log.Info().Str("session", g.sim.SessionID).Int64("seed", g.sim.Seed()).Msg("restarted")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sounds != nil {
		g.sounds.Muted = !g.sounds.Muted
		if g.sounds.Muted {
			g.setStatus("sound muted")
		} else {
			g.setStatus("sound on")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if _, err := copyDebugReport(g.sim); err != nil {
			g.log.Warn().Err(err).Msg("debug report not copied")
			g.setStatus("debug report: clipboard unavailable")
		} else {
			g.log.Info().Int("tick", g.sim.Tick).Msg("debug report copied")
			g.setStatus("debug report copied to clipboard")
		}
	}
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusUntil = g.frame + statusTicks
}

// slowerSpeed steps down to the next slower entry of simSpeeds.
func slowerSpeed(cur float64) float64 {
	for i := len(simSpeeds) - 1; i >= 0; i-- {
		if simSpeeds[i] < cur {
			return simSpeeds[i]
		}
	}
	return simSpeeds[0]
}

// fasterSpeed steps up to the next faster entry of simSpeeds.
func fasterSpeed(cur float64) float64 {
	for _, s := range simSpeeds {
		if s > cur {
			return s
		}
	}
	return simSpeeds[len(simSpeeds)-1]
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.sim)

	st := hudState{
		simSpeed: g.simSpeed,
		muted:    g.sounds != nil && g.sounds.Muted,
		fps:      ebiten.ActualFPS(),
		tps:      ebiten.ActualTPS(),
	}
	if g.frame < g.statusUntil {
		st.status = g.status
	}
	g.hud.drawHUD(screen, g.sim, st)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
