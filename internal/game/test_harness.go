package game

import (
	"github.com/go-gl/mathgl/mgl64"
)

// TestSim is a headless harness around Sim used by tests and the headless
// report. It supports deterministic seeding, hand-placed cubes and scripted input.
type TestSim struct {
	*Sim
	SimLog *SimLog
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // config, seed, verbose; applied first
	simOptPlayer                      // camera placement, once the sim exists
	simOptCube                        // cubes, after the camera is placed
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*simBuild)
}

// simBuild is the mutable state the options work on.
type simBuild struct {
	cfg     Config
	seed    int64
	verbose bool
	waves   bool
	sim     *Sim
}

// WithConfig replaces the tuning.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(b *simBuild) { b.cfg = cfg }}
}

// WithTuning edits the default tuning in place.
func WithTuning(edit func(*Config)) SimOption {
	return SimOption{simOptInfra, func(b *simBuild) { edit(&b.cfg) }}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(b *simBuild) { b.seed = seed }}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(b *simBuild) { b.verbose = v }}
}

// WithWaves spawns wave 1 from the seed and keeps spawning waves as they are
// cleared. Without it the arena holds only cubes added with WithCube.
func WithWaves() SimOption {
	return SimOption{simOptInfra, func(b *simBuild) { b.waves = true }}
}

// WithCamera places the player on the ground at (x, z) looking along yaw/pitch.
func WithCamera(x, z, yaw, pitch float64) SimOption {
	return SimOption{simOptPlayer, func(b *simBuild) {
		c := &b.sim.Camera
		c.Pos = mgl64.Vec3{x, b.cfg.EyeHeight, z}
		c.Yaw = yaw
		c.Pitch = pitch
	}}
}

// WithCube adds a resting cube at (x, z) drifting at the given speed.
func WithCube(x, z, speed float64) SimOption {
	return SimOption{simOptCube, func(b *simBuild) {
		b.sim.World.SpawnCube(mgl64.Vec3{x, cubeHalf, z}, speed, b.sim.Wave, 0)
	}}
}

// WithCubeAt adds a cube with an explicit centre (including height).
func WithCubeAt(p mgl64.Vec3, speed float64) SimOption {
	return SimOption{simOptCube, func(b *simBuild) {
		b.sim.World.SpawnCube(p, speed, b.sim.Wave, 0)
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (config, seed, verbose, waves)
//  2. Sim creation
//  3. Player placement
//  4. Cubes
func NewTestSim(opts ...SimOption) *TestSim {
	b := &simBuild{cfg: DefaultConfig(), seed: 1}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(b)
		}
	}
	log := NewSimLog(b.verbose)
	if b.waves {
		b.sim = NewSim(b.cfg, b.seed, log)
	} else {
		b.sim = NewEmptySim(b.cfg, b.seed, log)
	}
	for _, kind := range []simOptionKind{simOptPlayer, simOptCube} {
		for _, o := range opts {
			if o.kind == kind {
				o.fn(b)
			}
		}
	}
	return &TestSim{Sim: b.sim, SimLog: log}
}

// Script produces the input for a tick.
type Script func(s *Sim) Input

// Hold returns a script that repeats the same input every tick.
func Hold(in Input) Script {
	return func(*Sim) Input { return in }
}

// RunTicks advances the simulation n ticks with scripted input.
func (ts *TestSim) RunTicks(n int, script Script) {
	for i := 0; i < n; i++ {
		ts.Step(script(ts.Sim))
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*Sim) bool, script Script, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step(script(ts.Sim))
		if predicate(ts.Sim) {
			return ts.Tick
		}
	}
	return -1
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.Tick
}

// SimSnapshot is a lightweight copy of the state at a tick.
type SimSnapshot struct {
	Tick   int
	Camera Camera
	Health float64
	Wave   int
	Cubes  []Cube
}

// Snapshot returns the current state.
func (ts *TestSim) Snapshot() SimSnapshot {
	return SimSnapshot{
		Tick:   ts.Tick,
		Camera: ts.Camera,
		Health: ts.Health,
		Wave:   ts.Wave,
		Cubes:  ts.World.Cubes(),
	}
}
