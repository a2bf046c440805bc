package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// EventKind is a gameplay event emitted during a tick, consumed by the
// presentation layer (sound, feed).
type EventKind int

const (
	EventShot EventKind = iota
	EventHit
	EventHurt
	EventJump
	EventLand
	EventWave
	EventDeath
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventHurt:
		return "hurt"
	case EventJump:
		return "jump"
	case EventLand:
		return "land"
	case EventWave:
		return "wave"
	case EventDeath:
		return "death"
	default:
		return "unknown"
	}
}

// hurtEventInterval throttles hurt events while damage ticks continuously.
const hurtEventInterval = 0.5

// Sim is the headless game state. It has no Ebiten dependency: the live game
// feeds it polled input, tests and the headless report feed it scripted input.
type Sim struct {
	Cfg       Config
	Camera    Camera
	World     *World
	Weapon    Weapon
	Stats     SessionStats
	Log       *SimLog
	Feed      *EventFeed
	Reporter  *SimReporter
	Health    float64
	Wave      int
	Over      bool
	Tick      int
	SessionID string

	seed      int64
	rng       *rand.Rand
	hurtTimer float64
	events    []EventKind
}

// NewSim creates a simulation and spawns the first wave.
func NewSim(cfg Config, seed int64, log *SimLog) *Sim {
	s := NewEmptySim(cfg, seed, log)
	s.reset(seed)
	return s
}

// NewEmptySim creates a simulation with no cubes; callers place their own.
// Waves are not auto-spawned until Wave is set above zero.
func NewEmptySim(cfg Config, seed int64, log *SimLog) *Sim {
	if log == nil {
		log = NewSimLog(false)
	}
	s := &Sim{
		Cfg:      cfg,
		World:    NewWorld(),
		Log:      log,
		Feed:     NewEventFeed(),
		Reporter: NewSimReporter(reportWindowTicks),
		seed:     seed,
	}
	s.resetState(seed)
	return s
}

func (s *Sim) resetState(seed int64) {
	s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
	s.World.Reset()
	s.Camera = NewCamera(0, 0, s.Cfg.EyeHeight)
	s.Weapon = Weapon{}
	s.Stats = SessionStats{}
	s.Health = s.Cfg.MaxHealth
	s.Wave = 0
	s.Over = false
	s.hurtTimer = 0
	s.events = s.events[:0]
	s.Feed.Clear()
	s.Reporter.Reset()
	s.SessionID = sessionID(seed)
}

// sessionID derives a UUID from the seed so reruns of a seed share an ID.
func sessionID(seed int64) string {
	id, err := uuid.NewRandomFromReader(rand.New(rand.NewSource(seed))) // #nosec G404 -- id only
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *Sim) reset(seed int64) {
	s.resetState(seed)
	s.Log.Add(s.Tick, "--", "session", "start", fmt.Sprintf("session %s seed=%d", s.SessionID, seed), float64(seed))
	s.spawnWave(1)
}

// Restart begins a new life with a seed derived from the original one.
func (s *Sim) Restart() {
	s.seed++
	s.reset(s.seed)
}

// Seed returns the seed of the current life.
func (s *Sim) Seed() int64 {
	return s.seed
}

// Events returns the events emitted by the most recent Step.
func (s *Sim) Events() []EventKind {
	return s.events
}

func (s *Sim) emit(k EventKind) {
	s.events = append(s.events, k)
}

// Step advances the simulation by one fixed tick.
func (s *Sim) Step(in Input) {
	s.events = s.events[:0]
	if s.Over {
		return
	}
	s.Tick++
	dt := tickDT
	cfg := &s.Cfg

	// 1. LOOK
	if in.LookDX != 0 || in.LookDY != 0 {
		s.Camera.Look(in.LookDX, in.LookDY, cfg.MouseSensitivity)
	}
	s.Log.AddVerbose(s.Tick, "P", "player", "look",
		fmt.Sprintf("yaw=%.3f pitch=%.3f", s.Camera.Yaw, s.Camera.Pitch), s.Camera.Yaw)

	// 2. WEAPON timers, then the trigger.
	s.Weapon.Update(cfg, dt)
	if in.Fire {
		s.fire()
	}

	// 3. MOVE against the current cube positions.
	before := s.Camera.Pos
	if MoveCamera(&s.Camera, in, s.World.Cubes(), cfg, dt) {
		s.Stats.Distance += horizontalDist(before, s.Camera.Pos)
		s.Log.AddVerbose(s.Tick, "P", "move", "position",
			fmt.Sprintf("(%.2f,%.2f)", s.Camera.Pos.X(), s.Camera.Pos.Z()), 0)
	}
	if in.Jump && Jump(&s.Camera, cfg) {
		s.Stats.Jumps++
		s.Log.Add(s.Tick, "P", "move", "jump", fmt.Sprintf("vy=%.1f", s.Camera.VelY), s.Camera.VelY)
		s.emit(EventJump)
	}
	if ApplyGravity(&s.Camera, cfg, dt) {
		s.Log.Add(s.Tick, "P", "move", "land", "", 0)
		s.emit(EventLand)
	}

	// 4. ENEMIES
	touching := DriftEnemies(s.World, s.Camera.Pos, cfg, dt)
	s.World.AdvanceSpin(dt)
	if touching > s.Stats.PeakPressure {
		s.Stats.PeakPressure = touching
	}

	// 5. DAMAGE
	s.hurtTimer = math.Max(0, s.hurtTimer-dt)
	if touching > 0 {
		dmg := cfg.ContactDamage * dt * float64(touching)
		s.Health -= dmg
		s.Stats.DamageTaken += dmg
		if s.hurtTimer == 0 {
			s.hurtTimer = hurtEventInterval
			s.Log.Add(s.Tick, "P", "player", "hurt",
				fmt.Sprintf("%d cube(s) in contact, health=%.0f", touching, math.Max(0, s.Health)), s.Health)
			s.Feed.Add(s.Tick, FeedDamage, fmt.Sprintf("hit by %d cube(s)", touching))
			s.emit(EventHurt)
		}
	}
	s.Stats.TicksAlive++
	if s.Health <= 0 {
		s.Health = 0
		s.Over = true
		s.Reporter.Collect(s, touching)
		s.Log.Add(s.Tick, "P", "player", "death", fmt.Sprintf("wave %d", s.Wave), float64(s.Wave))
		s.Feed.Add(s.Tick, FeedDamage, "you were overrun")
		s.emit(EventDeath)
		return
	}

	if s.Tick%TicksPerSecond == 0 {
		s.Reporter.Collect(s, touching)
	}

	// 6. WAVE
	if s.Wave > 0 && s.World.Count() == 0 {
		s.Stats.WavesCleared++
		s.Log.Add(s.Tick, "--", "wave", "cleared", fmt.Sprintf("wave %d", s.Wave), float64(s.Wave))
		s.spawnWave(s.Wave + 1)
	}
}

func (s *Sim) fire() {
	res := Shoot(&s.Camera, &s.Weapon, s.World, &s.Cfg)
	if !res.Fired {
		return
	}
	s.Stats.Shots++
	s.Camera.AddPitch(s.Cfg.RecoilPitch)
	s.Log.Add(s.Tick, "P", "shot", "fired",
		fmt.Sprintf("yaw=%.2f pitch=%.2f", s.Camera.Yaw, s.Camera.Pitch), 0)
	s.emit(EventShot)
	if !res.Hit {
		return
	}
	s.Stats.Hits++
	label := fmt.Sprintf("C%d", res.Serial)
	s.Log.Add(s.Tick, label, "shot", "hit", fmt.Sprintf("%s at %.1f", label, res.Distance), res.Distance)
	s.Feed.Add(s.Tick, FeedKill, fmt.Sprintf("cube %s destroyed (%.1fm)", label, res.Distance))
	s.emit(EventHit)
}
