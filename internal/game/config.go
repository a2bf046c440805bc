package game

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// TicksPerSecond is the fixed simulation rate. Ebiten calls Update at this rate
// by default, so one Update at 1x speed advances exactly one tick.
const TicksPerSecond = 60

// tickDT is the fixed integration step in seconds.
const tickDT = 1.0 / TicksPerSecond

// ErrInvalidConfig is returned (wrapped) by Validate and LoadConfig.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tuning value of the demo. Distances are world units
// (one cube edge = 1), speeds are per second, angles are radians.
type Config struct {
	// Camera / projection.
	FocalLength      float64 `yaml:"focal_length"`      // pixels per unit at depth 1
	NearPlane        float64 `yaml:"near_plane"`        // clip distance in front of the eye
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // radians per pixel of mouse motion
	EyeHeight        float64 `yaml:"eye_height"`

	// Movement.
	MoveSpeed     float64 `yaml:"move_speed"`
	PlayerRadius  float64 `yaml:"player_radius"`
	ArenaHalfSize float64 `yaml:"arena_half_size"`
	Gravity       float64 `yaml:"gravity"`
	JumpSpeed     float64 `yaml:"jump_speed"`

	// Weapon.
	FireCooldown float64 `yaml:"fire_cooldown"` // seconds between shots
	RayStep      float64 `yaml:"ray_step"`
	RayRange     float64 `yaml:"ray_range"`
	HitRadius    float64 `yaml:"hit_radius"`
	RecoilPitch  float64 `yaml:"recoil_pitch"`  // camera kick per shot
	RecoilDecay  float64 `yaml:"recoil_decay"`  // exponential decay rate of the kick
	RecoilOffset float64 `yaml:"recoil_offset"` // weapon sprite drop in pixels at full kick
	ScalePulse   float64 `yaml:"scale_pulse"`   // extra weapon scale at full kick
	HitMarkerSec float64 `yaml:"hit_marker_sec"`

	// Enemies.
	EnemySpeed        float64 `yaml:"enemy_speed"`
	EnemySpeedPerWave float64 `yaml:"enemy_speed_per_wave"`
	ContactRadius     float64 `yaml:"contact_radius"`
	SeparationDist    float64 `yaml:"separation_dist"`
	SeparationNudge   float64 `yaml:"separation_nudge"`
	ContactDamage     float64 `yaml:"contact_damage"` // health per second while in contact
	MaxHealth         float64 `yaml:"max_health"`

	// Waves.
	WaveSize       int     `yaml:"wave_size"`
	WaveGrowth     int     `yaml:"wave_growth"`
	SpawnMinRadius float64 `yaml:"spawn_min_radius"`
	SpawnMaxRadius float64 `yaml:"spawn_max_radius"`

	// Rendering.
	FogDistance float64 `yaml:"fog_distance"`
	GridSpacing float64 `yaml:"grid_spacing"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		FocalLength:      400,
		NearPlane:        0.1,
		MouseSensitivity: 0.002,
		EyeHeight:        1.6,

		MoveSpeed:     4.5,
		PlayerRadius:  0.9,
		ArenaHalfSize: 40,
		Gravity:       20,
		JumpSpeed:     7,

		FireCooldown: 0.25,
		RayStep:      0.1,
		RayRange:     50,
		HitRadius:    0.8,
		RecoilPitch:  0.02,
		RecoilDecay:  10,
		RecoilOffset: 24,
		ScalePulse:   0.15,
		HitMarkerSec: 0.2,

		EnemySpeed:        1.2,
		EnemySpeedPerWave: 0.2,
		ContactRadius:     1.1,
		SeparationDist:    1.5,
		SeparationNudge:   1.0,
		ContactDamage:     15,
		MaxHealth:         100,

		WaveSize:       5,
		WaveGrowth:     2,
		SpawnMinRadius: 12,
		SpawnMaxRadius: 25,

		FogDistance: 35,
		GridSpacing: 2,
	}
}

// Validate checks that the tuning is usable. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"focal_length", c.FocalLength},
		{"near_plane", c.NearPlane},
		{"mouse_sensitivity", c.MouseSensitivity},
		{"eye_height", c.EyeHeight},
		{"move_speed", c.MoveSpeed},
		{"arena_half_size", c.ArenaHalfSize},
		{"gravity", c.Gravity},
		{"ray_step", c.RayStep},
		{"ray_range", c.RayRange},
		{"hit_radius", c.HitRadius},
		{"max_health", c.MaxHealth},
		{"grid_spacing", c.GridSpacing},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"player_radius", c.PlayerRadius},
		{"jump_speed", c.JumpSpeed},
		{"fire_cooldown", c.FireCooldown},
		{"recoil_pitch", c.RecoilPitch},
		{"recoil_decay", c.RecoilDecay},
		{"recoil_offset", c.RecoilOffset},
		{"scale_pulse", c.ScalePulse},
		{"hit_marker_sec", c.HitMarkerSec},
		{"enemy_speed", c.EnemySpeed},
		{"enemy_speed_per_wave", c.EnemySpeedPerWave},
		{"contact_radius", c.ContactRadius},
		{"separation_dist", c.SeparationDist},
		{"separation_nudge", c.SeparationNudge},
		{"contact_damage", c.ContactDamage},
	}
	for _, p := range nonNegative {
		if !(p.v >= 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.RayStep > c.RayRange {
		return fmt.Errorf("%w: ray_step %.2f exceeds ray_range %.2f", ErrInvalidConfig, c.RayStep, c.RayRange)
	}
	if c.WaveSize < 1 || c.WaveGrowth < 0 {
		return fmt.Errorf("%w: wave_size must be >= 1 and wave_growth >= 0", ErrInvalidConfig)
	}
	if c.SpawnMinRadius <= c.ContactRadius || c.SpawnMaxRadius < c.SpawnMinRadius {
		return fmt.Errorf("%w: spawn radii must satisfy contact < min <= max", ErrInvalidConfig)
	}
	if c.SpawnMaxRadius > c.ArenaHalfSize*math.Sqrt2 {
		return fmt.Errorf("%w: spawn_max_radius %.1f reaches outside the arena", ErrInvalidConfig, c.SpawnMaxRadius)
	}
	return nil
}

// LoadConfig reads a YAML tuning file. Fields missing from the file keep their
// DefaultConfig value. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
