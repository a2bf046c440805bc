package game

import "math"

// muzzleFlashSec is how long the muzzle flash stays visible after a shot.
const muzzleFlashSec = 0.06

// Weapon holds the shot cooldown and the visual feedback timers.
type Weapon struct {
	Cooldown  float64 // seconds until the next shot is allowed
	Kick      float64 // 0..1 recoil amount, 1 right after a shot
	Flash     float64 // seconds of muzzle flash left
	HitMarker float64 // seconds of hit marker left
}

// Ready reports whether the cooldown has elapsed.
func (w *Weapon) Ready() bool {
	return w.Cooldown <= 0
}

// Fire starts the cooldown and the recoil/flash feedback.
func (w *Weapon) Fire(cfg *Config) {
	w.Cooldown = cfg.FireCooldown
	w.Kick = 1
	w.Flash = muzzleFlashSec
}

// MarkHit shows the hit marker.
func (w *Weapon) MarkHit(cfg *Config) {
	w.HitMarker = cfg.HitMarkerSec
}

// Update decays timers by dt seconds. Kick decays exponentially.
func (w *Weapon) Update(cfg *Config, dt float64) {
	w.Cooldown = math.Max(0, w.Cooldown-dt)
	w.Flash = math.Max(0, w.Flash-dt)
	w.HitMarker = math.Max(0, w.HitMarker-dt)
	w.Kick *= math.Exp(-cfg.RecoilDecay * dt)
	if w.Kick < 1e-3 {
		w.Kick = 0
	}
}

// SpriteOffset is how far (pixels) the weapon sprite drops from its rest position.
func (w *Weapon) SpriteOffset(cfg *Config) float64 {
	return w.Kick * cfg.RecoilOffset
}

// SpriteScale is the weapon sprite's scale factor.
func (w *Weapon) SpriteScale(cfg *Config) float64 {
	return 1 + w.Kick*cfg.ScalePulse
}
