package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// spawnAttempts bounds the rejection sampling for one cube's spawn point.
const spawnAttempts = 16

// WaveCount is the number of cubes in wave n (1-based).
func WaveCount(cfg *Config, n int) int {
	if n < 1 {
		return 0
	}
	return cfg.WaveSize + (n-1)*cfg.WaveGrowth
}

// WaveSpeed is the drift speed of cubes in wave n.
func WaveSpeed(cfg *Config, n int) float64 {
	if n < 1 {
		n = 1
	}
	return cfg.EnemySpeed + float64(n-1)*cfg.EnemySpeedPerWave
}

// spawnWave places wave n in a ring around the player. Each point is drawn
// from the part of the ring that lies inside the arena; points that crowd an
// earlier cube are redrawn up to spawnAttempts times.
func (s *Sim) spawnWave(n int) {
	cfg := &s.Cfg
	count := WaveCount(cfg, n)
	speed := WaveSpeed(cfg, n)
	placed := make([]mgl64.Vec3, 0, count)
	for i := 0; i < count; i++ {
		p := s.spawnPoint(placed)
		placed = append(placed, p)
		spin := (s.rng.Float64()*2 - 1) * 1.5
		s.World.SpawnCube(p, speed, n, spin)
	}
	s.Wave = n
	s.Log.Add(s.Tick, "--", "wave", "spawn", fmt.Sprintf("wave %d: %d cubes at speed %.2f", n, count, speed), float64(count))
	s.Feed.Add(s.Tick, FeedWave, fmt.Sprintf("wave %d: %d cubes", n, count))
	s.emit(EventWave)
}

func (s *Sim) spawnPoint(placed []mgl64.Vec3) mgl64.Vec3 {
	cfg := &s.Cfg
	center := s.Camera.Pos
	var last mgl64.Vec3
	inRing := false
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		a := s.rng.Float64() * 2 * math.Pi
		p, ok := ringPoint(center, a, s.rng.Float64(), cfg)
		if !ok {
			continue
		}
		last, inRing = p, true
		if !crowded(p, placed, cfg.SeparationDist) {
			return p
		}
	}
	if inRing {
		return last
	}
	return widestRingPoint(center, cfg)
}

// ringPoint picks the point at angle a whose distance from center is spread
// by u in [0,1) over the ring, capped at the arena edge. ok is false when the
// edge is nearer than the inner radius along a.
func ringPoint(center mgl64.Vec3, a, u float64, cfg *Config) (mgl64.Vec3, bool) {
	dx, dz := math.Cos(a), math.Sin(a)
	hi := math.Min(cfg.SpawnMaxRadius, edgeDistance(center.X(), center.Z(), dx, dz, cfg.ArenaHalfSize))
	if hi < cfg.SpawnMinRadius {
		return mgl64.Vec3{}, false
	}
	r := cfg.SpawnMinRadius + u*(hi-cfg.SpawnMinRadius)
	p := mgl64.Vec3{center.X() + dx*r, cubeHalf, center.Z() + dz*r}
	return clampArena(p, cfg.ArenaHalfSize), true
}

// edgeDistance is how far (x, z) can travel along the unit direction
// (dx, dz) before leaving the square arena.
func edgeDistance(x, z, dx, dz, half float64) float64 {
	t := math.Inf(1)
	for _, ax := range [][2]float64{{x, dx}, {z, dz}} {
		switch {
		case ax[1] > 0:
			t = math.Min(t, (half-ax[0])/ax[1])
		case ax[1] < 0:
			t = math.Min(t, (-half-ax[0])/ax[1])
		}
	}
	return math.Max(t, 0)
}

// widestRingPoint is used when random angles found no room in the ring. It
// scans for the direction with the most room and spawns as deep into the ring
// as the arena allows; when even that misses the inner radius it uses the
// arena corner farthest from the player.
func widestRingPoint(center mgl64.Vec3, cfg *Config) mgl64.Vec3 {
	const scanSteps = 64
	bestA, bestD := 0.0, -1.0
	for i := 0; i < scanSteps; i++ {
		a := float64(i) * 2 * math.Pi / scanSteps
		if d := edgeDistance(center.X(), center.Z(), math.Cos(a), math.Sin(a), cfg.ArenaHalfSize); d > bestD {
			bestA, bestD = a, d
		}
	}
	if bestD >= cfg.SpawnMinRadius {
		r := math.Min(bestD, cfg.SpawnMaxRadius)
		p := mgl64.Vec3{center.X() + math.Cos(bestA)*r, cubeHalf, center.Z() + math.Sin(bestA)*r}
		return clampArena(p, cfg.ArenaHalfSize)
	}
	half := cfg.ArenaHalfSize
	return mgl64.Vec3{-math.Copysign(half, center.X()), cubeHalf, -math.Copysign(half, center.Z())}
}

func crowded(p mgl64.Vec3, placed []mgl64.Vec3, minDist float64) bool {
	for _, q := range placed {
		if horizontalDist(p, q) < minDist {
			return true
		}
	}
	return false
}
