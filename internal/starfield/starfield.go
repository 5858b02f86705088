// Package starfield is the decorative background simulation behind the deck:
// a z-projected starfield with a perspective grid and occasional shooting
// stars, plus a "warp" mode used during the intro-to-main transition.
//
// The simulation is an explicit state struct advanced once per scheduler tick
// and owns no timers or terminal resources; the TUI drives Advance from its
// tick loop and rasterizes the projected points.
package starfield

import (
	"math"
	"math/rand"
)

const (
	numStars    = 400
	normalSpeed = 2.0
	warpSpeed   = 50.0
	// Fraction of the remaining distance to the target speed covered each
	// tick (exponential approach).
	speedEase = 0.05

	streakSpawnChance = 0.015
	asteroidChance    = 0.2
)

// Star lives in simulation space: x/y are centered on the origin, z runs
// from the far plane (width) toward the viewer (0).
type Star struct {
	X, Y, Z float64
}

// StreakKind distinguishes shooting stars from asteroids.
type StreakKind int

const (
	KindShootingStar StreakKind = iota
	KindAsteroid
)

// Streak is a transient shooting star or asteroid crossing the sky.
type Streak struct {
	X, Y   float64
	VX, VY float64
	Length float64
	Size   float64
	Life   float64
	Kind   StreakKind
}

// Point is a star projected to screen space, ready to draw. Trail holds the
// warp streak endpoint (equal to X/Y when not warping).
type Point struct {
	X, Y           float64
	TrailX, TrailY float64
	Size           float64
	Alpha          float64
}

// Sim holds the whole background state. Not safe for concurrent use; the TUI
// update loop is the single owner.
type Sim struct {
	width, height float64
	speed         float64
	warp          bool
	stars         []Star
	streaks       []Streak
	rng           *rand.Rand
	tick          int
}

// New creates a simulation sized to the given screen. rng drives star
// placement and streak spawns; tests inject a seeded source.
func New(width, height int, rng *rand.Rand) *Sim {
	s := &Sim{
		width:  float64(width),
		height: float64(height),
		speed:  normalSpeed,
		rng:    rng,
	}
	s.stars = make([]Star, numStars)
	for i := range s.stars {
		s.stars[i] = Star{
			X: (rng.Float64() - 0.5) * s.width,
			Y: (rng.Float64() - 0.5) * s.height,
			Z: rng.Float64() * s.width,
		}
	}
	return s
}

// Resize updates the screen bounds. Stars keep their positions; out-of-range
// depths are recycled on the next Advance.
func (s *Sim) Resize(width, height int) {
	s.width = float64(width)
	s.height = float64(height)
	if s.width < 1 {
		s.width = 1
	}
	if s.height < 1 {
		s.height = 1
	}
}

// SetWarp switches the target speed between cruise and warp.
func (s *Sim) SetWarp(on bool) { s.warp = on }

// Warp reports whether warp mode is engaged.
func (s *Sim) Warp() bool { return s.warp }

// Speed is the current (eased) simulation speed.
func (s *Sim) Speed() float64 { return s.speed }

// Tick is the number of Advance calls so far; the renderer uses it to phase
// the horizon bars and float animations.
func (s *Sim) Tick() int { return s.tick }

// Advance moves the simulation one tick forward.
func (s *Sim) Advance() {
	s.tick++

	target := normalSpeed
	if s.warp {
		target = warpSpeed
	}
	s.speed += (target - s.speed) * speedEase

	for i := range s.stars {
		st := &s.stars[i]
		st.Z -= s.speed
		if st.Z <= 0 {
			st.Z = s.width
			st.X = (s.rng.Float64() - 0.5) * s.width
			st.Y = (s.rng.Float64() - 0.5) * s.height
		}
		if st.Z > s.width {
			st.Z = s.rng.Float64() * s.width
		}
	}

	s.spawnStreaks()
	s.advanceStreaks()
}

func (s *Sim) spawnStreaks() {
	if s.warp || s.rng.Float64() >= streakSpawnChance {
		return
	}
	kind := KindShootingStar
	size := s.rng.Float64() * 2
	if s.rng.Float64() < asteroidChance {
		kind = KindAsteroid
		size = s.rng.Float64()*3 + 2
	}
	s.streaks = append(s.streaks, Streak{
		X:      s.rng.Float64() * s.width,
		Y:      s.rng.Float64() * (s.height / 2), // upper half
		VX:     (s.rng.Float64()-0.5)*20 - 10,
		VY:     s.rng.Float64()*10 + 5,
		Length: s.rng.Float64()*100 + 50,
		Size:   size,
		Life:   1.0,
		Kind:   kind,
	})
}

func (s *Sim) advanceStreaks() {
	kept := s.streaks[:0]
	for _, st := range s.streaks {
		st.X += st.VX
		st.Y += st.VY
		st.Life -= 0.01
		if st.Life <= 0 || st.X < -100 || st.X > s.width+100 || st.Y > s.height+100 {
			continue
		}
		kept = append(kept, st)
	}
	s.streaks = kept
}

// Streaks returns the live shooting stars/asteroids.
func (s *Sim) Streaks() []Streak { return s.streaks }

// GridOpacity is the perspective-grid line opacity. The grid fades as speed
// rises so warp reads as open space.
func (s *Sim) GridOpacity() float64 {
	op := 0.15 - (s.speed-normalSpeed)/100
	if op < 0.05 {
		op = 0.05
	}
	return op
}

// Project maps every star to screen coordinates. Off-screen stars are
// omitted. During warp each point carries a trail endpoint along its radial
// direction; otherwise the trail equals the point.
func (s *Sim) Project() []Point {
	cx := s.width / 2
	cy := s.height / 2

	points := make([]Point, 0, len(s.stars))
	for _, st := range s.stars {
		if st.Z <= 0 {
			continue
		}
		k := 256.0 / st.Z
		px := st.X*k + cx
		py := st.Y*k + cy
		if px < 0 || px > s.width || py < 0 || py > s.height {
			continue
		}

		depth := 1 - st.Z/s.width
		if depth < 0 {
			depth = 0
		}
		sizeScale := 2.5
		if s.warp {
			sizeScale = 1
		}
		p := Point{
			X: px, Y: py,
			TrailX: px, TrailY: py,
			Size:  depth * sizeScale,
			Alpha: clamp01(depth),
		}
		if s.warp {
			// Streak radially outward from center, longer for closer stars.
			length := s.speed * k * 0.5
			dx := px - cx
			dy := py - cy
			dist := dx*dx + dy*dy
			if dist > 0 {
				norm := length / math.Sqrt(dist)
				p.TrailX = px + dx*norm
				p.TrailY = py + dy*norm
			}
		}
		points = append(points, p)
	}
	return points
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
