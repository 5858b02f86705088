package starfield

import (
	"math/rand"
	"testing"
)

func newTestSim() *Sim {
	return New(200, 60, rand.New(rand.NewSource(1)))
}

func TestSpeedApproachesWarpTarget(t *testing.T) {
	t.Parallel()

	s := newTestSim()
	if s.Speed() != 2 {
		t.Fatalf("initial speed = %v, want 2", s.Speed())
	}

	s.SetWarp(true)
	for i := 0; i < 200; i++ {
		s.Advance()
	}
	if s.Speed() < 49 {
		t.Fatalf("warp speed after 200 ticks = %v, want near 50", s.Speed())
	}

	s.SetWarp(false)
	for i := 0; i < 200; i++ {
		s.Advance()
	}
	if s.Speed() > 3 {
		t.Fatalf("cruise speed after warp = %v, want near 2", s.Speed())
	}
}

func TestStarsStayWithinDepthRange(t *testing.T) {
	t.Parallel()

	s := newTestSim()
	for i := 0; i < 500; i++ {
		s.Advance()
	}
	for i, st := range s.stars {
		if st.Z <= 0 || st.Z > s.width {
			t.Fatalf("star %d depth %v out of (0,%v]", i, st.Z, s.width)
		}
	}
}

func TestProjectedPointsOnScreen(t *testing.T) {
	t.Parallel()

	s := newTestSim()
	for i := 0; i < 50; i++ {
		s.Advance()
	}
	pts := s.Project()
	if len(pts) == 0 {
		t.Fatalf("no projected points")
	}
	for _, p := range pts {
		if p.X < 0 || p.X > s.width || p.Y < 0 || p.Y > s.height {
			t.Fatalf("point (%v,%v) off a %vx%v screen", p.X, p.Y, s.width, s.height)
		}
		if p.Alpha < 0 || p.Alpha > 1 {
			t.Fatalf("alpha %v out of [0,1]", p.Alpha)
		}
	}
}

func TestWarpPointsCarryTrails(t *testing.T) {
	t.Parallel()

	s := newTestSim()
	s.SetWarp(true)
	for i := 0; i < 100; i++ {
		s.Advance()
	}
	trailed := 0
	for _, p := range s.Project() {
		if p.TrailX != p.X || p.TrailY != p.Y {
			trailed++
		}
	}
	if trailed == 0 {
		t.Fatalf("no warp trails on any projected point")
	}
}

func TestStreaksSpawnAndExpire(t *testing.T) {
	t.Parallel()

	s := newTestSim()
	spawned := false
	for i := 0; i < 2000; i++ {
		s.Advance()
		if len(s.Streaks()) > 0 {
			spawned = true
		}
		for _, st := range s.Streaks() {
			if st.Life <= 0 {
				t.Fatalf("dead streak retained (life %v)", st.Life)
			}
		}
	}
	if !spawned {
		t.Fatalf("no streaks spawned in 2000 ticks")
	}
}

func TestNoStreakSpawnDuringWarp(t *testing.T) {
	t.Parallel()

	s := newTestSim()
	s.SetWarp(true)
	for i := 0; i < 2000; i++ {
		s.Advance()
	}
	// Whatever spawned before warp ramped up has long expired.
	if n := len(s.Streaks()); n != 0 {
		t.Fatalf("%d streaks alive during warp, want 0", n)
	}
}

func TestGridOpacityFadesWithSpeed(t *testing.T) {
	t.Parallel()

	s := newTestSim()
	cruise := s.GridOpacity()
	s.SetWarp(true)
	for i := 0; i < 200; i++ {
		s.Advance()
	}
	warp := s.GridOpacity()
	if warp >= cruise {
		t.Fatalf("grid opacity did not fade: cruise %v, warp %v", cruise, warp)
	}
	if warp < 0.05 {
		t.Fatalf("grid opacity %v below floor", warp)
	}
}
