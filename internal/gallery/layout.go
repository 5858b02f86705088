// Package gallery computes the live photo-gallery arrangement: merging the
// three image sources and placing each image on a loose, stable grid.
//
// Placement is a pure function of (index, total count): re-rendering with the
// same image set yields bit-identical positions, so cards do not jump around
// as frames are redrawn.
package gallery

import "math"

// Placement is the computed arrangement for one gallery image. Left/Top are
// percentages of the stage; FloatX/FloatY are the idle-float displacement in
// pixels; FloatDuration is the float cycle length in seconds.
type Placement struct {
	URL           string
	Left          float64
	Top           float64
	Rotation      float64
	Scale         float64
	FloatX        float64
	FloatY        float64
	FloatDuration float64
	Delay         float64
	IsNew         bool
}

const (
	// Horizontal band for card centers. The vertical band starts lower to
	// reserve space for the gallery header.
	minLeft = 5.0
	maxLeft = 95.0
	minTop  = 15.0
	maxTop  = 90.0

	floatAmplitude = 12.0
)

// rnd is the deterministic per-index pseudo-random value. It is a small
// LCG-style hash, not a statistically uniform PRNG; it only needs to be
// stable and look scattered.
func rnd(i int) (seed int, v float64) {
	seed = (i*9301 + 49297) % 233280
	return seed, float64(seed) / 233280
}

// Grid returns the column/row split for n images. Columns are biased toward
// a landscape layout.
func Grid(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n) * 1.8)))
	rows = int(math.Ceil(float64(n) / float64(cols)))
	return cols, rows
}

// Layout places every image of the merged sequence. staticCount is the length
// of the static demo prefix: anything at or beyond it is flagged as new
// (a live or local addition). n == 0 yields an empty layout; callers render
// the empty-state prompt instead.
func Layout(urls []string, staticCount int) []Placement {
	if len(urls) == 0 {
		return nil
	}

	cols, rows := Grid(len(urls))
	cellW := 90.0 / float64(cols)
	cellH := 75.0 / float64(rows)

	placements := make([]Placement, len(urls))
	for i, url := range urls {
		seed, r := rnd(i)
		// Secondary jitter channel so x and y do not move in lockstep.
		r2 := float64(seed%100) / 100

		col := i % cols
		row := i / cols

		left := minLeft + float64(col)*cellW + cellW/2 + (r-0.5)*cellW*0.5
		top := minTop + float64(row)*cellH + cellH/2 + (r2-0.5)*cellH*0.5

		floatX := floatAmplitude
		if r < 0.5 {
			floatX = -floatAmplitude
		}
		floatY := floatAmplitude
		if r2 < 0.5 {
			floatY = -floatAmplitude
		}

		placements[i] = Placement{
			URL:           url,
			Left:          clamp(left, minLeft, maxLeft),
			Top:           clamp(top, minTop, maxTop),
			Rotation:      (r - 0.5) * 16,
			Scale:         0.9 + r*0.2,
			FloatX:        floatX,
			FloatY:        floatY,
			FloatDuration: 8 + r*8,
			Delay:         float64(i) * 0.2,
			IsNew:         i >= staticCount,
		}
	}
	return placements
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
