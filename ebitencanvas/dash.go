package ebitencanvas

import "github.com/gogpu/ggchart"

// DashSubpaths splits polyline subpaths into dash segments according to the
// pattern of alternating dash and gap lengths. An odd-length pattern is
// logically duplicated (e.g. [5] becomes [5, 5]), matching the usual canvas
// convention. A pattern with no positive length returns the input unchanged,
// treating it as solid.
func DashSubpaths(subpaths [][]ggchart.Point, pattern []float64) [][]ggchart.Point {
	pattern = effectivePattern(pattern)
	if pattern == nil {
		return subpaths
	}

	var out [][]ggchart.Point
	for _, sp := range subpaths {
		out = append(out, dashSubpath(sp, pattern)...)
	}
	return out
}

// effectivePattern normalizes the pattern: negative lengths become zero,
// odd-length patterns are duplicated, all-zero patterns return nil.
func effectivePattern(pattern []float64) []float64 {
	if len(pattern) == 0 {
		return nil
	}

	n := len(pattern)
	if n%2 != 0 {
		n *= 2
	}
	eff := make([]float64, n)
	positive := false
	for i := range eff {
		l := pattern[i%len(pattern)]
		if l < 0 {
			l = 0
		}
		if l > 0 {
			positive = true
		}
		eff[i] = l
	}
	if !positive {
		return nil
	}
	return eff
}

// dashWalker tracks the position within a dash pattern while walking a
// polyline. Even pattern entries are dashes, odd entries gaps.
type dashWalker struct {
	pattern   []float64
	idx       int
	remaining float64
	on        bool
}

func newDashWalker(pattern []float64) *dashWalker {
	w := &dashWalker{pattern: pattern, remaining: pattern[0], on: true}
	if w.remaining == 0 {
		w.advance()
	}
	return w
}

// advance moves to the next pattern entry with positive length.
// Zero-length entries still flip the on/off phase.
func (w *dashWalker) advance() {
	for {
		w.idx = (w.idx + 1) % len(w.pattern)
		w.on = !w.on
		w.remaining = w.pattern[w.idx]
		if w.remaining > 0 {
			return
		}
	}
}

// dashSubpath walks one polyline, emitting a subpath for every dash run of
// the pattern.
func dashSubpath(pts []ggchart.Point, pattern []float64) [][]ggchart.Point {
	if len(pts) < 2 {
		return nil
	}

	w := newDashWalker(pattern)

	var out [][]ggchart.Point
	var current []ggchart.Point
	if w.on {
		current = append(current, pts[0])
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}

		traveled := 0.0
		for segLen-traveled > w.remaining {
			traveled += w.remaining
			split := a.Lerp(b, traveled/segLen)
			if w.on {
				current = append(current, split)
				out = append(out, current)
				current = nil
			}
			w.advance()
			if w.on {
				current = []ggchart.Point{split}
			}
		}

		w.remaining -= segLen - traveled
		if w.on {
			current = append(current, b)
		}
	}

	if len(current) >= 2 {
		out = append(out, current)
	}
	return out
}
