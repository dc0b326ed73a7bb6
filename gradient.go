package ggchart

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradientBrush represents a linear color transition between two
// points. It implements the Brush interface. Positions outside the
// start-end span are padded with the nearest stop color.
type LinearGradientBrush struct {
	Start Point       // Start point of the gradient
	End   Point       // End point of the gradient
	Stops []ColorStop // Color stops defining the gradient
}

// NewLinearGradientBrush creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1]. Stops must be added in
// ascending offset order. Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// brushMarker implements the Brush interface marker.
func (*LinearGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point, projecting it onto the
// gradient axis and interpolating between the surrounding stops.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	if len(g.Stops) == 0 {
		return Transparent
	}
	if len(g.Stops) == 1 {
		return g.Stops[0].Color
	}

	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return g.Stops[0].Color
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	t = clamp01(t)

	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(g.Stops); i++ {
		s0, s1 := g.Stops[i-1], g.Stops[i]
		if t > s1.Offset {
			continue
		}
		if s1.Offset == s0.Offset {
			return s0.Color
		}
		localT := (t - s0.Offset) / (s1.Offset - s0.Offset)
		return lerpColor(s0.Color, s1.Color, localT)
	}
	return last.Color
}

// lerpColor performs component-wise linear interpolation between two colors.
func lerpColor(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: c1.R + t*(c2.R-c1.R),
		G: c1.G + t*(c2.G-c1.G),
		B: c1.B + t*(c2.B-c1.B),
		A: c1.A + t*(c2.A-c1.A),
	}
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
