package ggchart

// AreaRenderer draws a filled area segment of a series: a polygon through
// the supplied points, filled with a vertical gradient or a flat translucent
// color and stroked with a fixed-width outline. A single point degenerates
// to a filled dot; an empty point sequence draws nothing.
//
// The renderer is stateless across calls; all per-call state lives on the
// Canvas. It is safe to share one AreaRenderer between goroutines as long
// as each goroutine draws onto its own Canvas.
type AreaRenderer struct {
	opts rendererOptions
}

// NewAreaRenderer creates an AreaRenderer with the given options.
func NewAreaRenderer(opts ...Option) *AreaRenderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &AreaRenderer{opts: o}
}

// Draw renders one area segment onto the canvas.
//
// points are screen-space coordinates traversed in order; no implicit
// closing segment is added beyond what the sequence specifies. clip, when
// non-nil, bounds all drawing for the duration of the call and is removed
// before returning, in every branch. style.Fill selects the paint; when it
// is nil the path is constructed but nothing is painted.
//
// The fill is a vertical linear gradient from the minimum to the maximum Y
// when every point's Y is at or above the first point's Y (toward the top
// of the canvas), and a flat translucent color otherwise. A filled polygon
// is always outlined afterward with the solid fill color at the renderer's
// outline width, ignoring style.StrokeWidth.
//
// Inputs are trusted: NaN coordinates, zero-area clips and the like are
// passed through to the canvas uninterpreted.
func (r *AreaRenderer) Draw(c Canvas, points []Point, clip *Rect, style SeriesStyle) {
	if len(points) == 0 {
		return
	}

	fill, hasFill := resolveColor(style.Fill)

	if clip != nil {
		c.Save()
		c.ClipRect(clip.X, clip.Y, clip.W, clip.H)
		defer c.Restore()
	}

	if len(points) == 1 {
		r.drawDot(c, points[0], style.StrokeWidth, fill, hasFill)
		return
	}

	c.ClearPath()
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}

	if !hasFill {
		// Path construction only. Stroke-only series are the
		// LineRenderer's job.
		return
	}

	if allAtOrAbove(points, points[0].Y) {
		minY, maxY := yExtent(points)
		grad := NewLinearGradientBrush(0, minY, 0, maxY).
			AddColorStop(0, fill.WithAlpha(r.opts.topOpacity)).
			AddColorStop(1, fill.WithAlpha(r.opts.bottomOpacity))
		c.SetFillBrush(grad)
		Logger().Debug("area fill", "mode", "gradient", "minY", minY, "maxY", maxY)
	} else {
		c.SetFillBrush(Solid(fill.WithAlpha(r.opts.flatOpacity)))
		Logger().Debug("area fill", "mode", "flat")
	}
	if err := c.FillPreserve(); err != nil {
		Logger().Warn("area fill failed", "err", err)
	}

	// Outline on top of the fill: solid color, fixed width, no dash.
	c.SetStrokeBrush(Solid(fill.WithAlpha(1)))
	c.SetLineWidth(r.opts.outlineWidth)
	c.SetLineJoin(r.opts.join)
	c.ClearDash()
	if err := c.Stroke(); err != nil {
		Logger().Warn("area outline failed", "err", err)
	}
}

// drawDot renders the degenerate single-point case: a filled circle with
// the series stroke width as its radius. Without a fill color there is
// nothing to paint.
func (r *AreaRenderer) drawDot(c Canvas, p Point, radius float64, fill RGBA, hasFill bool) {
	if !hasFill {
		return
	}
	Logger().Debug("area dot", "x", p.X, "y", p.Y, "radius", radius)
	c.ClearPath()
	c.SetFillBrush(Solid(fill))
	c.DrawCircle(p.X, p.Y, radius)
	if err := c.Fill(); err != nil {
		Logger().Warn("area dot failed", "err", err)
	}
}

// allAtOrAbove reports whether every point's Y is less than or equal to y.
// With the canvas origin at the top-left this means no point sits below the
// first one.
func allAtOrAbove(points []Point, y float64) bool {
	for _, p := range points {
		if p.Y > y {
			return false
		}
	}
	return true
}

// yExtent returns the minimum and maximum Y across the points.
func yExtent(points []Point) (minY, maxY float64) {
	minY, maxY = points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minY, maxY
}
