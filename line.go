package ggchart

// LineRenderer draws a stroked line segment of a series: a polyline through
// the supplied points with an optional dash pattern. A single point
// degenerates to a filled dot; an empty point sequence draws nothing.
type LineRenderer struct {
	opts rendererOptions
}

// NewLineRenderer creates a LineRenderer with the given options.
func NewLineRenderer(opts ...Option) *LineRenderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &LineRenderer{opts: o}
}

// Draw renders one line segment onto the canvas.
//
// The polyline visits the points in order and is stroked with the resolved
// style.Stroke color at style.StrokeWidth, dashed when style.Dash is
// non-empty. When style.Stroke is nil the path is constructed but nothing
// is painted. Clip handling matches AreaRenderer.Draw: pushed before any
// drawing, popped before returning, in every branch.
func (r *LineRenderer) Draw(c Canvas, points []Point, clip *Rect, style SeriesStyle) {
	if len(points) == 0 {
		return
	}

	stroke, hasStroke := resolveColor(style.Stroke)

	if clip != nil {
		c.Save()
		c.ClipRect(clip.X, clip.Y, clip.W, clip.H)
		defer c.Restore()
	}

	if len(points) == 1 {
		if !hasStroke {
			return
		}
		p := points[0]
		Logger().Debug("line dot", "x", p.X, "y", p.Y, "radius", style.StrokeWidth)
		c.ClearPath()
		c.SetFillBrush(Solid(stroke))
		c.DrawCircle(p.X, p.Y, style.StrokeWidth)
		if err := c.Fill(); err != nil {
			Logger().Warn("line dot failed", "err", err)
		}
		return
	}

	c.ClearPath()
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}

	if !hasStroke {
		return
	}

	c.SetStrokeBrush(Solid(stroke))
	c.SetLineWidth(style.StrokeWidth)
	c.SetLineJoin(r.opts.join)
	if len(style.Dash) > 0 {
		c.SetDash(style.Dash...)
	} else {
		c.ClearDash()
	}
	if err := c.Stroke(); err != nil {
		Logger().Warn("line stroke failed", "err", err)
	}
}
