package ggchart

// Option configures a renderer during creation.
// Use functional options to customize renderer behavior.
//
// Example:
//
//	// Default charting look
//	r := ggchart.NewAreaRenderer()
//
//	// Heavier outline with round joins
//	r := ggchart.NewAreaRenderer(
//	    ggchart.WithOutlineWidth(3),
//	    ggchart.WithLineJoin(ggchart.LineJoinRound),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration shared by renderers.
type rendererOptions struct {
	outlineWidth  float64
	join          LineJoin
	topOpacity    float64
	bottomOpacity float64
	flatOpacity   float64
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		outlineWidth:  2,
		join:          LineJoinBevel,
		topOpacity:    0.375,
		bottomOpacity: 0.125,
		flatOpacity:   0.25,
	}
}

// WithOutlineWidth sets the width of the outline stroked on top of a filled
// area. This width is fixed per renderer and independent of the per-series
// SeriesStyle.StrokeWidth.
func WithOutlineWidth(w float64) Option {
	return func(o *rendererOptions) {
		o.outlineWidth = w
	}
}

// WithLineJoin sets the join style used when stroking.
func WithLineJoin(j LineJoin) Option {
	return func(o *rendererOptions) {
		o.join = j
	}
}

// WithGradientOpacity sets the fill opacities at the top and bottom stops of
// the vertical gradient used for peak-shaped areas.
func WithGradientOpacity(top, bottom float64) Option {
	return func(o *rendererOptions) {
		o.topOpacity = top
		o.bottomOpacity = bottom
	}
}

// WithFlatOpacity sets the fill opacity used when the area does not qualify
// for the gradient fill.
func WithFlatOpacity(a float64) Option {
	return func(o *rendererOptions) {
		o.flatOpacity = a
	}
}
