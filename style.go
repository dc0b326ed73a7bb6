package ggchart

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the string representation of a LineJoin.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return "unknown"
}

// SeriesStyle carries the styling of a single series segment.
//
// Fill and Stroke are optional: a nil pointer means "do not fill" and
// "do not use a distinguished stroke color" respectively. It never means
// black or any other default.
type SeriesStyle struct {
	// Fill is the area fill color, nil for no fill.
	Fill *ARGB

	// Stroke is the line stroke color, nil for none.
	Stroke *ARGB

	// StrokeWidth is the line width in canvas units. Must be positive.
	// For a single-point series it doubles as the dot radius.
	StrokeWidth float64

	// Dash is the dash pattern for line series, alternating dash and gap
	// lengths. Empty means a solid line. Area outlines ignore it.
	Dash []float64
}
