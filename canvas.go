package ggchart

// Canvas is the host drawing surface renderers draw onto.
//
// The interface mirrors the gg.Context drawing surface: a canvas holds a
// current path and transient paint state, both mutated in place by the
// renderer during a draw call. Callers must not assume paint state is
// preserved across renderer calls, and must not share one Canvas between
// goroutines.
//
// Implementations in this module: ggcanvas.Canvas (software rasterization),
// ebitencanvas.Canvas (ebiten games), record.Canvas (command capture).
type Canvas interface {
	// Save pushes the current canvas state (including the clip region)
	// onto a stack. Restore pops it. Save/Restore pairs always balance
	// within a single renderer call.
	Save()
	Restore()

	// ClipRect intersects the current clip region with the given
	// rectangle. The clip applies to all subsequent drawing until the
	// enclosing Save is restored.
	ClipRect(x, y, w, h float64)

	// MoveTo starts a new subpath at the given position.
	MoveTo(x, y float64)

	// LineTo adds a straight segment from the current position.
	LineTo(x, y float64)

	// ClearPath discards the current path.
	ClearPath()

	// DrawCircle adds a circle to the current path.
	DrawCircle(x, y, r float64)

	// SetFillBrush sets the brush used by Fill.
	SetFillBrush(b Brush)

	// SetStrokeBrush sets the brush used by Stroke.
	SetStrokeBrush(b Brush)

	// SetLineWidth sets the stroke width in canvas units.
	SetLineWidth(w float64)

	// SetLineJoin sets the stroke join style.
	SetLineJoin(j LineJoin)

	// SetDash sets the stroke dash pattern as alternating dash and gap
	// lengths. ClearDash restores solid stroking.
	SetDash(lengths ...float64)
	ClearDash()

	// Fill paints the current path with the fill brush and clears the
	// path. The error is backend-specific; renderers log and continue.
	Fill() error

	// FillPreserve is like Fill but keeps the current path, so the same
	// outline can be stroked afterward.
	FillPreserve() error

	// Stroke paints the current path outline with the stroke brush and
	// clears the path.
	Stroke() error
}
