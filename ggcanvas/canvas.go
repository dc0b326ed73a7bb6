// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
)

// Canvas implements ggchart.Canvas on top of a gg.Context.
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
type Canvas struct {
	dc *gg.Context
}

var _ ggchart.Canvas = (*Canvas)(nil)

// New wraps an existing gg context.
// The caller keeps ownership of the context and may keep drawing on it
// directly between renderer calls.
func New(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// NewContext creates a canvas with a fresh software-rendered gg context of
// the given dimensions.
func NewContext(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Context returns the underlying gg context, e.g. for encoding the result
// with SavePNG or EncodePNG.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Save pushes the gg state stack, including the clip stack depth.
func (c *Canvas) Save() {
	c.dc.Push()
}

// Restore pops the gg state stack, unwinding any clip regions pushed since
// the matching Save.
func (c *Canvas) Restore() {
	c.dc.Pop()
}

// ClipRect intersects the current clip with the rectangle.
func (c *Canvas) ClipRect(x, y, w, h float64) {
	c.dc.ClipRect(x, y, w, h)
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

// LineTo adds a straight segment.
func (c *Canvas) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

// ClearPath discards the current path.
func (c *Canvas) ClearPath() {
	c.dc.ClearPath()
}

// DrawCircle adds a circle to the current path.
func (c *Canvas) DrawCircle(x, y, r float64) {
	c.dc.DrawCircle(x, y, r)
}

// SetFillBrush sets the gg fill brush.
func (c *Canvas) SetFillBrush(b ggchart.Brush) {
	c.dc.SetFillBrush(toGGBrush(b))
}

// SetStrokeBrush sets the gg stroke brush.
func (c *Canvas) SetStrokeBrush(b ggchart.Brush) {
	c.dc.SetStrokeBrush(toGGBrush(b))
}

// SetLineWidth sets the stroke width.
func (c *Canvas) SetLineWidth(w float64) {
	c.dc.SetLineWidth(w)
}

// SetLineJoin sets the stroke join style.
func (c *Canvas) SetLineJoin(j ggchart.LineJoin) {
	c.dc.SetLineJoin(toGGLineJoin(j))
}

// SetDash sets the dash pattern.
func (c *Canvas) SetDash(lengths ...float64) {
	c.dc.SetDash(lengths...)
}

// ClearDash restores solid stroking.
func (c *Canvas) ClearDash() {
	c.dc.ClearDash()
}

// Fill fills the current path and clears it.
func (c *Canvas) Fill() error {
	return c.dc.Fill()
}

// FillPreserve fills the current path, keeping it.
func (c *Canvas) FillPreserve() error {
	return c.dc.FillPreserve()
}

// Stroke strokes the current path and clears it.
func (c *Canvas) Stroke() error {
	return c.dc.Stroke()
}

// toGGBrush converts a ggchart brush to its gg equivalent.
// A nil brush maps to nil, which gg treats as "paint nothing".
func toGGBrush(b ggchart.Brush) gg.Brush {
	switch b := b.(type) {
	case ggchart.SolidBrush:
		return gg.Solid(toGGColor(b.Color))
	case *ggchart.LinearGradientBrush:
		grad := gg.NewLinearGradientBrush(b.Start.X, b.Start.Y, b.End.X, b.End.Y)
		for _, stop := range b.Stops {
			grad.AddColorStop(stop.Offset, toGGColor(stop.Color))
		}
		return grad
	}
	return nil
}

// toGGColor converts a ggchart color to a gg color. The component layout
// is identical; the types are distinct to keep the root package free of a
// gg dependency.
func toGGColor(c ggchart.RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// toGGLineJoin converts a ggchart line join to a gg line join.
func toGGLineJoin(j ggchart.LineJoin) gg.LineJoin {
	switch j {
	case ggchart.LineJoinRound:
		return gg.LineJoinRound
	case ggchart.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
