// Package ggchart renders chart series segments onto a 2D canvas.
//
// # Overview
//
// ggchart draws a single series segment of a chart: an area polygon filled
// with a gradient or flat translucent color, a polyline stroked with an
// optional dash pattern, or a single dot when only one data point exists.
// It consumes screen-space coordinates computed by the host charting code
// and issues drawing commands against the Canvas interface, so the same
// series renders identically on any backend.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggchart"
//	    "github.com/gogpu/ggchart/ggcanvas"
//	)
//
//	c := ggcanvas.NewContext(400, 200)
//	red := ggchart.NewARGB(255, 255, 0, 0)
//	ggchart.NewAreaRenderer().Draw(c, points, nil, ggchart.SeriesStyle{
//	    Fill:        &red,
//	    StrokeWidth: 3,
//	})
//	c.Context().SavePNG("series.png")
//
// # Backends
//
// Two backends ship with the library:
//   - ggcanvas: software rasterization via github.com/gogpu/gg
//   - ebitencanvas: on-screen rendering via github.com/hajimehoshi/ebiten/v2
//
// The record package captures draw calls as an immutable command list that
// can be inspected or replayed onto any Canvas.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The area renderer's gradient-vs-flat decision compares Y values relative
// to the first point only; it does not depend on any global origin.
package ggchart

// Version is the current version of the library.
const Version = "0.1.0"
