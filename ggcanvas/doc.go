// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas adapts a gg drawing context to the ggchart.Canvas
// interface.
//
// The adapter is a thin mapping: ggchart brushes convert to gg brushes,
// path and paint calls forward one-to-one, and Save/Restore map to the
// gg state stack so clip regions unwind correctly.
//
// # Example
//
//	c := ggcanvas.NewContext(400, 200)
//	ggchart.NewAreaRenderer().Draw(c, points, nil, style)
//	_ = c.Context().SavePNG("series.png")
package ggcanvas
