package ggchart_test

import (
	"testing"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/record"
)

func drawLine(t *testing.T, points []ggchart.Point, clip *ggchart.Rect, style ggchart.SeriesStyle, opts ...ggchart.Option) *record.Recording {
	t.Helper()
	rec := record.New()
	ggchart.NewLineRenderer(opts...).Draw(rec, points, clip, style)
	return rec.Finish()
}

func TestLineDrawEmpty(t *testing.T) {
	r := drawLine(t, nil, nil, ggchart.SeriesStyle{Stroke: &testRed, StrokeWidth: 2})
	if r.Len() != 0 {
		t.Errorf("empty point sequence recorded %d commands, want 0:\n%s", r.Len(), r)
	}
}

func TestLineDrawDot(t *testing.T) {
	r := drawLine(t, []ggchart.Point{{X: 4, Y: 6}}, nil, ggchart.SeriesStyle{
		Stroke:      &testBlue,
		StrokeWidth: 2.5,
	})

	if n := r.Count(record.CmdDrawCircle); n != 1 {
		t.Fatalf("DrawCircle count = %d, want 1:\n%s", n, r)
	}
	circle, _ := r.First(record.CmdDrawCircle)
	c := circle.(record.DrawCircle)
	if c.X != 4 || c.Y != 6 || c.R != 2.5 {
		t.Errorf("DrawCircle = (%v, %v, r=%v), want (4, 6, r=2.5)", c.X, c.Y, c.R)
	}
	if n := r.Count(record.CmdStroke); n != 0 {
		t.Errorf("Stroke count = %d, want 0 for dot case", n)
	}
}

func TestLineDrawNoStrokeConstructsPathOnly(t *testing.T) {
	points := []ggchart.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}
	r := drawLine(t, points, nil, ggchart.SeriesStyle{StrokeWidth: 2})

	if n := r.Count(record.CmdMoveTo); n != 1 {
		t.Errorf("MoveTo count = %d, want 1", n)
	}
	if n := r.Count(record.CmdLineTo); n != 2 {
		t.Errorf("LineTo count = %d, want 2", n)
	}
	for _, typ := range []record.CommandType{record.CmdStroke, record.CmdFill, record.CmdSetStrokeBrush} {
		if n := r.Count(typ); n != 0 {
			t.Errorf("%v count = %d, want 0 without a stroke color", typ, n)
		}
	}
}

func TestLineDrawSolid(t *testing.T) {
	points := []ggchart.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}
	r := drawLine(t, points, nil, ggchart.SeriesStyle{Stroke: &testRed, StrokeWidth: 3})

	brushCmd, ok := r.First(record.CmdSetStrokeBrush)
	if !ok {
		t.Fatalf("no stroke brush set:\n%s", r)
	}
	solid := brushCmd.(record.SetStrokeBrush).Brush.(ggchart.SolidBrush)
	if want := (ggchart.RGBA{R: 1, G: 0, B: 0, A: 1}); solid.Color != want {
		t.Errorf("stroke color = %+v, want %+v", solid.Color, want)
	}

	widthCmd, _ := r.First(record.CmdSetLineWidth)
	// Lines stroke at the series width, unlike area outlines.
	if w := widthCmd.(record.SetLineWidth).Width; w != 3 {
		t.Errorf("stroke width = %v, want 3", w)
	}

	if n := r.Count(record.CmdClearDash); n != 1 {
		t.Errorf("ClearDash count = %d, want 1 for a solid line", n)
	}
	if n := r.Count(record.CmdSetDash); n != 0 {
		t.Errorf("SetDash count = %d, want 0 for a solid line", n)
	}
	if n := r.Count(record.CmdStroke); n != 1 {
		t.Errorf("Stroke count = %d, want 1", n)
	}
}

func TestLineDrawDashed(t *testing.T) {
	points := []ggchart.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}
	r := drawLine(t, points, nil, ggchart.SeriesStyle{
		Stroke:      &testRed,
		StrokeWidth: 2,
		Dash:        []float64{8, 4},
	})

	dashCmd, ok := r.First(record.CmdSetDash)
	if !ok {
		t.Fatalf("no dash set:\n%s", r)
	}
	lengths := dashCmd.(record.SetDash).Lengths
	if len(lengths) != 2 || lengths[0] != 8 || lengths[1] != 4 {
		t.Errorf("dash lengths = %v, want [8 4]", lengths)
	}
	if n := r.Count(record.CmdClearDash); n != 0 {
		t.Errorf("ClearDash count = %d, want 0 for a dashed line", n)
	}
}

func TestLineDrawClipSymmetry(t *testing.T) {
	clip := ggchart.NewRect(0, 0, 50, 50)

	tests := []struct {
		name   string
		points []ggchart.Point
	}{
		{"dot case", []ggchart.Point{{X: 5, Y: 5}}},
		{"path case", []ggchart.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := drawLine(t, tt.points, &clip, ggchart.SeriesStyle{Stroke: &testRed, StrokeWidth: 2})
			cmds := r.Commands()
			if cmds[0].Type() != record.CmdSave || cmds[1].Type() != record.CmdClipRect {
				t.Errorf("commands do not start with Save, ClipRect:\n%s", r)
			}
			if last := cmds[len(cmds)-1]; last.Type() != record.CmdRestore {
				t.Errorf("last command = %v, want Restore", last.Type())
			}
		})
	}
}
