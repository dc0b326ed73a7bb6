package ggchart

import "testing"

func TestDefaultRendererOptions(t *testing.T) {
	o := defaultRendererOptions()
	if o.outlineWidth != 2 {
		t.Errorf("outlineWidth = %v, want 2", o.outlineWidth)
	}
	if o.join != LineJoinBevel {
		t.Errorf("join = %v, want bevel", o.join)
	}
	if o.topOpacity != 0.375 || o.bottomOpacity != 0.125 {
		t.Errorf("gradient opacities = %v/%v, want 0.375/0.125", o.topOpacity, o.bottomOpacity)
	}
	if o.flatOpacity != 0.25 {
		t.Errorf("flatOpacity = %v, want 0.25", o.flatOpacity)
	}
}

func TestOptionsApply(t *testing.T) {
	o := defaultRendererOptions()
	for _, opt := range []Option{
		WithOutlineWidth(5),
		WithLineJoin(LineJoinMiter),
		WithGradientOpacity(0.9, 0.3),
		WithFlatOpacity(0.6),
	} {
		opt(&o)
	}

	if o.outlineWidth != 5 || o.join != LineJoinMiter {
		t.Errorf("outline options not applied: %+v", o)
	}
	if o.topOpacity != 0.9 || o.bottomOpacity != 0.3 || o.flatOpacity != 0.6 {
		t.Errorf("opacity options not applied: %+v", o)
	}
}

func TestLineJoinString(t *testing.T) {
	tests := []struct {
		join LineJoin
		want string
	}{
		{LineJoinMiter, "miter"},
		{LineJoinRound, "round"},
		{LineJoinBevel, "bevel"},
		{LineJoin(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.join.String(); got != tt.want {
			t.Errorf("LineJoin(%d).String() = %q, want %q", tt.join, got, tt.want)
		}
	}
}
