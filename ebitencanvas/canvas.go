package ebitencanvas

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/ggchart"
)

// ErrNoBrush is returned when Fill or Stroke is called before a brush has
// been set.
var ErrNoBrush = errors.New("ebitencanvas: no brush set")

// circleSegments is the number of straight segments a circle is flattened
// into before tessellation.
const circleSegments = 64

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas implements ggchart.Canvas on top of an ebiten image.
//
// Canvas is NOT safe for concurrent use, and must only be used on the
// thread running the ebiten game loop.
type Canvas struct {
	target *ebiten.Image

	// Current path, kept as flattened subpaths so the same geometry can
	// feed filling, stroking, and dash segmentation.
	subpaths [][]ggchart.Point

	fillBrush   ggchart.Brush
	strokeBrush ggchart.Brush
	lineWidth   float64
	lineJoin    vector.LineJoin
	dash        []float64

	stack []*ebiten.Image

	// Scratch buffers reused across paints.
	vs []ebiten.Vertex
	is []uint16
}

var _ ggchart.Canvas = (*Canvas)(nil)

// New creates a canvas drawing onto the given image, typically the screen
// passed to an ebiten Draw callback.
func New(target *ebiten.Image) *Canvas {
	return &Canvas{
		target:    target,
		lineWidth: 1,
		lineJoin:  vector.LineJoinMiter,
	}
}

// Save pushes the current draw target, capturing the clip region.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.target)
}

// Restore pops the draw target saved by the matching Save.
// Restoring with an empty stack is a no-op.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.target = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// ClipRect intersects the clip region with the rectangle by switching the
// draw target to a SubImage. Bounds are rounded to whole pixels.
func (c *Canvas) ClipRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)),
		int(math.Floor(y)),
		int(math.Ceil(x+w)),
		int(math.Ceil(y+h)),
	)
	c.target = c.target.SubImage(r).(*ebiten.Image)
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.subpaths = append(c.subpaths, []ggchart.Point{{X: x, Y: y}})
}

// LineTo adds a straight segment. Without a preceding MoveTo it starts a
// new subpath, matching gg's behavior.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.subpaths) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.subpaths) - 1
	c.subpaths[last] = append(c.subpaths[last], ggchart.Point{X: x, Y: y})
}

// ClearPath discards the current path.
func (c *Canvas) ClearPath() {
	c.subpaths = nil
}

// DrawCircle adds a circle to the current path as a flattened polygon.
func (c *Canvas) DrawCircle(x, y, r float64) {
	pts := make([]ggchart.Point, 0, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts = append(pts, ggchart.Point{
			X: x + r*math.Cos(a),
			Y: y + r*math.Sin(a),
		})
	}
	c.subpaths = append(c.subpaths, pts)
}

// SetFillBrush sets the brush used by Fill.
func (c *Canvas) SetFillBrush(b ggchart.Brush) {
	c.fillBrush = b
}

// SetStrokeBrush sets the brush used by Stroke.
func (c *Canvas) SetStrokeBrush(b ggchart.Brush) {
	c.strokeBrush = b
}

// SetLineWidth sets the stroke width.
func (c *Canvas) SetLineWidth(w float64) {
	c.lineWidth = w
}

// SetLineJoin sets the stroke join style.
func (c *Canvas) SetLineJoin(j ggchart.LineJoin) {
	switch j {
	case ggchart.LineJoinRound:
		c.lineJoin = vector.LineJoinRound
	case ggchart.LineJoinBevel:
		c.lineJoin = vector.LineJoinBevel
	default:
		c.lineJoin = vector.LineJoinMiter
	}
}

// SetDash sets the dash pattern.
func (c *Canvas) SetDash(lengths ...float64) {
	c.dash = append(c.dash[:0], lengths...)
}

// ClearDash restores solid stroking.
func (c *Canvas) ClearDash() {
	c.dash = nil
}

// Fill fills the current path and clears it.
func (c *Canvas) Fill() error {
	err := c.fill()
	c.subpaths = nil
	return err
}

// FillPreserve fills the current path, keeping it.
func (c *Canvas) FillPreserve() error {
	return c.fill()
}

func (c *Canvas) fill() error {
	if len(c.subpaths) == 0 {
		return nil
	}
	if c.fillBrush == nil {
		return ErrNoBrush
	}

	var path vector.Path
	for _, sp := range c.subpaths {
		appendSubpath(&path, sp)
		path.Close()
	}

	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.paintVertices(c.fillBrush)
	return nil
}

// Stroke strokes the current path and clears it.
func (c *Canvas) Stroke() error {
	subpaths := c.subpaths
	c.subpaths = nil
	if len(subpaths) == 0 {
		return nil
	}
	if c.strokeBrush == nil {
		return ErrNoBrush
	}

	if len(c.dash) > 0 {
		subpaths = DashSubpaths(subpaths, c.dash)
		if len(subpaths) == 0 {
			return nil
		}
	}

	var path vector.Path
	for _, sp := range subpaths {
		appendSubpath(&path, sp)
	}

	op := &vector.StrokeOptions{
		Width:      float32(c.lineWidth),
		LineJoin:   c.lineJoin,
		MiterLimit: 10,
	}
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], op)
	c.paintVertices(c.strokeBrush)
	return nil
}

// paintVertices colors the scratch vertices from the brush and draws them
// as triangles against the white source image.
func (c *Canvas) paintVertices(b ggchart.Brush) {
	for i := range c.vs {
		col := b.ColorAt(float64(c.vs[i].DstX), float64(c.vs[i].DstY))
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(col.R)
		c.vs[i].ColorG = float32(col.G)
		c.vs[i].ColorB = float32(col.B)
		c.vs[i].ColorA = float32(col.A)
	}
	c.target.DrawTriangles(c.vs, c.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// appendSubpath writes a point sequence into a vector path.
func appendSubpath(path *vector.Path, pts []ggchart.Point) {
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
}
