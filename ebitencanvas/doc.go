// Package ebitencanvas adapts an ebiten image to the ggchart.Canvas
// interface, so chart series can be drawn inside an ebiten game's Draw
// callback.
//
// Paths are tessellated with ebiten's vector package and painted with
// DrawTriangles against a white source image. Gradient brushes are realized
// with per-vertex colors sampled from the brush, which is exact for the
// vertical two-stop gradients chart areas use. Rectangular clipping uses
// SubImage, so it is restricted to integer pixel bounds.
//
// # Example
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    c := ebitencanvas.New(screen)
//	    g.area.Draw(c, g.points, &g.plotBounds, g.style)
//	}
package ebitencanvas
