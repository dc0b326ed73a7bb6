// Command livechart shows a continuously updating series in an ebiten
// window.
package main

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/ebitencanvas"
)

const (
	screenWidth  = 640
	screenHeight = 320
	maxSamples   = 120
)

type game struct {
	samples []float64
	tick    int
	area    *ggchart.AreaRenderer
	line    *ggchart.LineRenderer
	plot    ggchart.Rect
	fill    ggchart.ARGB
	stroke  ggchart.ARGB
}

func newGame() *game {
	return &game{
		area:   ggchart.NewAreaRenderer(),
		line:   ggchart.NewLineRenderer(),
		plot:   ggchart.NewRect(20, 40, screenWidth-40, screenHeight-60),
		fill:   ggchart.NewARGB(255, 66, 133, 244),
		stroke: ggchart.NewARGB(255, 219, 68, 55),
	}
}

func (g *game) Update() error {
	g.tick++
	v := 0.5 + 0.35*math.Sin(float64(g.tick)/20) + 0.1*math.Sin(float64(g.tick)/7)
	g.samples = append(g.samples, v)
	if len(g.samples) > maxSamples {
		g.samples = g.samples[1:]
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if len(g.samples) == 0 {
		return
	}

	c := ebitencanvas.New(screen)

	g.area.Draw(c, g.areaPoints(), &g.plot, ggchart.SeriesStyle{
		Fill:        &g.fill,
		StrokeWidth: 3,
	})
	g.line.Draw(c, g.linePoints(), &g.plot, ggchart.SeriesStyle{
		Stroke:      &g.stroke,
		StrokeWidth: 1.5,
		Dash:        []float64{6, 4},
	})

	label := fmt.Sprintf("samples: %d  latest: %.2f", len(g.samples), g.samples[len(g.samples)-1])
	text.Draw(screen, label, basicfont.Face7x13, 20, 24, ggchart.White.Color())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// areaPoints maps the sample window into the plot area, closed down to the
// plot baseline so the filled polygon has a bottom edge.
func (g *game) areaPoints() []ggchart.Point {
	baseline := g.plot.Y + g.plot.H
	pts := make([]ggchart.Point, 0, len(g.samples)+2)
	pts = append(pts, ggchart.Point{X: g.plot.X, Y: baseline})
	pts = append(pts, g.linePoints()...)
	last := pts[len(pts)-1]
	pts = append(pts, ggchart.Point{X: last.X, Y: baseline})
	return pts
}

// linePoints maps the sample window into the plot area.
func (g *game) linePoints() []ggchart.Point {
	pts := make([]ggchart.Point, len(g.samples))
	for i, v := range g.samples {
		t := float64(i) / float64(maxSamples-1)
		pts[i] = ggchart.Point{
			X: g.plot.X + t*g.plot.W,
			Y: g.plot.Y + g.plot.H*(1-v),
		}
	}
	return pts
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ggchart live demo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
