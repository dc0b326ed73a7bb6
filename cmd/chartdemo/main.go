// Command chartdemo renders sample chart series to a PNG file.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/ggcanvas"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 400, "image height")
		output = flag.String("output", "chart.png", "output file")
	)
	flag.Parse()

	c := ggcanvas.NewContext(*width, *height)
	c.Context().ClearWithColor(gg.White)

	plot := ggchart.NewRect(40, 20, float64(*width)-80, float64(*height)-40)

	blue := ggchart.NewARGB(255, 66, 133, 244)
	red := ggchart.NewARGB(255, 219, 68, 55)

	area := ggchart.NewAreaRenderer()
	area.Draw(c, wave(plot, 0.6, 0), &plot, ggchart.SeriesStyle{
		Fill:        &blue,
		StrokeWidth: 3,
	})

	line := ggchart.NewLineRenderer()
	line.Draw(c, wave(plot, 0.35, math.Pi/3), &plot, ggchart.SeriesStyle{
		Stroke:      &red,
		StrokeWidth: 2,
		Dash:        []float64{8, 4},
	})

	if err := c.Context().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Chart saved to %s (%dx%d)\n", *output, *width, *height)
}

// wave produces a sine-ish series spanning the plot area, closed down to
// the plot baseline so the area renderer fills a polygon.
func wave(plot ggchart.Rect, amplitude, phase float64) []ggchart.Point {
	const samples = 48

	baseline := plot.Y + plot.H
	pts := make([]ggchart.Point, 0, samples+2)
	pts = append(pts, ggchart.Point{X: plot.X, Y: baseline})
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		x := plot.X + t*plot.W
		y := baseline - plot.H*amplitude*(0.5+0.5*math.Sin(4*math.Pi*t+phase))
		pts = append(pts, ggchart.Point{X: x, Y: y})
	}
	pts = append(pts, ggchart.Point{X: plot.X + plot.W, Y: baseline})
	return pts
}
