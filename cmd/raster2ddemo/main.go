// Command raster2ddemo demonstrates the raster2d rasterizer by
// filling and stroking a handful of shapes onto a pixmap and encoding
// it to PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/raster2d"
	"github.com/gogpu/raster2d/geom"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	p := raster2d.NewPlotter(*width, *height)

	drawGradientBackground(p, *width, *height)
	drawShapes(p)
	drawTransformedSquares(p)
	drawPathDemo(p)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, p.Pixmap()); err != nil {
		log.Fatalf("encode PNG: %v", err)
	}
	log.Printf("demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawGradientBackground(p *raster2d.Plotter, w, h int) {
	const steps = 100
	for i := 0; i < steps; i++ {
		t := float32(i) / steps
		c := raster2d.RGB(0.1+float64(t)*0.4, 0.2+float64(t)*0.3, 0.4+float64(t)*0.2)
		y := float32(h) * t
		rowH := float32(h)/steps + 1

		raster2d.NewPath2D().Rect(0, y, float32(w), rowH).Replay(p)
		p.Fill(raster2d.NonZero, c)
	}
}

func drawShapes(p *raster2d.Plotter) {
	raster2d.NewPath2D().Circle(150, 150, 60).Replay(p)
	p.Fill(raster2d.NonZero, raster2d.RGBA2(1, 0.3, 0.3, 0.8))

	raster2d.NewPath2D().Circle(200, 150, 60).Replay(p)
	p.Fill(raster2d.NonZero, raster2d.RGBA2(0.3, 1, 0.3, 0.8))

	raster2d.NewPath2D().Circle(175, 200, 60).Replay(p)
	p.Fill(raster2d.NonZero, raster2d.RGBA2(0.3, 0.3, 1, 0.8))

	raster2d.NewPath2D().RoundRect(350, 100, 120, 80, 15).Replay(p)
	p.Fill(raster2d.NonZero, raster2d.RGB(1, 0.8, 0))

	p.SetPenWidth(4)
	raster2d.NewPath2D().Rect(350, 100, 120, 80).Replay(p)
	p.Stroke(raster2d.White)
}

func drawTransformedSquares(p *raster2d.Plotter) {
	const centerX, centerY = 600, 150
	for i := 0; i < 8; i++ {
		angle := float32(i) * math.Pi / 4
		p.SetTransform(geom.Identity.Translate(centerX, centerY).Rotate(angle))

		hue := float64(i) * 45
		p.MoveTo(-30, -30)
		p.LineTo(30, -30)
		p.LineTo(30, 30)
		p.LineTo(-30, 30)
		p.Close()
		p.Fill(raster2d.NonZero, raster2d.HSL(hue, 0.8, 0.6))
	}
	p.SetTransform(geom.Identity)
}

func drawPathDemo(p *raster2d.Plotter) {
	p.SetTransform(geom.Identity.Translate(150, 400))
	p.SetPenWidth(6)
	p.MoveTo(0, 0)
	p.CubicTo(50, -50, 100, 50, 150, 0)
	p.CubicTo(200, -30, 250, 30, 300, 0)
	p.Stroke(raster2d.RGB(1, 0.5, 0))

	p.SetTransform(geom.Identity.Translate(550, 400))
	raster2d.NewPath2D().Star(0, 0, 5, 60, 30).Replay(p)
	p.Fill(raster2d.NonZero, raster2d.RGB(1, 1, 0))

	p.SetTransform(geom.Identity)
}
