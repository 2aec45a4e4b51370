// Package pixmap wraps the destination pixel buffer the rasterizer
// writes into so it satisfies image.Image and draw.Image from the
// standard library, and so it can be resampled or composited with
// other image.Image sources via golang.org/x/image/draw.
//
// Pixels are stored premultiplied-alpha, 8 bits per channel, in RGBA
// byte order — the format internal/accum.ColorFiller composites
// directly into via RowBytes.
package pixmap

import (
	"image"
	"image/color"
	"image/draw"

	ximage "golang.org/x/image/draw"
)

var (
	_ image.Image = (*Pixmap)(nil)
	_ draw.Image  = (*Pixmap)(nil)
)

// Pixmap is a premultiplied-alpha RGBA8 pixel buffer.
type Pixmap struct {
	width, height int
	pix           []uint8 // 4 bytes per pixel, premultiplied
}

// New creates a pixmap with the given dimensions, fully transparent.
func New(width, height int) *Pixmap {
	return &Pixmap{width: width, height: height, pix: make([]uint8, width*height*4)}
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.height }

// RowBytes returns the premultiplied RGBA8 bytes of row y, satisfying
// the destination a scan.Fill-driven accum.Filler writes into.
func (p *Pixmap) RowBytes(y int) []byte {
	start := y * p.width * 4
	return p.pix[start : start+p.width*4]
}

// Clear resets every pixel to fully transparent.
func (p *Pixmap) Clear() {
	for i := range p.pix {
		p.pix[i] = 0
	}
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model { return color.RGBAModel }

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.pix[i], G: p.pix[i+1], B: p.pix[i+2], A: p.pix[i+3]}
}

// Set implements draw.Image. The input color is converted to
// premultiplied RGBA8 via its own RGBA method.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b, a := color.RGBAModel.Convert(c).(color.RGBA).RGBA()
	i := (y*p.width + x) * 4
	p.pix[i+0] = uint8(r >> 8)
	p.pix[i+1] = uint8(g >> 8)
	p.pix[i+2] = uint8(b >> 8)
	p.pix[i+3] = uint8(a >> 8)
}

// ToRGBA copies the pixmap into a standard library image.RGBA, which
// already uses the same premultiplied byte layout.
func (p *Pixmap) ToRGBA() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	copy(img.Pix, p.pix)
	return img
}

// Resample scales src into a new Pixmap of the given dimensions using
// a high-quality resampling kernel.
func Resample(src image.Image, width, height int) *Pixmap {
	dst := New(width, height)
	wrap := &image.RGBA{Pix: dst.pix, Stride: width * 4, Rect: dst.Bounds()}
	ximage.CatmullRom.Scale(wrap, wrap.Bounds(), src, src.Bounds(), ximage.Over, nil)
	return dst
}
