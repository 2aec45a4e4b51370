package scan

import (
	"reflect"
	"testing"

	"github.com/gogpu/raster2d/geom"
	"github.com/gogpu/raster2d/internal/accum"
	"github.com/gogpu/raster2d/internal/figure"
)

// matteTarget is a single-channel (1 byte per pixel) test raster.
type matteTarget struct {
	w, h int
	buf  []byte
}

func newMatteTarget(w, h int) *matteTarget {
	return &matteTarget{w: w, h: h, buf: make([]byte, w*h)}
}

func (m *matteTarget) Width() int  { return m.w }
func (m *matteTarget) Height() int { return m.h }
func (m *matteTarget) RowBytes(y int) []byte {
	return m.buf[y*m.w : y*m.w+m.w]
}

// rgbaTarget is a 4-bytes-per-pixel (premultiplied RGBA8) test raster.
type rgbaTarget struct {
	w, h int
	buf  []byte
}

func newRGBATarget(w, h int) *rgbaTarget {
	return &rgbaTarget{w: w, h: h, buf: make([]byte, w*h*4)}
}

func (m *rgbaTarget) Width() int  { return m.w }
func (m *rgbaTarget) Height() int { return m.h }
func (m *rgbaTarget) RowBytes(y int) []byte {
	return m.buf[y*m.w*4 : y*m.w*4+m.w*4]
}

func buildFig(pts ...geom.Point) *figure.Fig {
	f := figure.New()
	for _, p := range pts {
		f.AddPoint(p)
	}
	f.Close()
	return f
}

func TestFigure3x3(t *testing.T) {
	f := buildFig(geom.Pt(1, 2), geom.Pt(1, 3), geom.Pt(2, 3), geom.Pt(2, 2))
	target := newRGBATarget(3, 3)
	filler := accum.ColorFiller{Rule: accum.NonZero, R: 99, G: 99, B: 99, A: 255}
	sgnArea := make([]int16, 3)
	Fill(f, target, filler, sgnArea)

	want := make([]byte, 3*3*4)
	want[(2*3+1)*4+0] = 99
	want[(2*3+1)*4+1] = 99
	want[(2*3+1)*4+2] = 99
	want[(2*3+1)*4+3] = 255
	if !reflect.DeepEqual(target.buf, want) {
		t.Fatalf("got %v, want %v", target.buf, want)
	}
}

func TestFigure9x1(t *testing.T) {
	f := buildFig(geom.Pt(0, 0), geom.Pt(9, 1), geom.Pt(0, 1))
	target := newMatteTarget(9, 1)
	filler := accum.MatteFiller{Rule: accum.NonZero}
	sgnArea := make([]int16, 16)
	Fill(f, target, filler, sgnArea)

	want := []byte{242, 213, 185, 156, 128, 100, 71, 43, 14}
	if !reflect.DeepEqual(target.buf, want) {
		t.Fatalf("got %v, want %v", target.buf, want)
	}
}

func TestFigureXBounds(t *testing.T) {
	f := buildFig(geom.Pt(-1, 0), geom.Pt(-1, 3), geom.Pt(3, 1.5))
	target := newMatteTarget(3, 3)
	filler := accum.MatteFiller{Rule: accum.NonZero}
	sgnArea := make([]int16, 4)
	Fill(f, target, filler, sgnArea)

	want := []byte{112, 16, 0, 255, 224, 32, 112, 16, 0}
	if !reflect.DeepEqual(target.buf, want) {
		t.Fatalf("got %v, want %v", target.buf, want)
	}
}

func TestFigurePartial(t *testing.T) {
	f := buildFig(geom.Pt(0.5, 0), geom.Pt(0.5, 1.5), geom.Pt(1, 3), geom.Pt(1, 0))
	target := newMatteTarget(1, 3)
	filler := accum.MatteFiller{Rule: accum.NonZero}
	sgnArea := make([]int16, 4)
	Fill(f, target, filler, sgnArea)

	want := []byte{128, 117, 43}
	if !reflect.DeepEqual(target.buf, want) {
		t.Fatalf("got %v, want %v", target.buf, want)
	}
}

func TestFigurePartial2(t *testing.T) {
	f := buildFig(geom.Pt(1.5, 0), geom.Pt(1.5, 1.5), geom.Pt(2, 3), geom.Pt(3, 3), geom.Pt(3, 0))
	target := newMatteTarget(3, 3)
	filler := accum.MatteFiller{Rule: accum.NonZero}
	sgnArea := make([]int16, 3)
	Fill(f, target, filler, sgnArea)

	want := []byte{0, 128, 255, 0, 117, 255, 0, 43, 255}
	if !reflect.DeepEqual(target.buf, want) {
		t.Fatalf("got %v, want %v", target.buf, want)
	}
}

func TestFigurePartial3(t *testing.T) {
	f := buildFig(geom.Pt(0, 0), geom.Pt(0, 0.3), geom.Pt(9, 0))
	target := newMatteTarget(9, 1)
	filler := accum.MatteFiller{Rule: accum.NonZero}
	sgnArea := make([]int16, 16)
	Fill(f, target, filler, sgnArea)

	want := []byte{73, 64, 56, 47, 39, 30, 22, 13, 4}
	if !reflect.DeepEqual(target.buf, want) {
		t.Fatalf("got %v, want %v", target.buf, want)
	}
}
