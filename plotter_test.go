package raster2d

import "testing"

func TestNewPlotterDefaultsToPixmap(t *testing.T) {
	p := NewPlotter(10, 10)
	if p.Width() != 10 || p.Height() != 10 {
		t.Fatalf("dimensions = %dx%d, want 10x10", p.Width(), p.Height())
	}
	if p.Pixmap() == nil {
		t.Fatal("Pixmap() = nil, want non-nil default destination")
	}
	if p.Mask() != nil {
		t.Fatal("Mask() = non-nil, want nil for a pixmap-backed plotter")
	}
}

func TestNewPlotterForMask(t *testing.T) {
	m := NewMask(8, 8)
	p := NewPlotterFor(m)
	if p.Mask() != m {
		t.Fatal("Mask() did not return the constructor's destination")
	}
}

func TestFillSolidSquareIsFullyOpaqueInside(t *testing.T) {
	p := NewPlotter(20, 20)
	p.MoveTo(5, 5)
	p.LineTo(15, 5)
	p.LineTo(15, 15)
	p.LineTo(5, 15)
	p.Close()
	p.Fill(NonZero, RGBA{1, 0, 0, 1})

	px := p.Pixmap()
	r, g, b, a := px.At(10, 10).RGBA()
	if a>>8 != 255 {
		t.Fatalf("alpha at center = %d, want 255", a>>8)
	}
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Fatalf("color at center = (%d,%d,%d), want (255,0,0)", r>>8, g>>8, b>>8)
	}

	r, g, b, a = px.At(1, 1).RGBA()
	if a != 0 || r != 0 || g != 0 || b != 0 {
		t.Fatalf("corner outside the square should be fully transparent, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestFillMaskProducesCoverage(t *testing.T) {
	p := NewPlotter(20, 20)
	p.MoveTo(5, 5)
	p.LineTo(15, 5)
	p.LineTo(15, 15)
	p.LineTo(5, 15)
	p.Close()

	mask := NewMask(20, 20)
	p.FillMask(mask, NonZero)

	if mask.At(10, 10) != 255 {
		t.Fatalf("coverage at center = %d, want 255", mask.At(10, 10))
	}
	if mask.At(1, 1) != 0 {
		t.Fatalf("coverage outside the square = %d, want 0", mask.At(1, 1))
	}
}

func TestEvenOddLeavesOverlapHollow(t *testing.T) {
	p := NewPlotter(30, 30)
	p.MoveTo(5, 5)
	p.LineTo(25, 5)
	p.LineTo(25, 25)
	p.LineTo(5, 25)
	p.Close()
	p.MoveTo(10, 10)
	p.LineTo(20, 10)
	p.LineTo(20, 20)
	p.LineTo(10, 20)
	p.Close()

	mask := NewMask(30, 30)
	p.FillMask(mask, EvenOdd)

	if mask.At(15, 15) != 0 {
		t.Fatalf("coverage in the overlap region = %d, want 0 under EvenOdd", mask.At(15, 15))
	}
	if mask.At(7, 7) != 255 {
		t.Fatalf("coverage in the outer-only region = %d, want 255", mask.At(7, 7))
	}
}

func TestStrokeLineProducesCoverageAlongPath(t *testing.T) {
	p := NewPlotter(20, 10)
	p.SetPenWidth(4)
	p.MoveTo(2, 5)
	p.LineTo(18, 5)

	mask := NewMask(20, 10)
	p.StrokeMask(mask)

	if mask.At(10, 5) != 255 {
		t.Fatalf("coverage on the stroked line = %d, want 255", mask.At(10, 5))
	}
	if mask.At(10, 0) != 0 {
		t.Fatalf("coverage far from the stroked line = %d, want 0", mask.At(10, 0))
	}
}

func TestMoveToWithoutCloseStartsNewUnjoinedSubpath(t *testing.T) {
	p := NewPlotter(10, 10)
	p.MoveTo(1, 1)
	p.LineTo(5, 1)
	p.MoveTo(1, 5)
	p.LineTo(5, 5)
	if len(p.subs) != 2 {
		t.Fatalf("subpath count = %d, want 2", len(p.subs))
	}
	if p.subs[0].joined {
		t.Fatal("first subpath should be implicitly unjoined, not closed")
	}
}

func TestResetClearsRecordedPath(t *testing.T) {
	p := NewPlotter(10, 10)
	p.MoveTo(1, 1)
	p.LineTo(5, 5)
	p.Reset()
	if len(p.subs) != 1 || len(p.subs[0].pts) != 0 {
		t.Fatalf("Reset did not clear recorded points: %+v", p.subs)
	}
	if p.haveCur {
		t.Fatal("Reset should clear haveCur")
	}
}

func TestClearMaskResetsDestination(t *testing.T) {
	p := NewPlotter(10, 10)
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 10)
	p.Close()
	p.Fill(NonZero, White)

	if _, _, _, a := p.Pixmap().At(5, 5).RGBA(); a == 0 {
		t.Fatal("setup failed: expected opaque pixel before ClearMask")
	}
	p.ClearMask()
	if _, _, _, a := p.Pixmap().At(5, 5).RGBA(); a != 0 {
		t.Fatalf("alpha after ClearMask = %d, want 0", a)
	}
}

func TestQuadToFlattensThroughFillFigure(t *testing.T) {
	p := NewPlotter(40, 40)
	p.MoveTo(5, 20)
	p.QuadTo(20, 0, 35, 20)
	p.LineTo(35, 35)
	p.LineTo(5, 35)
	p.Close()

	mask := NewMask(40, 40)
	p.FillMask(mask, NonZero)
	if mask.At(20, 30) != 255 {
		t.Fatalf("coverage inside curved shape = %d, want 255", mask.At(20, 30))
	}
}

func TestSetTransformAffectsOnlySubsequentPoints(t *testing.T) {
	p := NewPlotter(40, 40)
	p.MoveTo(1, 1)
	p.SetTransform(p.Transform().Translate(10, 10))
	p.LineTo(2, 2)

	first := p.subs[0].pts[0]
	second := p.subs[0].pts[1]
	if first.X != 1 || first.Y != 1 {
		t.Fatalf("first point = %v, want untransformed (1,1)", first.Point)
	}
	if second.X != 12 || second.Y != 12 {
		t.Fatalf("second point = %v, want translated (12,12)", second.Point)
	}
}
