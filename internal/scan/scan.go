// Package scan sweeps a figure's active edges row by row, accumulating
// signed area into a per-row buffer and handing each finished row to an
// accum.Filler.
package scan

import (
	"github.com/gogpu/raster2d/internal/accum"
	"github.com/gogpu/raster2d/internal/figure"
	"github.com/gogpu/raster2d/internal/fixed"
	"github.com/gogpu/raster2d/internal/vid"
)

// Target is a destination raster the scanner writes rows into.
type Target interface {
	Width() int
	Height() int
	// RowBytes returns the byte slice backing raster row y. y is an
	// absolute row index into the raster, always in [0, Height()).
	RowBytes(y int) []byte
}

func rowOf(y fixed.Fixed) int32 { return y.Int() }

func fixedMin(a, b fixed.Fixed) fixed.Fixed {
	if a < b {
		return a
	}
	return b
}

func fixedMax(a, b fixed.Fixed) fixed.Fixed {
	if a > b {
		return a
	}
	return b
}

// pixelCov rounds a [0,1] fixed-point coverage fraction to a [0,256]
// integer pixel coverage value.
func pixelCov(fcov fixed.Fixed) int16 {
	return int16(fcov.Shl(8).Round().Int())
}

// edge is one active edge of the figure's outline, tracked while its
// vertical extent overlaps the rows currently being swept.
type edge struct {
	v1       vid.Vid
	yUpper   fixed.Fixed
	yLower   fixed.Fixed
	dir      figure.Dir
	stepPix  fixed.Fixed
	invSlope fixed.Fixed
	xBot     fixed.Fixed
	minX     fixed.Fixed
	maxX     fixed.Fixed
}

// newEdge builds an edge from its upper point p0 to its lower point p1.
// dir records the figure-traversal direction from upper to lower vertex.
func newEdge(v1 vid.Vid, p0, p1 figure.Point, dir figure.Dir) *edge {
	deltaX := p1.X - p0.X
	deltaY := p1.Y - p0.Y
	stepPix := calculateStep(deltaX, deltaY)
	invSlope := deltaX.Div(deltaY)
	yUpper := p0.Y
	yLower := p1.Y
	yBot := (yUpper + fixed.One).Floor() - yUpper
	xBot := p0.X + invSlope.Mul(yBot)
	return &edge{
		v1:       v1,
		yUpper:   yUpper,
		yLower:   yLower,
		dir:      dir,
		stepPix:  stepPix,
		invSlope: invSlope,
		xBot:     xBot,
	}
}

// calculateStep is the change in coverage per pixel along the current
// row, below 1 for edges shallow enough that a single row spans
// multiple pixels (capped at 1 for steeper edges, 0 for vertical ones).
func calculateStep(deltaX, deltaY fixed.Fixed) fixed.Fixed {
	if deltaX != fixed.Zero {
		return fixedMin(deltaY.Div(deltaX).Abs(), fixed.One)
	}
	return fixed.Zero
}

func (e *edge) minPix() int32 { return e.minX.Int() }
func (e *edge) maxPix() int32 { return e.maxX.Int() }

func (e *edge) midX() fixed.Fixed { return e.maxX.Avg(e.minX) }

func (e *edge) isStarting(yRow int32) bool { return rowOf(e.yUpper) == yRow }
func (e *edge) isEnding(yRow int32) bool   { return rowOf(e.yLower) == yRow }

// startingCov is the pixel coverage contributed on the row the edge
// begins in.
func (e *edge) startingCov() int16 {
	yRow := rowOf(e.yUpper)
	return e.continuingCov(yRow) - pixelCov(e.yUpper.Fract())
}

func (e *edge) calculateXLimitsStarting() {
	yRow := rowOf(e.yUpper)
	y0 := fixed.One - e.yUpper.Fract()
	x0 := e.xBot - e.invSlope.Mul(y0)
	e.setXLimits(x0, yRow)
}

// continuingCov is the pixel coverage the edge contributes on yRow,
// given it is already active: the full row unless this is also the
// edge's final row.
func (e *edge) continuingCov(yRow int32) int16 {
	if e.isEnding(yRow) {
		return pixelCov(e.yLower.Fract())
	}
	return 256
}

func (e *edge) calculateXLimitsContinuing(yRow int32) {
	x0 := e.xBot - e.invSlope
	e.setXLimits(x0, yRow)
}

func (e *edge) setXLimits(x0 fixed.Fixed, yRow int32) {
	var x1 fixed.Fixed
	if e.isEnding(yRow) {
		y1 := e.yLower.Ceil() - e.yLower
		x1 = e.xBot - e.invSlope.Mul(y1)
	} else {
		x1 = e.xBot
	}
	e.minX = fixedMin(x0, x1)
	e.maxX = fixedMax(x0, x1)
}

// scanArea walks the pixels the edge crosses on the current row, adding
// signed per-pixel coverage deltas into area. dir is the figure's global
// winding direction; the sign of the contribution flips when the edge's
// own direction runs against it.
func (e *edge) scanArea(dir figure.Dir, cov int16, area []int16) {
	var ed int16 = 1
	if e.dir != dir {
		ed = -1
	}
	fullCov := fixed.FromFloat32(float32(cov) / 256.0)
	xCov := e.firstCov(fullCov)
	stepCov := e.stepCov(fixed.One)
	var sumPix int16

	for x := e.minPix(); x < int32(len(area)); x++ {
		xPix := pixelCov(xCov)
		if xPix > cov {
			xPix = cov
		}
		p := xPix - sumPix
		idx := x
		if idx < 0 {
			idx = 0
		}
		area[idx] += p * ed
		sumPix += p
		if sumPix >= cov {
			break
		}
		xCov = xCov + stepCov
		if xCov > fixed.One {
			xCov = fixed.One
		}
	}
}

func (e *edge) firstCov(fullCov fixed.Fixed) fixed.Fixed {
	var r fixed.Fixed
	if e.minPix() == e.maxPix() {
		r = (fixed.One - e.midX().Fract()).Mul(fullCov)
	} else {
		r = (fixed.One - e.minX.Fract()).Mul(fixed.Half)
	}
	return e.stepCov(r)
}

func (e *edge) stepCov(r fixed.Fixed) fixed.Fixed {
	if e.stepPix > fixed.Zero {
		return r.Mul(e.stepPix)
	}
	return r
}

// scanner holds the active-edge list while sweeping one figure.
type scanner struct {
	fig     *figure.Fig
	dir     figure.Dir
	sgnArea []int16
	edges   []*edge
}

func newScanner(fig *figure.Fig, dir figure.Dir, sgnArea []int16) *scanner {
	return &scanner{fig: fig, dir: dir, sgnArea: sgnArea, edges: make([]*edge, 0, 16)}
}

func (s *scanner) getY(v vid.Vid) fixed.Fixed { return s.fig.GetY(v) }

func (s *scanner) scanVertices(vids []vid.Vid, startRow int32, target Target, filler accum.Filler) {
	height := int32(target.Height())
	vi := 0
	for yRow := startRow; yRow < height; yRow++ {
		s.scanContinuingEdges(yRow)
		for vi < len(vids) {
			v := vids[vi]
			if rowOf(s.getY(v)) > yRow {
				break
			}
			vi++
			s.updateEdges(v, figure.Forward)
			s.updateEdges(v, figure.Reverse)
		}
		if yRow >= 0 {
			filler.FillRow(target.RowBytes(int(yRow)), s.sgnArea)
		} else {
			zero(s.sgnArea)
		}
		s.advanceEdges()
	}
}

func zero(a []int16) {
	for i := range a {
		a[i] = 0
	}
}

func (s *scanner) scanContinuingEdges(yRow int32) {
	for _, e := range s.edges {
		cov := e.continuingCov(yRow)
		if cov > 0 {
			e.calculateXLimitsContinuing(yRow)
			e.scanArea(s.dir, cov, s.sgnArea)
		}
	}
}

func (s *scanner) advanceEdges() {
	for _, e := range s.edges {
		e.xBot = e.xBot + e.invSlope
	}
}

func (s *scanner) updateEdges(v vid.Vid, dir figure.Dir) {
	next := s.fig.Next(v, dir)
	if next == v {
		return
	}
	y := s.getY(v)
	ny := s.getY(next)
	switch {
	case ny > y:
		s.addEdge(v, next, dir)
	case ny < y:
		s.removeEdge(v, dir.Opposite())
	}
}

func (s *scanner) addEdge(v0, v1 vid.Vid, dir figure.Dir) {
	p0 := s.fig.Point(v0)
	p1 := s.fig.Point(v1)
	e := newEdge(v1, p0, p1, dir)
	cov := e.startingCov()
	if cov > 0 {
		e.calculateXLimitsStarting()
		e.scanArea(s.dir, cov, s.sgnArea)
	}
	s.edges = append(s.edges, e)
}

func (s *scanner) removeEdge(v1 vid.Vid, dir figure.Dir) {
	if i := s.findEdge(v1, dir); i >= 0 {
		s.edges[i] = s.edges[len(s.edges)-1]
		s.edges = s.edges[:len(s.edges)-1]
	}
}

func (s *scanner) findEdge(v1 vid.Vid, dir figure.Dir) int {
	for i, e := range s.edges {
		if e.v1 == v1 && e.dir == dir {
			return i
		}
	}
	return -1
}

// Fill rasterizes fig onto target, handing each row's accumulated
// coverage to filler. filler must already be configured with the
// desired fill rule (accum.MatteFiller / accum.ColorFiller). sgnArea is
// the per-row signed-area scratch buffer and must be at least
// target.Width() long; it is left zeroed on return. fig must be closed
// (every sub-figure done) before calling Fill.
func Fill(fig *figure.Fig, target Target, filler accum.Filler, sgnArea []int16) {
	if fig.NumPoints() == 0 {
		return
	}
	if !fig.SubIsDone() {
		panic("scan: figure must be closed before Fill")
	}
	if target.Width() > len(sgnArea) {
		panic("scan: sgnArea shorter than target width")
	}

	vids := fig.SortedVids()
	dir := fig.GetDir(vids[0])
	topRow := rowOf(fig.Point(vids[0]).Y)
	start := topRow
	if start < 0 {
		start = 0
	}

	s := newScanner(fig, dir, sgnArea)
	s.scanVertices(vids, start, target, filler)
	zero(sgnArea[target.Width():])
}
