// Package raster2d provides a 2D anti-aliased vector path rasterizer.
//
// # Overview
//
// raster2d renders vector paths (lines and quadratic/cubic Bezier
// curves, filled or stroked) onto an 8-bit coverage mask or a
// premultiplied RGBA8 pixmap. Filling and stroking are built from the
// same small set of primitives:
//
//   - internal/fixed: 16.16 fixed-point scalar arithmetic
//   - internal/figure: the point/sub-figure model swept by the scanner
//   - internal/scan: the active-edge scanline sweep producing per-pixel
//     signed-area deltas
//   - internal/accum: reduction of signed area into coverage, and the
//     matte/color row fillers
//   - internal/flatten: recursive curve flattening
//   - internal/stroke: stroke outline expansion
//
// # Quick start
//
//	p := raster2d.NewPlotter(400, 300)
//	p.MoveTo(50, 50)
//	p.LineTo(350, 50)
//	p.LineTo(200, 250)
//	p.Close()
//	p.Fill(raster2d.NonZero, raster2d.Red)
//
// # Coordinate system
//
// Origin (0,0) at top-left, X increases right, Y increases down,
// matching the destination raster's pixel grid.
package raster2d
