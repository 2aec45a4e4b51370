package raster2d

// PlotterOption configures a Plotter during construction.
type PlotterOption func(*plotterOptions)

type plotterOptions struct {
	tolerance float32
	join      JoinStyle
	penWidth  float32
}

func defaultOptions() plotterOptions {
	return plotterOptions{
		tolerance: 0.25,
		join:      MiterJoin(4),
		penWidth:  1,
	}
}

// WithTolerance sets the flatness tolerance (in destination pixels)
// used when subdividing curves and round stroke joins. Smaller values
// produce smoother curves at the cost of more line segments.
func WithTolerance(tol float32) PlotterOption {
	return func(o *plotterOptions) { o.tolerance = tol }
}

// WithJoinStyle sets the default stroke join style, used until a
// later call to Plotter.SetJoinStyle changes it.
func WithJoinStyle(join JoinStyle) PlotterOption {
	return func(o *plotterOptions) { o.join = join }
}

// WithPenWidth sets the default stroke pen width, used until a later
// call to Plotter.SetPenWidth changes it.
func WithPenWidth(w float32) PlotterOption {
	return func(o *plotterOptions) { o.penWidth = w }
}
