package raster2d

// Mask is an 8-bit coverage buffer: the rasterization sink a Plotter
// writes into when FillMask/StrokeMask bypass color compositing.
// Values range from 0 (no coverage) to 255 (full coverage).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (no coverage).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// RowBytes returns the coverage bytes of row y, satisfying the
// destination a scan.Fill-driven accum.MatteFiller writes into.
func (m *Mask) RowBytes(y int) []byte {
	return m.data[y*m.width : (y+1)*m.width]
}

// At returns the coverage value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Clear resets every coverage byte to 0.
func (m *Mask) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}
