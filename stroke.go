package raster2d

import "github.com/gogpu/raster2d/internal/stroke"

// JoinStyle selects how a stroke's offset segments meet at a vertex.
type JoinStyle = stroke.JoinStyle

// MiterJoin returns a miter join style with the given length limit:
// the ratio of the miter's length to the stroke width beyond which the
// join falls back to a bevel.
func MiterJoin(limit float32) JoinStyle { return stroke.MiterJoin(limit) }

// BevelJoin returns a bevel join style.
func BevelJoin() JoinStyle { return stroke.BevelJoin() }

// RoundJoin returns a round join style.
func RoundJoin() JoinStyle { return stroke.RoundJoin() }
