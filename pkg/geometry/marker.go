package geometry

import (
	"oss.terrastruct.com/d2/lib/geo"
	"oss.terrastruct.com/d2/lib/svg"
)

// MarkerID is the id every link references.
const MarkerID = "arrowhead"

// Marker is the triangular arrowhead definition shared by all links.
// Width is the half-height of the triangle base, Height its length.
type Marker struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultMarker returns the fixed 3×10 arrowhead.
func DefaultMarker() Marker {
	return Marker{ID: MarkerID, Width: 3, Height: 10}
}

// RefX is the marker x coordinate aligned with the path vertex (the tip).
func (m Marker) RefX() float64 { return m.Height }

// RefY is the marker y coordinate aligned with the path vertex.
func (m Marker) RefY() float64 { return m.Width }

// Data returns the triangle outline: base on the y axis, tip at (Height, Width).
func (m Marker) Data() string {
	ctx := svg.NewSVGPathContext(geo.NewPoint(0, 0), 1, 1)
	ctx.StartAt(ctx.Absolute(0, 0))
	ctx.L(false, 0, m.Width*2)
	ctx.L(false, m.Height, m.Width)
	ctx.Z()
	return ctx.PathData()
}
