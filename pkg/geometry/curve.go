package geometry

import (
	"math"

	"oss.terrastruct.com/d2/lib/geo"
	"oss.terrastruct.com/d2/lib/svg"
)

// Orientation selects the axis the control points are pulled along.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// ArrowEnd names the curve endpoint that carries the arrowhead.
type ArrowEnd string

const (
	Start ArrowEnd = "start"
	End   ArrowEnd = "end"
)

// Path is a cubic Bézier segment.
type Path struct {
	Start geo.Point `json:"start"`
	C1    geo.Point `json:"c1"`
	C2    geo.Point `json:"c2"`
	End   geo.Point `json:"end"`
}

// Curve returns the connector from start to end for the given orientation.
// Any orientation other than Horizontal is treated as Vertical.
func Curve(start, end geo.Point, o Orientation) Path {
	p := Path{Start: start, End: end}
	if o == Horizontal {
		mid := (end.X - start.X) / 2
		p.C1 = geo.Point{X: start.X + mid, Y: start.Y}
		p.C2 = geo.Point{X: end.X - mid, Y: end.Y}
		return p
	}
	mid := (end.Y - start.Y) / 2
	p.C1 = geo.Point{X: start.X, Y: start.Y + mid}
	p.C2 = geo.Point{X: end.X, Y: end.Y - mid}
	return p
}

// Data returns the SVG path data ("M x y C ...") in absolute coordinates.
func (p Path) Data() string {
	ctx := svg.NewSVGPathContext(geo.NewPoint(0, 0), 1, 1)
	ctx.StartAt(ctx.Absolute(p.Start.X, p.Start.Y))
	ctx.C(false, p.C1.X, p.C1.Y, p.C2.X, p.C2.Y, p.End.X, p.End.Y)
	return ctx.PathData()
}

// At returns the point at parameter t in [0, 1].
func (p Path) At(t float64) geo.Point {
	bc := geo.NewBezierCurve([]*geo.Point{p.Start.Copy(), p.C1.Copy(), p.C2.Copy(), p.End.Copy()})
	return *bc.At(t)
}

// Sample returns n+1 evenly parameterized points from Start to End.
func (p Path) Sample(n int) []geo.Point {
	if n < 1 {
		n = 1
	}
	pts := make([]geo.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, p.At(float64(i)/float64(n)))
	}
	return pts
}

// Tangent returns the unit direction of travel at the given end. Degenerate
// control points fall back to the chord; a zero-length path yields (0, 0).
func (p Path) Tangent(at ArrowEnd) geo.Vector {
	var v geo.Vector
	if at == Start {
		v = p.Start.VectorTo(&p.C1)
	} else {
		v = p.C2.VectorTo(&p.End)
	}
	if v.Length() == 0 {
		v = p.Start.VectorTo(&p.End)
	}
	if v.Length() == 0 {
		return geo.NewVector(0, 0)
	}
	return v.Unit()
}

// Arrowhead is the placement of the marker on one link.
type Arrowhead struct {
	At    geo.Point `json:"at"`
	Angle float64   `json:"angle"` // degrees, clockwise from +x in screen space
}

// PlaceArrowhead positions the marker at the chosen end of p, rotated along
// the tangent.
func PlaceArrowhead(p Path, at ArrowEnd) Arrowhead {
	pos := p.End
	if at == Start {
		pos = p.Start
	}
	t := p.Tangent(at)
	angle := 0.0
	if t.Length() != 0 {
		angle = math.Atan2(t[1], t[0]) * 180 / math.Pi
	}
	return Arrowhead{At: pos, Angle: math.Round(angle*1000) / 1000}
}
