// Package geometry builds the curved connectors and arrowheads that join a
// parent to a child.
//
// A connector is a cubic Bézier "S" curve whose control points are pulled
// along the flow axis, so branches bulge the same way regardless of the
// chosen direction:
//
//	Horizontal:  C1 = (x0 + w/2, y0)   C2 = (x1 - w/2, y1)   w = x1 - x0
//	Vertical:    C1 = (x0, y0 + h/2)   C2 = (x1, y1 - h/2)   h = y1 - y0
//
// Points, vectors and curve sampling come from d2's lib/geo; SVG path data
// is produced with d2's lib/svg path builder.
//
// The arrowhead is one fixed triangular [Marker] shared by every link. It is
// attached at either end of the curve ([Start] or [End]) and oriented along
// the curve tangent at that end, which is what SVG's orient="auto" does.
// [PlaceArrowhead] computes the same placement for renderers that have no
// marker support.
package geometry
