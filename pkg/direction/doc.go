// Package direction maps canonical layout coordinates onto screen space for
// one of four flow directions.
//
// The layout engine always grows depth along canonical +y and spreads
// siblings along canonical +x. A [Direction] turns that into a screen
// picture by optionally swapping the axes and negating the delta between a
// node and its parent:
//
//	direction  screen offset (dx, dy)      curve        arrowhead
//	right      (y - py,  x - px)           horizontal   end
//	down       (x - px,  y - py)           vertical     start
//	left       (py - y,  px - x)           horizontal   start
//	up         (px - x,  py - y)           vertical     end
//
// The table is data, not branching: adding a direction is one more row.
//
// Any value outside the four names behaves exactly like [Down]. It is not an
// error; [Normalize] reports whether the fallback was taken so callers can
// warn about it.
package direction
