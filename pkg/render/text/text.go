// Package text rasterizes a scene onto a character grid for terminals.
//
// Connectors are sampled along their Bézier paths and plotted as dots,
// arrowheads become one of > < v ^ by tangent angle, internal nodes are 'o'
// and leaves '*'. The scene is scaled uniformly to fit the grid, with the
// vertical scale halved to compensate for tall terminal cells.
package text

import (
	"math"
	"strings"

	"github.com/matzehuels/treeflow/pkg/scene"
)

const (
	DefaultCols = 80
	DefaultRows = 24

	cellAspect = 2.0
	samples    = 48
)

// Option configures [Render].
type Option func(*raster)

type raster struct {
	cols, rows int
	labels     bool
	grid       [][]rune
}

// WithSize sets the grid dimensions. Values below 1 keep the defaults.
func WithSize(cols, rows int) Option {
	return func(r *raster) {
		if cols > 0 {
			r.cols = cols
		}
		if rows > 0 {
			r.rows = rows
		}
	}
}

// WithLabels writes node names to the right of leaves.
func WithLabels() Option { return func(r *raster) { r.labels = true } }

// Render draws sc and returns the grid as newline-terminated rows with
// trailing blanks removed.
func Render(sc *scene.Scene, opts ...Option) string {
	r := &raster{cols: DefaultCols, rows: DefaultRows}
	for _, opt := range opts {
		opt(r)
	}
	r.grid = make([][]rune, r.rows)
	for i := range r.grid {
		r.grid[i] = []rune(strings.Repeat(" ", r.cols))
	}

	project := r.projection(sc)

	for _, l := range sc.Links {
		for _, p := range l.Path.Sample(samples) {
			c, row := project(p.X, p.Y)
			r.set(c, row, '.', false)
		}
	}
	for _, l := range sc.Links {
		c, row := project(l.Head.At.X, l.Head.At.Y)
		r.set(c, row, arrowRune(l.Head.Angle), true)
	}
	for _, n := range sc.Nodes {
		c, row := project(n.Position.X, n.Position.Y)
		ch := '*'
		if n.Internal {
			ch = 'o'
		}
		r.set(c, row, ch, true)
		if r.labels && !n.Internal {
			col := c + 2
			for _, ch := range n.Name {
				r.set(col, row, ch, false)
				col++
			}
		}
	}

	var b strings.Builder
	for _, line := range r.grid {
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *raster) projection(sc *scene.Scene) func(x, y float64) (int, int) {
	e := sc.Bounds()
	cols := float64(r.cols - 1)
	if r.labels {
		cols = float64(r.cols) * 0.75
	}
	rows := float64(r.rows - 1)

	sx := math.Inf(1)
	if e.Width() > 0 {
		sx = cols / e.Width()
	}
	sy := math.Inf(1)
	if e.Height() > 0 {
		sy = rows * cellAspect / e.Height()
	}
	scale := min(sx, sy)
	if math.IsInf(scale, 1) {
		scale = 1
	}

	// Center the drawing in the grid.
	offX := (float64(r.cols-1) - e.Width()*scale) / 2
	if r.labels {
		offX = 0
	}
	offY := (rows - e.Height()*scale/cellAspect) / 2
	return func(x, y float64) (int, int) {
		c := int(math.Round((x-e.MinX)*scale + offX))
		row := int(math.Round((y-e.MinY)*scale/cellAspect + offY))
		return c, row
	}
}

func (r *raster) set(c, row int, ch rune, overwrite bool) {
	if row < 0 || row >= r.rows || c < 0 || c >= r.cols {
		return
	}
	if !overwrite && r.grid[row][c] != ' ' {
		return
	}
	r.grid[row][c] = ch
}

// arrowRune picks the glyph closest to a screen angle in degrees.
func arrowRune(angle float64) rune {
	a := math.Mod(angle+360, 360)
	switch {
	case a >= 45 && a < 135:
		return 'v'
	case a >= 135 && a < 225:
		return '<'
	case a >= 225 && a < 315:
		return '^'
	default:
		return '>'
	}
}
