package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/matzehuels/treeflow/pkg/geometry"
	"github.com/matzehuels/treeflow/pkg/scene"
)

const defaultMargin = 20

// Option configures [Render].
type Option func(*renderer)

type renderer struct {
	style   Style
	labels  bool
	width   float64
	height  float64
	margin  float64
	classes bool
}

// WithLabels draws each node's name next to its circle.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

// WithCanvas fixes the viewport to 0 0 w h. Non-positive sizes keep the
// fitted viewBox.
func WithCanvas(w, h float64) Option {
	return func(r *renderer) { r.width, r.height = w, h }
}

// WithMargin sets the padding around a fitted viewBox.
func WithMargin(m float64) Option { return func(r *renderer) { r.margin = m } }

// WithClasses adds tree/nodes/links class names to the groups for external CSS.
func WithClasses() Option { return func(r *renderer) { r.classes = true } }

// Render writes sc as an SVG document.
func Render(sc *scene.Scene, opts ...Option) []byte {
	r := renderer{style: DefaultStyle(), margin: defaultMargin}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	x, y, w, h := r.viewBox(sc)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%.0f" height="%.0f">`+"\n",
		num(x), num(y), num(w), num(h), w, h)

	r.renderDefs(&buf, sc.Marker)
	r.renderLinks(&buf, sc)
	r.renderNodes(&buf, sc)
	if r.labels {
		r.renderLabels(&buf, sc)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *renderer) viewBox(sc *scene.Scene) (x, y, w, h float64) {
	if r.width > 0 && r.height > 0 {
		return 0, 0, r.width, r.height
	}
	e := sc.Bounds()
	pad := r.margin + r.style.NodeRadius
	if r.labels {
		pad += r.style.LabelFontSize * 4
	}
	return e.MinX - pad, e.MinY - pad, e.Width() + 2*pad, e.Height() + 2*pad
}

func (r *renderer) renderDefs(buf *bytes.Buffer, m geometry.Marker) {
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <marker id="%s" markerWidth="%s" markerHeight="%s" refX="%s" refY="%s" orient="auto" markerUnits="strokeWidth">`+"\n",
		escapeXML(m.ID), num(r.style.MarkerWidth), num(r.style.MarkerHeight), num(m.RefX()), num(m.RefY()))
	fmt.Fprintf(buf, `      <path d="%s" fill="%s"/>`+"\n", m.Data(), r.style.ArrowFill)
	buf.WriteString("    </marker>\n")
	buf.WriteString("  </defs>\n")
}

func (r *renderer) renderLinks(buf *bytes.Buffer, sc *scene.Scene) {
	fmt.Fprintf(buf, `  <g%s fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s">`+"\n",
		r.class("links"), r.style.LinkStroke, num(r.style.LinkOpacity), num(r.style.LinkWidth))
	for _, l := range sc.Links {
		attr := "marker-end"
		if l.Arrowhead == geometry.Start {
			attr = "marker-start"
		}
		fmt.Fprintf(buf, `    <path d="%s" %s="url(#%s)"/>`+"\n", l.Path.Data(), attr, escapeXML(sc.Marker.ID))
	}
	buf.WriteString("  </g>\n")
}

func (r *renderer) renderNodes(buf *bytes.Buffer, sc *scene.Scene) {
	fmt.Fprintf(buf, "  <g%s>\n", r.class("nodes"))
	for _, n := range sc.Nodes {
		fill := r.style.LeafFill
		if n.Internal {
			fill = r.style.InternalFill
		}
		fmt.Fprintf(buf, `    <circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			num(n.Position.X), num(n.Position.Y), num(r.style.NodeRadius), fill)
	}
	buf.WriteString("  </g>\n")
}

func (r *renderer) renderLabels(buf *bytes.Buffer, sc *scene.Scene) {
	fmt.Fprintf(buf, `  <g%s font-family="%s" font-size="%s" fill="%s">`+"\n",
		r.class("labels"), escapeXML(r.style.LabelFontStack), num(r.style.LabelFontSize), r.style.LabelColor)
	gap := r.style.NodeRadius * 2
	for _, n := range sc.Nodes {
		anchor, dx := "start", gap
		if n.Internal {
			anchor, dx = "end", -gap
		}
		fmt.Fprintf(buf, `    <text x="%s" y="%s" dy="0.35em" text-anchor="%s">%s</text>`+"\n",
			num(n.Position.X+dx), num(n.Position.Y), anchor, escapeXML(n.Name))
	}
	buf.WriteString("  </g>\n")
}

func (r *renderer) class(name string) string {
	if !r.classes {
		return ""
	}
	return ` class="` + name + `"`
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
