package svg

// Style holds the presentation attributes of the native renderer.
type Style struct {
	NodeRadius     float64
	InternalFill   string
	LeafFill       string
	LinkStroke     string
	LinkOpacity    float64
	LinkWidth      float64
	ArrowFill      string
	MarkerWidth    float64 // viewport size in stroke widths
	MarkerHeight   float64
	LabelColor     string
	LabelFontSize  float64
	LabelFontStack string
}

// DefaultStyle returns the standard grey d3-like appearance.
func DefaultStyle() Style {
	return Style{
		NodeRadius:     2.5,
		InternalFill:   "#555",
		LeafFill:       "#999",
		LinkStroke:     "#555",
		LinkOpacity:    0.4,
		LinkWidth:      1.5,
		ArrowFill:      "#555",
		MarkerWidth:    10,
		MarkerHeight:   10,
		LabelColor:     "#333",
		LabelFontSize:  10,
		LabelFontStack: "sans-serif",
	}
}
