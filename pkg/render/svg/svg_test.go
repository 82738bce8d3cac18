package svg

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"oss.terrastruct.com/d2/lib/geo"

	"github.com/matzehuels/treeflow/pkg/direction"
	"github.com/matzehuels/treeflow/pkg/layout"
	"github.com/matzehuels/treeflow/pkg/scene"
	"github.com/matzehuels/treeflow/pkg/tree"
)

func buildScene(t *testing.T, d direction.Direction, root *tree.Node) *scene.Scene {
	t.Helper()
	sc, err := scene.Build(root, scene.Options{
		Direction: d,
		Root:      geo.Point{X: 10, Y: 100},
		Spacing:   layout.DefaultSpacing(),
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return sc
}

func sample() *tree.Node {
	return tree.New("root", tree.New("a", tree.New("a1")), tree.New("b"))
}

func TestRenderWellFormed(t *testing.T) {
	out := Render(buildScene(t, direction.Right, sample()), WithLabels())

	dec := xml.NewDecoder(strings.NewReader(string(out)))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML: %v\n%s", err, out)
		}
	}
}

func TestRenderElements(t *testing.T) {
	out := string(Render(buildScene(t, direction.Right, sample())))

	if got := strings.Count(out, "<circle"); got != 4 {
		t.Errorf("circles = %d, want 4", got)
	}
	if got := strings.Count(out, `marker-end="url(#arrowhead)"`); got != 3 {
		t.Errorf("marker-end paths = %d, want 3", got)
	}
	if strings.Contains(out, "marker-start") {
		t.Error("right flow should not use marker-start")
	}
	for _, want := range []string{
		`<marker id="arrowhead" markerWidth="10" markerHeight="10" refX="10" refY="3" orient="auto" markerUnits="strokeWidth">`,
		`d="M 0 0 L 0 6 L 10 3 Z"`,
		`fill="none" stroke="#555" stroke-opacity="0.4" stroke-width="1.5"`,
		`<circle cx="10" cy="100" r="2.5" fill="#555"/>`,
		`fill="#999"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "<text") {
		t.Error("labels rendered without WithLabels")
	}
}

func TestRenderMarkerStart(t *testing.T) {
	for _, d := range []direction.Direction{direction.Down, direction.Left} {
		out := string(Render(buildScene(t, d, sample())))
		if got := strings.Count(out, `marker-start="url(#arrowhead)"`); got != 3 {
			t.Errorf("%s: marker-start paths = %d, want 3", d, got)
		}
	}
}

func TestRenderCanvas(t *testing.T) {
	out := string(Render(buildScene(t, direction.Right, sample()), WithCanvas(400, 200)))
	if !strings.Contains(out, `viewBox="0 0 400 200" width="400" height="200"`) {
		t.Errorf("canvas viewBox missing:\n%s", out)
	}
}

func TestRenderFittedViewBox(t *testing.T) {
	out := string(Render(buildScene(t, direction.Right, tree.New("solo")), WithMargin(10)))
	// Single node at (10,100), padding 10 + r 2.5.
	if !strings.Contains(out, `viewBox="-2.5 87.5 25 25"`) {
		t.Errorf("unexpected viewBox:\n%s", out)
	}
}

func TestRenderLabelsEscaped(t *testing.T) {
	out := string(Render(buildScene(t, direction.Down, tree.New("a<b", tree.New("c&d"))), WithLabels(), WithClasses()))
	if !strings.Contains(out, "a&lt;b") || !strings.Contains(out, "c&amp;d") {
		t.Errorf("labels not escaped:\n%s", out)
	}
	if !strings.Contains(out, `class="labels"`) {
		t.Error("missing labels class")
	}
}
