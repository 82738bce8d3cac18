package text

import (
	"strings"
	"testing"

	"oss.terrastruct.com/d2/lib/geo"

	"github.com/matzehuels/treeflow/pkg/direction"
	"github.com/matzehuels/treeflow/pkg/layout"
	"github.com/matzehuels/treeflow/pkg/scene"
	"github.com/matzehuels/treeflow/pkg/tree"
)

func build(t *testing.T, root *tree.Node, d direction.Direction) *scene.Scene {
	t.Helper()
	sc, err := scene.Build(root, scene.Options{Direction: d, Root: geo.Point{}, Spacing: layout.DefaultSpacing()})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return sc
}

func TestRenderGlyphs(t *testing.T) {
	sc := build(t, tree.New("r", tree.New("a"), tree.New("b"), tree.New("c")), direction.Right)
	out := Render(sc, WithSize(40, 12))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("rows = %d, want 12", len(lines))
	}
	if got := strings.Count(out, "o"); got != 1 {
		t.Errorf("internal glyphs = %d, want 1\n%s", got, out)
	}
	if got := strings.Count(out, "*"); got != 3 {
		t.Errorf("leaf glyphs = %d, want 3\n%s", got, out)
	}
	for _, line := range lines {
		if len(line) > 40 {
			t.Errorf("line wider than grid: %q", line)
		}
	}
}

func TestRenderSingleNode(t *testing.T) {
	out := Render(build(t, tree.New("solo"), direction.Down), WithSize(5, 3), WithLabels())
	if !strings.Contains(out, "*") {
		t.Errorf("missing node glyph:\n%s", out)
	}
}

func TestRenderLabels(t *testing.T) {
	sc := build(t, tree.New("r", tree.New("alpha"), tree.New("beta")), direction.Right)
	out := Render(sc, WithSize(60, 10), WithLabels())
	if !strings.Contains(out, "alpha") || !strings.Contains(out, "beta") {
		t.Errorf("labels missing:\n%s", out)
	}
}

func TestArrowRune(t *testing.T) {
	tests := map[float64]rune{0: '>', 90: 'v', 180: '<', -180: '<', -90: '^', 30: '>', 330: '>', 300: '^'}
	for angle, want := range tests {
		if got := arrowRune(angle); got != want {
			t.Errorf("arrowRune(%v) = %q, want %q", angle, got, want)
		}
	}
}

func TestRenderNonASCIILabel(t *testing.T) {
	sc := build(t, tree.New("r", tree.New("Énos"), tree.New("Ævar")), direction.Right)
	out := Render(sc, WithSize(40, 12), WithLabels())

	for _, name := range []string{"Énos", "Ævar"} {
		if !strings.Contains(out, name) {
			t.Errorf("label %q not drawn contiguously:\n%s", name, out)
		}
	}
}
