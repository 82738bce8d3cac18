package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeflow/pkg/direction"
	"github.com/matzehuels/treeflow/pkg/errors"
	"github.com/matzehuels/treeflow/pkg/layout"
	"github.com/matzehuels/treeflow/pkg/render"
	"github.com/matzehuels/treeflow/pkg/tree"
)

func eve() *tree.Node {
	return tree.New("Eve",
		tree.New("Cain"),
		tree.New("Seth", tree.New("Enos"), tree.New("Noam")),
		tree.New("Abel"),
		tree.New("Awan", tree.New("Enoch")),
		tree.New("Azura"),
	)
}

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(&strings.Builder{}, log.Options{}))
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"txt", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateEngine(t *testing.T) {
	tests := []struct {
		engine  string
		wantErr bool
	}{
		{"native", false},
		{"graphviz", false},
		{"d3", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateEngine(tt.engine)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEngine(%q) error = %v, wantErr %v", tt.engine, err, tt.wantErr)
		}
	}
}

func TestSetDefaults(t *testing.T) {
	opts := Options{Tree: eve()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if opts.Direction != "right" {
		t.Errorf("Direction = %q, want right", opts.Direction)
	}
	if opts.Spacing == nil || *opts.Spacing != layout.DefaultSpacing() {
		t.Errorf("Spacing = %+v, want defaults", opts.Spacing)
	}
	if opts.Width != 400 || opts.Height != 200 {
		t.Errorf("canvas = %vx%v, want 400x200", opts.Width, opts.Height)
	}
	if x, y := opts.RootPosition(); x != 10 || y != 100 {
		t.Errorf("RootPosition() = (%v,%v), want (10,100)", x, y)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Engine != EngineNative || opts.Logger == nil {
		t.Errorf("Engine = %q, Logger = %v", opts.Engine, opts.Logger)
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call error: %v", err)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"no input", Options{}, errors.ErrCodeInvalidOptions},
		{"both inputs", Options{Tree: eve(), Input: "x.json"}, errors.ErrCodeInvalidOptions},
		{"negative spacing", Options{Tree: eve(), Spacing: &layout.Spacing{Sibling: -1, ParentChild: 100}}, errors.ErrCodeInvalidSpacing},
		{"zero spacing", Options{Tree: eve(), Spacing: &layout.Spacing{}}, errors.ErrCodeInvalidSpacing},
		{"zero sibling", Options{Tree: eve(), Spacing: &layout.Spacing{Sibling: 0, ParentChild: 100}}, errors.ErrCodeInvalidSpacing},
		{"zero parent-child", Options{Tree: eve(), Spacing: &layout.Spacing{Sibling: 10}}, errors.ErrCodeInvalidSpacing},
		{"bad format", Options{Tree: eve(), Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad engine", Options{Tree: eve(), Engine: "d3"}, errors.ErrCodeInvalidEngine},
		{"negative width", Options{Tree: eve(), Width: -5}, errors.ErrCodeInvalidOptions},
		{"negative rows", Options{Tree: eve(), Rows: -1}, errors.ErrCodeInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestExecuteRejectsZeroSpacing(t *testing.T) {
	opts := Options{
		Tree:    tree.New("r", tree.New("a"), tree.New("b")),
		Spacing: &layout.Spacing{},
		Formats: []string{FormatJSON},
	}
	result, err := quietRunner().Execute(context.Background(), opts)
	if !errors.IsInvalidSpacing(err) {
		t.Fatalf("Execute() error = %v, want INVALID_SPACING", err)
	}
	if result != nil {
		t.Error("Execute() should not return a result for invalid spacing")
	}
}

func TestEnsureSpacing(t *testing.T) {
	var opts Options
	opts.EnsureSpacing().Sibling = 24
	if *opts.Spacing != (layout.Spacing{Sibling: 24, ParentChild: layout.DefaultParentChild}) {
		t.Errorf("Spacing = %+v, want sibling override on defaults", *opts.Spacing)
	}

	set := &layout.Spacing{Sibling: 0, ParentChild: 5}
	opts = Options{Spacing: set}
	opts.SetLayoutDefaults()
	if opts.Spacing != set || opts.Spacing.Sibling != 0 {
		t.Errorf("SetLayoutDefaults() replaced an explicit spacing: %+v", *opts.Spacing)
	}
}

func TestFlowDirection(t *testing.T) {
	opts := Options{Direction: "sideways"}
	d, ok := opts.FlowDirection()
	if ok || d != direction.Down {
		t.Errorf("FlowDirection() = (%q, %v), want (down, false)", d, ok)
	}
}

func TestExecute(t *testing.T) {
	res, err := quietRunner().Execute(context.Background(), Options{
		Tree:    eve(),
		Formats: []string{FormatSVG, FormatJSON, FormatDOT, FormatText},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if res.Stats.NodeCount != 9 || res.Stats.LinkCount != 8 || res.Stats.LeafCount != 6 {
		t.Errorf("Stats = %+v", res.Stats)
	}
	for _, f := range []string{FormatSVG, FormatJSON, FormatDOT, FormatText} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("artifact %s is empty", f)
		}
	}
	if !strings.Contains(string(res.Artifacts[FormatSVG]), `viewBox="0 0 400 200"`) {
		t.Error("svg not sized to the default canvas")
	}

	var doc map[string]any
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &doc); err != nil {
		t.Fatalf("scene JSON invalid: %v", err)
	}
	if doc["direction"] != "right" {
		t.Errorf("direction = %v, want right", doc["direction"])
	}

	root := res.Scene.Nodes[0].Position
	if root.X != 10 || root.Y != 100 {
		t.Errorf("root = %v, want (10,100)", root)
	}
}

func TestExecuteFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	doc := "name: r\nchildren:\n  - name: a\n  - name: b\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := quietRunner().Execute(context.Background(), Options{
		Input:     path,
		Direction: "up",
		Root:      &[2]float64{50, 150},
		Formats:   []string{FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Tree.Name != "r" || res.Scene.Direction != direction.Up {
		t.Errorf("tree %q direction %q", res.Tree.Name, res.Scene.Direction)
	}
	if p := res.Scene.Nodes[1].Position; p.Y != 50 {
		t.Errorf("child y = %v, want 50", p.Y)
	}
}

func TestExecuteUnknownDirection(t *testing.T) {
	res, err := quietRunner().Execute(context.Background(), Options{Tree: eve(), Direction: "north-east", Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Scene.Direction != direction.Down {
		t.Errorf("Direction = %q, want down", res.Scene.Direction)
	}
}

func TestExecuteCyclicInput(t *testing.T) {
	a := tree.New("a")
	a.Children = []*tree.Node{tree.New("b", a)}

	res, err := quietRunner().Execute(context.Background(), Options{Tree: a, Formats: []string{FormatJSON}})
	if res != nil {
		t.Error("result should be nil on error")
	}
	if !errors.IsInvalidInput(err) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderFitAndLabels(t *testing.T) {
	r := quietRunner()
	opts := Options{Tree: eve(), Fit: true, Labels: true, Formats: []string{FormatSVG}}
	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	out := string(res.Artifacts[FormatSVG])
	if strings.Contains(out, `viewBox="0 0 400 200"`) {
		t.Error("Fit should not use the fixed canvas")
	}
	if !strings.Contains(out, ">Azura</text>") {
		t.Error("labels missing")
	}
}

func TestRenderGraphvizRaster(t *testing.T) {
	opts := Options{Tree: eve(), Engine: EngineGraphviz, Formats: []string{FormatSVG, FormatPNG, FormatPDF}}
	result, err := quietRunner().Execute(context.Background(), opts)

	if !render.Available() {
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Fatalf("Execute() error = %v, want UNSUPPORTED without rsvg-convert", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.HasPrefix(string(result.Artifacts[FormatPNG]), "\x89PNG") {
		t.Error("png artifact is not PNG data")
	}
	if !strings.HasPrefix(string(result.Artifacts[FormatPDF]), "%PDF") {
		t.Error("pdf artifact is not PDF data")
	}
	if !strings.Contains(string(result.Artifacts[FormatSVG]), "<svg") {
		t.Error("svg artifact is not SVG")
	}
}
