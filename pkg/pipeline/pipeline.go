// Package pipeline provides the complete load → layout → render pipeline for
// treeflow.
//
// The CLI and any embedding application go through this package so that
// defaults, validation and format dispatch behave identically everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: decode the input tree from a file (JSON, YAML or TOML) or take
//     it from [Options.Tree]
//  2. Layout: build the hierarchy, compute canonical positions, map them to
//     the flow direction and compose the scene (see package scene)
//  3. Render: produce artifacts in the requested formats with the chosen
//     engine
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:     "examples/eve.json",
//	    Direction: "down",
//	    Formats:   []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// # Defaults
//
// Unset options take the values of the reference application: direction
// right, sibling spacing 10, parent-child spacing 100, a 400×200 canvas and
// the root anchored at (10, height/2).
package pipeline

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/treeflow/pkg/direction"
	"github.com/matzehuels/treeflow/pkg/errors"
	"github.com/matzehuels/treeflow/pkg/layout"
	"github.com/matzehuels/treeflow/pkg/scene"
	"github.com/matzehuels/treeflow/pkg/tree"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library callers
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 400.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 200.0

	// DefaultRootX is the default horizontal root anchor.
	DefaultRootX = 10.0

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultDirection is the default flow direction.
	DefaultDirection = direction.Right

	// DefaultEngine is the default rendering engine.
	DefaultEngine = EngineNative
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatText = "txt"
)

// Engine constants for the SVG producer.
const (
	EngineNative   = "native"
	EngineGraphviz = "graphviz"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatText: true,
}

// ValidEngines is the set of supported rendering engines.
var ValidEngines = map[string]bool{
	EngineNative:   true,
	EngineGraphviz: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for embedding applications.
type Options struct {
	// Load options
	Input string     `json:"input,omitempty"`
	Tree  *tree.Node `json:"tree,omitempty" validate:"-"`

	// Layout options
	Direction string          `json:"direction,omitempty"`
	Spacing   *layout.Spacing `json:"spacing,omitempty" validate:"-"` // nil uses layout.DefaultSpacing; set values are never replaced
	Root      *[2]float64     `json:"root,omitempty"`                 // nil anchors at (DefaultRootX, Height/2)
	Width     float64         `json:"width,omitempty" validate:"gt=0"`
	Height    float64         `json:"height,omitempty" validate:"gt=0"`

	// Render options
	Formats []string `json:"formats,omitempty" validate:"min=1"`
	Engine  string   `json:"engine,omitempty"`
	Labels  bool     `json:"labels,omitempty"`
	Fit     bool     `json:"fit,omitempty"` // size the SVG to the scene instead of the canvas
	Scale   float64  `json:"scale,omitempty" validate:"gt=0"`
	Cols    int      `json:"cols,omitempty" validate:"gte=0"`
	Rows    int      `json:"rows,omitempty" validate:"gte=0"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" validate:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the loaded input.
	Tree *tree.Node

	// Scene is the composed node-link scene.
	Scene *scene.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	LinkCount  int
	LeafCount  int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEngine checks that an engine is valid.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return errors.New(errors.ErrCodeInvalidEngine,
			"invalid engine: %q (must be one of: native, graphviz)", engine)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates the full pipeline
// configuration. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.Spacing.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	if err := validate.Struct(o); err != nil {
		return optionsError(err)
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that exactly one input source is set.
func (o *Options) ValidateForLoad() error {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	switch {
	case o.Tree == nil && o.Input == "":
		return errors.New(errors.ErrCodeInvalidOptions, "input file or tree is required")
	case o.Tree != nil && o.Input != "":
		return errors.New(errors.ErrCodeInvalidOptions, "input file and tree are mutually exclusive")
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Direction == "" {
		o.Direction = string(DefaultDirection)
	}
	o.EnsureSpacing()
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout sets layout defaults and validates the spacing.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return o.Spacing.Validate()
}

// ValidateForRender sets render defaults and validates formats and engine.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateEngine(o.Engine)
}

// EnsureSpacing returns the spacing, installing the defaults first when none
// was set. Callers overriding a single field go through it so the other
// field keeps its default.
func (o *Options) EnsureSpacing() *layout.Spacing {
	if o.Spacing == nil {
		s := layout.DefaultSpacing()
		o.Spacing = &s
	}
	return o.Spacing
}

// FlowDirection returns the normalized direction and whether it was
// recognized. Unrecognized values map to direction.Fallback.
func (o *Options) FlowDirection() (direction.Direction, bool) {
	return direction.Normalize(o.Direction)
}

// RootPosition returns the root anchor, defaulting to (DefaultRootX, Height/2).
func (o *Options) RootPosition() (x, y float64) {
	if o.Root != nil {
		return o.Root[0], o.Root[1]
	}
	h := o.Height
	if h == 0 {
		h = DefaultHeight
	}
	return DefaultRootX, h / 2
}

// IsGraphviz reports whether the Graphviz engine produces the SVG.
func (o *Options) IsGraphviz() bool {
	return o.Engine == EngineGraphviz
}

func optionsError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(errors.ErrCodeInvalidOptions, err, "validate options")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s (got %v)", strings.ToLower(fe.Field()), tagText(fe), fe.Value()))
	}
	return errors.Wrap(errors.ErrCodeInvalidOptions, err, "%s", strings.Join(msgs, "; "))
}

func tagText(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
