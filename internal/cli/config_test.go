package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/treeflow/pkg/errors"
	"github.com/matzehuels/treeflow/pkg/pipeline"
)

const sampleConfig = `
direction = "left"
formats = ["svg", "txt"]
labels = true
root = [20, 50]
colour = "red"

[canvas]
width = 800
height = 100

[spacing]
sibling = 24
parent_child = 80

[text]
cols = 120
rows = 40
`

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "treeflow.toml", sampleConfig)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "left", cfg.Direction)
	assert.Equal(t, []string{"svg", "txt"}, cfg.Formats)
	require.NotNil(t, cfg.Labels)
	assert.True(t, *cfg.Labels)
	assert.Nil(t, cfg.Fit)
	require.NotNil(t, cfg.Spacing.Sibling)
	assert.Equal(t, 24.0, *cfg.Spacing.Sibling)
	require.NotNil(t, cfg.Spacing.ParentChild)
	assert.Equal(t, 80.0, *cfg.Spacing.ParentChild)
	assert.Equal(t, 800.0, cfg.Canvas.Width)
	assert.Equal(t, 120, cfg.Text.Cols)
	assert.Equal(t, []string{"colour"}, cfg.unknown)
}

func TestLoadConfigMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Nil(t, cfg, "absent default config is not an error")

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidOptions))
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"syntax":     "direction = ",
		"bad root":   "root = [1, 2, 3]",
		"wrong type": "labels = \"yes\"",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, name+".toml", doc)
			_, err := loadConfig(path)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidOptions), "got %v", err)
		})
	}
}

func TestConfigApplyFlagsWin(t *testing.T) {
	path := writeFile(t, t.TempDir(), "treeflow.toml", sampleConfig)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	var opts pipeline.Options
	changed := func(flag string) bool { return flag == "direction" || flag == "sibling" }
	opts.Direction = "up"
	opts.EnsureSpacing().Sibling = 5
	cfg.applyTo(&opts, changed)

	assert.Equal(t, "up", opts.Direction, "explicit flag keeps its value")
	assert.Equal(t, 5.0, opts.Spacing.Sibling)
	assert.Equal(t, 80.0, opts.Spacing.ParentChild)
	assert.Equal(t, &[2]float64{20, 50}, opts.Root)
	assert.Equal(t, []string{"svg", "txt"}, opts.Formats)
	assert.True(t, opts.Labels)
	assert.Equal(t, 100.0, opts.Height)
	assert.Equal(t, 40, opts.Rows)
}

func TestConfigApplyNil(t *testing.T) {
	var cfg *fileConfig
	opts := pipeline.Options{Direction: "down"}
	cfg.applyTo(&opts, func(string) bool { return false })
	assert.Equal(t, pipeline.Options{Direction: "down"}, opts)
}

func TestOptionsLayering(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, configFileName, sampleConfig)

	c := New(io.Discard, LogInfo)
	var flags sceneFlags
	cmd := &cobra.Command{Use: "test"}
	flags.bindLayout(cmd)
	flags.bindRender(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"-d", "down", "--width", "300", "-f", "json"}))

	opts, err := c.options(cmd.Context(), cmd, "eve.json", &flags)
	require.NoError(t, err)

	assert.Equal(t, "eve.json", opts.Input)
	assert.Equal(t, "down", opts.Direction)
	assert.Equal(t, 300.0, opts.Width)
	assert.Equal(t, 100.0, opts.Height)
	assert.Equal(t, []string{"json"}, opts.Formats)
	assert.Equal(t, 24.0, opts.Spacing.Sibling)
	assert.True(t, opts.Labels)
}

func TestConfigExplicitZeroSpacing(t *testing.T) {
	path := writeFile(t, t.TempDir(), "treeflow.toml", "[spacing]\nsibling = 0\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	var opts pipeline.Options
	cfg.applyTo(&opts, func(string) bool { return false })
	require.NotNil(t, opts.Spacing, "an explicit 0 must reach the options")
	assert.Equal(t, 0.0, opts.Spacing.Sibling)
	assert.Equal(t, 100.0, opts.Spacing.ParentChild)

	opts.Tree = previewTree()
	assert.True(t, errors.IsInvalidSpacing(opts.ValidateAndSetDefaults()))
}

func TestConfigWithoutSpacingKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "treeflow.toml", "direction = \"up\"\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	var opts pipeline.Options
	cfg.applyTo(&opts, func(string) bool { return false })
	assert.Nil(t, opts.Spacing)
}
