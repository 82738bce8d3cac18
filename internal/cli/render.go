package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeflow/pkg/errors"
)

// renderFlags holds flags for the render command.
type renderFlags struct {
	sceneFlags
	output string
}

// renderCommand creates the render command for drawing a tree file.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [tree-file]",
		Short: "Draw a tree file as a node-link diagram",
		Long: `Draw a tree file (JSON, YAML or TOML) as a node-link diagram.

Each node is a {"name": ..., "children": [...]} object. The diagram flows in
the chosen direction from the root, with curved connectors and arrowheads.

Outputs are written next to the input (eve.json → eve.svg) unless -o is
given. Use -o - to write a single format to stdout.`,
		Example: `  # SVG flowing right (default)
  treeflow render examples/eve.json

  # Top-down with labels, as SVG and PNG
  treeflow render examples/eve.yaml -d down -l -f svg,png

  # Scene geometry as JSON on stdout
  treeflow render examples/eve.toml -f json -o -

  # Let Graphviz draw the pinned positions
  treeflow render examples/eve.json -e graphviz -o eve-gv.svg`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{"json", "yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &flags)
		},
	}

	flags.bindLayout(cmd)
	flags.bindRender(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file, base path, or - for stdout")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, flags *renderFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, err := c.options(ctx, cmd, input, &flags.sceneFlags)
	if err != nil {
		return err
	}
	if flags.output == "-" && len(opts.Formats) > 1 {
		return fmt.Errorf("-o - writes a single format, got %d", len(opts.Formats))
	}

	prog := newProgress(logger)
	toStdout := flags.output == "-"
	var spinner *Spinner
	if !toStdout {
		spinner = newSpinnerWithContext(ctx, "Rendering "+filepath.Base(input)+"...")
		spinner.Start()
	}

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Render failed")
		}
		return err
	}
	if spinner != nil {
		spinner.Stop()
	}

	var stdout io.WriteCloser
	if toStdout {
		if stdout, err = openOutput("-"); err != nil {
			return err
		}
		defer stdout.Close()
	}
	paths, err := writeArtifacts(result.Artifacts, opts.Formats, basePath(flags.output, input), stdout)
	if err != nil {
		return err
	}
	prog.done("render finished", "input", input, "formats", opts.Formats)

	if toStdout {
		return nil
	}
	printSuccess("Rendered %s", StyleHighlight.Render(filepath.Base(input)))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Scene.Direction, result.Stats.NodeCount, result.Stats.LinkCount, result.Stats.LeafCount)
	printNewline()
	printNextStep("Preview in the terminal", "treeflow preview "+input)
	return nil
}

// writeArtifacts writes each requested format to base.<format> and returns
// the written paths in format order. When stdout is non-nil the artifacts are
// written there instead and no files are created.
func writeArtifacts(artifacts map[string][]byte, formats []string, base string, stdout io.Writer) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		data, ok := artifacts[f]
		if !ok {
			return paths, fmt.Errorf("renderer produced no %s output", f)
		}
		if stdout != nil {
			if _, err := stdout.Write(data); err != nil {
				return paths, fmt.Errorf("write %s: %w", f, err)
			}
			continue
		}
		path := base + "." + f
		if err := errors.ValidateOutputPath(path); err != nil {
			return paths, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
