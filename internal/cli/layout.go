package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeflow/pkg/errors"
	tfio "github.com/matzehuels/treeflow/pkg/io"
	"github.com/matzehuels/treeflow/pkg/scene"
)

// layoutFlags holds flags for the layout command.
type layoutFlags struct {
	sceneFlags
	output string
}

// layoutCommand creates the layout command, which prints node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout [tree-file]",
		Short: "Print computed node positions",
		Long: `Lay out a tree file and print every node's screen position as a table.

With -o the full scene (nodes, curved links, arrowheads, marker) is exported
as JSON instead.`,
		Example: `  treeflow layout examples/eve.json -d up
  treeflow layout examples/eve.json --root 0,0 -o eve.scene.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, err := c.options(ctx, cmd, args[0], &flags.sceneFlags)
			if err != nil {
				return err
			}

			runner := c.newRunner()
			t, err := runner.Load(ctx, opts)
			if err != nil {
				return err
			}
			sc, err := runner.ComputeScene(ctx, t, opts)
			if err != nil {
				return err
			}

			if flags.output != "" {
				if flags.output != "-" {
					if err := errors.ValidateOutputPath(flags.output); err != nil {
						return err
					}
				}
				w, err := openOutput(flags.output)
				if err != nil {
					return err
				}
				defer w.Close()
				if err := tfio.WriteScene(sc, w); err != nil {
					return err
				}
				if flags.output != "-" {
					printSuccess("Exported scene")
					printFile(flags.output)
				}
				return nil
			}

			printKeyValue("direction", flowLabel(sc.Direction))
			printNewline()
			fmt.Println(nodeTable(sc))
			printStats(sc.Direction, len(sc.Nodes), len(sc.Links), sc.Leaves())
			return nil
		},
	}

	flags.bindLayout(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "export the scene as JSON to this file (- for stdout)")

	return cmd
}

// nodeTable renders the scene nodes in pre-order.
func nodeTable(sc *scene.Scene) string {
	rows := make([][]string, 0, len(sc.Nodes))
	for _, n := range sc.Nodes {
		kind := "leaf"
		if n.Internal {
			kind = "internal"
		}
		rows = append(rows, []string{
			strconv.Itoa(n.Index),
			n.Name,
			strconv.Itoa(n.Depth),
			formatCoord(n.Position.X),
			formatCoord(n.Position.Y),
			kind,
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	numStyle := cellStyle.Foreground(colorCyan)
	dimStyle := cellStyle.Foreground(colorGray)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "NAME", "DEPTH", "X", "Y", "KIND").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 3 || col == 4:
				return numStyle
			case col == 5:
				return dimStyle
			}
			return cellStyle
		}).
		Render()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
