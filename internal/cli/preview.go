package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"oss.terrastruct.com/d2/lib/geo"

	"github.com/matzehuels/treeflow/pkg/direction"
	"github.com/matzehuels/treeflow/pkg/layout"
	"github.com/matzehuels/treeflow/pkg/render/text"
	"github.com/matzehuels/treeflow/pkg/scene"
	"github.com/matzehuels/treeflow/pkg/tree"
)

var (
	previewActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	previewErrStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// previewCommand creates the interactive terminal preview.
func (c *CLI) previewCommand() *cobra.Command {
	var flags sceneFlags

	cmd := &cobra.Command{
		Use:   "preview [tree-file]",
		Short: "Preview a tree in the terminal and switch directions",
		Long: `Draw a tree file as text in the terminal. Arrow keys switch the flow
direction, tab cycles through them, t toggles labels and q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, err := c.options(ctx, cmd, args[0], &flags)
			if err != nil {
				return err
			}
			if err := opts.ValidateForLayout(); err != nil {
				return err
			}
			t, err := c.newRunner().Load(ctx, opts)
			if err != nil {
				return err
			}

			d, _ := opts.FlowDirection()
			m := newPreviewModel(args[0], t, *opts.Spacing, d)
			m.labels = opts.Labels
			if opts.Cols > 0 && opts.Rows > 0 {
				m.cols, m.rows = opts.Cols, opts.Rows
			}
			m.refresh()

			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	flags.bindLayout(cmd)
	cmd.Flags().BoolVarP(&flags.labels, "labels", "l", false, "show node names")
	cmd.Flags().IntVar(&flags.cols, "cols", 0, "preview width (default: terminal width)")
	cmd.Flags().IntVar(&flags.rows, "rows", 0, "preview height (default: terminal height)")

	return cmd
}

// previewModel is the bubbletea model behind the preview command.
type previewModel struct {
	title   string
	tree    *tree.Node
	spacing layout.Spacing
	dir     direction.Direction
	labels  bool

	cols, rows int

	scene *scene.Scene
	err   error
}

func newPreviewModel(title string, t *tree.Node, s layout.Spacing, d direction.Direction) previewModel {
	return previewModel{
		title:   title,
		tree:    t,
		spacing: s,
		dir:     d,
		cols:    text.DefaultCols,
		rows:    text.DefaultRows,
	}
}

// refresh recomposes the scene for the current direction.
func (m *previewModel) refresh() {
	m.scene, m.err = scene.Build(m.tree, scene.Options{
		Direction: m.dir,
		Spacing:   m.spacing,
		Root:      geo.Point{},
	})
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right":
			m.dir = direction.Right
		case "down":
			m.dir = direction.Down
		case "left":
			m.dir = direction.Left
		case "up":
			m.dir = direction.Up
		case "tab", " ":
			m.dir = nextDirection(m.dir)
		case "t":
			m.labels = !m.labels
			return m, nil
		default:
			return m, nil
		}
		m.refresh()
	case tea.WindowSizeMsg:
		// title, help and a blank line
		m.cols, m.rows = msg.Width, msg.Height-3
		if m.rows < 5 {
			m.rows = 5
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("  ")
	for i, d := range direction.All {
		if i > 0 {
			b.WriteString(" ")
		}
		if d == m.dir {
			b.WriteString(previewActiveStyle.Render("[" + string(d) + "]"))
		} else {
			b.WriteString(previewDimStyle.Render(string(d)))
		}
	}
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render("←↑→↓ direction  tab cycle  t labels  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(previewErrStyle.Render(fmt.Sprintf("%s %v", iconError, m.err)))
		b.WriteString("\n")
		return b.String()
	}

	opts := []text.Option{text.WithSize(m.cols, m.rows)}
	if m.labels {
		opts = append(opts, text.WithLabels())
	}
	b.WriteString(text.Render(m.scene, opts...))
	return b.String()
}

// nextDirection cycles right → down → left → up → right.
func nextDirection(d direction.Direction) direction.Direction {
	for i, x := range direction.All {
		if x == d {
			return direction.All[(i+1)%len(direction.All)]
		}
	}
	return direction.All[0]
}
