package cli

import (
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeflow/pkg/pipeline"
)

// completionGenerators writes the completion script for each supported shell.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

func (c *CLI) completionCommand() *cobra.Command {
	shells := make([]string, 0, len(completionGenerators))
	for s := range completionGenerators {
		shells = append(shells, s)
	}
	sort.Strings(shells)

	return &cobra.Command{
		Use:   "completion " + strings.Join(shells, "|"),
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for treeflow.

Besides subcommands, the script completes tree files by extension
(.json, .yaml, .yml, .toml), --direction values, --engine values and
comma-separated --format lists such as "svg,png,".`,
		Example: `  # Bash, current session
  source <(treeflow completion bash)

  # Zsh, installed once
  treeflow completion zsh > "${fpath[1]}/_treeflow"

  # Fish
  treeflow completion fish > ~/.config/fish/completions/treeflow.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// completeFormats completes the last element of a comma-separated format
// list, skipping formats already given.
func completeFormats(toComplete string) []string {
	prefix, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix, last = toComplete[:i+1], toComplete[i+1:]
	}
	given := map[string]bool{}
	for _, f := range strings.Split(prefix, ",") {
		given[strings.TrimSpace(f)] = true
	}

	var out []string
	for _, f := range []string{
		pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF,
		pipeline.FormatJSON, pipeline.FormatDOT, pipeline.FormatText,
	} {
		if !given[f] && strings.HasPrefix(f, last) {
			out = append(out, prefix+f)
		}
	}
	return out
}
