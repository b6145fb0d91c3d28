package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/timesnake/pkg/pipeline"
)

// chartExtensions are the file types loadChart understands.
var chartExtensions = []string{"toml", "yaml", "yml", "json"}

// formatOrder lists output formats in the order they are offered.
var formatOrder = []string{pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON}

// completionCommand creates the completion command.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for timesnake, for example:

  $ source <(timesnake completion bash)
  $ timesnake completion zsh > "${fpath[1]}/_timesnake"
  $ timesnake completion fish | source

Chart arguments complete to .toml, .yaml, .yml and .json files.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// completeChart completes the chart argument found at position pos.
func completeChart(pos int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) != pos {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return chartExtensions, cobra.ShellCompDirectiveFilterFileExt
	}
}

// completeFormats completes a comma-separated format list, offering only
// formats not yet listed.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	listed := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		listed = toComplete[:i+1]
	}
	seen := make(map[string]bool)
	for _, f := range strings.Split(listed, ",") {
		seen[strings.TrimSpace(f)] = true
	}

	var out []string
	for _, f := range formatOrder {
		if !seen[f] {
			out = append(out, listed+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func completeRasterizers(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{pipeline.RasterizerRSVG, pipeline.RasterizerChrome}, cobra.ShellCompDirectiveNoFileComp
}
