package cli

import (
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/render/styles"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tagcloud.

Besides commands and flags, the scripts complete the values of --source,
--index, --format and --style, so "tagcloud generate --style <TAB>" lists
the available styles.

Bash:
  $ source <(tagcloud completion bash)
  $ tagcloud completion bash > /etc/bash_completion.d/tagcloud

Zsh (needs compinit in ~/.zshrc):
  $ tagcloud completion zsh > "${fpath[1]}/_tagcloud"

Fish:
  $ tagcloud completion fish > ~/.config/fish/completions/tagcloud.fish

PowerShell:
  PS> tagcloud completion powershell | Out-String | Invoke-Expression

Start a new shell after installing a script.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}

// completeValues registers a fixed list of completions for an enum-like flag.
// Flags the command does not define are ignored.
func completeValues(cmd *cobra.Command, flag string, values []string) {
	if cmd.Flags().Lookup(flag) == nil {
		return
	}
	_ = cmd.RegisterFlagCompletionFunc(flag, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
}

func sourceNames() []string { return slices.Sorted(maps.Keys(pipeline.ValidSources)) }

func formatNames() []string { return slices.Sorted(maps.Keys(pipeline.ValidFormats)) }

func indexNames() []string { return []string{pipeline.IndexGrid, pipeline.IndexScan} }

func styleNames() []string { return slices.Clone(styles.Names) }
