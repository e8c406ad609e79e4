package cli

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorsmith/pkg/pipeline"
	"github.com/matzehuels/floorsmith/pkg/render/floor"
	"github.com/matzehuels/floorsmith/pkg/synth"
)

// completionCommand writes a shell completion script to stdout.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for floorsmith.

  $ source <(floorsmith completion bash)
  $ floorsmith completion zsh > "${fpath[1]}/_floorsmith"
  $ floorsmith completion fish > ~/.config/fish/completions/floorsmith.fish
  PS> floorsmith completion powershell | Out-String | Invoke-Expression

Variant, theme and format flags complete to their allowed values.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			default:
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}
}

// registerPlanFlagCompletions attaches value completion to whichever of the
// variant, theme and format flags cmd defines.
func registerPlanFlagCompletions(cmd *cobra.Command) {
	fixed := map[string][]string{
		"variant": variantNames(),
		"theme":   themeNames(),
	}
	for name, values := range fixed {
		if cmd.Flags().Lookup(name) != nil {
			_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		}
	}
	if cmd.Flags().Lookup("format") != nil {
		_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	}
}

// completeFormats completes the last element of a comma-separated format list.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	done, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		done, last = toComplete[:i+1], toComplete[i+1:]
	}
	var out []string
	for _, f := range formatNames() {
		if strings.HasPrefix(f, last) && !strings.Contains(","+done, ","+f+",") {
			out = append(out, done+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func variantNames() []string {
	out := make([]string, len(synth.Variants))
	for i, v := range synth.Variants {
		out[i] = string(v)
	}
	return out
}

func themeNames() []string {
	out := make([]string, 0, len(floor.Themes))
	for name := range floor.Themes {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func formatNames() []string {
	out := make([]string, 0, len(pipeline.ValidFormats))
	for f := range pipeline.ValidFormats {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}
