package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorsmith/pkg/pipeline"
)

// generateCommand creates the generate command, which runs the full pipeline
// from a program file to rendered outputs.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [program.toml]",
		Short: "Synthesize a floor plan from a room program",
		Long: `Synthesize a floor plan from a room program.

The program file may be TOML, YAML or JSON and is selected by extension. The
plan is laid out with the chosen variant (base, horizontal, left-corridor or
luxury), optionally overlaid with a structural column grid, validated, scored
and written in each requested format:

  svg        floor drawing (one floor, see --floor)
  json       document with columns, warnings and score
  dot        room adjacency graph source
  adjacency  room adjacency graph rendered by Graphviz

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			opts.ProgramFile = args[0]
			return c.runGenerate(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-synthesize even when a cached plan exists")

	cmd.Flags().StringVarP(&opts.Variant, "variant", "V", string(pipeline.DefaultVariant), "layout variant: base, horizontal, left-corridor, luxury")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, adjacency (comma-separated)")

	cmd.Flags().BoolVar(&opts.Columns, "columns", false, "overlay the structural column grid")
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", 0, "column grid spacing in feet (default 15)")
	cmd.Flags().Float64Var(&opts.FloorHeight, "floor-height", 0, "column height in feet (default 10)")

	cmd.Flags().IntVar(&opts.Floor, "floor", 0, "floor drawn in the svg output")
	cmd.Flags().StringVar(&opts.Theme, "theme", pipeline.DefaultTheme, "svg colour theme: dark, blueprint")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "svg pixels per foot")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label adjacency nodes with room sizes")

	registerPlanFlagCompletions(cmd)
	return cmd
}

// runGenerate executes the pipeline and writes its artifacts.
func (c *CLI) runGenerate(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Synthesizing %s layout...", opts.Variant))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Generated %s plan", result.Document.Variant)
	if err := writeArtifacts(result.Artifacts, opts.Formats, output, input); err != nil {
		return err
	}
	printStats(result.Stats.RoomCount, result.Stats.ColumnCount, result.CacheInfo.PlanHit)
	printScore(result.Score)
	printWarnings(result.Warnings)
	prog.done("pipeline complete", "variant", result.Document.Variant, "formats", opts.Formats)

	printNewline()
	printNextStep("Compare variants", appName+" variants "+input)
	return nil
}
