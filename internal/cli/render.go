package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	fio "github.com/matzehuels/floorsmith/pkg/io"
	"github.com/matzehuels/floorsmith/pkg/pipeline"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// renderCommand creates the render command, which draws a saved document.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [plan.json]",
		Short: "Render a saved plan document",
		Long: `Render a saved plan document.

Use this after editing a plan: the document is drawn as it is, without
re-synthesizing. The same formats as 'generate' are supported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, adjacency (comma-separated)")
	cmd.Flags().BoolVar(&opts.Columns, "columns", false, "overlay the structural column grid")
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", 0, "column grid spacing in feet (default 15)")
	cmd.Flags().IntVar(&opts.Floor, "floor", 0, "floor drawn in the svg output")
	cmd.Flags().StringVar(&opts.Theme, "theme", pipeline.DefaultTheme, "svg colour theme: dark, blueprint")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "svg pixels per foot")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label adjacency nodes with room sizes")

	registerPlanFlagCompletions(cmd)
	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	doc, err := fio.ImportDocument(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = loggerFromContext(ctx)

	spinner := newSpinnerWithContext(ctx, "Rendering plan...")
	spinner.Start()

	var cols []plan.Column
	if opts.Columns {
		spinner.Update("Generating column grid...")
		if cols, err = runner.Columns(ctx, doc, opts); err != nil {
			spinner.StopWithError("Column grid failed")
			return err
		}
	}

	spinner.Update("Rendering plan...")
	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, doc, cols, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	printSuccess("Rendered %s plan", doc.Variant)
	if err := writeArtifacts(artifacts, opts.Formats, output, input); err != nil {
		return err
	}
	printStats(len(doc.Rooms), len(cols), hit)
	return nil
}
