package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorsmith/pkg/analysis"
	"github.com/matzehuels/floorsmith/pkg/pipeline"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// variantRow summarizes one synthesized variant.
type variantRow struct {
	variant  string
	rooms    int
	floors   int
	warnings int
	score    analysis.Score
}

// variantsCommand creates the variants command, which synthesizes every
// layout strategy for one program and compares them.
func (c *CLI) variantsCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "variants [program.toml]",
		Short: "Synthesize all layout variants and compare them",
		Long: `Synthesize all layout variants and compare them.

Every variant is written next to the program as <name>_<variant>.<ext> and
summarized in a table with its room count, warnings and adjacency score.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runVariants(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "base path for variant outputs")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, adjacency (comma-separated)")
	cmd.Flags().BoolVar(&opts.Columns, "columns", false, "overlay the structural column grid")
	cmd.Flags().StringVar(&opts.Theme, "theme", pipeline.DefaultTheme, "svg colour theme: dark, blueprint")

	registerPlanFlagCompletions(cmd)
	return cmd
}

func (c *CLI) runVariants(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	program, err := pipeline.LoadProgram(input)
	if err != nil {
		return err
	}
	opts.Program = program
	opts.Logger = logger

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Synthesizing variants...")
	spinner.Start()

	docs, err := runner.Variants(ctx, program)
	if err != nil {
		spinner.StopWithError("Synthesis failed")
		return err
	}

	rows := make([]variantRow, 0, len(docs))
	base := basePath(output, input)
	var written []string
	for _, doc := range docs {
		spinner.Update(fmt.Sprintf("Rendering %s...", doc.Variant))

		vopts := opts
		vopts.Variant = doc.Variant
		var cols []plan.Column
		if vopts.Columns {
			if cols, err = runner.Columns(ctx, doc, vopts); err != nil {
				spinner.StopWithError("Column grid failed")
				return err
			}
		}
		artifacts, err := runner.Render(ctx, doc, cols, vopts)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render %s: %w", doc.Variant, err)
		}
		for _, f := range opts.Formats {
			path := base + "_" + doc.Variant + formatExt[f]
			if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
				spinner.Stop()
				return fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}

		warnings, score := pipeline.Analyze(program, doc)
		rows = append(rows, variantRow{
			variant:  doc.Variant,
			rooms:    len(doc.Rooms),
			floors:   doc.FloorCount(),
			warnings: len(warnings),
			score:    score,
		})
	}
	spinner.Stop()
	prog.done("variants complete", "count", len(rows))

	printSuccess("Synthesized %d variants", len(rows))
	for _, path := range written {
		printFile(path)
	}
	printNewline()
	fmt.Println(variantsTable(rows))
	return nil
}

// variantsTable renders the comparison table. The best scoring variant is
// highlighted.
func variantsTable(rows []variantRow) string {
	best := -1
	for i, r := range rows {
		if best < 0 || r.score.Normalized > rows[best].score.Normalized {
			best = i
		}
	}

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			r.variant,
			strconv.Itoa(r.rooms),
			strconv.Itoa(r.floors),
			strconv.Itoa(r.warnings),
			fmt.Sprintf("%d", r.score.Normalized),
			r.score.Grade,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Variant", "Rooms", "Floors", "Warnings", "Score", "Grade").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == best {
				return style.Foreground(colorGreen).Bold(true)
			}
			if col == 3 && rows[row].warnings > 0 {
				return style.Foreground(colorYellow)
			}
			return style
		}).
		Render()
}
