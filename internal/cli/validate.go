package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorsmith/pkg/analysis"
	"github.com/matzehuels/floorsmith/pkg/errors"
	fio "github.com/matzehuels/floorsmith/pkg/io"
	"github.com/matzehuels/floorsmith/pkg/pipeline"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// validateCommand creates the validate command. It accepts either a program
// file or a saved document and reports warnings and the adjacency score.
func (c *CLI) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [program.toml|plan.json]",
		Short: "Check a program or plan for overflow and overlaps",
		Long: `Check a program or plan for overflow and overlaps.

A program file is synthesized with the base variant first. A plan document
is checked as saved. Rooms that leave the plot, overlap on the same floor or
have no area are reported. With --strict any warning fails the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when there are warnings")

	return cmd
}

func (c *CLI) runValidate(ctx context.Context, input string, strict bool) error {
	warnings, score, doc, err := c.analyzeFile(ctx, input)
	if err != nil {
		return err
	}

	printKeyValue("Variant", doc.Variant)
	printKeyValue("Rooms", strconv.Itoa(len(doc.Rooms)))
	printKeyValue("Floors", strconv.Itoa(doc.FloorCount()))
	printScore(score)
	printNewline()

	if len(warnings) == 0 {
		printSuccess("No warnings")
		return nil
	}
	printWarnings(warnings)
	if strict {
		return errors.New(errors.ErrCodeInvalidInput, "%d validation warning(s)", len(warnings))
	}
	return nil
}

// analyzeFile loads input as a program when its extension names a program
// format other than JSON, and as a document otherwise. A JSON file that does
// not decode as a document is retried as a program.
func (c *CLI) analyzeFile(ctx context.Context, input string) ([]plan.Warning, analysis.Score, *plan.Document, error) {
	format, err := fio.FormatFromPath(input)
	if err != nil {
		return nil, analysis.Score{}, nil, err
	}
	if format == fio.FormatJSON {
		if doc, derr := fio.ImportDocument(input); derr == nil && len(doc.Rooms) > 0 {
			w, s := pipeline.Analyze(plan.Program{}, doc)
			return w, s, doc, nil
		}
	}

	runner := pipeline.NewRunner(nil, nil, loggerFromContext(ctx))
	opts := pipeline.Options{ProgramFile: input}
	if err := opts.ValidateForSynth(); err != nil {
		return nil, analysis.Score{}, nil, err
	}
	doc, err := runner.Synthesize(ctx, opts)
	if err != nil {
		return nil, analysis.Score{}, nil, fmt.Errorf("synthesize: %w", err)
	}
	w, s := pipeline.Analyze(opts.Program, doc)
	return w, s, doc, nil
}
