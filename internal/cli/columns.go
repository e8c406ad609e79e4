package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	fio "github.com/matzehuels/floorsmith/pkg/io"
	"github.com/matzehuels/floorsmith/pkg/pipeline"
)

// columnsCommand creates the columns command, which overlays a column grid
// onto a saved document.
func (c *CLI) columnsCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "columns [plan.json]",
		Short: "Generate the structural column grid for a saved plan",
		Long: `Generate the structural column grid for a saved plan.

The plan.json file is a document written by 'generate -f json' or saved by
'edit'. Columns sit on a global grid anchored at the plot origin; grid points
in front of a door are left out. The result is written as a JSON array.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runColumns(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.columns.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", 0, "grid spacing in feet (default 15)")
	cmd.Flags().Float64Var(&opts.FloorHeight, "floor-height", 0, "column height in feet (default 10)")
	cmd.Flags().Float64Var(&opts.ColumnSize, "size", 0, "column side in feet (default 1)")

	return cmd
}

func (c *CLI) runColumns(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	doc, err := fio.ImportDocument(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	cols, hit, err := runner.ColumnsWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cols, "", "  ")
	if err != nil {
		return fmt.Errorf("encode columns: %w", err)
	}

	path := output
	if path == "" {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + ".columns.json"
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Column grid complete")
	printFile(path)
	printStats(len(doc.Rooms), len(cols), hit)
	return nil
}
