package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	fio "github.com/matzehuels/floorsmith/pkg/io"
	"github.com/matzehuels/floorsmith/pkg/pipeline"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// editCommand creates the edit command, which opens the terminal editor on
// a saved document or on a freshly synthesized program.
func (c *CLI) editCommand() *cobra.Command {
	var (
		output  string
		variant string
	)

	cmd := &cobra.Command{
		Use:   "edit [plan.json|program.toml]",
		Short: "Drag, resize and insert rooms in the terminal",
		Long: `Drag, resize and insert rooms in the terminal.

Press a room and drag to move it; press within one cell of an edge or corner
to resize. Edges snap to the edges of other rooms on the same floor and to
the plot boundary. Number keys insert rooms from the palette at the last
clicked position (see 'floorsmith palette').

A program file is synthesized first with --variant. Edits are written to
--output, or back to the document when editing a saved plan.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), args[0], variant, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "save path (default: the input document, or <input>.plan.json)")
	cmd.Flags().StringVarP(&variant, "variant", "V", string(pipeline.DefaultVariant), "layout variant when editing a program")

	registerPlanFlagCompletions(cmd)
	return cmd
}

func (c *CLI) runEdit(ctx context.Context, input, variant, output string) error {
	doc, isDoc, err := c.loadEditable(ctx, input, variant)
	if err != nil {
		return err
	}

	path := output
	if path == "" {
		if isDoc {
			path = input
		} else {
			path = strings.TrimSuffix(input, filepath.Ext(input)) + ".plan.json"
		}
	}

	m := NewEditModel(doc, func(d *plan.Document) error {
		return fio.ExportDocument(d, path)
	})
	if err := runEditor(ctx, m, tea.WithAltScreen(), tea.WithMouseCellMotion()); err != nil {
		return err
	}

	if m.Saved() {
		printSuccess("Saved %s plan", doc.Variant)
		printFile(path)
		printNewline()
		printNextStep("Render", appName+" render "+path)
	}
	if m.Dirty {
		printWarning("Unsaved changes were discarded")
	}
	return nil
}

// runEditor runs m until the user quits or ctx is cancelled. The editor is
// closed on either path so a drag in flight never keeps its pointer listener.
func runEditor(ctx context.Context, m *EditModel, opts ...tea.ProgramOption) error {
	defer m.Editor.Close()
	p := tea.NewProgram(m, append(opts, tea.WithContext(ctx))...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

// loadEditable returns the document to edit and whether input was a saved
// document rather than a program.
func (c *CLI) loadEditable(ctx context.Context, input, variant string) (*plan.Document, bool, error) {
	format, err := fio.FormatFromPath(input)
	if err != nil {
		return nil, false, err
	}
	if format == fio.FormatJSON {
		if doc, derr := fio.ImportDocument(input); derr == nil && len(doc.Rooms) > 0 {
			return doc, true, nil
		}
	}

	runner := pipeline.NewRunner(nil, nil, loggerFromContext(ctx))
	doc, err := runner.Synthesize(ctx, pipeline.Options{ProgramFile: input, Variant: variant})
	if err != nil {
		return nil, false, err
	}
	return doc, false, nil
}
