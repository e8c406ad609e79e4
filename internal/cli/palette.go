package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorsmith/pkg/palette"
)

// paletteCommand creates the palette command, which lists droppable rooms.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the rooms that can be inserted while editing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(paletteTable(palette.Items()))
			printNewline()
			printNextStep("Insert while editing", "press a number key in "+appName+" edit")
			return nil
		},
	}
}

// paletteTable renders items with their hotkey in the terminal editor.
func paletteTable(items []palette.Item) string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{paletteKey(i), it.Key, it.Label, it.Type, fmt.Sprintf("%g' x %g'", it.W, it.H)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Key", "Item", "Label", "Type", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0:
				return style.Foreground(colorCyan)
			case 4:
				return style.Foreground(colorGray)
			}
			return style
		}).
		Render()
}

// paletteHotkeys are the editor keys that insert palette items, in catalogue order.
const paletteHotkeys = "1234567890-="

// paletteKey returns the editor hotkey for the i-th palette item.
func paletteKey(i int) string {
	if i < len(paletteHotkeys) {
		return string(paletteHotkeys[i])
	}
	return ""
}
