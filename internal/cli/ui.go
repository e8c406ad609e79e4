package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/floorsmith/pkg/analysis"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// Terminal palette. Rooms in the editor reuse the same colors.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
	StyleError     = lipgloss.NewStyle().Foreground(colorRed)

	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// statusLine pairs a leading glyph with its color.
type statusLine struct {
	glyph string
	style lipgloss.Style
}

var (
	lineSuccess = statusLine{"✓", StyleSuccess}
	lineError   = statusLine{"✗", StyleError}
	lineWarning = statusLine{"!", StyleWarning}
	lineInfo    = statusLine{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

func (l statusLine) print(body string) {
	fmt.Println(l.style.Render(l.glyph) + " " + body)
}

func printSuccess(format string, args ...any) {
	lineSuccess.print(fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	lineError.print(fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	lineWarning.print(StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	lineInfo.print(fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under the previous message.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile lists a written output file.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints plan statistics on a single line.
func printStats(roomCount, columnCount int, cached bool) {
	var parts []string
	if roomCount > 0 {
		parts = append(parts, fmt.Sprintf("%d rooms", roomCount))
	}
	if columnCount > 0 {
		parts = append(parts, fmt.Sprintf("%d columns", columnCount))
	}

	if cached {
		parts = append(parts, StyleSuccess.Render("cached"))
	} else {
		parts = append(parts, "fresh")
	}
	fmt.Println("  " + StyleDim.Render(strings.Join(parts, " · ")))
}

// =============================================================================
// Plan Quality
// =============================================================================

// printWarnings lists validation findings, one per line.
func printWarnings(warnings []plan.Warning) {
	for _, w := range warnings {
		if w.Floor >= 0 {
			printWarning("%s (floor %d): %s", w.Code, w.Floor, w.Message)
		} else {
			printWarning("%s: %s", w.Code, w.Message)
		}
	}
}

// printScore prints the daylight and ventilation score with its grade.
func printScore(s analysis.Score) {
	value := fmt.Sprintf("%d/100 (%s)", s.Normalized, s.Grade)
	style := StyleSuccess
	switch {
	case s.Normalized < 50:
		style = StyleError
	case s.Normalized < 75:
		style = StyleWarning
	}
	fmt.Println(styleLabel.Render("Environment") + " " + style.Render(value))
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
