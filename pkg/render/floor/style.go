package floor

import (
	"strings"

	"github.com/matzehuels/floorsmith/pkg/errors"
)

// Theme is the colour scheme of a floor drawing.
type Theme struct {
	Name       string
	Background string
	Grid       string
	Boundary   string
	Text       string
	SubText    string
	Door       string
	Window     string
	Stair      string
	Tread      string
	Column     string
	RoomFill   float64 // fill opacity of room rectangles

	// Rooms maps a keyword to a colour. A room takes the colour of the first
	// keyword, in roomKeywords order, that its type contains.
	Rooms   map[string]string
	Default string
}

// roomKeywords is the match order for room colours. "bath" precedes
// "master" and "master" precedes "bedroom", so a master bath is a bathroom and
// a master bedroom gets its own colour.
var roomKeywords = []string{
	"living", "kitchen", "bath", "master", "bedroom", "parking", "garage",
	"office", "garden", "balcony", "dining", "utility", "guest", "corridor",
}

// Dark is the default theme: tinted rooms on a dark grid.
var Dark = Theme{
	Name:       "dark",
	Background: "#1e1b2e",
	Grid:       "#332f46",
	Boundary:   "#d946ef",
	Text:       "#ffffff",
	SubText:    "#e2e8f0",
	Door:       "#38bdf8",
	Window:     "#a5f3fc",
	Stair:      "#94a3b8",
	Tread:      "#475569",
	Column:     "#ef4444",
	RoomFill:   0.2,
	Rooms: map[string]string{
		"living":   "#eab308",
		"kitchen":  "#f97316",
		"bedroom":  "#d946ef",
		"master":   "#c026d3",
		"bath":     "#06b6d4",
		"parking":  "#3b82f6",
		"garage":   "#3b82f6",
		"office":   "#8b5cf6",
		"garden":   "#10b981",
		"balcony":  "#f43f5e",
		"corridor": "#64748b",
	},
	Default: "#6366f1",
}

// Blueprint draws white linework on blue.
var Blueprint = Theme{
	Name:       "blueprint",
	Background: "#0b3d91",
	Grid:       "#1c4fa3",
	Boundary:   "#ffffff",
	Text:       "#ffffff",
	SubText:    "#dbeafe",
	Door:       "#fde68a",
	Window:     "#bfdbfe",
	Stair:      "#ffffff",
	Tread:      "#93c5fd",
	Column:     "#fca5a5",
	RoomFill:   0.05,
	Rooms:      map[string]string{},
	Default:    "#ffffff",
}

// Themes lists the built-in themes by name.
var Themes = map[string]Theme{
	Dark.Name:      Dark,
	Blueprint.Name: Blueprint,
}

// ParseTheme returns the built-in theme with the given name.
func ParseTheme(name string) (Theme, error) {
	if t, ok := Themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return Theme{}, errors.New(errors.ErrCodeInvalidInput, "unknown theme: %q (must be one of: dark, blueprint)", name)
}

// RoomColor returns the colour for a room or extra type.
func (t Theme) RoomColor(kind string) string {
	k := strings.ToLower(kind)
	for _, kw := range roomKeywords {
		if c, ok := t.Rooms[kw]; ok && strings.Contains(k, kw) {
			return c
		}
	}
	return t.Default
}
