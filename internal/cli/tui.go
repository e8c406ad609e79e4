package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/floorsmith/pkg/editor"
	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/palette"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// Terminal cells are taller than they are wide, so one column is one foot
// and one row is two feet.
const (
	cellFeetX = 1.0
	cellFeetY = 2.0

	// canvasTop is the number of header lines above the plot.
	canvasTop = 3
	// canvasLeft is the column where the plot starts.
	canvasLeft = 1
)

// Editor styles
var (
	roomStyle     = lipgloss.NewStyle().Foreground(colorGray)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	plotStyle     = lipgloss.NewStyle().Foreground(colorDim)
	helpStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// EditModel - Interactive plan editing
// =============================================================================

// EditModel is the bubbletea model for the terminal plan editor. Mouse
// presses start editor drags; motion and release are fed to the editor
// through a Dispatcher.
type EditModel struct {
	Editor *editor.Editor
	Floor  int
	Dirty  bool
	Save   func(*plan.Document) error

	disp     *editor.Dispatcher
	selected plan.RoomID
	lastAt   geom.Point // last press, in screen units
	status   string
	saved    bool
}

// NewEditModel creates an editor model over doc. save persists the document
// when the user presses s.
func NewEditModel(doc *plan.Document, save func(*plan.Document) error) *EditModel {
	m := &EditModel{
		disp: editor.NewDispatcher(),
		Save: save,
	}
	m.Editor = editor.New(doc, m.disp, editor.WithOnCommit(func(r plan.Room) {
		m.Dirty = true
		m.status = fmt.Sprintf("%s → (%g, %g) %g' x %g'", r.Type, r.X, r.Y, r.W, r.H)
	}))
	return m
}

func (m *EditModel) Init() tea.Cmd {
	return nil
}

func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *EditModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.Editor.Close()
		return m, tea.Quit
	case "esc":
		m.Editor.Cancel()
		m.status = "drag cancelled"
	case "tab":
		m.Editor.Cancel()
		m.Floor = (m.Floor + 1) % max(m.Editor.Document().FloorCount(), 1)
		m.selected = ""
		m.status = fmt.Sprintf("floor %d", m.Floor)
	case "d", "delete", "backspace":
		if m.selected == "" {
			return m, nil
		}
		r, _ := m.Editor.Document().Room(m.selected)
		if err := m.Editor.Delete(m.selected); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.selected = ""
		m.Dirty = true
		m.status = "deleted " + r.Type
	case "s":
		if m.Save == nil {
			return m, nil
		}
		if err := m.Save(m.Editor.Document()); err != nil {
			m.status = "save failed: " + err.Error()
			return m, nil
		}
		m.Dirty = false
		m.saved = true
		m.status = "saved"
	default:
		if i := strings.Index(paletteHotkeys, key); i >= 0 && len(key) == 1 {
			items := palette.Items()
			if i < len(items) {
				r := m.Editor.Drop(items[i], m.lastAt, m.Floor)
				m.selected = r.ID
				m.Dirty = true
				m.status = fmt.Sprintf("inserted %s at (%g, %g)", r.Type, r.X, r.Y)
			}
		}
	}
	return m, nil
}

func (m *EditModel) handleMouse(msg tea.MouseMsg) {
	at, feet := m.screenPoint(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.lastAt = at
		r, ok := m.roomAt(feet)
		if !ok {
			m.selected = ""
			return
		}
		m.selected = r.ID
		h := pickHandle(r.Rect(), feet)
		if err := m.Editor.Begin(r.ID, h, at); err != nil {
			m.status = err.Error()
			return
		}
		m.status = fmt.Sprintf("%s: %s", r.Type, h)
	case tea.MouseActionMotion:
		m.disp.Dispatch(editor.PointerEvent{Kind: editor.PointerMove, At: at})
	case tea.MouseActionRelease:
		m.disp.Dispatch(editor.PointerEvent{Kind: editor.PointerUp, At: at})
	}
}

// screenPoint converts a terminal cell to editor screen units and plot feet.
func (m *EditModel) screenPoint(col, row int) (geom.Point, geom.Point) {
	feet := geom.Point{
		X: float64(col-canvasLeft) * cellFeetX,
		Y: float64(row-canvasTop) * cellFeetY,
	}
	return feet.Scale(editor.DefaultScale), feet
}

// roomAt returns the topmost room on the current floor under p.
func (m *EditModel) roomAt(p geom.Point) (plan.Room, bool) {
	rooms := m.Editor.Document().RoomsOnFloor(m.Floor)
	for i := len(rooms) - 1; i >= 0; i-- {
		if rooms[i].Rect().Contains(p, 0) {
			return rooms[i], true
		}
	}
	return plan.Room{}, false
}

// pickHandle chooses the handle for a press at p inside rc. Presses within
// one cell of an edge grab that edge; corners combine both.
func pickHandle(rc geom.Rect, p geom.Point) editor.Handle {
	var ns, ew string
	switch {
	case p.Y-rc.Y < cellFeetY:
		ns = "n"
	case rc.Bottom()-p.Y <= cellFeetY:
		ns = "s"
	}
	switch {
	case p.X-rc.X < cellFeetX:
		ew = "w"
	case rc.Right()-p.X <= cellFeetX:
		ew = "e"
	}
	if ns == "" && ew == "" {
		return editor.HandleMove
	}
	return editor.Handle(ns + ew)
}

// Saved reports whether the document was written at least once.
func (m *EditModel) Saved() bool { return m.saved }

// =============================================================================
// View
// =============================================================================

func (m *EditModel) View() string {
	var b strings.Builder
	doc := m.Editor.Document()

	title := fmt.Sprintf("%s plan · floor %d/%d", doc.Variant, m.Floor+1, max(doc.FloorCount(), 1))
	if m.Dirty {
		title += " · modified"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("drag: move/resize  tab: floor  d: delete  " +
		paletteHotkeys[:min(len(paletteHotkeys), len(palette.Items()))] + ": insert  s: save  q: quit"))
	b.WriteString("\n\n")

	b.WriteString(m.canvas())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.status))
	return b.String()
}

// canvas draws the current floor. Cells are owned by the last room drawn
// over them; the selected room and the live preview are drawn last.
func (m *EditModel) canvas() string {
	doc := m.Editor.Document()
	cols := int(doc.Plot.Width/cellFeetX) + 1
	rows := int(doc.Plot.Depth/cellFeetY) + 1
	if cols <= 1 || rows <= 1 {
		return StyleWarning.Render("plot has no area")
	}

	grid := make([][]rune, rows)
	styles := make([][]*lipgloss.Style, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cols))
		styles[y] = make([]*lipgloss.Style, cols)
	}
	drawBox(grid, styles, doc.Plot.Rect(), &plotStyle, "")

	var selected *plan.Room
	for _, r := range doc.RoomsOnFloor(m.Floor) {
		if r.ID == m.selected {
			r := r
			selected = &r
			continue
		}
		drawBox(grid, styles, r.Rect(), &roomStyle, r.Type)
	}
	if selected != nil {
		drawBox(grid, styles, selected.Rect(), &selectedStyle, selected.Type)
	}
	if rc, ok := m.Editor.Preview(); ok {
		drawBox(grid, styles, rc, &previewStyle, fmt.Sprintf("%g'x%g'", rc.W, rc.H))
	}

	var b strings.Builder
	for y := range grid {
		b.WriteString(strings.Repeat(" ", canvasLeft))
		// Render runs of equally styled cells together.
		for x := 0; x < len(grid[y]); {
			end := x + 1
			for end < len(grid[y]) && styles[y][end] == styles[y][x] {
				end++
			}
			run := string(grid[y][x:end])
			if s := styles[y][x]; s != nil {
				run = s.Render(run)
			}
			b.WriteString(run)
			x = end
		}
		b.WriteString("\n")
	}
	return b.String()
}

// drawBox outlines rc in plot feet and writes label inside its top-left corner.
func drawBox(grid [][]rune, styles [][]*lipgloss.Style, rc geom.Rect, style *lipgloss.Style, label string) {
	x0, y0 := int(rc.X/cellFeetX), int(rc.Y/cellFeetY)
	x1, y1 := int(rc.Right()/cellFeetX), int(rc.Bottom()/cellFeetY)
	set := func(x, y int, ch rune) {
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			return
		}
		grid[y][x] = ch
		styles[y][x] = style
	}
	for x := x0; x <= x1; x++ {
		set(x, y0, '─')
		set(x, y1, '─')
	}
	for y := y0; y <= y1; y++ {
		set(x0, y, '│')
		set(x1, y, '│')
	}
	set(x0, y0, '┌')
	set(x1, y0, '┐')
	set(x0, y1, '└')
	set(x1, y1, '┘')

	if label == "" || y1-y0 < 2 {
		return
	}
	room := x1 - x0 - 1
	runes := []rune(label)
	if len(runes) > room {
		runes = runes[:max(room, 0)]
	}
	for i, ch := range runes {
		set(x0+1+i, y0+1, ch)
	}
}
