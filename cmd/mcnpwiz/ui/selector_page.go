package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"mcnpwiz/internal/lattice"
	"mcnpwiz/internal/logging"
	"mcnpwiz/internal/selector"
	"mcnpwiz/internal/universe"
)

// SelectorModel is the full-screen visual lattice selector page. It owns a
// selector session, translates key presses into state-machine actions, and
// draws snapshots. All selection logic lives in internal/selector; a render
// failure (terminal too small) never touches the session state.
type SelectorModel struct {
	styles Styles
	sel    *selector.Selector

	width  int
	height int

	errMsg string
	done   bool
	spec   *lattice.Spec // nil after cancel
}

// NewSelectorModel starts a selector page over the given window.
func NewSelectorModel(styles Styles, g universe.Geometry, w selector.Window) SelectorModel {
	return SelectorModel{
		styles: styles,
		sel:    selector.New(g, w),
	}
}

// Done reports whether the session ended (finalized or cancelled).
func (m SelectorModel) Done() bool { return m.done }

// Result returns the produced spec and whether one exists. Cancelled
// sessions return ok=false; the caller falls back to manual entry.
func (m SelectorModel) Result() (lattice.Spec, bool) {
	if m.spec == nil {
		return lattice.Spec{}, false
	}
	return *m.spec, true
}

// Init implements tea.Model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m SelectorModel) Update(msg tea.Msg) (SelectorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg), nil
	}
	return m, nil
}

func (m SelectorModel) handleKey(msg tea.KeyMsg) SelectorModel {
	if m.done {
		return m
	}
	hex := m.sel.Geometry() == universe.Hexagonal
	m.errMsg = ""

	switch msg.String() {
	case "q", "esc":
		m.sel.Cancel()
		m.done = true
		logging.L(logging.CategorySelector).Info("selection cancelled")

	case "enter", " ":
		m.sel.Toggle()

	case "d":
		spec, err := m.sel.Finalize()
		if err != nil {
			m.errMsg = "No cells selected! Select at least one cell or press q to cancel."
			return m
		}
		m.spec = &spec
		m.done = true
		logging.L(logging.CategorySelector).Info("selection finalized",
			zap.Int("elements", spec.ElementCount()),
			zap.Bool("discrete", spec.IsDiscrete()))

	case "up":
		if hex {
			m.sel.Move(selector.NorthWest)
		} else {
			m.sel.Move(selector.North)
		}
	case "down":
		if hex {
			m.sel.Move(selector.SouthEast)
		} else {
			m.sel.Move(selector.South)
		}
	case "left":
		m.sel.Move(selector.West)
	case "right":
		m.sel.Move(selector.East)

	// Extra hex diagonals, mirroring the printed key help.
	case "w":
		if hex {
			m.sel.Move(selector.NorthWest)
		}
	case "e":
		if hex {
			m.sel.Move(selector.NorthEast)
		}
	case "z":
		if hex {
			m.sel.Move(selector.SouthWest)
		}
	case "x":
		if hex {
			m.sel.Move(selector.SouthEast)
		}

	case "[", ",", "<":
		m.sel.ChangeLayer(-1)
	case "]", ".", ">":
		m.sel.ChangeLayer(+1)

	case "a":
		m.sel.SelectAll()
	case "r":
		m.sel.Clear()
	case "c":
		if !hex {
			m.sel.Clear()
		}
	}
	return m
}

// View renders the selector page from a snapshot.
func (m SelectorModel) View() string {
	sn := m.sel.Snapshot()
	hex := m.sel.Geometry() == universe.Hexagonal

	// The grid needs roughly 4 columns per cell plus headers. When the
	// terminal cannot fit it, report and keep the session intact.
	neededWidth := sn.Window.I.Size()*4 + 8
	if m.width > 0 && m.width < neededWidth {
		return m.styles.Error.Render("Terminal window too small for this grid.") + "\n" +
			m.styles.Muted.Render("Resize the terminal to continue; the selection is preserved. Press q to cancel.")
	}

	var sb strings.Builder

	title := "VISUAL LATTICE SELECTOR - Rectangular Lattice"
	if hex {
		title = "VISUAL LATTICE SELECTOR - Hexagonal Lattice"
	}
	sb.WriteString(m.styles.Header.Render(" "+title+" ") + "\n")
	if sn.Window.Infinite {
		sb.WriteString(m.styles.Subtitle.Render("Viewing window mode - lattice is actually infinite") + "\n")
	}
	sb.WriteString("\n")

	if hex {
		sb.WriteString(m.styles.Muted.Render("Arrow Keys: Move (6-dir hex)  |  W/E/Z/X: Diagonals  |  Space/Enter: Toggle") + "\n")
		sb.WriteString(m.styles.Muted.Render("[/] or ,/. : K-layer  |  a: Select all  |  r: Clear  |  d: Done  |  q/ESC: Cancel") + "\n")
	} else {
		sb.WriteString(m.styles.Muted.Render("Arrow Keys: Move cursor  |  Space/Enter: Toggle  |  [/] or ,/. : K-layer") + "\n")
		sb.WriteString(m.styles.Muted.Render("a: Select all  |  c: Clear all  |  d: Done  |  q/ESC: Cancel") + "\n")
	}
	sb.WriteString("\n")

	info := fmt.Sprintf(" K-Layer: %d  |  Selected: %d cells ", sn.LayerK, sn.Count)
	sb.WriteString(m.styles.Badge.Render(info) + "\n\n")

	if hex {
		sb.WriteString(m.renderHexGrid(sn))
	} else {
		sb.WriteString(m.renderRectGrid(sn))
	}

	if m.errMsg != "" {
		sb.WriteString("\n" + m.styles.Error.Render(m.errMsg) + "\n")
	}

	return sb.String()
}

// renderRectGrid draws the rectangular grid with i column headers, j row
// labels, and a box border.
func (m SelectorModel) renderRectGrid(sn selector.Snapshot) string {
	var sb strings.Builder
	w := sn.Window

	var header strings.Builder
	header.WriteString("    ")
	for i := w.I.Min; i <= w.I.Max; i++ {
		header.WriteString(fmt.Sprintf("%4d", i))
	}
	sb.WriteString(m.styles.GridHeader.Render(header.String()) + "\n")

	innerWidth := w.I.Size()*4 - 1
	sb.WriteString("    " + m.styles.GridHeader.Render("┌"+strings.Repeat("─", innerWidth)+"┐") + "\n")

	for j := w.J.Min; j <= w.J.Max; j++ {
		sb.WriteString(m.styles.GridHeader.Render(fmt.Sprintf("%3d ", j)))
		for i := w.I.Min; i <= w.I.Max; i++ {
			sb.WriteString(m.renderCell(sn, i, j))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("    " + m.styles.GridHeader.Render("└"+strings.Repeat("─", innerWidth)+"┘") + "\n")
	return sb.String()
}

// renderHexGrid draws the compact hexagonal layout: single-character cells
// with odd j rows shifted right to show the hex adjacency pattern.
func (m SelectorModel) renderHexGrid(sn selector.Snapshot) string {
	var sb strings.Builder
	w := sn.Window

	var header strings.Builder
	header.WriteString("   ")
	for i := w.I.Min; i <= w.I.Max; i++ {
		header.WriteString(fmt.Sprintf(" %2d ", i))
	}
	sb.WriteString(m.styles.GridHeader.Render(header.String()) + "\n")

	for j := w.J.Min; j <= w.J.Max; j++ {
		sb.WriteString(m.styles.GridHeader.Render(fmt.Sprintf("%2d ", j)))
		if j%2 == 1 || j%2 == -1 {
			sb.WriteString("  ")
		}
		for i := w.I.Min; i <= w.I.Max; i++ {
			sb.WriteString(m.renderCell(sn, i, j))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Legend: X=Selected  ·=Unselected  block=Cursor") + "\n")
	sb.WriteString(m.styles.Muted.Render("Note: Odd rows (j) shifted right to show hexagonal adjacency") + "\n")
	return sb.String()
}

func (m SelectorModel) renderCell(sn selector.Snapshot, i, j int) string {
	atCursor := i == sn.CursorI && j == sn.CursorJ
	isSel := sn.IsSelected(i, j, sn.LayerK)

	switch {
	case atCursor && isSel:
		return m.styles.GridCursorSelected.Render(" @ ") + " "
	case atCursor:
		return m.styles.GridCursor.Render(" █ ") + " "
	case isSel:
		return m.styles.GridSelected.Render(" X ") + " "
	default:
		return m.styles.GridCell.Render(" · ") + " "
	}
}
