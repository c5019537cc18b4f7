package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"mcnpwiz/internal/config"
	"mcnpwiz/internal/lattice"
	"mcnpwiz/internal/logging"
	"mcnpwiz/internal/selector"
	"mcnpwiz/internal/universe"
)

// step identifies the wizard's current prompt. The dialogue walks the
// containment hierarchy bottom-up, one question at a time, then generates
// the requested cards.
type step int

const (
	stepMode step = iota
	stepTargetCell
	stepTargetInUniverse
	stepTargetUniverse
	stepParentCell
	stepIsLattice
	stepLatticeType
	stepFillType
	stepUseVisual
	stepBounds
	stepSelectionMethod
	stepSizeGuard
	stepSelector
	stepManualDims
	stepParentInUniverse
	stepParentUniverse
	stepTallyType
	stepVolumeKnown
	stepVolume
	stepDistNum
	stepWantPos
	stepPos
	stepWantErg
	stepErg
	stepVerify
	stepDone
)

// Wizard modes.
const (
	modeTally = "tally"
	modeSDEF  = "sdef"
	modeBoth  = "both"
)

var boundsPrompts = [6]string{
	"i minimum", "i maximum",
	"j minimum", "j maximum",
	"k minimum", "k maximum",
}

var dimPrompts = [3]string{
	"i index or range (e.g. 5 or 0:9)",
	"j index or range (e.g. 5 or 0:9)",
	"k index or range (e.g. 0 or 0:2)",
}

var posPrompts = [3]string{"X coordinate", "Y coordinate", "Z coordinate"}

// WizardModel is the top-level bubbletea model: a transcript of answered
// prompts, one text input, and the full-screen selector page when a visual
// selection session is active.
type WizardModel struct {
	styles Styles
	cfg    *config.Config
	input  textinput.Model

	step    step
	mode    string
	history []string
	errLine string

	session *universe.Session
	stack   universe.Stack

	// Node under construction while climbing the hierarchy.
	pending       universe.Node
	climbUniverse int

	boundsVals [6]int
	boundsIdx  int

	dims   [3]lattice.Dimension
	dimIdx int

	selPage    SelectorModel
	inSelector bool

	tallyType string
	distNum   int
	pos       [3]float64
	posIdx    int

	outputs []string

	width    int
	height   int
	quitting bool
}

// NewWizardModel builds the wizard with the given configuration.
func NewWizardModel(cfg *config.Config) WizardModel {
	theme := DetectTheme()
	if cfg.UI.DarkMode {
		theme = DarkTheme()
	}
	styles := NewStyles(theme)

	ti := textinput.New()
	ti.Placeholder = "1, 2 or 3"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	m := WizardModel{
		styles: styles,
		cfg:    cfg,
		input:  ti,
		step:   stepMode,
	}
	m.history = append(m.history, m.welcomeBlock())
	return m
}

func (m WizardModel) welcomeBlock() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(" MCNP Universe & Lattice Specification Wizard ") + "\n\n")
	sb.WriteString(m.styles.Body.Render("This wizard generates universe specifications for MCNP tallies") + "\n")
	sb.WriteString(m.styles.Body.Render("(F-cards) and source definitions (SDEF).") + "\n\n")
	sb.WriteString(m.styles.Title.Render("What do you need to generate?") + "\n")
	sb.WriteString(m.styles.Body.Render("  1. Tally specification (F4, F7, ...)") + "\n")
	sb.WriteString(m.styles.Body.Render("  2. Source definition (SDEF)") + "\n")
	sb.WriteString(m.styles.Body.Render("  3. Both") + "\n")
	return sb.String()
}

// Init implements tea.Model.
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events and delegates to the selector page while a
// visual selection session runs.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.inSelector {
			m.selPage, _ = m.selPage.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			logging.L(logging.CategoryWizard).Info("wizard cancelled by user")
			return m, tea.Quit
		}

		if m.inSelector {
			var cmd tea.Cmd
			m.selPage, cmd = m.selPage.Update(msg)
			if m.selPage.Done() {
				m = m.leaveSelector()
			}
			return m, cmd
		}

		if m.step == stepDone {
			m.quitting = true
			return m, tea.Quit
		}

		if msg.Type == tea.KeyEnter {
			value := m.input.Value()
			m.input.SetValue("")
			return m.handleSubmit(value), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// leaveSelector consumes the result of a finished selector session. A
// cancelled session falls back to manual entry, matching the non-visual
// path.
func (m WizardModel) leaveSelector() WizardModel {
	m.inSelector = false
	if spec, ok := m.selPage.Result(); ok {
		m.pending.Spec = &spec
		m.pushf("Visual selection complete: %d element(s), %s.", spec.ElementCount(), specKind(spec))
		return m.finishLatticeNode()
	}
	m.pushf("Visual selection cancelled. Falling back to manual entry.")
	return m.startManualDims()
}

func specKind(s lattice.Spec) string {
	if s.IsDiscrete() {
		return "non-contiguous"
	}
	return "contiguous"
}

// View renders the transcript, the active prompt, or the selector page.
func (m WizardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inSelector {
		return m.selPage.View()
	}

	var sb strings.Builder
	for _, block := range m.history {
		sb.WriteString(block)
		sb.WriteString("\n")
	}

	if m.step == stepDone {
		sb.WriteString("\n" + m.styles.Success.Render("✓ Wizard complete!") + "\n")
		sb.WriteString(m.styles.Muted.Render("Press any key to exit.") + "\n")
		return sb.String()
	}

	if m.errLine != "" {
		sb.WriteString(m.styles.Error.Render(m.errLine) + "\n")
	}
	sb.WriteString("\n" + m.styles.Prompt.Render(m.prompt()) + "\n")
	sb.WriteString(m.input.View() + "\n")
	sb.WriteString("\n" + m.styles.Footer.Render("enter: answer  |  ctrl+c: quit"))
	return sb.String()
}

// pushf appends a styled line to the transcript.
func (m *WizardModel) pushf(format string, args ...interface{}) {
	m.history = append(m.history, m.styles.Body.Render(sprintf(format, args...)))
}

// pushRaw appends a pre-styled block to the transcript.
func (m *WizardModel) pushRaw(block string) {
	m.history = append(m.history, block)
}

func (m *WizardModel) warnf(format string, args ...interface{}) {
	m.history = append(m.history, m.styles.Warning.Render("⚠ "+sprintf(format, args...)))
}

// fail sets the reprompt error line.
func (m WizardModel) fail(err error) WizardModel {
	m.errLine = err.Error()
	return m
}

// windowFromBounds builds the selector window from the collected bounds.
func (m WizardModel) windowFromBounds() selector.Window {
	b := universe.Bounds{
		IMin: m.boundsVals[0], IMax: m.boundsVals[1],
		JMin: m.boundsVals[2], JMax: m.boundsVals[3],
		KMin: m.boundsVals[4], KMax: m.boundsVals[5],
	}
	return selector.WindowFromBounds(b, m.pending.InfiniteLattice)
}

func (m WizardModel) limits() selector.Limits {
	return selector.Limits{
		MaxCellsPerLayer: m.cfg.Selector.MaxCellsPerLayer,
		MaxTotalCells:    m.cfg.Selector.MaxTotalCells,
	}
}

func (m *WizardModel) logStackComplete() {
	logging.L(logging.CategoryWizard).Info("containment stack complete",
		zap.String("session", m.session.ID),
		zap.Int("target", m.session.TargetCell),
		zap.Int("levels", len(m.stack)))
}
