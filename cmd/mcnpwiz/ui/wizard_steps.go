package ui

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"mcnpwiz/internal/cards"
	"mcnpwiz/internal/lattice"
	"mcnpwiz/internal/logging"
	"mcnpwiz/internal/universe"
)

func sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

// prompt returns the text of the question the wizard is currently asking.
func (m WizardModel) prompt() string {
	switch m.step {
	case stepMode:
		return "Enter choice (1/2/3):"
	case stepTargetCell:
		return "[TARGET CELL] What is the specific cell ID you want to tally/source?"
	case stepTargetInUniverse:
		return fmt.Sprintf("Is Cell %d inside a universe (not Universe 0)? (y/n)", m.session.TargetCell)
	case stepTargetUniverse:
		return fmt.Sprintf("What universe number is Cell %d in?", m.session.TargetCell)
	case stepParentCell:
		return fmt.Sprintf("[PARENT CELL for U=%d] What cell FILLS universe %d?", m.climbUniverse, m.climbUniverse)
	case stepIsLattice:
		return fmt.Sprintf("Is Cell %d a lattice (LAT=1 or LAT=2)? (y/n)", m.pending.Cell)
	case stepLatticeType:
		return "Lattice type:  1 = Rectangular (LAT=1)  2 = Hexagonal (LAT=2). Enter 1 or 2:"
	case stepFillType:
		return "FILL card type:  1 = Simple fill (FILL=N, lattice extends infinitely)  2 = Fully specified (bounded). Enter 1 or 2:"
	case stepUseVisual:
		return "Use visual selector? (requires defining a viewing window) (y/n)"
	case stepBounds:
		if m.pending.InfiniteLattice {
			return fmt.Sprintf("[VIEWING WINDOW] Viewing %s:", boundsPrompts[m.boundsIdx])
		}
		return fmt.Sprintf("Lattice dimensions (from your FILL card) - %s:", boundsPrompts[m.boundsIdx])
	case stepSelectionMethod:
		return "How to specify lattice elements?  1 = Visual selector (interactive grid)  2 = Manual entry. Enter 1 or 2:"
	case stepSizeGuard:
		return "Continue with visual selector anyway? (y/n)"
	case stepManualDims:
		return "  " + dimPrompts[m.dimIdx] + ":"
	case stepParentInUniverse:
		return fmt.Sprintf("Is Cell %d inside a universe (not Universe 0)? (y/n)", m.pending.Cell)
	case stepParentUniverse:
		return fmt.Sprintf("What universe number is Cell %d in?", m.pending.Cell)
	case stepTallyType:
		return "Enter tally type (e.g. F4:N, F7:N, F4:P):"
	case stepVolumeKnown:
		return fmt.Sprintf("Do you know the volume of Cell %d (in cm³)? (y/n)", m.session.TargetCell)
	case stepVolume:
		return fmt.Sprintf("Enter volume of Cell %d (cm³):", m.session.TargetCell)
	case stepDistNum:
		return "Enter distribution number to use (e.g. 1 for d1) [default: 1]:"
	case stepWantPos:
		return "Do you want to specify a position (POS)? (y/n)"
	case stepPos:
		return "  " + posPrompts[m.posIdx] + ":"
	case stepWantErg:
		return "Do you want to specify energy (ERG)? (y/n)"
	case stepErg:
		return "  Energy (MeV):"
	case stepVerify:
		return "Would you like to generate a verification deck snippet? (y/n)"
	}
	return ""
}

// handleSubmit consumes one answered prompt. Invalid answers set the error
// line and stay on the same step.
func (m WizardModel) handleSubmit(value string) WizardModel {
	m.errLine = ""

	switch m.step {
	case stepMode:
		c, err := parseChoice(value, 3)
		if err != nil {
			return m.fail(err)
		}
		m.mode = [...]string{modeTally, modeSDEF, modeBoth}[c-1]
		m.pushf("Mode: %s", m.mode)
		m.step = stepTargetCell
		m.input.Placeholder = "e.g. 101"

	case stepTargetCell:
		n, err := parseIntInput(value)
		if err != nil {
			return m.fail(err)
		}
		m.session = universe.NewSession(n)
		m.step = stepTargetInUniverse
		m.input.Placeholder = "y/n"

	case stepTargetInUniverse:
		yes, err := parseYesNo(value)
		if err != nil {
			return m.fail(err)
		}
		if !yes {
			m.stack = universe.Stack{{Cell: m.session.TargetCell, Universe: 0}}
			m.pushf("✓ Cell %d is in the global universe (U=0)", m.session.TargetCell)
			return m.finishStack()
		}
		m.step = stepTargetUniverse
		m.input.Placeholder = "universe number"

	case stepTargetUniverse:
		u, err := parseIntInput(value)
		if err != nil {
			return m.fail(err)
		}
		m.stack = universe.Stack{{Cell: m.session.TargetCell, Universe: u}}
		m.climbUniverse = u
		m.step = stepParentCell
		m.input.Placeholder = "cell number"

	case stepParentCell:
		n, err := parseIntInput(value)
		if err != nil {
			return m.fail(err)
		}
		m.pending = universe.Node{Cell: n, Fill: m.climbUniverse}
		m.step = stepIsLattice
		m.input.Placeholder = "y/n"

	case stepIsLattice:
		yes, err := parseYesNo(value)
		if err != nil {
			return m.fail(err)
		}
		if !yes {
			m.step = stepParentInUniverse
			return m
		}
		m.pending.Lattice = true
		m.step = stepLatticeType
		m.input.Placeholder = "1 or 2"

	case stepLatticeType:
		c, err := parseChoice(value, 2)
		if err != nil {
			return m.fail(err)
		}
		m.pending.Geometry = universe.Geometry(c)
		m.step = stepFillType

	case stepFillType:
		c, err := parseChoice(value, 2)
		if err != nil {
			return m.fail(err)
		}
		m.boundsIdx = 0
		if c == 1 {
			m.pending.InfiniteLattice = true
			m.warnf("INFINITE LATTICE detected (simple fill). You can reference ANY indices, e.g. [0 0 0] or [9999 -500 0].")
			m.step = stepUseVisual
			m.input.Placeholder = "y/n"
		} else {
			m.step = stepBounds
			m.input.Placeholder = "integer"
		}

	case stepUseVisual:
		yes, err := parseYesNo(value)
		if err != nil {
			return m.fail(err)
		}
		if !yes {
			m.pending.Bounds = nil
			return m.startManualDims()
		}
		m.pushf("Viewing window bounds are for display only; the lattice itself is infinite. Keep it small (<20x20).")
		m.step = stepBounds
		m.input.Placeholder = "integer"

	case stepBounds:
		n, err := parseIntInput(value)
		if err != nil {
			return m.fail(err)
		}
		// Max prompts follow their min; reject inverted axes immediately.
		if m.boundsIdx%2 == 1 && n < m.boundsVals[m.boundsIdx-1] {
			return m.fail(fmt.Errorf("maximum must be >= minimum (%d)", m.boundsVals[m.boundsIdx-1]))
		}
		m.boundsVals[m.boundsIdx] = n
		m.boundsIdx++
		if m.boundsIdx < len(m.boundsVals) {
			return m
		}
		m.pending.Bounds = &universe.Bounds{
			IMin: m.boundsVals[0], IMax: m.boundsVals[1],
			JMin: m.boundsVals[2], JMax: m.boundsVals[3],
			KMin: m.boundsVals[4], KMax: m.boundsVals[5],
		}
		if m.pending.InfiniteLattice {
			return m.checkSizeGuard()
		}
		m.step = stepSelectionMethod
		m.input.Placeholder = "1 or 2"

	case stepSelectionMethod:
		c, err := parseChoice(value, 2)
		if err != nil {
			return m.fail(err)
		}
		if c == 1 {
			return m.checkSizeGuard()
		}
		return m.startManualDims()

	case stepSizeGuard:
		yes, err := parseYesNo(value)
		if err != nil {
			return m.fail(err)
		}
		if yes {
			return m.enterSelector()
		}
		m.pushf("Falling back to manual entry.")
		return m.startManualDims()

	case stepManualDims:
		d, err := parseDimension(value)
		if err != nil {
			return m.fail(err)
		}
		m.dims[m.dimIdx] = d
		m.dimIdx++
		if m.dimIdx < len(m.dims) {
			return m
		}
		spec := lattice.Contiguous(m.dims[0], m.dims[1], m.dims[2])
		m.pending.Spec = &spec
		m.pushf("Lattice spec: %s", spec.RangeToken())
		return m.finishLatticeNode()

	case stepParentInUniverse:
		yes, err := parseYesNo(value)
		if err != nil {
			return m.fail(err)
		}
		if yes {
			m.step = stepParentUniverse
			m.input.Placeholder = "universe number"
			return m
		}
		m.pending.Universe = 0
		m.stack = append(m.stack, m.pending)
		return m.finishStack()

	case stepParentUniverse:
		u, err := parseIntInput(value)
		if err != nil {
			return m.fail(err)
		}
		m.pending.Universe = u
		m.stack = append(m.stack, m.pending)
		m.climbUniverse = u
		m.pending = universe.Node{}
		m.step = stepParentCell
		m.input.Placeholder = "cell number"

	case stepTallyType:
		t := strings.ToUpper(strings.TrimSpace(value))
		if t == "" {
			return m.fail(fmt.Errorf("tally type must not be empty"))
		}
		m.tallyType = t
		return m.emitTally()

	case stepVolumeKnown:
		yes, err := parseYesNo(value)
		if err != nil {
			return m.fail(err)
		}
		if !yes {
			m.warnf("You MUST add an SD card manually with the correct volume! Format: SD<n> <volume_of_cell_%d_in_cm3>", m.session.TargetCell)
			return m.afterTally()
		}
		m.step = stepVolume
		m.input.Placeholder = "e.g. 2.75"

	case stepVolume:
		v, err := parseFloatInput(value)
		if err != nil {
			return m.fail(err)
		}
		m.session.Volume = &v
		sd, err := cards.Volume(m.tallyType, v)
		if err != nil {
			return m.fail(err)
		}
		m.pushRaw(m.cardBlock("REQUIRED SD CARD", sd))
		m.pushf("This specifies that Cell %d has a volume of %g cm³ in each lattice element where it appears.", m.session.TargetCell, v)
		return m.afterTally()

	case stepDistNum:
		if strings.TrimSpace(value) == "" {
			m.distNum = 1
		} else {
			n, err := parseIntInput(value)
			if err != nil {
				return m.fail(err)
			}
			m.distNum = n
		}
		m.step = stepWantPos
		m.input.Placeholder = "y/n"

	case stepWantPos:
		yes, err := parseYesNo(value)
		if err != nil {
			return m.fail(err)
		}
		if !yes {
			m.step = stepWantErg
			return m
		}
		m.warnf("Coordinates must be in the TARGET cell's local frame (global transformation not implemented).")
		m.posIdx = 0
		m.step = stepPos
		m.input.Placeholder = "number"

	case stepPos:
		f, err := parseFloatInput(value)
		if err != nil {
			return m.fail(err)
		}
		m.pos[m.posIdx] = f
		m.posIdx++
		if m.posIdx < len(m.pos) {
			return m
		}
		m.step = stepWantErg
		m.input.Placeholder = "y/n"

	case stepWantErg:
		yes, err := parseYesNo(value)
		if err != nil {
			return m.fail(err)
		}
		if yes {
			m.step = stepErg
			m.input.Placeholder = "MeV"
			return m
		}
		return m.emitSource(nil)

	case stepErg:
		f, err := parseFloatInput(value)
		if err != nil {
			return m.fail(err)
		}
		return m.emitSource(&f)

	case stepVerify:
		yes, err := parseYesNo(value)
		if err != nil {
			return m.fail(err)
		}
		if yes {
			m.pushRaw(m.cardBlock("VERIFICATION DECK SNIPPET",
				cards.VerificationDeck(m.session.TargetCell, m.stack)))
		}
		m.step = stepDone
	}

	return m
}

// startManualDims begins the three-axis manual entry sequence.
func (m WizardModel) startManualDims() WizardModel {
	if m.pending.InfiniteLattice {
		m.pushf("Note: this is an INFINITE lattice; any indices (positive, negative, zero) are valid.")
	}
	m.dimIdx = 0
	m.step = stepManualDims
	m.input.Placeholder = "e.g. 5 or 0:9"
	return m
}

// checkSizeGuard applies the advisory size thresholds before launching the
// visual selector.
func (m WizardModel) checkSizeGuard() WizardModel {
	w := m.windowFromBounds()
	if warning := w.SizeWarning(m.limits()); warning != "" {
		m.warnf("WARNING: %s.", warning)
		m.step = stepSizeGuard
		m.input.Placeholder = "y/n"
		return m
	}
	return m.enterSelector()
}

// enterSelector switches to the full-screen selector page.
func (m WizardModel) enterSelector() WizardModel {
	w := m.windowFromBounds()
	m.selPage = NewSelectorModel(m.styles, m.pending.Geometry, w)
	m.inSelector = true
	m.step = stepSelector
	logging.L(logging.CategorySelector).Info("visual selection started",
		zap.Stringer("geometry", m.pending.Geometry),
		zap.Int("cells_per_layer", w.CellsPerLayer()),
		zap.Int("total_cells", w.TotalCells()),
		zap.Bool("infinite", w.Infinite))
	return m
}

// finishLatticeNode returns to the universe-climb questions once the
// pending lattice node has its spec.
func (m WizardModel) finishLatticeNode() WizardModel {
	m.step = stepParentInUniverse
	m.input.Placeholder = "y/n"
	return m
}

// finishStack validates the completed containment stack, shows the summary,
// and routes to the output prompts for the chosen mode.
func (m WizardModel) finishStack() WizardModel {
	m.session.Stack = m.stack
	if err := m.stack.Validate(); err != nil {
		// Should be unreachable: the dialogue builds well-formed stacks.
		logging.L(logging.CategoryWizard).Warn("stack validation failed", zap.Error(err))
	}
	if err := m.stack.CheckAmbiguity(); err != nil {
		m.warnf("%v; only the first non-contiguous selection will be honored.", err)
		logging.L(logging.CategoryWizard).Warn("ambiguous stack", zap.Error(err))
	}
	m.logStackComplete()

	table := NewSummaryTable("Universe Stack Complete", []string{"Level", "Cell", "In Universe", "Fills", "Lattice"})
	for i, n := range m.stack {
		fills := "-"
		if n.Fill != 0 {
			fills = fmt.Sprintf("U=%d", n.Fill)
		}
		lat := "-"
		if n.Lattice {
			lat = n.Geometry.String()
			if n.Spec != nil {
				lat += " " + n.Spec.String()
			}
		}
		table.AddRow(strconv.Itoa(i), strconv.Itoa(n.Cell), fmt.Sprintf("U=%d", n.Universe), fills, lat)
	}
	m.pushRaw(table.View(m.styles))

	if m.mode == modeTally || m.mode == modeBoth {
		m.step = stepTallyType
		m.input.Placeholder = "e.g. F4:N"
		return m
	}
	return m.startSource()
}

func (m WizardModel) startSource() WizardModel {
	m.step = stepDistNum
	m.input.Placeholder = "1"
	return m
}

// emitTally renders the tally card and routes to the SD card questions when
// the target sits inside a lattice.
func (m WizardModel) emitTally() WizardModel {
	card := cards.Tally(m.tallyType, m.session.TargetCell, m.stack)
	m.pushRaw(m.cardBlock("GENERATED TALLY CARD", card))
	logging.L(logging.CategoryCards).Info("tally card generated",
		zap.String("session", m.session.ID),
		zap.String("card", card))

	if m.stack.NeedsVolumeCard() {
		m.warnf("This tally requires a Segment Divisor (SD) card! Cell %d is inside a lattice and MCNP cannot auto-calculate its volume.", m.session.TargetCell)
		m.step = stepVolumeKnown
		m.input.Placeholder = "y/n"
		return m
	}
	return m.afterTally()
}

func (m WizardModel) afterTally() WizardModel {
	if m.mode == modeBoth {
		return m.startSource()
	}
	m.step = stepVerify
	m.input.Placeholder = "y/n"
	return m
}

// emitSource renders the SDEF/SI/SP triple.
func (m WizardModel) emitSource(erg *float64) WizardModel {
	opts := cards.SourceOptions{Energy: erg}
	if m.posIdx == len(m.pos) {
		pos := m.pos
		opts.Position = &pos
	}
	def := cards.Source(m.distNum, m.session.TargetCell, m.stack, opts)

	if idx, ok := m.stack.DiscreteNode(); ok {
		n := len(m.stack[idx].Spec.Elements())
		m.warnf("NON-CONTIGUOUS selection detected! Generating %d separate source locations with equal probability.", n)
	}
	m.pushRaw(m.cardBlock("GENERATED SOURCE DEFINITION", strings.Join(def.Cards(), "\n")))
	logging.L(logging.CategoryCards).Info("source definition generated",
		zap.String("session", m.session.ID),
		zap.String("si", def.SI))

	m.step = stepVerify
	m.input.Placeholder = "y/n"
	return m
}

// cardBlock renders a titled card body in a bordered block.
func (m WizardModel) cardBlock(title, body string) string {
	return m.styles.Title.Render(title) + "\n" +
		m.styles.CardBlock.Render(strings.TrimRight(body, "\n"))
}
