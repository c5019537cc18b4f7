// Package cards assembles the MCNP card fragments the wizard prints: tally
// cards with containment paths, the SD volume cards lattice tallies require,
// and SDEF/SI/SP source definition triples.
package cards

import (
	"fmt"
	"strconv"
	"strings"

	"mcnpwiz/internal/universe"
)

// Tally renders a tally card: the tally tag followed by the containment
// path, e.g. "F4:N ( 101 < 50[3 4 0] < 1 )".
func Tally(tallyType string, target int, stack universe.Stack) string {
	return strings.ToUpper(strings.TrimSpace(tallyType)) + " " + universe.TallyPath(target, stack)
}

// TallyNumber extracts the tally number from a tag like "F4:N" or "F17:P".
func TallyNumber(tallyType string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(tallyType))
	t = strings.TrimPrefix(t, "F")
	if i := strings.IndexByte(t, ':'); i >= 0 {
		t = t[:i]
	}
	if t == "" {
		return "", fmt.Errorf("tally type %q has no tally number", tallyType)
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("tally type %q has no tally number", tallyType)
		}
	}
	return t, nil
}

// Volume renders the SD card pairing a lattice tally with an explicit cell
// volume, e.g. "SD4 2.75".
func Volume(tallyType string, volume float64) (string, error) {
	n, err := TallyNumber(tallyType)
	if err != nil {
		return "", err
	}
	return "SD" + n + " " + formatFloat(volume), nil
}

// SourceOptions are the optional SDEF parameters the wizard collects.
// Position coordinates are in the target cell's local frame.
type SourceOptions struct {
	Position *[3]float64
	Energy   *float64 // MeV
}

// SourceDef is an SDEF/SI/SP card triple using the distribution method.
type SourceDef struct {
	SDEF string
	SI   string
	SP   string
}

// Cards returns the triple in deck order.
func (s SourceDef) Cards() []string { return []string{s.SDEF, s.SI, s.SP} }

// Source builds a source definition for the containment stack. Contiguous
// stacks use one path with a unit probability; a non-contiguous lattice
// selection lists one parenthesized path per element with equal weights.
func Source(dist int, target int, stack universe.Stack, opts SourceOptions) SourceDef {
	sdef := fmt.Sprintf("SDEF CEL=d%d", dist)
	if opts.Position != nil {
		p := *opts.Position
		sdef += fmt.Sprintf(" POS=%s %s %s", formatFloat(p[0]), formatFloat(p[1]), formatFloat(p[2]))
	}
	if opts.Energy != nil {
		sdef += " ERG=" + formatFloat(*opts.Energy)
	}

	var si, sp string
	if idx, ok := stack.DiscreteNode(); ok {
		elems := stack[idx].Spec.Elements()
		paths := make([]string, 0, len(elems))
		weights := make([]string, 0, len(elems))
		for i := range elems {
			paths = append(paths, "("+universe.SinglePath(stack, &elems[i])+")")
			weights = append(weights, "1")
		}
		si = fmt.Sprintf("SI%d L %s", dist, strings.Join(paths, " "))
		sp = fmt.Sprintf("SP%d %s", dist, strings.Join(weights, " "))
	} else {
		si = fmt.Sprintf("SI%d L %s", dist, universe.TallyPath(target, stack))
		sp = fmt.Sprintf("SP%d 1", dist)
	}

	return SourceDef{SDEF: sdef, SI: si, SP: sp}
}

// VerificationDeck renders a paste-ready snippet that sources 50 particles
// at the addressed instance so the operator can confirm the path against
// PRINT 110 output.
func VerificationDeck(target int, stack universe.Stack) string {
	path := universe.TallyPath(target, stack)
	var b strings.Builder
	b.WriteString("C --- Paste this into an MCNP input for verification ---\n")
	b.WriteString("C --- Run with 50 particles and check PRINT 110 output ---\n")
	b.WriteString("SDEF CEL=d1 ERG=1.0\n")
	b.WriteString("SI1 L " + path + "\n")
	b.WriteString("SP1 1\n")
	b.WriteString("C\n")
	b.WriteString("NPS 50\n")
	b.WriteString("PRINT 110\n")
	b.WriteString("C\n")
	b.WriteString("C Set all materials to VOID for testing:\n")
	b.WriteString("C M0   $ Void\n")
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
