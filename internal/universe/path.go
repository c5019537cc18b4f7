package universe

import (
	"strconv"
	"strings"

	"mcnpwiz/internal/lattice"
)

// SinglePath renders one path through the containment stack, innermost
// first, nodes joined by " < ". A lattice node contributes its cell id with
// an index token appended directly (no space): the override element's token
// when the node's spec is discrete and an override is given, otherwise the
// contiguous range token. A discrete node without an override contributes
// the bare cell id.
func SinglePath(s Stack, override *lattice.Element) string {
	parts := make([]string, 0, len(s))
	for _, n := range s {
		token := strconv.Itoa(n.Cell)
		if n.Lattice && n.Spec != nil {
			switch {
			case n.Spec.IsDiscrete() && override != nil:
				token += override.Token()
			case !n.Spec.IsDiscrete():
				token += n.Spec.RangeToken()
			}
		}
		parts = append(parts, token)
	}
	return strings.Join(parts, " < ")
}

// UnionPaths renders a non-contiguous selection as MCNP "Method 2" union
// syntax: one parenthesized path per element of the first discrete node,
// joined by spaces and wrapped in one more pair of parentheses:
//
//	( (path1) (path2) ... )
//
// Stacks without a discrete node fall back to a plain single path.
func UnionPaths(s Stack) string {
	idx, ok := s.DiscreteNode()
	if !ok {
		return SinglePath(s, nil)
	}
	elems := s[idx].Spec.Elements()
	paths := make([]string, 0, len(elems))
	for i := range elems {
		paths = append(paths, "("+SinglePath(s, &elems[i])+")")
	}
	return "( " + strings.Join(paths, " ") + " )"
}

// TallyPath renders the complete path expression for a tally against the
// given target cell. An empty stack addresses the bare target; a stack with
// a discrete selection expands to union syntax; everything else is a single
// parenthesized path.
func TallyPath(target int, s Stack) string {
	if len(s) == 0 {
		return "( " + strconv.Itoa(target) + " )"
	}
	if _, ok := s.DiscreteNode(); ok {
		return UnionPaths(s)
	}
	return "( " + SinglePath(s, nil) + " )"
}
