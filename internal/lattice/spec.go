package lattice

import "fmt"

// Element is one lattice position addressed by integer axis indices.
type Element struct {
	I, J, K int
}

// Less orders elements lexicographically by (i, j, k).
func (e Element) Less(o Element) bool {
	if e.I != o.I {
		return e.I < o.I
	}
	if e.J != o.J {
		return e.J < o.J
	}
	return e.K < o.K
}

// Token renders the element as an MCNP index token. Dimensions inside the
// brackets are always space-separated; commas are invalid downstream.
func (e Element) Token() string {
	return fmt.Sprintf("[%d %d %d]", e.I, e.J, e.K)
}

// Spec describes which lattice positions a containment path references.
// A contiguous spec holds one dimension per axis and is always rendered in
// range syntax: it is never expanded into individual positions, because
// expansion is combinatorial for large lattices and MCNP consumes the range
// form directly. A discrete spec holds an explicit, duplicate-free list of
// positions in the order the caller gave them.
type Spec struct {
	i, j, k  Dimension
	elements []Element // nil for contiguous specs
}

// Contiguous builds a spec covering the box spanned by the three dimensions.
func Contiguous(i, j, k Dimension) Spec {
	return Spec{i: i, j: j, k: k}
}

// Discrete builds a spec from an explicit list of positions. Duplicates are
// dropped, keeping the first occurrence; element order is otherwise
// preserved, because union paths must list positions in the order the
// operator gave them. An empty set is rejected.
func Discrete(elems []Element) (Spec, error) {
	if len(elems) == 0 {
		return Spec{}, fmt.Errorf("discrete spec: %w", ErrEmptySelection)
	}
	seen := make(map[Element]struct{}, len(elems))
	uniq := make([]Element, 0, len(elems))
	for _, e := range elems {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		uniq = append(uniq, e)
	}
	return Spec{elements: uniq}, nil
}

// IsDiscrete reports whether the spec is an explicit element list.
func (s Spec) IsDiscrete() bool { return s.elements != nil }

// Dimensions returns the per-axis dimensions of a contiguous spec.
// Only meaningful when IsDiscrete is false.
func (s Spec) Dimensions() (i, j, k Dimension) { return s.i, s.j, s.k }

// RangeToken renders a contiguous spec as an MCNP index token, for example
// "[0:9 0:9 0]".
func (s Spec) RangeToken() string {
	return fmt.Sprintf("[%s %s %s]", s.i, s.j, s.k)
}

// Elements returns the positions of a discrete spec in construction order.
// Contiguous specs return nil: ranges are consumed as ranges, never
// enumerated.
func (s Spec) Elements() []Element { return s.elements }

// ElementCount returns the number of lattice positions referenced.
func (s Spec) ElementCount() int {
	if s.IsDiscrete() {
		return len(s.elements)
	}
	return s.i.Size() * s.j.Size() * s.k.Size()
}

// SingleElement reports whether the spec addresses exactly one position,
// and if so which one.
func (s Spec) SingleElement() (Element, bool) {
	if s.IsDiscrete() {
		if len(s.elements) == 1 {
			return s.elements[0], true
		}
		return Element{}, false
	}
	if s.i.IsSingle() && s.j.IsSingle() && s.k.IsSingle() {
		return Element{I: s.i.Min(), J: s.j.Min(), K: s.k.Min()}, true
	}
	return Element{}, false
}

// String summarizes the spec for logs and stack listings.
func (s Spec) String() string {
	if s.IsDiscrete() {
		return fmt.Sprintf("%s (+%d more)", s.elements[0].Token(), len(s.elements)-1)
	}
	return s.RangeToken()
}
