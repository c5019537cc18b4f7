package universe

import "github.com/google/uuid"

// Session carries the state of one wizard run explicitly: the target cell,
// the finished containment stack, and the target volume when the operator
// supplied one. Path building and card generation take the session value
// rather than hiding state in long-lived objects.
type Session struct {
	ID         string
	TargetCell int
	Stack      Stack
	Volume     *float64 // cm³, needed when the target sits inside a lattice
}

// NewSession starts a session for the given target cell.
func NewSession(targetCell int) *Session {
	return &Session{
		ID:         uuid.NewString(),
		TargetCell: targetCell,
	}
}

// TallyPath renders the session's containment path expression.
func (s *Session) TallyPath() string {
	return TallyPath(s.TargetCell, s.Stack)
}
