// Package constraint implements Constraint (an ID, a Function, an equality
// type, and free metadata), RemovedConstraint (a Constraint set aside with a
// reason), and the C8 constraint hints (OneHot, SOS1) that annotate
// variable-set structure solvers can exploit.
package constraint

import (
	"errors"
	"fmt"

	"github.com/Jij-Inc/ommx-sub001/ids"
)

// ErrNonUniqueVariableID indicates a hint's variable list contains a
// repeated ID, which would make the hint's variable-set semantics ambiguous.
var ErrNonUniqueVariableID = errors.New("constraint: hint variable list contains a duplicate ID")

// Error reports a duplicate variable ID found while validating a hint's
// variable list.
type Error struct {
	ID  ids.VariableID
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("constraint: variable %s: %v", e.ID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func checkUnique(variables []ids.VariableID) error {
	seen := make(map[ids.VariableID]struct{}, len(variables))
	for _, id := range variables {
		if _, dup := seen[id]; dup {
			return &Error{ID: id, Err: ErrNonUniqueVariableID}
		}
		seen[id] = struct{}{}
	}
	return nil
}
