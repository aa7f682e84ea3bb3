// Package assign implements AcyclicAssignments: a validated map from
// VariableID to the Function that defines it, guaranteed free of self-
// reference and of any longer dependency cycle, and iterable in a
// topological order where every assigned variable precedes anything whose
// definition requires it.
//
// The cycle check is a three-color (white/gray/black) depth-first search
// over the assigned-variable -> required-variable dependency graph, the same
// traversal shape as github.com/katalvlaran/lvlath/dfs.TopologicalSort,
// trimmed to a VariableID-keyed dependency graph with no separate vertex/edge
// storage: an assignment's Function.RequiredIDs() already is its outgoing
// edge list.
package assign

import (
	"errors"
	"fmt"

	"github.com/Jij-Inc/ommx-sub001/ids"
)

var (
	// ErrDuplicateAssignment indicates the same variable ID was assigned
	// more than once; unlike a plain map, last-write-wins is not acceptable.
	ErrDuplicateAssignment = errors.New("assign: duplicate assignment for variable")

	// ErrRecursiveAssignment indicates a variable's own function requires
	// itself (a direct self-loop in the dependency graph).
	ErrRecursiveAssignment = errors.New("assign: variable assigned in terms of itself")

	// ErrCyclicAssignment indicates a dependency cycle of length >= 2.
	ErrCyclicAssignment = errors.New("assign: cyclic assignment dependency")
)

// Error reports which variable triggered a validation failure.
type Error struct {
	ID  ids.VariableID
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("assign: variable %s: %v", e.ID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
