// Package substitute implements the C10 substitution operations: replacing
// every occurrence of a decision variable with a Function across a
// Constraint or a whole dependency chain, without removing the variable
// itself from the model.
//
// The per-monomial algebra (degree promotion, power expansion) lives on
// function.Function.Substitute; this package adds the orchestration layer
// that applies it across a Constraint and across an assign.AcyclicAssignments
// chain, composing each dependency's RHS against the ones already applied.
package substitute

import (
	"github.com/Jij-Inc/ommx-sub001/assign"
	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
)

// OneInFunction replaces every occurrence of assigned in f with replacement.
func OneInFunction(f function.Function, assigned ids.VariableID, replacement function.Function) function.Function {
	return f.Substitute(assigned, replacement)
}

// OneInConstraint replaces every occurrence of assigned in c's function with
// replacement, leaving the constraint's ID, equality, and metadata intact.
func OneInConstraint(c constraint.Constraint, assigned ids.VariableID, replacement function.Function) constraint.Constraint {
	return c.WithFunction(OneInFunction(c.Function(), assigned, replacement))
}

// AcyclicInFunction applies every assignment in acyclic to f, in topological
// order, composing each dependency's already-substituted RHS into the ones
// applied after it. This is equivalent to a sequence of OneInFunction calls
// but never substitutes into an RHS that has already had its own
// dependencies resolved.
func AcyclicInFunction(f function.Function, acyclic assign.AcyclicAssignments) function.Function {
	resolved := make(map[ids.VariableID]function.Function, acyclic.Len())
	for _, entry := range acyclic.SortedIter() {
		rhs := entry.Function
		for id, replacement := range resolved {
			rhs = rhs.Substitute(id, replacement)
		}
		resolved[entry.ID] = rhs
		f = f.Substitute(entry.ID, rhs)
	}
	return f
}

// AcyclicInConstraint applies AcyclicInFunction to c's function.
func AcyclicInConstraint(c constraint.Constraint, acyclic assign.AcyclicAssignments) constraint.Constraint {
	return c.WithFunction(AcyclicInFunction(c.Function(), acyclic))
}
