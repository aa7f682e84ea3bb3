package assign

import (
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
)

// Entry is one (VariableID, Function) assignment, as supplied to New.
type Entry struct {
	ID       ids.VariableID
	Function function.Function
}

// AcyclicAssignments is a validated, acyclic map from VariableID to the
// Function that defines it.
type AcyclicAssignments struct {
	order     []ids.VariableID
	functions map[ids.VariableID]function.Function
}

const (
	white = iota
	gray
	black
)

// New validates entries and builds an AcyclicAssignments:
//  1. duplicate IDs fail with ErrDuplicateAssignment (last-write-wins is
//     not acceptable).
//  2. a function requiring its own assigned ID fails with
//     ErrRecursiveAssignment.
//  3. any longer dependency cycle fails with ErrCyclicAssignment.
//
// The resulting topological order is deterministic for a fixed input order:
// roots are visited in the order entries were supplied.
func New(entries []Entry) (AcyclicAssignments, error) {
	fns := make(map[ids.VariableID]function.Function, len(entries))
	roots := make([]ids.VariableID, 0, len(entries))
	for _, e := range entries {
		if _, dup := fns[e.ID]; dup {
			return AcyclicAssignments{}, &Error{ID: e.ID, Err: ErrDuplicateAssignment}
		}
		for _, req := range e.Function.RequiredIDs() {
			if req == e.ID {
				return AcyclicAssignments{}, &Error{ID: e.ID, Err: ErrRecursiveAssignment}
			}
		}
		fns[e.ID] = e.Function
		roots = append(roots, e.ID)
	}

	order, err := topologicalSort(roots, fns)
	if err != nil {
		return AcyclicAssignments{}, err
	}
	return AcyclicAssignments{order: order, functions: fns}, nil
}

func topologicalSort(roots []ids.VariableID, fns map[ids.VariableID]function.Function) ([]ids.VariableID, error) {
	state := make(map[ids.VariableID]int, len(fns))
	result := make([]ids.VariableID, 0, len(fns))

	var visit func(id ids.VariableID) error
	visit = func(id ids.VariableID) error {
		switch state[id] {
		case gray:
			return &Error{ID: id, Err: ErrCyclicAssignment}
		case black:
			return nil
		}
		state[id] = gray
		if fn, assigned := fns[id]; assigned {
			for _, req := range fn.RequiredIDs() {
				if _, requiredIsAssigned := fns[req]; requiredIsAssigned {
					if err := visit(req); err != nil {
						return err
					}
				}
			}
		}
		state[id] = black
		result = append(result, id)
		return nil
	}

	for _, id := range roots {
		if state[id] == white {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// Len returns the number of assignments.
func (a AcyclicAssignments) Len() int { return len(a.functions) }

// Get returns the Function assigned to id, if any.
func (a AcyclicAssignments) Get(id ids.VariableID) (function.Function, bool) {
	f, ok := a.functions[id]
	return f, ok
}

// SortedIter returns the assignments in topological order: every assigned
// variable precedes any variable whose definition requires it.
func (a AcyclicAssignments) SortedIter() []Entry {
	out := make([]Entry, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, Entry{ID: id, Function: a.functions[id]})
	}
	return out
}
