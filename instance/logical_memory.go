package instance

import (
	"github.com/Jij-Inc/ommx-sub001/logicalmemory"
)

// VisitLogicalMemory profiles every component an Instance owns: the
// objective, each decision variable, and each live and removed constraint,
// all in ID order for deterministic output. Profiling an aggregate like
// Instance has no direct counterpart upstream, which profiles individual
// message types in isolation, but follows the same delegate-to-each-element
// pattern used to lift per-element profiling onto a collection.
func (i Instance) VisitLogicalMemory(path logicalmemory.Path, v logicalmemory.Visitor) {
	i.objective.VisitLogicalMemory(path.With("objective"), v)

	dvPath := path.With("decision_variables")
	for _, dv := range i.DecisionVariables() {
		dv.VisitLogicalMemory(dvPath, v)
	}

	cPath := path.With("constraints")
	for _, c := range i.Constraints() {
		c.VisitLogicalMemory(cPath, v)
	}

	rcPath := path.With("removed_constraints")
	for _, rc := range i.RemovedConstraints() {
		rc.VisitLogicalMemory(rcPath, v)
	}
}
