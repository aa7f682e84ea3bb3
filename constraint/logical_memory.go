package constraint

import (
	"github.com/Jij-Inc/ommx-sub001/logicalmemory"
)

// VisitLogicalMemory delegates to the constraint's Function, then reports
// name, description, and metadata as leaves alongside it.
func (c Constraint) VisitLogicalMemory(path logicalmemory.Path, v logicalmemory.Visitor) {
	c.f.VisitLogicalMemory(path.With("function"), v)
	if c.name != "" {
		v.VisitLeaf(path.With("name"), len(c.name))
	}
	if c.description != "" {
		v.VisitLeaf(path.With("description"), len(c.description))
	}
	if len(c.metadata) > 0 {
		bytes := 0
		for k, val := range c.metadata {
			bytes += len(k) + len(val)
		}
		v.VisitLeaf(path.With("parameters"), bytes)
	}
}

// VisitLogicalMemory delegates to the embedded Constraint, then reports the
// removal reason and its parameters.
func (rc RemovedConstraint) VisitLogicalMemory(path logicalmemory.Path, v logicalmemory.Visitor) {
	rc.Constraint.VisitLogicalMemory(path.With("constraint"), v)
	if rc.reason != "" {
		v.VisitLeaf(path.With("removed_reason"), len(rc.reason))
	}
	if len(rc.parameters) > 0 {
		bytes := 0
		for k, val := range rc.parameters {
			bytes += len(k) + len(val)
		}
		v.VisitLeaf(path.With("removed_reason_parameters"), bytes)
	}
}
