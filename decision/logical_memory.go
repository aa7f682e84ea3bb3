package decision

import (
	"github.com/Jij-Inc/ommx-sub001/logicalmemory"
)

// VisitLogicalMemory reports name, description, and metadata as separate
// leaves grouped under "metadata"; empty fields emit nothing so a bare
// variable with no annotations produces no output at all.
func (d DecisionVariable) VisitLogicalMemory(path logicalmemory.Path, v logicalmemory.Visitor) {
	path = path.With("metadata")
	if d.name != "" {
		v.VisitLeaf(path.With("name"), len(d.name))
	}
	if d.description != "" {
		v.VisitLeaf(path.With("description"), len(d.description))
	}
	if len(d.metadata) > 0 {
		bytes := 0
		for k, val := range d.metadata {
			bytes += len(k) + len(val)
		}
		v.VisitLeaf(path.With("parameters"), bytes)
	}
}
