package function

import (
	"unsafe"

	"github.com/Jij-Inc/ommx-sub001/logicalmemory"
)

// VisitLogicalMemory dispatches on kind: Zero and Constant are leaves sized
// at the Function struct itself (the inactive linear/quadratic/polynomial
// fields carry no heap allocation when unused), while Linear, Quadratic,
// and Polynomial delegate to the active variant's own term map.
func (f Function) VisitLogicalMemory(path logicalmemory.Path, v logicalmemory.Visitor) {
	switch f.kind {
	case Zero:
		v.VisitLeaf(path.With("Zero"), int(unsafe.Sizeof(f)))
	case Constant:
		v.VisitLeaf(path.With("Constant"), int(unsafe.Sizeof(f)))
	case LinearKind:
		f.linear.VisitLogicalMemory(path.With("Linear"), v)
	case QuadraticKind:
		f.quad.VisitLogicalMemory(path.With("Quadratic"), v)
	default:
		f.poly.VisitLogicalMemory(path.With("Polynomial"), v)
	}
}
