package bound

import (
	"unsafe"

	"github.com/Jij-Inc/ommx-sub001/logicalmemory"
)

// VisitLogicalMemory reports Bound as a single leaf sized at its two
// float64 fields; it carries no heap allocation of its own.
func (b Bound) VisitLogicalMemory(path logicalmemory.Path, v logicalmemory.Visitor) {
	v.VisitLeaf(path, int(unsafe.Sizeof(b)))
}
