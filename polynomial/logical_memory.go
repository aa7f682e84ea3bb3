package polynomial

import (
	"unsafe"

	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/logicalmemory"
)

// VisitLogicalMemory reports the term map's approximate footprint as a
// single "terms" leaf: map header overhead plus one (monomial,
// coefficient) pair per entry. Go's runtime exposes no bucket/capacity
// introspection for maps, so entry count stands in for the allocated
// capacity a hashmap profiler would otherwise report.
func (p PolynomialBase[M]) VisitLogicalMemory(path logicalmemory.Path, v logicalmemory.Visitor) {
	var zero M
	entrySize := int(unsafe.Sizeof(zero)) + int(unsafe.Sizeof(coefficient.Coefficient{}))
	bytes := int(unsafe.Sizeof(p.terms)) + len(p.terms)*entrySize
	v.VisitLeaf(path.With("terms"), bytes)
}
