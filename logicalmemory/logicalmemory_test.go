package logicalmemory_test

import (
	"testing"

	"github.com/Jij-Inc/ommx-sub001/logicalmemory"
	"github.com/stretchr/testify/require"
)

// leaf is a trivial Profile that reports a single fixed-size leaf under
// name, for exercising the collector/aggregator without depending on any
// domain package.
type leaf struct {
	name  string
	bytes int
}

func (l leaf) VisitLogicalMemory(path logicalmemory.Path, v logicalmemory.Visitor) {
	v.VisitLeaf(path.With(l.name), l.bytes)
}

// branch delegates to each child under its own sub-path, modeling an
// intermediate node that reports no bytes of its own.
type branch struct {
	name     string
	children []logicalmemory.Profile
}

func (b branch) VisitLogicalMemory(path logicalmemory.Path, v logicalmemory.Visitor) {
	path = path.With(b.name)
	for _, c := range b.children {
		c.VisitLogicalMemory(path, v)
	}
}

func TestToFoldedFormatsOneLinePerLeaf(t *testing.T) {
	t.Parallel()

	tree := branch{name: "terms", children: []logicalmemory.Profile{
		leaf{name: "a", bytes: 16},
		leaf{name: "b", bytes: 32},
	}}

	got := logicalmemory.ToFolded("Root", tree)
	want := "Root;terms;a 16\nRoot;terms;b 32"
	require.Equal(t, want, got)
}

func TestToFoldedSkipsZeroByteLeaves(t *testing.T) {
	t.Parallel()

	tree := branch{name: "terms", children: []logicalmemory.Profile{
		leaf{name: "empty", bytes: 0},
		leaf{name: "present", bytes: 8},
	}}

	got := logicalmemory.ToFolded("Root", tree)
	require.Equal(t, "Root;terms;present 8", got)
}

func TestTotalBytesSumsAcrossAllLeaves(t *testing.T) {
	t.Parallel()

	tree := branch{children: []logicalmemory.Profile{
		leaf{name: "a", bytes: 10},
		branch{name: "nested", children: []logicalmemory.Profile{
			leaf{name: "b", bytes: 5},
			leaf{name: "c", bytes: 7},
		}},
	}}

	require.Equal(t, 22, logicalmemory.TotalBytes("Root", tree))
}

func TestPathWithDoesNotAliasSiblingCalls(t *testing.T) {
	t.Parallel()

	base := logicalmemory.Path{"Root"}
	a := base.With("a")
	b := base.With("b")

	require.Equal(t, logicalmemory.Path{"Root", "a"}, a)
	require.Equal(t, logicalmemory.Path{"Root", "b"}, b)
}
