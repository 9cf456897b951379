package ptrprint

import (
	"fmt"
	"io"
	"strings"
)

// Traversal carries the mutable state of one top-level print call: the output
// sink, the pointer-follow ceiling, and the set of addresses already entered.
// Generated VisitFields methods are its only intended callers.
type Traversal struct {
	out      io.Writer
	maxDepth int
	visited  map[uint64]struct{}
}

func newTraversal(w io.Writer, maxDepth int) *Traversal {
	return &Traversal{
		out:      w,
		maxDepth: maxDepth,
		visited:  map[uint64]struct{}{},
	}
}

// MaxDepth returns the configured pointer-follow ceiling.
func (tr *Traversal) MaxDepth() int { return tr.maxDepth }

// Visited reports whether addr has already been entered in this traversal.
func (tr *Traversal) Visited(addr uint64) bool {
	_, ok := tr.visited[addr]
	return ok
}

// MarkVisited records addr. Must happen before the pointee is read so that
// back-references to an ancestor are cut off.
func (tr *Traversal) MarkVisited(addr uint64) {
	tr.visited[addr] = struct{}{}
}

// OpenHeader prints the opening line for a value of the named type. At depth
// zero this is a full "TypeName {" line; deeper values continue the referencing
// field's "name->" line inline.
func (tr *Traversal) OpenHeader(depth int, typeName string) {
	if depth > 0 {
		fmt.Fprintf(tr.out, " %s {\n", typeName)
		return
	}
	fmt.Fprintf(tr.out, "%s%s {\n", indent(depth), typeName)
}

// PlainField prints one non-pointer field line.
func (tr *Traversal) PlainField(depth int, name, typeLabel string, value any) {
	fmt.Fprintf(tr.out, "%s  %s: %s = %v\n", indent(depth), name, typeLabel, value)
}

// PointerField prints the "name->" prefix of a successfully followed pointer
// field. No newline: the pointee's OpenHeader completes the line.
func (tr *Traversal) PointerField(depth int, name string) {
	fmt.Fprintf(tr.out, "%s  %s->", indent(depth), name)
}

// AlreadyVisited prints the notice for a pointer whose target address was
// entered earlier in this traversal.
func (tr *Traversal) AlreadyVisited(depth int, name string, addr uint64) {
	fmt.Fprintf(tr.out, "%s  %s → Already visited address %#x\n", indent(depth), name, addr)
}

// ReadError prints the notice for a pointee that could not be read. The
// branch is abandoned; siblings are unaffected.
func (tr *Traversal) ReadError(depth int, name string, err error) {
	fmt.Fprintf(tr.out, "%s  %s → Error reading: %v\n", indent(depth), name, err)
}

// Close prints the closing delimiter for a value opened at depth.
func (tr *Traversal) Close(depth int) {
	fmt.Fprintf(tr.out, "%s}\n", indent(depth))
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
