// Package ptrprint prints data structures as indented field trees while
// transparently following pointer fields through external memory.
//
// It is the runtime half of the gen-ptrprint tool: for every participating
// struct type the tool generates a VisitFields method, and this package
// supplies the traversal driver that invokes those methods with a fresh
// visited-address set and a depth ceiling. Cyclic pointer graphs terminate
// because an address is never entered twice within one traversal.
package ptrprint

import (
	"io"
	"os"
)

// DefaultMaxDepth is the pointer-follow ceiling used by Print.
const DefaultMaxDepth = 5

// MemoryReader resolves a typed value at an address in the target address
// space. Implementations decode into out, which must be a pointer to the
// requested type. See the memreader package for ready-made readers.
type MemoryReader interface {
	ReadAt(addr uint64, out any) error
}

// FieldVisitor is implemented by every type that gen-ptrprint has generated a
// field-visiting method for. VisitFields prints the value's header, each
// non-padding field, and a closing delimiter, recursing into pointer targets
// at depth+1. All per-traversal state lives in tr.
type FieldVisitor interface {
	VisitFields(mem MemoryReader, depth int, tr *Traversal)
}

// Pointer is a typed address in the target address space. Reading it through
// a MemoryReader yields the pointee.
type Pointer[T any] struct {
	Addr uint64
}

// Address returns the raw target-space address.
func (p Pointer[T]) Address() uint64 { return p.Addr }

// Read decodes the pointee at the pointer's address.
func (p Pointer[T]) Read(mem MemoryReader) (T, error) {
	var v T
	if err := mem.ReadAt(p.Addr, &v); err != nil {
		return v, err
	}
	return v, nil
}

// Print writes v's field tree to stdout, following pointers up to
// DefaultMaxDepth levels.
func Print(v FieldVisitor, mem MemoryReader) {
	PrintDepth(v, mem, DefaultMaxDepth)
}

// PrintDepth is Print with an explicit pointer-follow ceiling. A maxDepth of
// zero prints only the root's header and closing delimiter.
func PrintDepth(v FieldVisitor, mem MemoryReader, maxDepth int) {
	Fprint(os.Stdout, v, mem, maxDepth)
}

// Fprint writes v's field tree to w. Each call owns a fresh visited-address
// set; nothing is shared between calls.
func Fprint(w io.Writer, v FieldVisitor, mem MemoryReader, maxDepth int) {
	tr := newTraversal(w, maxDepth)
	v.VisitFields(mem, 0, tr)
}
