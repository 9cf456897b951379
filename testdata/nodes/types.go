package nodes

import "github.com/seitarof/ptrprint"

//go:generate go run github.com/seitarof/ptrprint/cmd/gen-ptrprint --type Node --pkg .

// Node is a singly linked list node as laid out in target memory.
type Node struct {
	ID    uint32
	_pad0 uint32
	Next  ptrprint.Pointer[Node]
}

// A and B reference each other; traversal must cut the cycle.
type A struct {
	Tag uint64
	B   ptrprint.Pointer[B]
}

type B struct {
	Tag uint64
	A   ptrprint.Pointer[A]
}

// Distance is not a struct; generation for it must fail.
type Distance uint64
