package remote

// Leaf terminates a cross-package pointer chain.
type Leaf struct {
	Value uint64
}
