package chain

import (
	"github.com/seitarof/ptrprint"
	"github.com/seitarof/ptrprint/testdata/chain/remote"
)

// Root points into a struct declared in another package.
type Root struct {
	Seq  uint64
	Next ptrprint.Pointer[remote.Leaf]
}
