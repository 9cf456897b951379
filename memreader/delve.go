package memreader

import (
	"fmt"

	"github.com/go-delve/delve/service/rpc2"
)

// Delve caps examine-memory requests at 1000 bytes; larger reads are split.
const maxExamineChunk = 1000

// Delve fetches target memory from a live process through a delve headless
// server's JSON-RPC API.
type Delve struct {
	client *rpc2.RPCClient
}

// NewDelve connects to a delve headless server, e.g. "127.0.0.1:8181".
func NewDelve(listenAddr string) *Delve {
	return &Delve{client: rpc2.NewClient(listenAddr)}
}

// Fetch reads n bytes of target memory at addr.
func (d *Delve) Fetch(addr uint64, n int) ([]byte, error) {
	out := make([]byte, 0, n)
	for len(out) < n {
		chunk := n - len(out)
		if chunk > maxExamineChunk {
			chunk = maxExamineChunk
		}
		data, _, err := d.client.ExamineMemory(addr+uint64(len(out)), chunk)
		if err != nil {
			return nil, fmt.Errorf("examine memory: %w", err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("examine memory at %#x: empty read", addr+uint64(len(out)))
		}
		out = append(out, data...)
	}
	return out[:n], nil
}

// Close disconnects the RPC client, leaving the target running.
func (d *Delve) Close() error {
	return d.client.Disconnect(false)
}
