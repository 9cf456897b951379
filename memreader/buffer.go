package memreader

import "fmt"

// Buffer is a Fetcher over one contiguous mapped range held in memory, such
// as a snapshot loaded from a dump file.
type Buffer struct {
	base uint64
	data []byte
}

// NewBuffer maps data starting at the given base address.
func NewBuffer(base uint64, data []byte) *Buffer {
	return &Buffer{base: base, data: data}
}

// Fetch copies n bytes starting at addr.
func (b *Buffer) Fetch(addr uint64, n int) ([]byte, error) {
	if addr < b.base || addr+uint64(n) > b.base+uint64(len(b.data)) {
		return nil, fmt.Errorf("%w: %#x+%d (mapped %#x..%#x)", ErrOutOfRange, addr, n, b.base, b.base+uint64(len(b.data)))
	}
	off := addr - b.base
	out := make([]byte, n)
	copy(out, b.data[off:])
	return out, nil
}
