// Package memreader provides ready-made ptrprint.MemoryReader
// implementations: an in-memory snapshot buffer, a delve-backed reader for
// live processes, and an LRU-caching decorator.
package memreader

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfRange reports a read outside the mapped address range.
var ErrOutOfRange = errors.New("address outside mapped range")

// Fetcher reads raw bytes from the target address space.
type Fetcher interface {
	Fetch(addr uint64, n int) ([]byte, error)
}

// Reader decodes fixed-size values fetched from a target address space. It
// implements ptrprint.MemoryReader.
type Reader struct {
	fetcher Fetcher
	order   binary.ByteOrder
}

// NewReader wraps a fetcher with a byte order. A nil order defaults to
// little-endian.
func NewReader(f Fetcher, order binary.ByteOrder) *Reader {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Reader{fetcher: f, order: order}
}

// ReadAt fetches and decodes the value at addr into out, which must point to
// a fixed-size type.
func (r *Reader) ReadAt(addr uint64, out any) error {
	n := binary.Size(out)
	if n < 0 {
		return fmt.Errorf("read %#x: type %T has no fixed size", addr, out)
	}
	data, err := r.fetcher.Fetch(addr, n)
	if err != nil {
		return fmt.Errorf("read %#x: %w", addr, err)
	}
	return binary.Read(bytes.NewReader(data), r.order, out)
}
