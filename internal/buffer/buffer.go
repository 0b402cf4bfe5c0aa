// Package buffer implements the growable sequence of 32-bit signed
// integers that backs a sparse bitmap's (gap, word) pair stream.
package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// defaultCapacity is the initial element capacity of a new Buffer.
const defaultCapacity = 32

// Buffer is an append-only growable sequence of int32 values. It grows
// by doubling capacity on overflow and never shrinks except via Trim.
type Buffer struct {
	data []int32
}

// New returns an empty Buffer with the default initial capacity.
func New() *Buffer {
	return &Buffer{data: make([]int32, 0, defaultCapacity)}
}

// NewWithCapacity returns an empty Buffer with the given initial
// element capacity.
func NewWithCapacity(capacity int32) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]int32, 0, capacity)}
}

// Push appends x to the end of the buffer, growing it if needed.
func (b *Buffer) Push(x int32) {
	if len(b.data) == cap(b.data) {
		newCap := 2 * cap(b.data)
		if newCap == 0 {
			newCap = 1
		}
		grown := make([]int32, len(b.data), newCap)
		copy(grown, b.data)
		b.data = grown
	}
	b.data = append(b.data, x)
}

// Get returns the element at index i.
func (b *Buffer) Get(i int32) int32 {
	return b.data[i]
}

// Set overwrites the element at index i.
func (b *Buffer) Set(i int32, x int32) {
	b.data[i] = x
}

// Size returns the number of elements currently stored.
func (b *Buffer) Size() int32 {
	return int32(len(b.data))
}

// Clear resets the buffer to length zero, retaining its capacity.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
}

// Equal reports whether two buffers have the same length and are
// element-wise equal.
func (b *Buffer) Equal(o *Buffer) bool {
	if len(b.data) != len(o.data) {
		return false
	}
	for i, v := range b.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

// HashCode computes a deterministic Karp-Rabin-style rolling hash:
// h starts at 0, and h = 31*h + x for each element x in order.
func (b *Buffer) HashCode() int32 {
	var h int32
	for _, x := range b.data {
		h = 31*h + x
	}
	return h
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := make([]int32, len(b.data))
	copy(out, b.data)
	return &Buffer{data: out}
}

// Trim shrinks capacity to length and returns the new byte size
// (size*4).
func (b *Buffer) Trim() int32 {
	out := make([]int32, len(b.data))
	copy(out, b.data)
	b.data = out
	return int32(len(out)) * 4
}

// Serialize writes a 32-bit big-endian length followed by that many
// 32-bit big-endian elements. It returns the number of bytes written.
func (b *Buffer) Serialize(w io.Writer) (int, error) {
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(b.data)))
	if _, err := w.Write(hdr[:]); err != nil {
		return 0, fmt.Errorf("buffer: write length: %w", err)
	}
	total := 4
	payload := make([]byte, 4*len(b.data))
	for i, x := range b.data {
		binary.BigEndian.PutUint32(payload[i*4:], uint32(x))
	}
	n, err := w.Write(payload)
	total += n
	if err != nil {
		return total, fmt.Errorf("buffer: write elements: %w", err)
	}
	return total, nil
}

// Deserialize reads a buffer back from its Serialize format. A
// truncated or malformed stream is reported by wrapping the
// underlying io error.
func Deserialize(r io.Reader) (*Buffer, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("buffer: read length: %w", err)
	}
	length := binary.BigEndian.Uint32(hdr[:])

	payload := make([]byte, 4*length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("buffer: read elements: %w", err)
	}

	data := make([]int32, length)
	for i := range data {
		data[i] = int32(binary.BigEndian.Uint32(payload[i*4:]))
	}
	return &Buffer{data: data}, nil
}
