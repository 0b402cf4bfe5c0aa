package sparsebitmap

import (
	"fmt"
	"math/bits"

	"sparsebitmap/internal/buffer"
)

// wordSize is the number of bits in one word (we have a 32-bit
// implementation: int32s throughout).
const wordSize = 32

// Sink accepts (word, offset) appends in non-decreasing absolute word
// order. Bitmap itself is a Sink, which is what lets the merge kernels
// below write their output directly into a fresh Bitmap.
type Sink interface {
	Add(word, offset int32)
}

// Bitmap is a compressed, sparse set of non-negative int32 positions.
// See the package doc for the encoding. The zero value is not usable;
// construct with New, NewWithCapacity, or BitmapOf.
type Bitmap struct {
	buf         *buffer.Buffer
	sizeinwords int32
}

var _ Sink = (*Bitmap)(nil)

// New returns an empty Bitmap.
func New() *Bitmap {
	return &Bitmap{buf: buffer.New()}
}

// NewWithCapacity returns an empty Bitmap whose backing buffer is
// preallocated for expectedWords populated words (2*expectedWords
// int32 elements). This only affects how soon the buffer grows; it
// does not change behavior.
func NewWithCapacity(expectedWords int32) *Bitmap {
	return &Bitmap{buf: buffer.NewWithCapacity(2 * expectedWords)}
}

// BitmapOf builds a Bitmap from a sorted, non-decreasing sequence of
// positions, calling Set for each in order. It returns ErrOutOfOrder
// when a position falls before the word of the last populated pair;
// a backward position inside that last word is accepted, as in Set.
func BitmapOf(positions ...int32) (*Bitmap, error) {
	b := New()
	for _, p := range positions {
		if err := b.Set(p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// fastadd appends a (gap, word) pair without any invariant checking;
// callers are responsible for maintaining non-decreasing word order.
func (b *Bitmap) fastadd(word, off int32) {
	b.buf.Push(off - b.sizeinwords)
	b.buf.Push(word)
	b.sizeinwords = off + 1
}

// Add is the expert append: it appends word as the literal bitmap at
// absolute word index off, so the bitmap will cover off+1 words.
// No checking is performed; to build a bitmap from scratch, prefer
// Set. off must be >= the bitmap's current sizeinwords.
func (b *Bitmap) Add(word, off int32) {
	b.fastadd(word, off)
}

// Set places bit p (0-indexed, p >= 0) into the bitmap. Bits must be
// set in non-decreasing order; Set returns ErrOutOfOrder if p would
// require rewriting anything but the trailing pair.
func (b *Bitmap) Set(p int32) error {
	offset := p - b.sizeinwords*wordSize
	switch {
	case offset < -wordSize:
		return fmt.Errorf("sparsebitmap: set(%d): %w", p, ErrOutOfOrder)
	case offset < 0:
		last := b.buf.Size() - 1
		before := b.buf.Get(last)
		b.buf.Set(last, before|(1<<(offset+wordSize)))
	default:
		emptyWords := offset / wordSize
		offset -= emptyWords * wordSize
		b.fastadd(1<<offset, b.sizeinwords+emptyWords)
	}
	return nil
}

// Cardinality returns the number of set positions.
func (b *Bitmap) Cardinality() int32 {
	var n int32
	for k := int32(0); k < b.buf.Size(); k += 2 {
		n += int32(bits.OnesCount32(uint32(b.buf.Get(k + 1))))
	}
	return n
}

// ToArray returns the set positions in ascending order.
func (b *Bitmap) ToArray() []int32 {
	it := b.GetIntIterator()
	out := make([]int32, b.Cardinality())
	for k := range out {
		out[k] = it.Next()
	}
	return out
}

// String renders the bitmap as "{p1,p2,...}" in ascending order.
func (b *Bitmap) String() string {
	it := b.GetIntIterator()
	s := "{"
	if it.HasNext() {
		s += fmt.Sprint(it.Next())
	}
	for it.HasNext() {
		s += fmt.Sprintf(",%d", it.Next())
	}
	return s + "}"
}

// SizeInBytes returns the backing buffer's size in bytes (size*4).
func (b *Bitmap) SizeInBytes() int32 {
	return b.buf.Size() * 4
}

// Trim shrinks the backing buffer's capacity to its length and
// returns the new byte size.
func (b *Bitmap) Trim() int32 {
	return b.buf.Trim()
}

// Clear resets the bitmap to empty.
func (b *Bitmap) Clear() {
	b.buf.Clear()
	b.sizeinwords = 0
}

// Clone returns a deep, independent copy.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{buf: b.buf.Clone(), sizeinwords: b.sizeinwords}
}

// Equals holds iff both bitmaps have identical (gap, word) pair
// sequences. This is a structural comparison, not a semantic one. Set
// never creates a zero-word pair and always ORs into the trailing pair
// when the target word matches it, so two bitmaps built by Set from the
// same positions compare equal; the expert Add accepts zero words, and
// a bitmap holding such a pair does not equal one without it.
func (b *Bitmap) Equals(o *Bitmap) bool {
	if o == nil {
		return false
	}
	return b.buf.Equal(o.buf)
}

// HashCode returns the backing buffer's rolling hash.
func (b *Bitmap) HashCode() int32 {
	return b.buf.HashCode()
}

// And computes the bitwise intersection with another bitmap.
func (b *Bitmap) And(o *Bitmap) *Bitmap {
	result := New()
	and2by2(result, b, o)
	return result
}

// Or computes the bitwise union with another bitmap.
func (b *Bitmap) Or(o *Bitmap) *Bitmap {
	result := New()
	or2by2(result, b, o)
	return result
}

// Xor computes the bitwise symmetric difference with another bitmap.
func (b *Bitmap) Xor(o *Bitmap) *Bitmap {
	result := New()
	xor2by2(result, b, o)
	return result
}
