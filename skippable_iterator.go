package sparsebitmap

import (
	"math/bits"

	"sparsebitmap/internal/buffer"
)

// SkippableIterator is a forward cursor over (offset, word) pairs that
// can leap directly to the first pair at or past a given absolute
// word offset. It is the substrate the skip-driven intersection
// kernels are built on: AdvanceUntil lets a sparse input pull a dense
// one forward without visiting every pair in between.
//
// Implementations are forward-only and single-pass. Calling any method
// after HasValue returns false is a caller-side violation, except
// HasValue itself, which stays safely callable.
type SkippableIterator interface {
	// HasValue reports whether the cursor is positioned on a pair.
	HasValue() bool
	// CurrentWord returns the word at the cursor.
	CurrentWord() int32
	// CurrentWordOffset returns the absolute word index at the cursor.
	CurrentWordOffset() int32
	// Advance moves the cursor to the next pair, if any.
	Advance() error
	// AdvanceUntil moves the cursor forward at least one pair, and
	// then further while the cursor's offset is still below min.
	AdvanceUntil(min int32) error
}

// bitmapIterator is the SkippableIterator a Bitmap hands out over its
// own buffer. It borrows the buffer read-only.
type bitmapIterator struct {
	buf *buffer.Buffer
	pos int32
	p   int32
}

var _ SkippableIterator = (*bitmapIterator)(nil)

// GetSkippableIterator returns a fresh SkippableIterator over b's
// pairs, in ascending offset order.
func (b *Bitmap) GetSkippableIterator() SkippableIterator {
	it := &bitmapIterator{buf: b.buf}
	if b.buf.Size() > 0 {
		it.p = b.buf.Get(0)
	}
	return it
}

func (it *bitmapIterator) HasValue() bool         { return it.pos < it.buf.Size() }
func (it *bitmapIterator) CurrentWord() int32     { return it.buf.Get(it.pos + 1) }
func (it *bitmapIterator) CurrentWordOffset() int32 { return it.p }

func (it *bitmapIterator) Advance() error {
	it.pos += 2
	if it.pos < it.buf.Size() {
		it.p += it.buf.Get(it.pos) + 1
	}
	return nil
}

func (it *bitmapIterator) AdvanceUntil(min int32) error {
	if err := it.Advance(); err != nil {
		return err
	}
	for it.HasValue() && it.p < min {
		if err := it.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// Materialize drains a SkippableIterator into a fresh Bitmap via the
// expert Add, in the order the iterator yields pairs.
func Materialize(it SkippableIterator) (*Bitmap, error) {
	b := New()
	for it.HasValue() {
		b.Add(it.CurrentWord(), it.CurrentWordOffset())
		if err := it.Advance(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// CardinalityOf sums the popcount of every word a SkippableIterator
// yields, without materializing a Bitmap.
func CardinalityOf(it SkippableIterator) (int32, error) {
	var n int32
	for it.HasValue() {
		n += int32(bits.OnesCount32(uint32(it.CurrentWord())))
		if err := it.Advance(); err != nil {
			return 0, err
		}
	}
	return n, nil
}
