package sparsebitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func denseRange(start, stop, step int32) []int32 {
	var out []int32
	for x := start; x <= stop; x += step {
		out = append(out, x)
	}
	return out
}

func TestSkipDrivenKernelsAgreeWithMerge(t *testing.T) {
	l1 := denseRange(4, 160, 4)
	l2 := denseRange(100, 4000, 100)

	b1, err := BitmapOf(l1...)
	require.NoError(t, err)
	b2, err := BitmapOf(l2...)
	require.NoError(t, err)

	want := b1.And(b2).ToArray()
	require.Equal(t, []int32{100}, want)

	and2, err := newAnd2Iterator(b1.GetSkippableIterator(), b2.GetSkippableIterator())
	require.NoError(t, err)
	got, err := Materialize(and2)
	require.NoError(t, err)
	require.Equal(t, want, got.ToArray())

	fa, err := FastAnd(b1.GetSkippableIterator(), b2.GetSkippableIterator())
	require.NoError(t, err)
	got, err = Materialize(fa)
	require.NoError(t, err)
	require.Equal(t, want, got.ToArray())

	an, err := And(b1.GetSkippableIterator(), b2.GetSkippableIterator())
	require.NoError(t, err)
	got, err = Materialize(an)
	require.NoError(t, err)
	require.Equal(t, want, got.ToArray())
}

func TestTreeAndFlatAndReverseFlatAndAgree(t *testing.T) {
	lists := [][]int32{
		{1, 2, 3, 4, 5, 100, 200},
		{2, 3, 4, 5, 6, 100, 300},
		{3, 4, 5, 6, 7, 100},
		{100, 150, 200},
	}
	bitmaps := make([]*Bitmap, len(lists))
	for i, l := range lists {
		b, err := BitmapOf(l...)
		require.NoError(t, err)
		bitmaps[i] = b
	}
	want := AndBitmaps(bitmaps...).ToArray()
	require.Equal(t, []int32{100}, want)

	newIterators := func() []SkippableIterator {
		its := make([]SkippableIterator, len(bitmaps))
		for i, b := range bitmaps {
			its[i] = b.GetSkippableIterator()
		}
		return its
	}

	tree, err := TreeAnd(newIterators()...)
	require.NoError(t, err)
	got, err := Materialize(tree)
	require.NoError(t, err)
	require.Equal(t, want, got.ToArray())

	flat, err := FlatAnd(newIterators()...)
	require.NoError(t, err)
	got, err = Materialize(flat)
	require.NoError(t, err)
	require.Equal(t, want, got.ToArray())

	rev, err := ReverseFlatAnd(newIterators()...)
	require.NoError(t, err)
	got, err = Materialize(rev)
	require.NoError(t, err)
	require.Equal(t, want, got.ToArray())
}

func TestAndZeroIteratorsIsEmptyAggregate(t *testing.T) {
	_, err := And()
	require.ErrorIs(t, err, ErrEmptyAggregate)

	_, err = FastAnd()
	require.ErrorIs(t, err, ErrEmptyAggregate)

	_, err = TreeAnd()
	require.ErrorIs(t, err, ErrEmptyAggregate)

	_, err = FlatAnd()
	require.ErrorIs(t, err, ErrEmptyAggregate)

	_, err = ReverseFlatAnd()
	require.ErrorIs(t, err, ErrEmptyAggregate)
}

func TestFastAndAdvanceUntilUnsupported(t *testing.T) {
	b, err := BitmapOf(1, 2, 3)
	require.NoError(t, err)
	fa, err := FastAnd(b.GetSkippableIterator())
	require.NoError(t, err)
	require.ErrorIs(t, fa.AdvanceUntil(10), ErrUnsupported)
}

func TestCardinalityOfMatchesMaterialize(t *testing.T) {
	b1, err := BitmapOf(1, 2, 100, 150)
	require.NoError(t, err)
	b2, err := BitmapOf(1, 3, 100, 200)
	require.NoError(t, err)

	and2, err := newAnd2Iterator(b1.GetSkippableIterator(), b2.GetSkippableIterator())
	require.NoError(t, err)
	card, err := CardinalityOf(and2)
	require.NoError(t, err)

	and2again, err := newAnd2Iterator(b1.GetSkippableIterator(), b2.GetSkippableIterator())
	require.NoError(t, err)
	materialized, err := Materialize(and2again)
	require.NoError(t, err)
	require.Equal(t, materialized.Cardinality(), card)
}
