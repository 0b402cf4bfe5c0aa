package sparsebitmap

import "sparsebitmap/internal/pqueue"

// AndBitmaps, OrBitmaps and XorBitmaps are the bulk set-algebra
// aggregates over many bitmaps. Zero inputs yield an empty bitmap; one
// input is returned as-is; two inputs go straight to the pairwise
// method. Three or more are combined via a size-ordered scheduler:
// repeatedly pop the two smallest (by SizeInBytes) from a min-heap,
// combine them, and push the result back, so large intermediate
// results never sit in the heap longer than necessary.
func AndBitmaps(bitmaps ...*Bitmap) *Bitmap {
	return aggregate(bitmaps, (*Bitmap).And)
}

func OrBitmaps(bitmaps ...*Bitmap) *Bitmap {
	return aggregate(bitmaps, (*Bitmap).Or)
}

func XorBitmaps(bitmaps ...*Bitmap) *Bitmap {
	return aggregate(bitmaps, (*Bitmap).Xor)
}

func aggregate(bitmaps []*Bitmap, combine func(*Bitmap, *Bitmap) *Bitmap) *Bitmap {
	switch len(bitmaps) {
	case 0:
		return New()
	case 1:
		return bitmaps[0]
	case 2:
		return combine(bitmaps[0], bitmaps[1])
	}

	values := make([]pqueue.Sized, len(bitmaps))
	for i, b := range bitmaps {
		values[i] = b
	}
	q := pqueue.New(values)
	for q.Len() > 1 {
		a := q.PopMin().(*Bitmap)
		b := q.PopMin().(*Bitmap)
		q.PushValue(combine(a, b))
	}
	return q.PopMin().(*Bitmap)
}
