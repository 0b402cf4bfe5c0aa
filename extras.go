package sparsebitmap

// Match reports whether two SkippableIterators share a set bit at
// some point as they are walked forward together: it advances
// whichever side is behind to the other's offset and checks for a
// shared, non-zero word at each offset the two agree on, stopping the
// moment one side runs out. It consumes both iterators.
//
// This deliberately requires the words to overlap, not just the
// offsets: two bitmaps whose pairs line up on the same word index but
// share no bit there do not match.
func Match(o1, o2 SkippableIterator) (bool, error) {
	for o1.HasValue() && o2.HasValue() {
		off1, off2 := o1.CurrentWordOffset(), o2.CurrentWordOffset()
		switch {
		case off1 < off2:
			if err := o1.AdvanceUntil(off2); err != nil {
				return false, err
			}
		case off2 < off1:
			if err := o2.AdvanceUntil(off1); err != nil {
				return false, err
			}
		default:
			if o1.CurrentWord()&o2.CurrentWord() != 0 {
				return true, nil
			}
			if err := o1.Advance(); err != nil {
				return false, err
			}
			if err := o2.Advance(); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}

// FastAndBitmaps derives a SkippableIterator from each bitmap and
// forwards to FastAnd. It returns ErrEmptyAggregate if bitmaps is
// empty.
func FastAndBitmaps(bitmaps ...*Bitmap) (SkippableIterator, error) {
	if len(bitmaps) == 0 {
		return nil, ErrEmptyAggregate
	}
	its := make([]SkippableIterator, len(bitmaps))
	for i, b := range bitmaps {
		its[i] = b.GetSkippableIterator()
	}
	return FastAnd(its...)
}
