package sparsebitmap

// and2Iterator is the skip-driven two-input intersection: the
// leap-frog kernel that drives whichever side is behind forward with
// AdvanceUntil instead of scanning every pair, then publishes the AND
// of the words once both sides agree on an offset.
type and2Iterator struct {
	it1, it2     SkippableIterator
	word, offset int32
	done         bool
}

var _ SkippableIterator = (*and2Iterator)(nil)

func newAnd2Iterator(it1, it2 SkippableIterator) (*and2Iterator, error) {
	a := &and2Iterator{it1: it1, it2: it2}
	if err := a.movetonext(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *and2Iterator) movetonext() error {
	for a.it1.HasValue() && a.it2.HasValue() {
		o1, o2 := a.it1.CurrentWordOffset(), a.it2.CurrentWordOffset()
		switch {
		case o1 < o2:
			if err := a.it1.AdvanceUntil(o2); err != nil {
				return err
			}
		case o2 < o1:
			if err := a.it2.AdvanceUntil(o1); err != nil {
				return err
			}
		default:
			if w := a.it1.CurrentWord() & a.it2.CurrentWord(); w != 0 {
				a.word, a.offset = w, o1
				return nil
			}
			if err := a.it1.Advance(); err != nil {
				return err
			}
		}
	}
	a.done = true
	return nil
}

func (a *and2Iterator) HasValue() bool           { return !a.done }
func (a *and2Iterator) CurrentWord() int32       { return a.word }
func (a *and2Iterator) CurrentWordOffset() int32 { return a.offset }

func (a *and2Iterator) Advance() error {
	if err := a.it1.Advance(); err != nil {
		return err
	}
	return a.movetonext()
}

func (a *and2Iterator) AdvanceUntil(min int32) error {
	if err := a.it1.AdvanceUntil(min); err != nil {
		return err
	}
	return a.movetonext()
}

// andNIterator is the n-ary intersection: it tracks maxval, the
// largest offset any input currently sits on, and repeatedly sweeps
// every input forward to maxval (an input that overshoots raises
// maxval and triggers another sweep) until a full sweep changes
// nothing. At that convergence point every input sits on maxval; if
// the AND of their words there is zero, the first input is nudged one
// pair forward and the sweep resumes.
type andNIterator struct {
	its          []SkippableIterator
	maxval       int32
	word, offset int32
	done         bool
}

var _ SkippableIterator = (*andNIterator)(nil)

// And returns the n-ary intersection of iterators as a new
// SkippableIterator. It returns ErrEmptyAggregate if iterators is
// empty.
func And(iterators ...SkippableIterator) (SkippableIterator, error) {
	if len(iterators) == 0 {
		return nil, ErrEmptyAggregate
	}
	a := &andNIterator{its: iterators}
	for _, it := range iterators {
		if !it.HasValue() {
			a.done = true
			return a, nil
		}
		if off := it.CurrentWordOffset(); off > a.maxval {
			a.maxval = off
		}
	}
	if err := a.movetonext(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *andNIterator) sweep() error {
	for {
		changed := false
		for _, it := range a.its {
			if !it.HasValue() {
				a.done = true
				return nil
			}
		}
		for _, it := range a.its {
			if off := it.CurrentWordOffset(); off < a.maxval {
				if err := it.AdvanceUntil(a.maxval); err != nil {
					return err
				}
				if !it.HasValue() {
					a.done = true
					return nil
				}
				changed = true
			}
			if off := it.CurrentWordOffset(); off > a.maxval {
				a.maxval = off
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
}

func (a *andNIterator) movetonext() error {
	for {
		if err := a.sweep(); err != nil {
			return err
		}
		if a.done {
			return nil
		}
		word := int32(-1)
		for _, it := range a.its {
			word &= it.CurrentWord()
		}
		if word != 0 {
			a.word, a.offset = word, a.maxval
			return nil
		}
		if err := a.its[0].Advance(); err != nil {
			return err
		}
		if !a.its[0].HasValue() {
			a.done = true
			return nil
		}
		if off := a.its[0].CurrentWordOffset(); off > a.maxval {
			a.maxval = off
		}
	}
}

func (a *andNIterator) HasValue() bool           { return !a.done }
func (a *andNIterator) CurrentWord() int32       { return a.word }
func (a *andNIterator) CurrentWordOffset() int32 { return a.offset }

func (a *andNIterator) Advance() error {
	for _, it := range a.its {
		if err := it.AdvanceUntil(a.maxval); err != nil {
			return err
		}
		if !it.HasValue() {
			a.done = true
			return nil
		}
	}
	max := a.its[0].CurrentWordOffset()
	for _, it := range a.its[1:] {
		if off := it.CurrentWordOffset(); off > max {
			max = off
		}
	}
	a.maxval = max
	return a.movetonext()
}

func (a *andNIterator) AdvanceUntil(min int32) error {
	last := a.its[len(a.its)-1]
	if err := last.AdvanceUntil(min); err != nil {
		return err
	}
	if !last.HasValue() {
		a.done = true
		return nil
	}
	a.maxval = last.CurrentWordOffset()
	return a.movetonext()
}

// fastAndIterator is And's optimized sibling: it tracks how many
// inputs currently agree with maxval instead of recomputing agreement
// from scratch, and gives up AdvanceUntil support in exchange (see
// ErrUnsupported).
type fastAndIterator struct {
	its          []SkippableIterator
	maxval       int32
	agree        int32
	word, offset int32
	done         bool
}

var _ SkippableIterator = (*fastAndIterator)(nil)

// FastAnd returns the n-ary intersection of iterators, like And, but
// using an agreement counter instead of a full re-scan per sweep. Its
// AdvanceUntil is unsupported: composing FastAnd's output as an input
// to another skip-driven kernel that relies on AdvanceUntil will fail
// with ErrUnsupported.
func FastAnd(iterators ...SkippableIterator) (SkippableIterator, error) {
	if len(iterators) == 0 {
		return nil, ErrEmptyAggregate
	}
	f := &fastAndIterator{its: iterators}
	for _, it := range iterators {
		if !it.HasValue() {
			f.done = true
			return f, nil
		}
	}
	f.maxval = iterators[0].CurrentWordOffset()
	if err := f.movetonext(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *fastAndIterator) movetonext() error {
	for {
		f.agree = 0
		for _, it := range f.its {
			if !it.HasValue() {
				f.done = true
				return nil
			}
			off := it.CurrentWordOffset()
			switch {
			case off < f.maxval:
				if err := it.AdvanceUntil(f.maxval); err != nil {
					return err
				}
				if !it.HasValue() {
					f.done = true
					return nil
				}
				off = it.CurrentWordOffset()
				if off == f.maxval {
					f.agree++
				} else if off > f.maxval {
					f.maxval = off
					f.agree = 1
				}
			case off == f.maxval:
				f.agree++
			case off > f.maxval:
				f.maxval = off
				f.agree = 1
			}
		}
		if f.agree != int32(len(f.its)) {
			continue
		}
		word := int32(-1)
		for _, it := range f.its {
			word &= it.CurrentWord()
		}
		if word != 0 {
			f.word, f.offset = word, f.maxval
			return nil
		}
		if err := f.its[0].Advance(); err != nil {
			return err
		}
		if !f.its[0].HasValue() {
			f.done = true
			return nil
		}
		if off := f.its[0].CurrentWordOffset(); off > f.maxval {
			f.maxval = off
		}
	}
}

func (f *fastAndIterator) HasValue() bool           { return !f.done }
func (f *fastAndIterator) CurrentWord() int32       { return f.word }
func (f *fastAndIterator) CurrentWordOffset() int32 { return f.offset }

func (f *fastAndIterator) Advance() error {
	for _, it := range f.its {
		if err := it.AdvanceUntil(f.maxval); err != nil {
			return err
		}
		if !it.HasValue() {
			f.done = true
			return nil
		}
	}
	max := f.its[0].CurrentWordOffset()
	for _, it := range f.its[1:] {
		if off := it.CurrentWordOffset(); off > max {
			max = off
		}
	}
	f.maxval = max
	return f.movetonext()
}

// AdvanceUntil always fails: fastAndIterator does not support it.
func (f *fastAndIterator) AdvanceUntil(min int32) error {
	return ErrUnsupported
}

// TreeAnd intersects iterators by pairwise-reducing them in a
// balanced tree: pair inputs (0,1), (2,3), ..., combine each pair via
// the two-input and2by2 kernel, and recurse on the combined level. An
// odd input at a level carries forward unchanged. It returns
// ErrEmptyAggregate if iterators is empty.
func TreeAnd(iterators ...SkippableIterator) (SkippableIterator, error) {
	if len(iterators) == 0 {
		return nil, ErrEmptyAggregate
	}
	level := iterators
	for len(level) > 1 {
		next := make([]SkippableIterator, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			it, err := newAnd2Iterator(level[i], level[i+1])
			if err != nil {
				return nil, err
			}
			next = append(next, it)
		}
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}
	return level[0], nil
}

// FlatAnd intersects iterators by left-folding the two-input
// and2by2 kernel across them in input order. It returns
// ErrEmptyAggregate if iterators is empty.
func FlatAnd(iterators ...SkippableIterator) (SkippableIterator, error) {
	if len(iterators) == 0 {
		return nil, ErrEmptyAggregate
	}
	acc := iterators[0]
	for _, it := range iterators[1:] {
		next, err := newAnd2Iterator(acc, it)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// ReverseFlatAnd is FlatAnd folding from the right instead of the
// left. It returns ErrEmptyAggregate if iterators is empty.
func ReverseFlatAnd(iterators ...SkippableIterator) (SkippableIterator, error) {
	if len(iterators) == 0 {
		return nil, ErrEmptyAggregate
	}
	acc := iterators[len(iterators)-1]
	for i := len(iterators) - 2; i >= 0; i-- {
		next, err := newAnd2Iterator(iterators[i], acc)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}
