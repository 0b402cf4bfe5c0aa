package sparsebitmap

import "errors"

// ErrOutOfOrder is returned by Set when the requested position would
// require rewriting a pair other than the trailing one, i.e. the
// caller violated the non-decreasing construction order.
var ErrOutOfOrder = errors.New("sparsebitmap: unsupported write back")

// ErrEmptyAggregate is returned by the skip-driven iterator
// constructors (And, FastAnd, TreeAnd, FlatAnd, ReverseFlatAnd) when
// called with zero iterators. The bitmap-level aggregate scheduler
// (AndBitmaps/OrBitmaps/XorBitmaps over ...*Bitmap) does not use this:
// it returns an empty bitmap for zero inputs instead.
var ErrEmptyAggregate = errors.New("sparsebitmap: nothing to process")

// ErrUnsupported is returned by AdvanceUntil on the iterator produced
// by FastAnd, which does not implement it.
var ErrUnsupported = errors.New("sparsebitmap: advanceUntil not supported by this iterator")
