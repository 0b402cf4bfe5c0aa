// Package sparsebitmap implements a compressed bitmap over non-negative
// 32-bit positions, suited to sets that are sparse relative to their
// universe size. The bitmap is encoded as a run of (gap, word) pairs:
// each populated 32-bit word is preceded by a count of fully-empty
// words since the last populated one, so long stretches of unset bits
// cost a single int32 rather than one bit each.
//
// A Bitmap is built by ordered Set calls (or the BitmapOf convenience
// constructor) and is read-only in spirit afterward: there is no way
// to unset a bit, and writes before the last populated word are
// rejected (a backward write inside that word is accepted). Set algebra
// (And/Or/Xor) is available both as simple pairwise bitmap methods and
// as skip-driven iterator kernels for combining many bitmaps of very
// different densities without materializing intermediate results.
package sparsebitmap
