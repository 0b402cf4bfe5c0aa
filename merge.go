package sparsebitmap

// and2by2 computes the bitwise intersection of bitmap1 and bitmap2,
// writing (word, offset) pairs into container in ascending order. It
// walks both pair arrays linearly, advancing whichever side is behind
// and emitting only on a matching absolute word offset with a
// non-zero result. O(N1+N2) pair steps.
func and2by2(container Sink, bitmap1, bitmap2 *Bitmap) {
	buf1, buf2 := bitmap1.buf, bitmap2.buf
	n1, n2 := buf1.Size(), buf2.Size()
	if n1 == 0 || n2 == 0 {
		return
	}

	it1, it2 := int32(0), int32(0)
	p1, p2 := buf1.Get(0), buf2.Get(0)
	for it1 < n1 && it2 < n2 {
		switch {
		case p1 < p2:
			it1 += 2
			if it1 < n1 {
				p1 += buf1.Get(it1) + 1
			}
		case p1 > p2:
			it2 += 2
			if it2 < n2 {
				p2 += buf2.Get(it2) + 1
			}
		default:
			if w := buf1.Get(it1+1) & buf2.Get(it2+1); w != 0 {
				container.Add(w, p1)
			}
			it1 += 2
			it2 += 2
			if it1 < n1 {
				p1 += buf1.Get(it1) + 1
			}
			if it2 < n2 {
				p2 += buf2.Get(it2) + 1
			}
		}
	}
}

// or2by2 computes the bitwise union of bitmap1 and bitmap2, writing
// (word, offset) pairs into container in ascending order: the smaller
// side's pair is emitted and advanced, ties emit the OR of both words
// and advance both, and whichever side outlasts the other is drained
// unchanged. O(N1+N2) pair steps.
func or2by2(container Sink, bitmap1, bitmap2 *Bitmap) {
	buf1, buf2 := bitmap1.buf, bitmap2.buf
	n1, n2 := buf1.Size(), buf2.Size()
	if n1 == 0 {
		drainAll(container, bitmap2)
		return
	}
	if n2 == 0 {
		drainAll(container, bitmap1)
		return
	}

	it1, it2 := int32(0), int32(0)
	p1, p2 := buf1.Get(0), buf2.Get(0)
	for it1 < n1 && it2 < n2 {
		switch {
		case p1 < p2:
			container.Add(buf1.Get(it1+1), p1)
			it1 += 2
			if it1 < n1 {
				p1 += buf1.Get(it1) + 1
			}
		case p1 > p2:
			container.Add(buf2.Get(it2+1), p2)
			it2 += 2
			if it2 < n2 {
				p2 += buf2.Get(it2) + 1
			}
		default:
			container.Add(buf1.Get(it1+1)|buf2.Get(it2+1), p1)
			it1 += 2
			it2 += 2
			if it1 < n1 {
				p1 += buf1.Get(it1) + 1
			}
			if it2 < n2 {
				p2 += buf2.Get(it2) + 1
			}
		}
	}
	drainRemaining(container, buf1, n1, it1, p1)
	drainRemaining(container, buf2, n2, it2, p2)
}

// xor2by2 computes the bitwise symmetric difference of bitmap1 and
// bitmap2: like or2by2, except a tie emits the XOR of both words only
// when it is non-zero, and still advances both sides.
func xor2by2(container Sink, bitmap1, bitmap2 *Bitmap) {
	buf1, buf2 := bitmap1.buf, bitmap2.buf
	n1, n2 := buf1.Size(), buf2.Size()
	if n1 == 0 {
		drainAll(container, bitmap2)
		return
	}
	if n2 == 0 {
		drainAll(container, bitmap1)
		return
	}

	it1, it2 := int32(0), int32(0)
	p1, p2 := buf1.Get(0), buf2.Get(0)
	for it1 < n1 && it2 < n2 {
		switch {
		case p1 < p2:
			container.Add(buf1.Get(it1+1), p1)
			it1 += 2
			if it1 < n1 {
				p1 += buf1.Get(it1) + 1
			}
		case p1 > p2:
			container.Add(buf2.Get(it2+1), p2)
			it2 += 2
			if it2 < n2 {
				p2 += buf2.Get(it2) + 1
			}
		default:
			w1, w2 := buf1.Get(it1+1), buf2.Get(it2+1)
			if w1 != w2 {
				container.Add(w1^w2, p1)
			}
			it1 += 2
			it2 += 2
			if it1 < n1 {
				p1 += buf1.Get(it1) + 1
			}
			if it2 < n2 {
				p2 += buf2.Get(it2) + 1
			}
		}
	}
	drainRemaining(container, buf1, n1, it1, p1)
	drainRemaining(container, buf2, n2, it2, p2)
}

// drainAll emits every pair of bm into container, in order.
func drainAll(container Sink, bm *Bitmap) {
	buf := bm.buf
	n := buf.Size()
	if n == 0 {
		return
	}
	drainRemaining(container, buf, n, 0, buf.Get(0))
}

// drainRemaining emits the pairs of buf starting at pair index it
// (whose absolute offset is p) through the end of buf.
func drainRemaining(container Sink, buf interface {
	Get(i int32) int32
	Size() int32
}, n, it, p int32) {
	for it < n {
		container.Add(buf.Get(it+1), p)
		it += 2
		if it < n {
			p += buf.Get(it) + 1
		}
	}
}
