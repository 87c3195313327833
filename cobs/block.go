package cobs

// A blockIter splits input data into successive runs of at most maxBlock
// bytes, none of which contains a zero byte.  Every message is treated as if
// a single zero byte were appended to it, so the final block is either the
// tail of the input (when the input does not end in a zero) or a synthetic
// empty block standing in for that appended zero.  Zeros separating runs are
// consumed and never appear in any block.
type blockIter struct {
	data      []byte
	maxBlock  int
	find      zeroFinder
	processed int
}

// next returns the next block, or false once the input and the implicit
// trailing zero have both been consumed.  Returned blocks alias the input.
func (it *blockIter) next() ([]byte, bool) {
	if it.processed > len(it.data) {
		return nil, false
	}
	if it.processed == len(it.data) {
		// Only the implicit trailing zero remains.
		it.processed++
		return it.data[len(it.data):], true
	}

	start := it.processed
	bound := min(start+it.maxBlock, len(it.data))
	switch i := it.find(it.data[start:bound]); {
	case i >= 0:
		// Consume the run and the zero that ends it.
		it.processed += i + 1
		return it.data[start : start+i], true
	case bound == len(it.data):
		// No zeros until the end; pretend one is appended and consume it.
		it.processed = len(it.data) + 1
		return it.data[start:], true
	default:
		// A full zero-free block that does not reach the end of the input.
		it.processed += it.maxBlock
		return it.data[start:bound], true
	}
}

// drained reports whether the iterator has consumed the whole input including
// the implicit trailing zero, i.e. whether the most recent block was the last.
func (it *blockIter) drained() bool {
	return it.processed > len(it.data)
}
