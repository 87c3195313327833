package cobs

import (
	"bytes"
)

const (
	// maxBlockSize is the longest zero-free run a single wire record can
	// carry.  A run of exactly this length is written with the fullPrefix
	// length byte and implies no separator zero.
	maxBlockSize = 254
	fullPrefix   = 0xff

	delimiter = 0x00
)

// EncodedSizeUpperBound returns the worst-case encoded length of an n-byte
// message: n + ceil(n/254), the all-nonzero case.  An empty message still
// encodes to a single length prefix, so the bound for n == 0 is 1.
func EncodedSizeUpperBound(n int) int {
	if n == 0 {
		return 1
	}
	return n + (n+maxBlockSize-1)/maxBlockSize
}

// A Strategy selects how the encoder locates zero bytes in its input.  Every
// strategy produces byte-identical output; they differ only in throughput.
type Strategy int

const (
	// Scalar is the reference encoder: a single byte-at-a-time pass with a
	// back-filled length prefix per run.
	Scalar Strategy = iota
	// Blocks drives the block splitter with a linear zero scan.
	Blocks
	// Wide8 compares eight input bytes against zero per step.
	Wide8
	// Wide16 scans 16-byte chunks into a per-byte bitmask.
	Wide16
	// Wide32 scans 32-byte chunks into a per-byte bitmask.
	Wide32
	// IndexByte locates zeros with bytes.IndexByte.
	IndexByte
	// TwoStage finds the largest zero-free runs first and re-chunks them
	// into records afterwards, trading fewer scans over larger windows
	// against an extra chunking pass.
	TwoStage
)

// Strategies returns every registered encoding strategy.
func Strategies() []Strategy {
	return []Strategy{Scalar, Blocks, Wide8, Wide16, Wide32, IndexByte, TwoStage}
}

func (s Strategy) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case Blocks:
		return "blocks"
	case Wide8:
		return "wide8"
	case Wide16:
		return "wide16"
	case Wide32:
		return "wide32"
	case IndexByte:
		return "indexbyte"
	case TwoStage:
		return "twostage"
	}
	return "unknown"
}

// EncodeTo encodes src into dst using strategy s and returns the number of
// bytes written.  dst must be at least EncodedSizeUpperBound(len(src)) bytes
// long; passing a shorter buffer is a caller defect and panics.  dst and src
// must not overlap.
func (s Strategy) EncodeTo(dst, src []byte) int {
	if len(dst) < EncodedSizeUpperBound(len(src)) {
		panic("cobs: output buffer shorter than EncodedSizeUpperBound(len(src))")
	}
	switch s {
	case Scalar:
		return encodeScalar(dst, src)
	case Blocks:
		return encodeBlocks(dst, src, indexZeroLinear)
	case Wide8:
		return encodeBlocks(dst, src, indexZeroWide8)
	case Wide16:
		return encodeBlocks(dst, src, indexZeroWide16)
	case Wide32:
		return encodeBlocks(dst, src, indexZeroWide32)
	case IndexByte:
		return encodeBlocks(dst, src, indexZeroStdlib)
	case TwoStage:
		return encodeTwoStage(dst, src, indexZeroWide32)
	}
	panic("cobs: unknown strategy")
}

// EncodeTo encodes src into dst with the Scalar strategy and returns the
// number of bytes written.  See Strategy.EncodeTo for the buffer contract.
func EncodeTo(dst, src []byte) int {
	return Scalar.EncodeTo(dst, src)
}

// Encode writes the encoded form of record into an output buffer.  The
// encoded form contains no zero bytes.  (We do _not_ write a trailing
// delimiter; it is your responsibility to write this in between records using
// EncodeDelimiter.)
func Encode(record []byte, buf *bytes.Buffer) {
	n := EncodedSizeUpperBound(len(record))
	buf.Grow(n)
	dst := buf.AvailableBuffer()[:n]
	buf.Write(dst[:EncodeTo(dst, record)])
}

// EncodeDelimiter writes the zero-byte record delimiter to an output buffer.
// You should use this to separate records in your output stream.
func EncodeDelimiter(buf *bytes.Buffer) {
	buf.WriteByte(delimiter)
}

// encodeScalar is a single pass over the input with an implicit trailing
// zero.  The length prefix of each run is reserved when the run starts and
// back-filled when a zero ends it or the run reaches maxBlockSize.  A final
// run that ends exactly at maxBlockSize owes no record for the implicit zero.
func encodeScalar(dst, src []byte) int {
	written := 0
	run := 0
	full := false
	for _, b := range src {
		if run == 0 {
			written++ // reserve the prefix slot
		}
		if b == 0 {
			dst[written-1-run] = byte(run) + 1
			run = 0
			full = false
			continue
		}
		dst[written] = b
		written++
		run++
		full = false
		if run == maxBlockSize {
			dst[written-1-run] = fullPrefix
			run = 0
			full = true
		}
	}
	if full {
		return written
	}
	if run == 0 {
		written++
	}
	dst[written-1-run] = byte(run) + 1
	return written
}

// encodeBlocks writes one wire record per block yielded by the splitter.
func encodeBlocks(dst, src []byte, find zeroFinder) int {
	out := 0
	it := blockIter{data: src, maxBlock: maxBlockSize, find: find}
	for {
		block, ok := it.next()
		if !ok {
			return out
		}
		dst[out] = byte(len(block)) + 1
		copy(dst[out+1:], block)
		out += len(block) + 1
	}
}

// encodeTwoStage splits the input into maximal zero-free runs first and then
// re-chunks each run into records of at most maxBlockSize bytes.  A run that
// was ended by a zero and is an exact multiple of maxBlockSize (including the
// empty run between two adjacent zeros) still owes an empty record for that
// zero; the final run owes nothing beyond its remainder, because the zero
// that ends it is implicit.
func encodeTwoStage(dst, src []byte, find zeroFinder) int {
	out := 0
	it := blockIter{data: src, maxBlock: len(src), find: find}
	for {
		block, ok := it.next()
		if !ok {
			return out
		}
		tail := it.drained() && len(block) > 0
		for len(block) >= maxBlockSize {
			dst[out] = fullPrefix
			copy(dst[out+1:], block[:maxBlockSize])
			out += maxBlockSize + 1
			block = block[maxBlockSize:]
		}
		if len(block) > 0 || !tail {
			dst[out] = byte(len(block)) + 1
			copy(dst[out+1:], block)
			out += len(block) + 1
		}
	}
}
