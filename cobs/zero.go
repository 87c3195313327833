package cobs

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// A zeroFinder returns the index of the first zero byte in window, or -1 if
// window contains no zero byte.  The window may be empty.  All finders must
// agree exactly with indexZeroLinear on every input.
type zeroFinder func(window []byte) int

// indexZeroLinear is the baseline byte-at-a-time scan that the other finders
// are validated against.
func indexZeroLinear(window []byte) int {
	for i, b := range window {
		if b == 0 {
			return i
		}
	}
	return -1
}

// indexZeroStdlib delegates to bytes.IndexByte, which is vectorized in the
// runtime on most architectures.
func indexZeroStdlib(window []byte) int {
	return bytes.IndexByte(window, 0)
}

const (
	lsb = 0x0101010101010101
	msb = 0x8080808080808080
)

// zeroBytes returns a word with the high bit set in each byte of v that is
// zero.  Borrow propagation can set spurious bits for bytes after the first
// zero, so only the lowest set bit is meaningful.
func zeroBytes(v uint64) uint64 {
	return (v - lsb) &^ v & msb
}

// movemask compresses the per-byte high bits of m into the low eight bits of
// the result, preserving byte order.  Each multiplier term shifts exactly one
// high bit into the top byte; the products never overlap, so no carries occur.
func movemask(m uint64) uint64 {
	return m * 0x0002040810204081 >> 56
}

// indexZeroWide8 scans the window one 64-bit word at a time, comparing all
// eight bytes against zero in parallel.  The remainder shorter than a word is
// scanned linearly.
func indexZeroWide8(window []byte) int {
	n := 0
	for len(window) >= 8 {
		if m := zeroBytes(binary.LittleEndian.Uint64(window)); m != 0 {
			return n + bits.TrailingZeros64(m)/8
		}
		window = window[8:]
		n += 8
	}
	if i := indexZeroLinear(window); i >= 0 {
		return n + i
	}
	return -1
}

// indexZeroWide scans the window in chunks of width bytes (a multiple of 8,
// at most 64), building a bitmask with one bit per zero byte in the chunk.
// The answer is the trailing-zero count of the mask added to the running
// offset; a zero mask means the chunk is zero-free.  The remainder shorter
// than width is scanned linearly.
func indexZeroWide(window []byte, width int) int {
	n := 0
	for len(window) >= width {
		var mask uint64
		for w := 0; w < width; w += 8 {
			mask |= movemask(zeroBytes(binary.LittleEndian.Uint64(window[w:]))) << w
		}
		if mask != 0 {
			return n + bits.TrailingZeros64(mask)
		}
		window = window[width:]
		n += width
	}
	if i := indexZeroLinear(window); i >= 0 {
		return n + i
	}
	return -1
}

func indexZeroWide16(window []byte) int { return indexZeroWide(window, 16) }

func indexZeroWide32(window []byte) int { return indexZeroWide(window, 32) }
