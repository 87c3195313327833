package cobs_test

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/dcreager/cobs-go/cobs"
)

// randomData has a zero roughly every 256 bytes; nonzeroData is the
// worst case for the zero scan (and for the size bound).
func randomData(size int) []byte {
	rng := rand.New(rand.NewPCG(0x6f62, 0x7321))
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(rng.UintN(256))
	}
	return data
}

func nonzeroData(size int) []byte {
	data := randomData(size)
	for i, b := range data {
		if b == 0 {
			data[i] = 0x5a
		}
	}
	return data
}

func BenchmarkEncode(b *testing.B) {
	for _, size := range []int{1 << 10, 64 << 10, 1 << 20} {
		data := randomData(size)
		dst := make([]byte, cobs.EncodedSizeUpperBound(size))
		for _, s := range cobs.Strategies() {
			b.Run(fmt.Sprintf("%s/%d", s, size), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ReportAllocs()
				for b.Loop() {
					s.EncodeTo(dst, data)
				}
			})
		}
	}
}

func BenchmarkEncodeNoZeros(b *testing.B) {
	size := 64 << 10
	data := nonzeroData(size)
	dst := make([]byte, cobs.EncodedSizeUpperBound(size))
	for _, s := range cobs.Strategies() {
		b.Run(s.String(), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for b.Loop() {
				s.EncodeTo(dst, data)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, size := range []int{1 << 10, 64 << 10, 1 << 20} {
		data := randomData(size)
		dst := make([]byte, cobs.EncodedSizeUpperBound(size))
		encoded := dst[:cobs.EncodeTo(dst, data)]
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			var decoded bytes.Buffer
			decoded.Grow(size)
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for b.Loop() {
				decoded.Reset()
				if err := cobs.Decode(encoded, &decoded); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
