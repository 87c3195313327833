package cobs

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/cespare/xxhash/v2"
)

var (
	// ChecksumMismatch is the error that is returned when a decoded frame
	// fails checksum verification.
	ChecksumMismatch = errors.New("Frame checksum mismatch")
)

// checksumSize is the length of the xxhash64 trailer, in bytes.
const checksumSize = 8

// EncodeFrame writes the encoded form of record, followed by an xxhash64
// checksum of the record, into an output buffer.  The checksum travels inside
// the stuffed payload, so the encoded frame still contains no zero bytes.
// Use EncodeDelimiter to separate frames, and DecodeFrame to decode and
// verify them.
func EncodeFrame(record []byte, buf *bytes.Buffer) {
	framed := make([]byte, len(record)+checksumSize)
	copy(framed, record)
	binary.LittleEndian.PutUint64(framed[len(record):], xxhash.Sum64(record))
	Encode(framed, buf)
}

// DecodeFrame decodes a frame produced by EncodeFrame, verifies its checksum,
// and appends the record (without the checksum trailer) to record.  It
// returns io.EOF if the frame is too short to carry a checksum, and
// ChecksumMismatch if the checksum does not match the payload.  On error the
// buffer may hold partially decoded content.
func DecodeFrame(encoded []byte, record *bytes.Buffer) error {
	mark := record.Len()
	if err := Decode(encoded, record); err != nil {
		return err
	}
	framed := record.Bytes()[mark:]
	if len(framed) < checksumSize {
		return io.EOF
	}
	payload := framed[:len(framed)-checksumSize]
	sum := binary.LittleEndian.Uint64(framed[len(framed)-checksumSize:])
	if xxhash.Sum64(payload) != sum {
		return ChecksumMismatch
	}
	record.Truncate(mark + len(payload))
	return nil
}
