package cobs

import (
	"bytes"
	"errors"
	"io"
)

var (
	// InvalidPrefix is the error that is returned when an encoded record
	// contains a zero length-prefix byte.  Valid COBS output never contains
	// a zero byte.
	InvalidPrefix = errors.New("Invalid length prefix")
)

// Decode reads a binary record from an input buffer and appends the decoded
// message to record.  You must ensure that encoded does not contain any
// occurrences of the zero-byte delimiter.  (FindDelimiter can help you find
// the bounds of an encoded record before decoding it.)
//
// A truncated record, whose length prefix claims more bytes than remain,
// returns io.EOF.  A record whose length prefix is less than 0xff is followed
// by a separator zero in the decoded message, except at the end of the input;
// a 0xff prefix never implies a zero.
func Decode(encoded []byte, record *bytes.Buffer) error {
	for len(encoded) > 0 {
		prefix := encoded[0]
		if prefix == 0 {
			return InvalidPrefix
		}
		runLength := int(prefix) - 1
		encoded = encoded[1:]
		if len(encoded) < runLength {
			return io.EOF
		}
		record.Write(encoded[:runLength])
		encoded = encoded[runLength:]
		if prefix != fullPrefix && len(encoded) > 0 {
			record.WriteByte(0)
		}
	}
	return nil
}

// FindDelimiter returns the index of the first occurrence of the zero-byte
// record delimiter in encoded, or -1 if it doesn't occur.
func FindDelimiter(encoded []byte) int {
	return bytes.IndexByte(encoded, delimiter)
}

// A Scanner splits a zero-delimited stream into its encoded records.  Use
// Reset to point the Scanner at a stream, then call Next until it returns
// false.  Empty segments between delimiters are skipped; a valid encoded
// record is never empty.
type Scanner struct {
	rest   []byte
	record []byte
}

// Reset points the Scanner at a new encoded stream.
func (s *Scanner) Reset(encoded []byte) {
	s.rest = encoded
	s.record = nil
}

// Next advances the Scanner to the next encoded record, returning false when
// the stream is exhausted.
func (s *Scanner) Next() bool {
	for len(s.rest) > 0 {
		var record []byte
		if i := FindDelimiter(s.rest); i < 0 {
			record, s.rest = s.rest, nil
		} else {
			record, s.rest = s.rest[:i], s.rest[i+1:]
		}
		if len(record) > 0 {
			s.record = record
			return true
		}
	}
	return false
}

// Encoded returns the current encoded record.
func (s *Scanner) Encoded() []byte {
	return s.record
}

// Decode appends the decoded form of the current record to record.
func (s *Scanner) Decode(record *bytes.Buffer) error {
	return Decode(s.record, record)
}
