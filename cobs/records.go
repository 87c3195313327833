package cobs

import (
	"bytes"
)

// A RecordBuilder makes it easier to build up the content of individual
// records, which are then written into a delimited stream.  To build up the
// content of an individual record, just use the RecordBuilder as a
// bytes.Buffer.  Once a record is done, call FinishRecord.  Once you are done
// with all records, call Encode (or EncodeWith to pick an encoding strategy)
// to get the encoded representation of everything, with a delimiter after
// each record.
type RecordBuilder struct {
	bytes.Buffer
	start int
	spans []span
}

type span struct {
	start, end int
}

// FinishRecord indicates that you have finished constructing an individual
// record.  We don't actually encode the record until you call Encode, when we
// encode _all_ of the records that you add to the builder.
func (rb *RecordBuilder) FinishRecord() {
	end := rb.Len()
	rb.spans = append(rb.spans, span{rb.start, end})
	rb.start = end
}

// Reset discards all records and any unfinished record content.
func (rb *RecordBuilder) Reset() {
	rb.Buffer.Reset()
	rb.start = 0
	rb.spans = rb.spans[:0]
}

// Encode encodes all of the records in this builder into an output buffer
// using the Scalar strategy, writing a delimiter after each record.
func (rb *RecordBuilder) Encode(dest *bytes.Buffer) {
	rb.EncodeWith(dest, Scalar)
}

// EncodeWith encodes all of the records in this builder into an output
// buffer using strategy s, writing a delimiter after each record.
func (rb *RecordBuilder) EncodeWith(dest *bytes.Buffer, s Strategy) {
	records := rb.Bytes()
	for _, sp := range rb.spans {
		record := records[sp.start:sp.end]
		n := EncodedSizeUpperBound(len(record))
		dest.Grow(n + 1)
		dst := dest.AvailableBuffer()[:n]
		dest.Write(dst[:s.EncodeTo(dst, record)])
		EncodeDelimiter(dest)
	}
}
