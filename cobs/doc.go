// Package cobs provides a Go implementation of Consistent Overhead Byte
// Stuffing (COBS), a framing codec that removes every zero byte from a
// message so that a single zero byte can delimit records on a stream (serial
// links, packet framing).  Runs of non-zero bytes become wire records of one
// length-prefix byte (run length + 1) followed by the run itself; a prefix of
// 0xff marks a full 254-byte run with no implied zero.
//
// Several encoding strategies are provided, differing only in how they locate
// zero bytes in the input; every strategy produces byte-identical output.
package cobs
