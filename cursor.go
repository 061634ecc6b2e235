// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Byte cursor primitives. Each reader takes (buf, off) and returns a value
// plus the offset immediately past it, or a MalformedBytes/Utf8Error if the
// read would run past the end of buf. Returned byte slices borrow from buf
// without copying (spec §4.1, §9 "lazy vs eager"). Returned strings do not:
// readCString and readLPString convert the bytes with string(...), which
// copies them into a newly allocated Go string.

// readU8 reads one byte. This is not a BSON element.
func readU8(buf []byte, off int) (byte, int, error) {
	if off < 0 || off >= len(buf) {
		return 0, off, malformed(off, "read past end of buffer (len %d)", len(buf))
	}
	return buf[off], off + 1, nil
}

// readI32LE reads one little-endian int32. This is not a BSON element.
func readI32LE(buf []byte, off int) (int32, int, error) {
	if off < 0 || off+4 > len(buf) {
		return 0, off, malformed(off, "read past end of buffer (len %d)", len(buf))
	}
	return int32(binary.LittleEndian.Uint32(buf[off : off+4])), off + 4, nil
}

// readI64LE reads one little-endian int64. This is not a BSON element.
func readI64LE(buf []byte, off int) (int64, int, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, off, malformed(off, "read past end of buffer (len %d)", len(buf))
	}
	return int64(binary.LittleEndian.Uint64(buf[off : off+8])), off + 8, nil
}

// readF64LE reads one little-endian IEEE-754 double. This is not a BSON
// element.
func readF64LE(buf []byte, off int) (float64, int, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, off, malformed(off, "read past end of buffer (len %d)", len(buf))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[off : off+8])), off + 8, nil
}

// readFixed returns the n bytes starting at off, borrowed from buf. This is
// not a BSON element.
func readFixed(buf []byte, off, n int) ([]byte, int, error) {
	if off < 0 || n < 0 || off+n > len(buf) {
		return nil, off, malformed(off, "read past end of buffer (len %d, want %d)", len(buf), n)
	}
	return buf[off : off+n], off + n, nil
}

// readCString scans forward from off for the first 0x00, returning the
// bytes before it (copied into a new string) and the offset
// immediately after the terminator. The bytes before the terminator must be
// valid UTF-8.
func readCString(buf []byte, off int) (string, int, error) {
	if off < 0 || off > len(buf) {
		return "", off, malformed(off, "read past end of buffer (len %d)", len(buf))
	}
	i := off
	for i < len(buf) && buf[i] != 0x00 {
		i++
	}
	if i >= len(buf) {
		return "", off, malformed(off, "unterminated cstring")
	}
	s := buf[off:i]
	if !utf8.Valid(s) {
		return "", off, utf8Error(off, "cstring is not valid utf-8")
	}
	return string(s), i + 1, nil
}

// readLPString reads a little-endian int32 length L (must be >= 1), then L
// bytes whose last byte must be 0x00; the preceding L-1 bytes must be valid
// UTF-8. Returns the string without its trailing NUL.
func readLPString(buf []byte, off int) (string, int, error) {
	l, next, err := readI32LE(buf, off)
	if err != nil {
		return "", off, err
	}
	if l < 1 {
		return "", off, malformed(off, "string length %d is less than 1", l)
	}
	end := next + int(l)
	if end < next || end > len(buf) {
		return "", off, malformed(off, "string length %d overruns buffer (len %d)", l, len(buf))
	}
	raw := buf[next:end]
	if raw[len(raw)-1] != 0x00 {
		return "", off, malformed(off, "string is not nul-terminated")
	}
	body := raw[:len(raw)-1]
	if !utf8.Valid(body) {
		return "", off, utf8Error(next, "string is not valid utf-8")
	}
	return string(body), end, nil
}
