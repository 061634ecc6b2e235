// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

import "time"

// Element is a borrowed (tag, key, payload) view produced only by Document
// iteration or keyed lookup, never constructed directly from user input
// (spec §4.2). Every As* accessor validates the payload's local shape for
// its tag and either projects a value, reports UnexpectedType if the tag
// does not match, or reports MalformedBytes if the payload is locally
// malformed.
type Element struct {
	tag     Tag
	key     string
	payload []byte
	offset  int // offset of payload within the originating document, for diagnostics
}

// Tag reports the element's wire type without validating its payload.
func (e Element) Tag() Tag { return e.tag }

// Key reports the element's key.
func (e Element) Key() string { return e.key }

func (e Element) wrongType(expected Tag) error {
	return unexpectedType(e.offset, expected, e.tag)
}

// AsF64 returns the element's value as a float64 (wire tag 0x01).
func (e Element) AsF64() (float64, error) {
	if e.tag != TagFloat64 {
		return 0, e.wrongType(TagFloat64)
	}
	v, _, err := readF64LE(e.payload, 0)
	return v, err
}

// AsStr returns the element's value as a UTF-8 string (wire tag 0x02). The
// string is a copy of the payload bytes, not a view into the buffer.
func (e Element) AsStr() (string, error) {
	if e.tag != TagString {
		return "", e.wrongType(TagString)
	}
	s, _, err := readLPString(e.payload, 0)
	return s, err
}

// AsDocument returns the element's value as a nested Document view (wire tag 0x03).
func (e Element) AsDocument() (*Document, error) {
	if e.tag != TagDocument {
		return nil, e.wrongType(TagDocument)
	}
	return New(e.payload)
}

// AsArray returns the element's value as a nested Array view (wire tag 0x04).
func (e Element) AsArray() (*Array, error) {
	if e.tag != TagArray {
		return nil, e.wrongType(TagArray)
	}
	doc, err := New(e.payload)
	if err != nil {
		return nil, err
	}
	return &Array{doc: doc}, nil
}

// AsBinary returns the element's subtype and borrowed data (wire tag 0x05).
func (e Element) AsBinary() (subtype byte, data []byte, err error) {
	if e.tag != TagBinary {
		return 0, nil, e.wrongType(TagBinary)
	}
	l, off, err := readI32LE(e.payload, 0)
	if err != nil {
		return 0, nil, err
	}
	if l < 0 {
		return 0, nil, malformed(e.offset, "binary length %d is negative", l)
	}
	subtype, off, err = readU8(e.payload, off)
	if err != nil {
		return 0, nil, err
	}
	data, _, err = readFixed(e.payload, off, int(l))
	if err != nil {
		return 0, nil, err
	}
	return subtype, data, nil
}

// AsUndefined validates a deprecated Undefined element (wire tag 0x06).
func (e Element) AsUndefined() error {
	if e.tag != TagUndefined {
		return e.wrongType(TagUndefined)
	}
	return nil
}

// AsObjectID returns the element's value as a 12-byte ObjectID (wire tag 0x07).
func (e Element) AsObjectID() (ObjectID, error) {
	if e.tag != TagObjectID {
		return ObjectID{}, e.wrongType(TagObjectID)
	}
	b, _, err := readFixed(e.payload, 0, 12)
	if err != nil {
		return ObjectID{}, err
	}
	var oid ObjectID
	copy(oid[:], b)
	return oid, nil
}

// AsBool returns the element's value as a bool (wire tag 0x08).
func (e Element) AsBool() (bool, error) {
	if e.tag != TagBool {
		return false, e.wrongType(TagBool)
	}
	b, _, err := readU8(e.payload, 0)
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, malformed(e.offset, "bool byte is %#x, want 0x00 or 0x01", b)
	}
}

// AsDateTime returns the element's value as milliseconds since the Unix
// epoch (wire tag 0x09).
func (e Element) AsDateTime() (DateTime, error) {
	if e.tag != TagDateTime {
		return 0, e.wrongType(TagDateTime)
	}
	v, _, err := readI64LE(e.payload, 0)
	return DateTime(v), err
}

// AsNull validates a Null element (wire tag 0x0A).
func (e Element) AsNull() error {
	if e.tag != TagNull {
		return e.wrongType(TagNull)
	}
	return nil
}

// AsRegex returns the element's pattern and options (wire tag 0x0B).
func (e Element) AsRegex() (pattern, options string, err error) {
	if e.tag != TagRegex {
		return "", "", e.wrongType(TagRegex)
	}
	pattern, off, err := readCString(e.payload, 0)
	if err != nil {
		return "", "", err
	}
	options, _, err = readCString(e.payload, off)
	if err != nil {
		return "", "", err
	}
	return pattern, options, nil
}

// AsDBPointer returns the element's namespace and referenced ObjectID
// (wire tag 0x0C, deprecated).
func (e Element) AsDBPointer() (namespace string, id ObjectID, err error) {
	if e.tag != TagDBPointer {
		return "", ObjectID{}, e.wrongType(TagDBPointer)
	}
	namespace, off, err := readLPString(e.payload, 0)
	if err != nil {
		return "", ObjectID{}, err
	}
	b, _, err := readFixed(e.payload, off, 12)
	if err != nil {
		return "", ObjectID{}, err
	}
	copy(id[:], b)
	return namespace, id, nil
}

// AsJavaScript returns the element's code (wire tag 0x0D).
func (e Element) AsJavaScript() (string, error) {
	if e.tag != TagJavaScript {
		return "", e.wrongType(TagJavaScript)
	}
	s, _, err := readLPString(e.payload, 0)
	return s, err
}

// AsSymbol returns the element's value (wire tag 0x0E, deprecated).
func (e Element) AsSymbol() (string, error) {
	if e.tag != TagSymbol {
		return "", e.wrongType(TagSymbol)
	}
	s, _, err := readLPString(e.payload, 0)
	return s, err
}

// AsJavaScriptWithScope returns the element's code and scope document
// (wire tag 0x0F).
func (e Element) AsJavaScriptWithScope() (code string, scope *Document, err error) {
	if e.tag != TagJavaScriptScope {
		return "", nil, e.wrongType(TagJavaScriptScope)
	}
	// The leading int32 is the total length of the payload and is not
	// re-validated here; the outer document scan already used it to
	// delimit this element (spec §4.3).
	_, off, err := readI32LE(e.payload, 0)
	if err != nil {
		return "", nil, err
	}
	code, off, err = readLPString(e.payload, off)
	if err != nil {
		return "", nil, err
	}
	scope, err = New(e.payload[off:])
	if err != nil {
		return "", nil, err
	}
	return code, scope, nil
}

// AsI32 returns the element's value as an int32 (wire tag 0x10).
func (e Element) AsI32() (int32, error) {
	if e.tag != TagInt32 {
		return 0, e.wrongType(TagInt32)
	}
	v, _, err := readI32LE(e.payload, 0)
	return v, err
}

// AsTimestamp returns the element's value as a BSON internal Timestamp
// (wire tag 0x11): an increment and a time, both uint32, packed
// little-endian as a single uint64.
func (e Element) AsTimestamp() (Timestamp, error) {
	if e.tag != TagTimestamp {
		return Timestamp{}, e.wrongType(TagTimestamp)
	}
	v, _, err := readI64LE(e.payload, 0)
	if err != nil {
		return Timestamp{}, err
	}
	u := uint64(v)
	return Timestamp{Increment: uint32(u), Time: uint32(u >> 32)}, nil
}

// AsI64 returns the element's value as an int64 (wire tag 0x12).
func (e Element) AsI64() (int64, error) {
	if e.tag != TagInt64 {
		return 0, e.wrongType(TagInt64)
	}
	v, _, err := readI64LE(e.payload, 0)
	return v, err
}

// AsDecimal128 returns the element's raw 16-byte value (wire tag 0x13).
func (e Element) AsDecimal128() (Decimal128, error) {
	if e.tag != TagDecimal128 {
		return Decimal128{}, e.wrongType(TagDecimal128)
	}
	b, _, err := readFixed(e.payload, 0, 16)
	if err != nil {
		return Decimal128{}, err
	}
	var d Decimal128
	copy(d[:], b)
	return d, nil
}

// AsMinKey validates a MinKey element (wire tag 0xFF).
func (e Element) AsMinKey() error {
	if e.tag != TagMinKey {
		return e.wrongType(TagMinKey)
	}
	return nil
}

// AsMaxKey validates a MaxKey element (wire tag 0x7F).
func (e Element) AsMaxKey() error {
	if e.tag != TagMaxKey {
		return e.wrongType(TagMaxKey)
	}
	return nil
}

// DateTime is milliseconds since the Unix epoch, the wire representation of
// BSON's UTC datetime type.
type DateTime int64

// Time converts to a time.Time in the local timezone's clock.
func (d DateTime) Time() time.Time {
	return time.Unix(int64(d)/1000, (int64(d)%1000)*int64(time.Millisecond))
}

// Timestamp is BSON's internal replication timestamp: an ordinal within a
// second (Increment) and a second count since the epoch (Time).
type Timestamp struct {
	Increment uint32
	Time      uint32
}
