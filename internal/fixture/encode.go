// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// Package fixture builds raw BSON documents for this module's own tests
// and CLI tools, without hand-typed byte literals and without depending on
// the official driver just to generate test data. It is an adaptation of
// the teacher (sbunce-bson)'s encode.go: same per-tag function shapes
// (encodeFloat, encodeString, ...), same writeCstring/writeLPString
// helpers, trimmed to an ordered Builder and with the struct-tag
// reflection path left out (that concern now lives in the deserialize
// package, decoding in the opposite direction).
package fixture

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/jcdyer/rawbson"
)

// Builder accumulates elements in insertion order and renders them as a
// single length-prefixed, nul-terminated BSON document.
type Builder struct {
	buf bytes.Buffer
	err error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Bytes renders the accumulated elements as a complete BSON document:
// int32 length prefix, the elements in insertion order, then the 0x00
// terminator.
func (b *Builder) Bytes() []byte {
	if b.err != nil {
		panic(b.err) // programmer error building a fixture; tests should not hit this.
	}
	body := b.buf.Bytes()
	out := make([]byte, 0, 4+len(body)+1)
	out = append(out, 0, 0, 0, 0)
	out = append(out, body...)
	out = append(out, 0x00)
	binary.LittleEndian.PutUint32(out, uint32(len(out)))
	return out
}

func (b *Builder) tag(t rawbson.Tag) { b.buf.WriteByte(byte(t)) }

func (b *Builder) cstring(s string) {
	b.buf.WriteString(s)
	b.buf.WriteByte(0x00)
}

func (b *Builder) lpstring(s string) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)+1))
	b.buf.Write(lenBuf[:])
	b.buf.WriteString(s)
	b.buf.WriteByte(0x00)
}

func (b *Builder) i32(v int32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	b.buf.Write(buf[:])
}

func (b *Builder) u32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.buf.Write(buf[:])
}

func (b *Builder) i64(v int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	b.buf.Write(buf[:])
}

// Float64 appends a floating point element (wire tag 0x01).
func (b *Builder) Float64(key string, v float64) *Builder {
	b.tag(rawbson.TagFloat64)
	b.cstring(key)
	b.i64(int64(math.Float64bits(v)))
	return b
}

// Str appends a UTF-8 string element (wire tag 0x02).
func (b *Builder) Str(key, v string) *Builder {
	b.tag(rawbson.TagString)
	b.cstring(key)
	b.lpstring(v)
	return b
}

// Document appends an embedded document element (wire tag 0x03). nested
// must already be a complete document (e.g. (*Builder).Bytes()).
func (b *Builder) Document(key string, nested []byte) *Builder {
	b.tag(rawbson.TagDocument)
	b.cstring(key)
	b.buf.Write(nested)
	return b
}

// Array appends an array element (wire tag 0x04). nested must already be a
// complete document whose keys are the decimal indices.
func (b *Builder) Array(key string, nested []byte) *Builder {
	b.tag(rawbson.TagArray)
	b.cstring(key)
	b.buf.Write(nested)
	return b
}

// Binary appends a binary element (wire tag 0x05).
func (b *Builder) Binary(key string, subtype byte, data []byte) *Builder {
	b.tag(rawbson.TagBinary)
	b.cstring(key)
	b.i32(int32(len(data)))
	b.buf.WriteByte(subtype)
	b.buf.Write(data)
	return b
}

// Undefined appends a deprecated Undefined element (wire tag 0x06).
func (b *Builder) Undefined(key string) *Builder {
	b.tag(rawbson.TagUndefined)
	b.cstring(key)
	return b
}

// ObjectID appends an ObjectID element (wire tag 0x07).
func (b *Builder) ObjectID(key string, id rawbson.ObjectID) *Builder {
	b.tag(rawbson.TagObjectID)
	b.cstring(key)
	b.buf.Write(id[:])
	return b
}

// Bool appends a boolean element (wire tag 0x08).
func (b *Builder) Bool(key string, v bool) *Builder {
	b.tag(rawbson.TagBool)
	b.cstring(key)
	if v {
		b.buf.WriteByte(0x01)
	} else {
		b.buf.WriteByte(0x00)
	}
	return b
}

// DateTime appends a UTC datetime element (wire tag 0x09), ms since epoch.
func (b *Builder) DateTime(key string, ms int64) *Builder {
	b.tag(rawbson.TagDateTime)
	b.cstring(key)
	b.i64(ms)
	return b
}

// Null appends a null element (wire tag 0x0A).
func (b *Builder) Null(key string) *Builder {
	b.tag(rawbson.TagNull)
	b.cstring(key)
	return b
}

// Regex appends a regular expression element (wire tag 0x0B).
func (b *Builder) Regex(key, pattern, options string) *Builder {
	b.tag(rawbson.TagRegex)
	b.cstring(key)
	b.cstring(pattern)
	b.cstring(options)
	return b
}

// DBPointer appends a deprecated DBPointer element (wire tag 0x0C).
func (b *Builder) DBPointer(key, namespace string, id rawbson.ObjectID) *Builder {
	b.tag(rawbson.TagDBPointer)
	b.cstring(key)
	b.lpstring(namespace)
	b.buf.Write(id[:])
	return b
}

// JavaScript appends a JavaScript code element (wire tag 0x0D).
func (b *Builder) JavaScript(key, code string) *Builder {
	b.tag(rawbson.TagJavaScript)
	b.cstring(key)
	b.lpstring(code)
	return b
}

// Symbol appends a deprecated Symbol element (wire tag 0x0E).
func (b *Builder) Symbol(key, v string) *Builder {
	b.tag(rawbson.TagSymbol)
	b.cstring(key)
	b.lpstring(v)
	return b
}

// JavaScriptScope appends a JavaScript-with-scope element (wire tag 0x0F).
// scope must already be a complete document.
func (b *Builder) JavaScriptScope(key, code string, scope []byte) *Builder {
	b.tag(rawbson.TagJavaScriptScope)
	b.cstring(key)

	var tmp bytes.Buffer
	tmp.Write([]byte{0, 0, 0, 0}) // placeholder total length
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(code)+1))
	tmp.Write(lenBuf[:])
	tmp.WriteString(code)
	tmp.WriteByte(0x00)
	tmp.Write(scope)

	out := tmp.Bytes()
	binary.LittleEndian.PutUint32(out, uint32(len(out)))
	b.buf.Write(out)
	return b
}

// Int32 appends a 32-bit integer element (wire tag 0x10).
func (b *Builder) Int32(key string, v int32) *Builder {
	b.tag(rawbson.TagInt32)
	b.cstring(key)
	b.i32(v)
	return b
}

// Timestamp appends a BSON internal timestamp element (wire tag 0x11).
func (b *Builder) Timestamp(key string, increment, seconds uint32) *Builder {
	b.tag(rawbson.TagTimestamp)
	b.cstring(key)
	b.u32(increment)
	b.u32(seconds)
	return b
}

// Int64 appends a 64-bit integer element (wire tag 0x12).
func (b *Builder) Int64(key string, v int64) *Builder {
	b.tag(rawbson.TagInt64)
	b.cstring(key)
	b.i64(v)
	return b
}

// Decimal128 appends a Decimal128 element (wire tag 0x13) from its raw
// little-endian bytes.
func (b *Builder) Decimal128(key string, raw rawbson.Decimal128) *Builder {
	b.tag(rawbson.TagDecimal128)
	b.cstring(key)
	b.buf.Write(raw[:])
	return b
}

// MinKey appends a MinKey element (wire tag 0xFF).
func (b *Builder) MinKey(key string) *Builder {
	b.tag(rawbson.TagMinKey)
	b.cstring(key)
	return b
}

// MaxKey appends a MaxKey element (wire tag 0x7F).
func (b *Builder) MaxKey(key string) *Builder {
	b.tag(rawbson.TagMaxKey)
	b.cstring(key)
	return b
}
