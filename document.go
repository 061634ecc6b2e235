// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

package rawbson

// Document is a borrowed, non-owning view over a well-framed BSON document
// slice (spec §3, §4.3). Construction validates only the outer frame
// (length prefix, terminator, minimum size); every deeper operation
// re-validates its own local shape on demand.
type Document struct {
	data []byte
}

// New wraps bytes as a Document. It succeeds iff len(bytes) >= 5, the
// little-endian int32 length prefix equals len(bytes), and the last byte is
// 0x00. The interior is not validated here (spec §4.3, P1).
func New(data []byte) (*Document, error) {
	if len(data) < 5 {
		return nil, malformed(0, "document too short: %d bytes", len(data))
	}
	declared, _, err := readI32LE(data, 0)
	if err != nil {
		return nil, err
	}
	if declared < 0 || int(declared) != len(data) {
		return nil, malformed(0, "declared length %d does not match buffer length %d", declared, len(data))
	}
	if data[len(data)-1] != 0x00 {
		return nil, malformed(len(data)-1, "document is not nul-terminated")
	}
	return &Document{data: data}, nil
}

// Len returns the document's byte length, equal to its declared length
// prefix.
func (d *Document) Len() int { return len(d.data) }

// Bytes returns the document's backing slice, still owned by whatever
// buffer produced it.
func (d *Document) Bytes() []byte { return d.data }

// scanOne reads one element's framing (tag, key, payload bounds) starting
// at off, which must point at a tag byte strictly before the terminator.
// It performs only the bounds and length checks required to delimit the
// element; it does not validate the payload's internal shape (spec §4.3
// I4 — that's the job of Element's As* accessors).
func (d *Document) scanOne(off int) (Element, int, error) {
	tag, next, err := readU8(d.data, off)
	if err != nil {
		return Element{}, off, err
	}
	t := Tag(tag)
	if !validTag(t) {
		return Element{}, off, malformed(off, "unknown element tag %#x", tag)
	}
	key, next, err := readCString(d.data, next)
	if err != nil {
		return Element{}, off, err
	}
	payloadStart := next
	payloadLen, err := d.payloadLen(t, payloadStart)
	if err != nil {
		return Element{}, off, err
	}
	payloadEnd := payloadStart + payloadLen
	if payloadEnd < payloadStart || payloadEnd > len(d.data)-1 {
		return Element{}, off, malformed(off, "%s payload of length %d overruns document", t, payloadLen)
	}
	el := Element{
		tag:     t,
		key:     key,
		payload: d.data[payloadStart:payloadEnd],
		offset:  payloadStart,
	}
	return el, payloadEnd, nil
}

// payloadLen computes the byte length of the payload for an element of tag
// t starting at payloadStart, per the table in spec §4.3. It reads only
// what is needed to delimit the payload (a length prefix, or a pair of
// cstring terminators); it never validates the payload's contents.
func (d *Document) payloadLen(t Tag, payloadStart int) (int, error) {
	switch t {
	case TagFloat64, TagDateTime, TagTimestamp, TagInt64:
		return 8, nil
	case TagString, TagJavaScript, TagSymbol:
		l, _, err := readI32LE(d.data, payloadStart)
		if err != nil {
			return 0, err
		}
		if l < 0 {
			return 0, malformed(payloadStart, "string length %d is negative", l)
		}
		return 4 + int(l), nil
	case TagDocument, TagArray:
		l, _, err := readI32LE(d.data, payloadStart)
		if err != nil {
			return 0, err
		}
		if l < 5 {
			return 0, malformed(payloadStart, "nested document length %d is too small", l)
		}
		return int(l), nil
	case TagBinary:
		l, _, err := readI32LE(d.data, payloadStart)
		if err != nil {
			return 0, err
		}
		if l < 0 {
			return 0, malformed(payloadStart, "binary length %d is negative", l)
		}
		return 4 + 1 + int(l), nil
	case TagUndefined, TagNull, TagMinKey, TagMaxKey:
		return 0, nil
	case TagObjectID:
		return 12, nil
	case TagBool:
		return 1, nil
	case TagRegex:
		_, afterPattern, err := readCString(d.data, payloadStart)
		if err != nil {
			return 0, err
		}
		_, afterOptions, err := readCString(d.data, afterPattern)
		if err != nil {
			return 0, err
		}
		return afterOptions - payloadStart, nil
	case TagDBPointer:
		l, _, err := readI32LE(d.data, payloadStart)
		if err != nil {
			return 0, err
		}
		if l < 0 {
			return 0, malformed(payloadStart, "db pointer namespace length %d is negative", l)
		}
		return 4 + int(l) + 12, nil
	case TagJavaScriptScope:
		l, _, err := readI32LE(d.data, payloadStart)
		if err != nil {
			return 0, err
		}
		if l < 4 {
			return 0, malformed(payloadStart, "code-with-scope length %d is too small", l)
		}
		return int(l), nil
	case TagInt32:
		return 4, nil
	case TagDecimal128:
		return 16, nil
	default:
		return 0, malformed(payloadStart, "unknown element tag %#x", byte(t))
	}
}

// Get performs a linear scan for the first element whose key matches key
// byte-exact, returning (element, true, nil) if found, (zero, false, nil)
// if absent, or (zero, false, err) if an element's framing before (or at)
// the match point is malformed (spec §4.3).
func (d *Document) Get(key string) (Element, bool, error) {
	off := 4
	last := len(d.data) - 1
	for off < last {
		el, next, err := d.scanOne(off)
		if err != nil {
			return Element{}, false, err
		}
		if el.key == key {
			return el, true, nil
		}
		off = next
	}
	return Element{}, false, nil
}

// Iterator walks a Document's elements in byte order. It carries a
// document reference, the current offset, the terminator's offset, the
// error that stopped it, and a terminated flag (spec §9); once Next
// returns false, either iteration reached the end or Err reports why it
// stopped.
type Iterator struct {
	doc  *Document
	off  int
	last int
	err  error
	done bool
}

// Iter returns a fresh Iterator over d's elements, in document order.
func (d *Document) Iter() *Iterator {
	return &Iterator{doc: d, off: 4, last: len(d.data) - 1}
}

// Next advances the iterator and reports whether an element was produced.
// After an error or the end of the document, Next always returns false;
// call Err to distinguish the two.
func (it *Iterator) Next() (Element, bool) {
	if it.done || it.off >= it.last {
		it.done = true
		return Element{}, false
	}
	el, next, err := it.doc.scanOne(it.off)
	if err != nil {
		it.err = err
		it.done = true
		return Element{}, false
	}
	it.off = next
	return el, true
}

// Err returns the error that stopped iteration, or nil if iteration ran to
// completion.
func (it *Iterator) Err() error { return it.err }

// Materialize recursively decodes the entire document into plain Go
// values: map[string]any for documents, []any for arrays, and the natural
// Go type for each scalar. Unlike every other operation in this package,
// Materialize is not lazy — it walks the whole tree and allocates a
// result for every element. It exists to back DecodeLoose (see
// deserialize/) and the rawbson-dump CLI's pretty-printer; nothing on the
// zero-copy path calls it.
func (d *Document) Materialize() (map[string]interface{}, error) {
	out := make(map[string]interface{})
	it := d.Iter()
	for {
		el, ok := it.Next()
		if !ok {
			break
		}
		v, err := materializeElement(el)
		if err != nil {
			return nil, err
		}
		out[el.Key()] = v
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Materialize decodes a single element into the same plain Go value
// Document.Materialize would put in its map under this element's key.
// It exists so external collaborators (see interop) can reuse the
// scalar projection without re-implementing it per tag.
func (e Element) Materialize() (interface{}, error) {
	return materializeElement(e)
}

func materializeElement(el Element) (interface{}, error) {
	switch el.Tag() {
	case TagFloat64:
		return el.AsF64()
	case TagString:
		return el.AsStr()
	case TagDocument:
		doc, err := el.AsDocument()
		if err != nil {
			return nil, err
		}
		return doc.Materialize()
	case TagArray:
		arr, err := el.AsArray()
		if err != nil {
			return nil, err
		}
		return arr.Materialize()
	case TagBinary:
		_, data, err := el.AsBinary()
		return data, err
	case TagUndefined:
		return nil, el.AsUndefined()
	case TagObjectID:
		return el.AsObjectID()
	case TagBool:
		return el.AsBool()
	case TagDateTime:
		return el.AsDateTime()
	case TagNull:
		return nil, el.AsNull()
	case TagRegex:
		pattern, options, err := el.AsRegex()
		if err != nil {
			return nil, err
		}
		return Regex{Pattern: pattern, Options: options}, nil
	case TagDBPointer:
		ns, id, err := el.AsDBPointer()
		if err != nil {
			return nil, err
		}
		return DBPointer{Namespace: ns, ID: id}, nil
	case TagJavaScript:
		return el.AsJavaScript()
	case TagSymbol:
		return el.AsSymbol()
	case TagJavaScriptScope:
		code, scope, err := el.AsJavaScriptWithScope()
		if err != nil {
			return nil, err
		}
		scopeMap, err := scope.Materialize()
		if err != nil {
			return nil, err
		}
		return JavaScriptScope{Code: code, Scope: scopeMap}, nil
	case TagInt32:
		return el.AsI32()
	case TagTimestamp:
		return el.AsTimestamp()
	case TagInt64:
		return el.AsI64()
	case TagDecimal128:
		return el.AsDecimal128()
	case TagMinKey:
		return nil, el.AsMinKey()
	case TagMaxKey:
		return nil, el.AsMaxKey()
	default:
		return nil, malformed(el.offset, "unknown element tag %#x", byte(el.Tag()))
	}
}

// Regex is the materialized form of a BSON regular expression element.
type Regex struct {
	Pattern string
	Options string
}

// DBPointer is the materialized form of a BSON DBPointer element
// (deprecated).
type DBPointer struct {
	Namespace string
	ID        ObjectID
}

// JavaScriptScope is the materialized form of a BSON JavaScript-with-scope
// element.
type JavaScriptScope struct {
	Code  string
	Scope map[string]interface{}
}
