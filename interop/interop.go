// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// Package interop bridges rawbson's borrowed, lazy views and the
// official go.mongodb.org/mongo-driver/v2/bson types, the way
// wricardo-mongolite's internal/proto package hands raw wire bytes to
// bson.Raw at the edges of its own engine. Nothing here is on rawbson's
// hot path. ToRaw and FromRaw share the caller's bytes without copying;
// ToD and ToM build new values.
package interop

import (
	"github.com/jcdyer/rawbson"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ToRaw wraps a Document's bytes as a driver bson.Raw, for handing a
// parsed rawbson.Document to driver code (e.g. as an insert argument).
func ToRaw(doc *rawbson.Document) bson.Raw {
	return bson.Raw(doc.Bytes())
}

// FromRaw parses driver-produced bytes (e.g. the result of a find) as a
// rawbson.Document.
func FromRaw(raw bson.Raw) (*rawbson.Document, error) {
	doc, err := rawbson.New([]byte(raw))
	return doc, errors.Wrap(err, "interop: parsing driver bson.Raw")
}

// ToD materializes a Document into a driver bson.D, preserving key
// order. Unlike Document.Materialize, nested documents and arrays
// become bson.D and []interface{} respectively so the result round-trips
// through the driver's own marshaler.
func ToD(doc *rawbson.Document) (bson.D, error) {
	var out bson.D
	it := doc.Iter()
	for {
		el, ok := it.Next()
		if !ok {
			break
		}
		v, err := elementValue(el)
		if err != nil {
			return nil, errors.Wrapf(err, "interop: converting key %q", el.Key())
		}
		out = append(out, bson.E{Key: el.Key(), Value: v})
	}
	if err := it.Err(); err != nil {
		return nil, errors.Wrap(err, "interop: iterating document")
	}
	return out, nil
}

// ToM materializes a Document into a driver bson.M. Key order is not
// preserved; duplicate keys keep the last occurrence, per Go map
// semantics.
func ToM(doc *rawbson.Document) (bson.M, error) {
	d, err := ToD(doc)
	if err != nil {
		return nil, err
	}
	m := make(bson.M, len(d))
	for _, e := range d {
		m[e.Key] = e.Value
	}
	return m, nil
}

// elementValue converts a single Element to a driver-friendly value.
// Document and Array get the bson.D/[]interface{} treatment that ToD and
// toSlice give the top level; ObjectID and Decimal128 get the driver's
// own arithmetic-capable types; everything else falls back to
// Element.Materialize's scalar projection.
func elementValue(el rawbson.Element) (interface{}, error) {
	switch el.Tag() {
	case rawbson.TagDocument:
		nested, err := el.AsDocument()
		if err != nil {
			return nil, err
		}
		return ToD(nested)
	case rawbson.TagArray:
		arr, err := el.AsArray()
		if err != nil {
			return nil, err
		}
		return toSlice(arr)
	case rawbson.TagObjectID:
		oid, err := el.AsObjectID()
		if err != nil {
			return nil, err
		}
		return ObjectIDToDriver(oid), nil
	case rawbson.TagDecimal128:
		d, err := el.AsDecimal128()
		if err != nil {
			return nil, err
		}
		return Decimal128ToDriver(d), nil
	default:
		return el.Materialize()
	}
}

func toSlice(arr *rawbson.Array) ([]interface{}, error) {
	out := make([]interface{}, 0, 8)
	it := arr.Iter()
	for {
		el, ok := it.Next()
		if !ok {
			break
		}
		v, err := elementValue(el)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ObjectIDToDriver converts a rawbson.ObjectID into the driver's
// bson.ObjectID, byte for byte.
func ObjectIDToDriver(id rawbson.ObjectID) bson.ObjectID {
	return bson.ObjectID(id)
}

// ObjectIDFromDriver converts a driver bson.ObjectID into rawbson's
// ObjectID, byte for byte.
func ObjectIDFromDriver(id bson.ObjectID) rawbson.ObjectID {
	return rawbson.ObjectID(id)
}

// Decimal128ToDriver converts rawbson's raw Decimal128 bytes into the
// driver's arithmetic-capable bson.Decimal128.
func Decimal128ToDriver(d rawbson.Decimal128) bson.Decimal128 {
	hi := uint64FromLE(d[8:16])
	lo := uint64FromLE(d[0:8])
	return bson.NewDecimal128(hi, lo)
}

// Decimal128FromDriver converts a driver bson.Decimal128 back into
// rawbson's raw wire representation.
func Decimal128FromDriver(d bson.Decimal128) rawbson.Decimal128 {
	hi, lo := d.GetBytes()
	var out rawbson.Decimal128
	putUint64LE(out[0:8], lo)
	putUint64LE(out[8:16], hi)
	return out
}

func uint64FromLE(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v)
		v >>= 8
	}
}
